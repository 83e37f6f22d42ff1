package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     *Config

	portFlag  string
	modelFlag string
)

func main() {
	root := &cobra.Command{
		Use:   "xyzprint",
		Short: "Encode, decode, and drive XYZ da Vinci 3D printers",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "xyzprint.yaml", "path to configuration file")
	root.PersistentFlags().StringVar(&portFlag, "port", "", "serial device (overrides config and auto-detect)")
	root.PersistentFlags().StringVar(&modelFlag, "model", "", "printer model ID (overrides config)")

	root.AddCommand(
		newDiscoverCommand(),
		newStatusCommand(),
		newEncodeCommand(),
		newDecodeCommand(),
		newUploadCommand(),
		newControlCommand(),
	)

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func resolveModel() string {
	if modelFlag != "" {
		return modelFlag
	}
	return cfg.Encode.Model
}
