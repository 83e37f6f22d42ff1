package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/john/xyzprint/container"
)

func newEncodeCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "encode <file.gcode>",
		Short: "Encode a G-code file into an encrypted .3w container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := resolveModel()
			if model == "" {
				return fmt.Errorf("no model specified; pass --model or set encode.model in config")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			info := container.ExtractInfo(string(data))

			encoded, err := container.Encode(string(data), info, model)
			if err != nil {
				return fmt.Errorf("encoding: %w", err)
			}

			dest := outPath
			if dest == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				dest = filepath.Join(cfg.Encode.OutputDir, base+".3w")
			}

			if err := os.WriteFile(dest, encoded, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			fmt.Printf("Wrote %s (%d bytes, model %s)\n", dest, len(encoded), model)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output .3w path (default: <input base name>.3w in encode.output_dir)")
	return cmd
}
