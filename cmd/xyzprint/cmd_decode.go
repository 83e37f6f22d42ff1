package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/john/xyzprint/container"
)

func newDecodeCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "decode <file.3w>",
		Short: "Decode an encrypted .3w container back to G-code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			gcode, err := container.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding: %w", err)
			}

			dest := outPath
			if dest == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				dest = base + ".gcode"
			}

			if err := os.WriteFile(dest, []byte(gcode), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			fmt.Printf("Wrote %s (%d bytes)\n", dest, len(gcode))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output .gcode path (default: <input base name>.gcode in the current directory)")
	return cmd
}
