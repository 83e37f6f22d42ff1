package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/john/xyzprint/session"
)

func newUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to the connected printer over USB serial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			filename := filepath.Base(args[0])
			err = s.Upload(filename, data, func(p session.UploadProgress) {
				fmt.Printf("\rblock %d/%d (%d/%d bytes)", p.BlockIndex+1, p.BlockCount, p.BytesSent, p.TotalBytes)
			})
			fmt.Println()
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}

			fmt.Printf("Uploaded %s (%d bytes)\n", filename, len(data))
			return nil
		},
	}
}
