package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/john/xyzprint/session"
)

func newDiscoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "List serial ports, ranked by likelihood of being an XYZ printer",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := session.ScanPorts()
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				fmt.Println("No serial ports found.")
				return nil
			}
			for _, c := range candidates {
				fmt.Printf("%s\t%s\n", c.Device, c.Description)
			}
			return nil
		},
	}
}
