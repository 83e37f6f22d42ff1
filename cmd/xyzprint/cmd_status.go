package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Connect and print the printer's current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			st := s.Status()
			fmt.Printf("Model:       %s (%s)\n", st.DisplayName, st.ModelNumber)
			fmt.Printf("Firmware:    %s\n", st.FirmwareVersion)
			fmt.Printf("State:       %s (substate %d)\n", st.State, st.SubState)
			fmt.Printf("Extruder:    %d / %d C\n", st.ExtruderTemp, st.ExtruderTarget)
			fmt.Printf("Bed:         %d C\n", st.BedTemp)
			fmt.Printf("Print:       %d%% (elapsed %dm, remaining %dm)\n",
				st.PrintPercent, st.PrintElapsedMin, st.PrintRemainingMin)
			fmt.Printf("Filament:    %d mm remaining\n", st.FilamentRemainingMM)
			fmt.Printf("Z-offset:    %d (1/100 mm)\n", st.ZOffset)
			fmt.Printf("Auto level:  %v\n", st.AutoLevel)
			if st.ErrorCode != 0 {
				fmt.Printf("Error code:  %d\n", st.ErrorCode)
			}
			return nil
		},
	}
}
