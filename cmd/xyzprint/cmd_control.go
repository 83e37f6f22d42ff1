package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/john/xyzprint/session"
)

// newControlCommand groups every single-shot printer action under one
// subcommand tree so `xyzprint control <verb>` reads like a remote
// control rather than a dozen top-level flags.
func newControlCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "control",
		Short: "Send a single control command to the connected printer",
	}

	root.AddCommand(
		simpleControlCommand("home", "Home the print head", (*session.Session).Home),
		simpleControlCommand("pause", "Pause the current print", (*session.Session).Pause),
		simpleControlCommand("resume", "Resume a paused print", (*session.Session).Resume),
		simpleControlCommand("cancel", "Cancel the current print", (*session.Session).CancelPrint),
		simpleControlCommand("calibratejr", "Run single-point bed calibration", (*session.Session).CalibrateJr),
		simpleControlCommand("autolevel-on", "Enable auto bed leveling", (*session.Session).AutoLevelOn),
		simpleControlCommand("autolevel-off", "Disable auto bed leveling", (*session.Session).AutoLevelOff),
		simpleControlCommand("buzzer-on", "Enable the status buzzer", (*session.Session).BuzzerOn),
		simpleControlCommand("buzzer-off", "Disable the status buzzer", (*session.Session).BuzzerOff),
		newFilamentCommand(),
		newJogCommand(),
		newZOffsetCommand(),
		newCleanNozzleCommand(),
	)

	return root
}

// simpleControlCommand wraps any no-argument Session method that returns
// (bool, error) into a cobra command that connects, runs it, and reports
// ok/failed.
func simpleControlCommand(use, short string, fn func(*session.Session) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			ok, err := fn(s)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("printer rejected %s", use)
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func newFilamentCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "filament",
		Short: "Load or unload filament",
	}
	root.AddCommand(
		simpleControlCommand("load", "Start loading filament", (*session.Session).LoadFilamentStart),
		simpleControlCommand("load-cancel", "Cancel an in-progress filament load", (*session.Session).LoadFilamentCancel),
		simpleControlCommand("unload", "Start unloading filament", (*session.Session).UnloadFilamentStart),
		simpleControlCommand("unload-cancel", "Cancel an in-progress filament unload", (*session.Session).UnloadFilamentCancel),
	)
	return root
}

func newCleanNozzleCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cleannozzle",
		Short: "Run or cancel the nozzle cleaning cycle",
	}
	root.AddCommand(
		simpleControlCommand("start", "Start the nozzle cleaning cycle", (*session.Session).CleanNozzleStart),
		simpleControlCommand("cancel", "Cancel the nozzle cleaning cycle", (*session.Session).CleanNozzleCancel),
	)
	return root
}

func newJogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jog <axis> <mm>",
		Short: "Move one axis (x, y, or z) by a signed distance in millimeters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mm, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid distance: %w", err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			ok, err := s.Jog(args[0], mm)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("printer rejected jog")
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func newZOffsetCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zoffset",
		Short: "Get or set the printer's Z-offset",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the current Z-offset, in 1/100 mm",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			offset, err := s.ZOffsetGet()
			if err != nil {
				return err
			}
			fmt.Println(offset)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <offset>",
		Short: "Set the Z-offset, in 1/100 mm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid offset: %w", err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Disconnect()

			ok, err := s.ZOffsetSet(offset)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("printer rejected zoffset set")
			}
			fmt.Println("ok")
			return nil
		},
	}

	root.AddCommand(get, set)
	return root
}
