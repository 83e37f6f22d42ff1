package session

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ok interprets a raw reply the way every command method in this file
// does: success iff the reply contains "ok" case-insensitively, or at
// least carries no "E0"-prefixed error token.
func ok(reply string) bool {
	lower := strings.ToLower(reply)
	if strings.Contains(lower, "ok") {
		return true
	}
	return !strings.Contains(strings.ToUpper(reply), "E0")
}

func (s *Session) command(text string) (bool, error) {
	reply, err := s.SendCommand(text)
	if err != nil {
		return false, err
	}
	return ok(reply), nil
}

// Home moves the print head to its reference position.
func (s *Session) Home() (bool, error) {
	return s.command("XYZv3/action=home")
}

// LoadFilamentStart begins the filament load sequence (heat, then feed).
func (s *Session) LoadFilamentStart() (bool, error) {
	return s.command("XYZv3/action=loadfilament")
}

// LoadFilamentCancel aborts an in-progress filament load.
func (s *Session) LoadFilamentCancel() (bool, error) {
	return s.command("XYZv3/action=loadfilamentcancel")
}

// UnloadFilamentStart begins the filament unload sequence.
func (s *Session) UnloadFilamentStart() (bool, error) {
	return s.command("XYZv3/action=unloadfilament")
}

// UnloadFilamentCancel aborts an in-progress filament unload.
func (s *Session) UnloadFilamentCancel() (bool, error) {
	return s.command("XYZv3/action=unloadfilamentcancel")
}

// Pause pauses the current print job.
func (s *Session) Pause() (bool, error) {
	return s.command("XYZv3/action=pause")
}

// Resume resumes a paused print job.
func (s *Session) Resume() (bool, error) {
	return s.command("XYZv3/action=resume")
}

// CancelPrint cancels the current print job.
func (s *Session) CancelPrint() (bool, error) {
	return s.command("XYZv3/action=cancel")
}

// CalibrateJr runs the single-point bed calibration used by the junior
// line of printers.
func (s *Session) CalibrateJr() (bool, error) {
	return s.command("XYZv3/action=calibratejr")
}

// CleanNozzleStart starts the nozzle cleaning cycle.
func (s *Session) CleanNozzleStart() (bool, error) {
	return s.command("XYZv3/action=cleannozzle")
}

// CleanNozzleCancel aborts an in-progress nozzle cleaning cycle.
func (s *Session) CleanNozzleCancel() (bool, error) {
	return s.command("XYZv3/action=cleannozzlecancel")
}

// Jog moves one axis by the given signed distance in millimeters. axis
// must be "x", "y", or "z".
func (s *Session) Jog(axis string, mm int) (bool, error) {
	switch axis {
	case "x", "y", "z":
	default:
		return false, ErrInvalidAxis
	}
	cmd := fmt.Sprintf("XYZv3/action=jog:{%s:%d}", axis, mm)
	return s.command(cmd)
}

var zOffsetReply = regexp.MustCompile(`zoffset[=:](-?\d+)`)

// ZOffsetGet returns the printer's current Z-offset in 1/100 mm, parsed
// from a "zoffset:<n>" reply.
func (s *Session) ZOffsetGet() (int, error) {
	reply, err := s.SendCommand("XYZv3/config=zoffset:get")
	if err != nil {
		return 0, err
	}
	m := zOffsetReply.FindStringSubmatch(reply)
	if m == nil {
		return 0, nil
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, nil
	}
	return v, nil
}

// ZOffsetSet sets the printer's Z-offset, in 1/100 mm.
func (s *Session) ZOffsetSet(offset int) (bool, error) {
	cmd := fmt.Sprintf("XYZv3/config=zoffset:%d", offset)
	return s.command(cmd)
}

// AutoLevelOn enables the auto bed leveling compensation.
func (s *Session) AutoLevelOn() (bool, error) {
	return s.command("XYZv3/config=autolevel:on")
}

// AutoLevelOff disables the auto bed leveling compensation.
func (s *Session) AutoLevelOff() (bool, error) {
	return s.command("XYZv3/config=autolevel:off")
}

// BuzzerOn enables the printer's status buzzer.
func (s *Session) BuzzerOn() (bool, error) {
	return s.command("XYZv3/config=buzzer:on")
}

// BuzzerOff disables the printer's status buzzer.
func (s *Session) BuzzerOff() (bool, error) {
	return s.command("XYZv3/config=buzzer:off")
}
