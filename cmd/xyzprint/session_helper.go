package main

import (
	"fmt"
	"time"

	"github.com/john/xyzprint/session"
)

// resolvePort picks the serial device to use: --port wins, then the
// configured default, then whatever ScanPorts ranks first.
func resolvePort() (string, error) {
	if portFlag != "" {
		return portFlag, nil
	}
	if cfg.Serial.Device != "" {
		return cfg.Serial.Device, nil
	}

	candidates, err := session.ScanPorts()
	if err != nil {
		return "", fmt.Errorf("scanning serial ports: %w", err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no serial ports found; pass --port explicitly")
	}
	return candidates[0].Device, nil
}

// openSession resolves a port and connects a new Session to it. Callers
// are responsible for calling Disconnect when done.
func openSession() (*session.Session, error) {
	device, err := resolvePort()
	if err != nil {
		return nil, err
	}

	pollInterval := time.Duration(cfg.Serial.PollInterval) * time.Second
	s := session.NewSession(pollInterval)
	if _, err := s.Connect(device); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", device, err)
	}
	return s, nil
}
