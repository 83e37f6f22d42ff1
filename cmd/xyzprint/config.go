package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk settings file for the xyzprint CLI. Any field
// left unset falls back to DefaultConfig's value.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Encode EncodeConfig `yaml:"encode"`
}

type SerialConfig struct {
	// Device is the default serial port used when --port isn't given.
	Device string `yaml:"device"`
	// PollInterval is how often the background status poller queries
	// the printer while a session is open, in seconds.
	PollInterval int `yaml:"poll_interval"`
}

type EncodeConfig struct {
	// Model is the default model ID used when --model isn't given.
	Model string `yaml:"model"`
	// OutputDir is where encoded .3w files are written by default.
	OutputDir string `yaml:"output_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Serial: SerialConfig{
			PollInterval: 4,
		},
		Encode: EncodeConfig{
			OutputDir: ".",
		},
	}
}

// LoadConfig reads a yaml config file, overlaying it on DefaultConfig.
// A missing file is not an error: the CLI runs fine on defaults alone.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Encode.OutputDir != "" && !filepath.IsAbs(cfg.Encode.OutputDir) {
		dir, _ := os.Getwd()
		cfg.Encode.OutputDir = filepath.Join(dir, cfg.Encode.OutputDir)
	}

	return cfg, nil
}
