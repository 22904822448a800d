// Package config loads the trainer's HCL configuration file. A missing file
// is not an error; every setting has a default, and command-line flags win
// over both.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ribhisaleh/poker-trainer/internal/spot"
)

// Config is the complete trainer configuration
type Config struct {
	Play  *PlaySettings  `hcl:"play,block"`
	Drill *DrillSettings `hcl:"drill,block"`
	Serve *ServeSettings `hcl:"serve,block"`
}

// PlaySettings configures the interactive practice session
type PlaySettings struct {
	Mode     string `hcl:"mode,optional"`
	Hands    int    `hcl:"hands,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// DrillSettings configures worksheet generation
type DrillSettings struct {
	Mode        string `hcl:"mode,optional"`
	Count       int    `hcl:"count,optional"`
	ShowAnswers bool   `hcl:"show_answers,optional"`
}

// ServeSettings configures the practice service
type ServeSettings struct {
	Address  string `hcl:"address,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Play: &PlaySettings{
			Mode:     spot.HandRecognition.String(),
			Hands:    10,
			LogLevel: "warn",
			LogFile:  "poker-trainer.log",
		},
		Drill: &DrillSettings{
			Mode:        spot.HandRecognition.String(),
			Count:       20,
			ShowAnswers: false,
		},
		Serve: &ServeSettings{
			Address:  ":8080",
			LogLevel: "info",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file is decoded and topped up field by field.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Play == nil {
		cfg.Play = defaults.Play
	} else {
		if cfg.Play.Mode == "" {
			cfg.Play.Mode = defaults.Play.Mode
		}
		if cfg.Play.Hands == 0 {
			cfg.Play.Hands = defaults.Play.Hands
		}
		if cfg.Play.LogLevel == "" {
			cfg.Play.LogLevel = defaults.Play.LogLevel
		}
		if cfg.Play.LogFile == "" {
			cfg.Play.LogFile = defaults.Play.LogFile
		}
	}

	if cfg.Drill == nil {
		cfg.Drill = defaults.Drill
	} else {
		if cfg.Drill.Mode == "" {
			cfg.Drill.Mode = defaults.Drill.Mode
		}
		if cfg.Drill.Count == 0 {
			cfg.Drill.Count = defaults.Drill.Count
		}
	}

	if cfg.Serve == nil {
		cfg.Serve = defaults.Serve
	} else {
		if cfg.Serve.Address == "" {
			cfg.Serve.Address = defaults.Serve.Address
		}
		if cfg.Serve.LogLevel == "" {
			cfg.Serve.LogLevel = defaults.Serve.LogLevel
		}
	}
}

// Validate checks the configuration for values no command can work with
func (c *Config) Validate() error {
	if _, err := spot.ParseMode(c.Play.Mode); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	if _, err := spot.ParseMode(c.Drill.Mode); err != nil {
		return fmt.Errorf("drill: %w", err)
	}
	if c.Play.Hands <= 0 {
		return fmt.Errorf("play: hands must be positive, got %d", c.Play.Hands)
	}
	if c.Drill.Count <= 0 {
		return fmt.Errorf("drill: count must be positive, got %d", c.Drill.Count)
	}
	if c.Serve.Address == "" {
		return fmt.Errorf("serve: address is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Play.LogLevel] {
		return fmt.Errorf("play: invalid log level %q", c.Play.LogLevel)
	}
	if !validLogLevels[c.Serve.LogLevel] {
		return fmt.Errorf("serve: invalid log level %q", c.Serve.LogLevel)
	}
	return nil
}
