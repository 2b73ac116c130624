// Package config handles tape-runtime TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/tape-runtime/console"
	"github.com/wippyai/tape-runtime/engine"
	"github.com/wippyai/tape-runtime/errors"
	"github.com/wippyai/tape-runtime/tape"
)

// Config is the runner configuration, usually read from a TOML file.
type Config struct {
	Tape  TapeConfig  `toml:"tape"`
	Input InputConfig `toml:"input"`
	Dump  DumpConfig  `toml:"dump"`
	Log   LogConfig   `toml:"log"`
}

// TapeConfig sizes the tape.
type TapeConfig struct {
	Size int `toml:"size"`
}

// InputConfig controls how ',' reads from the console.
type InputConfig struct {
	Prompt string `toml:"prompt"`
	// Retry re-prompts after a line that is not a cell value instead of
	// aborting the run.
	Retry bool `toml:"retry"`
}

// DumpConfig selects the memory block printed after a run.
type DumpConfig struct {
	Enabled bool `toml:"enabled"`
	Start   int  `toml:"start"`
	End     int  `toml:"end"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tape:  TapeConfig{Size: engine.DefaultTapeSize},
		Input: InputConfig{Prompt: console.DefaultPrompt, Retry: true},
		Dump:  DumpConfig{Enabled: true, Start: 0, End: 10},
		Log:   LogConfig{Level: "info"},
	}
}

// Load parses the TOML file at path on top of Default. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(text string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(text, c)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
			Cause(err).
			Detail("parse config").
			Build()
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidConfig).
			Path(undecoded[0]...).
			Detail("unknown key").
			Build()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for values the runner cannot use.
func (c *Config) Validate() error {
	if c.Tape.Size < tape.MinSize {
		return errors.TapeTooSmall(c.Tape.Size, tape.MinSize)
	}
	if c.Dump.Start < 0 {
		return errors.InvalidConfig([]string{"dump", "start"}, c.Dump.Start, "must not be negative")
	}
	if c.Dump.End < c.Dump.Start {
		return errors.InvalidConfig([]string{"dump", "end"}, c.Dump.End,
			fmt.Sprintf("must not be below dump.start (%d)", c.Dump.Start))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.InvalidConfig([]string{"log", "level"}, c.Log.Level,
			"must be one of debug, info, warn, error")
	}
	return nil
}
