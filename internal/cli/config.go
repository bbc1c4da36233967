// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/lipuma/tool"
)

// Config is the contents of a --config file.
//
//	[settings]
//	width = 10.0
//	wavelength = 20.0
//	sample_distance = 0.05
//	lacunarity = 0.35
//	octaves = 6
//	seed = 42
//
// Keys missing from the file keep their default values.
type Config struct {
	Settings tool.Settings `toml:"settings"`
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{Settings: tool.DefaultSettings()}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Settings.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
