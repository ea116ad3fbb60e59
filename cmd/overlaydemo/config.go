// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/vroverlay"
)

// Config is the demo configuration file.
type Config struct {
	Overlay OverlayConfig `toml:"overlay"`
	Actions ActionsConfig `toml:"actions"`
	Runtime RuntimeConfig `toml:"runtime"`
}

// OverlayConfig describes the overlay the demo creates.
type OverlayConfig struct {
	Key      string  `toml:"key"`
	Name     string  `toml:"name"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Meters   float64 `toml:"meters"`
	Distance float64 `toml:"distance"`
	Frames   int     `toml:"frames"`
}

// ActionsConfig enables action input when Manifest is set.
type ActionsConfig struct {
	Manifest string `toml:"manifest"`
	Set      string `toml:"set"`
	Trigger  string `toml:"trigger"`
	Grip     string `toml:"grip"`
}

// RuntimeConfig pins interface versions and shapes the simulated runtime.
type RuntimeConfig struct {
	OverlayVersion string `toml:"overlay_version"`
	SystemVersion  string `toml:"system_version"`
	InputVersion   string `toml:"input_version"`
	Controllers    int    `toml:"controllers"`
}

func defaultConfig() Config {
	return Config{
		Overlay: OverlayConfig{
			Name:     "vroverlay demo",
			Width:    256,
			Height:   128,
			Meters:   0.6,
			Distance: 1.5,
			Frames:   3,
		},
		Runtime: RuntimeConfig{Controllers: 2},
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parsing config: unknown key %s", undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges the session would otherwise reject late.
func (c *Config) Validate() error {
	switch {
	case c.Overlay.Width <= 0 || c.Overlay.Height <= 0:
		return errors.New("overlay.width and overlay.height must be positive")
	case c.Overlay.Meters <= 0:
		return errors.New("overlay.meters must be positive")
	case c.Overlay.Frames < 1:
		return errors.New("overlay.frames must be at least 1")
	case c.Runtime.Controllers < 0 || c.Runtime.Controllers > 2:
		return errors.New("runtime.controllers must be between 0 and 2")
	}
	return nil
}

func (c *Config) versions() vroverlay.InterfaceVersions {
	return vroverlay.InterfaceVersions{
		Overlay: c.Runtime.OverlayVersion,
		System:  c.Runtime.SystemVersion,
		Input:   c.Runtime.InputVersion,
	}
}

// actions returns nil when action input is not configured.
func (c *Config) actions() *vroverlay.ActionConfig {
	if c.Actions.Manifest == "" {
		return nil
	}
	return &vroverlay.ActionConfig{
		ManifestPath:  c.Actions.Manifest,
		ActionSet:     c.Actions.Set,
		TriggerAction: c.Actions.Trigger,
		GripAction:    c.Actions.Grip,
	}
}
