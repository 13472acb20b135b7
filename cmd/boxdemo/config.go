// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"stackbox.org/app"
)

// Config is the boxdemo.toml configuration.
type Config struct {
	Title string   `toml:"title"`
	Body  string   `toml:"body"`
	Items []string `toml:"items"`

	Layout LayoutConfig `toml:"layout"`
	// LogLevel is used when STACKBOX_LOG_LEVEL is unset.
	LogLevel string `toml:"log_level"`
}

// LayoutConfig configures the host.
type LayoutConfig struct {
	Workers int `toml:"workers"`
	// Policy is "coalesce" or "queue".
	Policy string `toml:"policy"`
	// Direction is "ltr" or "rtl".
	Direction string `toml:"direction"`
}

func DefaultConfig() Config {
	return Config{
		Title: "boxdemo",
		Body: "Layouts are computed on a worker goroutine from immutable " +
			"snapshots of the component records, then applied to the " +
			"terminal widgets on the main thread.",
		Items: []string{"Measure", "Arrange", "Apply"},
		Layout: LayoutConfig{
			Workers:   1,
			Policy:    "coalesce",
			Direction: "ltr",
		},
		LogLevel: "warn",
	}
}

// LoadConfig reads the configuration at path on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if config.Layout.Workers < 1 {
		config.Layout.Workers = 1
	}
	return config, nil
}

func (c LayoutConfig) policy() (app.Policy, error) {
	switch strings.ToLower(c.Policy) {
	case "", "coalesce":
		return app.Coalesce, nil
	case "queue":
		return app.Queue, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", c.Policy)
	}
}

func (c LayoutConfig) direction() (app.Direction, error) {
	switch strings.ToLower(c.Direction) {
	case "", "ltr":
		return app.LTR, nil
	case "rtl":
		return app.RTL, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", c.Direction)
	}
}
