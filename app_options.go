// app_options.go - Runtime options from environment and command line

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const APP_ENV_PREFIX = "FIXPOINT"

// AppOptions are the process options. Environment variables
// (FIXPOINT_CONFIG, FIXPOINT_LOG_LEVEL, FIXPOINT_SHOW, FIXPOINT_BACKEND)
// supply the defaults that command-line flags then override.
type AppOptions struct {
	ConfigPath   string `envconfig:"CONFIG"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	ShowOverlays bool   `envconfig:"SHOW" default:"false"`
	Backend      string `envconfig:"BACKEND" default:"ebiten"`
}

func LoadAppOptions() (AppOptions, error) {
	var opts AppOptions
	if err := envconfig.Process(APP_ENV_PREFIX, &opts); err != nil {
		return AppOptions{}, fmt.Errorf("reading %s_* environment: %w", APP_ENV_PREFIX, err)
	}
	return opts, nil
}

// SettingsPath is the configured settings file, or the per-user default.
func (o AppOptions) SettingsPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	return DefaultSettingsPath()
}

func (o AppOptions) DisplayBackend() (int, error) {
	switch strings.ToLower(strings.TrimSpace(o.Backend)) {
	case "", "ebiten":
		return DISPLAY_BACKEND_EBITEN, nil
	case "headless":
		return DISPLAY_BACKEND_HEADLESS, nil
	}
	return 0, fmt.Errorf("unknown display backend %q (want ebiten or headless)", o.Backend)
}
