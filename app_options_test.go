// app_options_test.go - Tests for environment and flag options

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppOptions_Defaults(t *testing.T) {
	for _, k := range []string{"FIXPOINT_CONFIG", "FIXPOINT_LOG_LEVEL", "FIXPOINT_SHOW", "FIXPOINT_BACKEND"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	opts, err := LoadAppOptions()
	require.NoError(t, err)
	assert.Equal(t, "", opts.ConfigPath)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.ShowOverlays)

	backend, err := opts.DisplayBackend()
	require.NoError(t, err)
	assert.Equal(t, DISPLAY_BACKEND_EBITEN, backend)
}

func TestLoadAppOptions_FromEnvironment(t *testing.T) {
	t.Setenv("FIXPOINT_CONFIG", "/tmp/fp.json")
	t.Setenv("FIXPOINT_LOG_LEVEL", "debug")
	t.Setenv("FIXPOINT_SHOW", "true")
	t.Setenv("FIXPOINT_BACKEND", "Headless")

	opts, err := LoadAppOptions()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fp.json", opts.ConfigPath)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.True(t, opts.ShowOverlays)

	backend, err := opts.DisplayBackend()
	require.NoError(t, err)
	assert.Equal(t, DISPLAY_BACKEND_HEADLESS, backend)

	path, err := opts.SettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fp.json", path)
}

func TestLoadAppOptions_BadBool(t *testing.T) {
	t.Setenv("FIXPOINT_SHOW", "sometimes")
	_, err := LoadAppOptions()
	assert.Error(t, err)
}

func TestAppOptions_UnknownBackend(t *testing.T) {
	_, err := AppOptions{Backend: "vulkan"}.DisplayBackend()
	assert.ErrorContains(t, err, "vulkan")
}

func TestAppOptions_DefaultSettingsPath(t *testing.T) {
	path, err := AppOptions{}.SettingsPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	assert.Equal(t, SETTINGS_FILE_NAME, filepath.Base(path))
	assert.Equal(t, SETTINGS_DIR_NAME, filepath.Base(filepath.Dir(path)))
}

func TestRootCommand_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("FIXPOINT_LOG_LEVEL", "warn")
	t.Setenv("FIXPOINT_SHOW", "false")

	var got AppOptions
	cmd := newRootCommand(func(opts AppOptions) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{"--show", "--config", "x.json"})
	require.NoError(t, cmd.Execute())

	assert.True(t, got.ShowOverlays)
	assert.Equal(t, "x.json", got.ConfigPath)
	assert.Equal(t, "warn", got.LogLevel)
}

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	assert.Error(t, setupLogging("chatty"))
	assert.NoError(t, setupLogging("info"))
}
