package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage: icongen <outputIcoPath>")
}

func TestRun_WritesIcon(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "app.ico")
	var stdout, stderr bytes.Buffer

	code := run([]string{out}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Icon generated: "+out+"\n", stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0, 1, 0}, data[:6])
	assert.Equal(t, []byte("\x89PNG"), data[22:26])
}

func TestRun_FailureExitsOne(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(blocker, "app.ico")}, &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "error: "))
	assert.Empty(t, stdout.String())
}

func TestRun_IgnoresExtraArguments(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "app.ico")
	var stdout, stderr bytes.Buffer

	code := run([]string{out, "extra", "args"}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	assert.FileExists(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "extra"))
	assert.Equal(t, "Icon generated: "+out+"\n", stdout.String())
}

func TestRun_EmptyArgumentIsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitUsage, run([]string{""}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")
}
