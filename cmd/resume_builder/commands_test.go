package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStylesCommand(t *testing.T) {
	stdout, _, err := execute(t, "styles")

	require.NoError(t, err)
	assert.Contains(t, stdout, "STYLES")
	assert.Contains(t, stdout, "* default")
	assert.Contains(t, stdout, "clean-blue (style author -> https://github.com/samodum)")
}

func TestValidateCommand_Valid(t *testing.T) {
	dir := writeDataDir(t)

	stdout, _, err := execute(t, "validate", "--data-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "WORK PREFERENCES")
	assert.Contains(t, stdout, "Backend engineer")
	assert.Contains(t, stdout, "is valid")
	assert.DirExists(t, filepath.Join(dir, files.OutputDir))
}

func TestValidateCommand_MissingFolder(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	stdout, stderr, err := execute(t, "validate", "--data-dir", missing)

	require.NoError(t, err)
	assert.NotContains(t, stdout, "is valid")
	assert.Contains(t, stderr, "File not found")
}

func TestValidateCommand_BadPreferences(t *testing.T) {
	dir := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, files.WorkPreferencesFile), []byte("remote: [unclosed\n"), 0644))

	_, stderr, err := execute(t, "validate", "--data-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, stderr, "Configuration error")
}

func TestParseJobCommand_RequiresURL(t *testing.T) {
	_, _, err := execute(t, "parse-job")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestRootCommand_RejectsUnknownStyle(t *testing.T) {
	t.Cleanup(func() { rootStyle = "" })

	_, _, err := execute(t, "--style", "neon", "--data-dir", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--style")
}
