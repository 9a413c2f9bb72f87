package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return ansi.Strip(stdout.String()), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "swatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGalleryRequiresTerminal(t *testing.T) {
	for _, args := range [][]string{{"gallery"}, {}} {
		_, _, err := executeCommand(t, args...)
		require.Error(t, err)
		require.ErrorIs(t, err, errNotTerminal)
		require.Contains(t, err.Error(), "swatch render")
	}
}

func TestRenderCommandAllComponents(t *testing.T) {
	stdout, _, err := executeCommand(t, "render", "--scheme", "light", "--width", "40")
	require.NoError(t, err)

	require.Contains(t, stdout, "Swatch")
	require.Contains(t, stdout, "Cut")
	require.Contains(t, stdout, "Wi-Fi")
	require.Contains(t, stdout, "Email")
	require.Contains(t, stdout, "Home")
}

func TestRenderCommandWithConfig(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
gallery:
  direction: horizontal
  buttons: [One, Two]
`)

	stdout, stderr, err := executeCommand(t, "render", "--config", path, "--scheme", "dark", "group")
	require.NoError(t, err)
	require.Contains(t, stdout, "One")
	require.Contains(t, stdout, "Two")
	require.NotContains(t, stdout, "Cut")
	require.Contains(t, stderr, "configuration loaded")
}

func TestRenderCommandErrors(t *testing.T) {
	t.Run("unknown component", func(t *testing.T) {
		_, _, err := executeCommand(t, "render", "--scheme", "light", "slider")
		var cmdErr *commandError
		require.ErrorAs(t, err, &cmdErr)
		require.Contains(t, err.Error(), `unknown component "slider"`)
	})

	t.Run("missing config", func(t *testing.T) {
		_, _, err := executeCommand(t, "render", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorContains(t, err, "config file does not exist")
	})

	t.Run("invalid config", func(t *testing.T) {
		path := writeConfig(t, `version: "one"
`)
		_, _, err := executeCommand(t, "render", "--config", path)
		var validationErr *swatcherrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "version", validationErr.Field)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, _, err := executeCommand(t, "render", "--scheme", "sepia")
		require.ErrorContains(t, err, "resolving theme")
	})
}

func TestThemeCommandText(t *testing.T) {
	stdout, _, err := executeCommand(t, "theme", "--scheme", "dark")
	require.NoError(t, err)

	require.Contains(t, stdout, "scheme: dark")
	require.Contains(t, stdout, "TOKEN")
	require.Contains(t, stdout, "primary")
	require.Contains(t, stdout, "#2148d9")
	require.Contains(t, stdout, "basic[11]")
}

func TestThemeCommandYAML(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
theme:
  primary: "#f0a"
`)

	stdout, _, err := executeCommand(t, "theme", "--config", path, "--scheme", "light", "--format", "yaml")
	require.NoError(t, err)

	var doc themeDocument
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	require.Equal(t, "light", doc.Scheme)
	require.Len(t, doc.Palette, 12)
	require.Equal(t, themeToken{Name: "primary", Value: "#ff00aa"}, doc.Palette[2])
	require.Len(t, doc.Basic, 11)
	require.Equal(t, "#FFFFFF", doc.Basic[0])
}

func TestThemeCommandUnknownFormat(t *testing.T) {
	_, _, err := executeCommand(t, "theme", "--scheme", "light", "--format", "toml")
	require.ErrorContains(t, err, `unknown format "toml"`)
}

func TestLogFileReceivesDebugEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "swatch.log")

	_, stderr, err := executeCommand(t, "--log-file", logPath, "--verbose", "render", "--scheme", "light", "text")
	require.NoError(t, err)
	require.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "resolved light theme")
	require.Contains(t, string(data), "rendering components")
}

func TestValidateConfigPath(t *testing.T) {
	dir := t.TempDir()

	require.ErrorContains(t, validateConfigPath("  "), "empty")
	require.ErrorContains(t, validateConfigPath(dir), "is a directory")

	err := validateConfigPath(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, validateConfigPath(writeConfig(t, "version: \"1.0\"\n")))
}

func TestThemeCommandCompare(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
theme:
  primary: "#f0a"
`)

	stdout, _, err := executeCommand(t, "theme", "--config", path, "--scheme", "light", "--compare", "light")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- builtin light")
	require.Contains(t, stdout, "+++ resolved light")
	require.Contains(t, stdout, "-primary #2148d9")
	require.Contains(t, stdout, "+primary #ff00aa")
	require.Contains(t, stdout, "1 added, 1 removed")

	stdout, _, err = executeCommand(t, "theme", "--scheme", "dark", "--compare", "dark")
	require.NoError(t, err)
	require.Contains(t, stdout, "matches the built-in dark scheme")

	_, _, err = executeCommand(t, "theme", "--scheme", "dark", "--compare", "sepia")
	require.ErrorContains(t, err, "choosing the built-in scheme")
}
