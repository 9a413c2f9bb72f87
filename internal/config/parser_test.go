package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
scheme: dark
theme:
  primary: "#f0a"
  text: "rgb(14, 14, 15)"
gallery:
  direction: horizontal
  menu:
    multiple: true
    items:
      - value: red
        label: Red
      - value: green
    selected: [green]
  tabs:
    - name: home
      title: Home
  picker:
    mode: date
    flow: modal
    value: "2024-03-01T09:30:00Z"
`

	invalidYAML := `version: [1, 0]
gallery:
  menu: nope
`

	badVersion := `version: "beta"
`

	unknownSelection := `version: "1.0"
gallery:
  menu:
    items:
      - value: a
    selected: [b]
`

	cases := []struct {
		name      string
		contents  string
		wantError error
		assert    func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dark", cfg.Scheme)
				require.Equal(t, "horizontal", cfg.Gallery.Direction)
				require.Len(t, cfg.Gallery.Menu.Items, 2)
				require.Equal(t, []string{"green"}, cfg.Gallery.Menu.Selected)
				require.Len(t, cfg.Gallery.Tabs, 1)
				require.Equal(t, "modal", cfg.Gallery.Picker.Flow)
				require.Equal(t, []string{"Cut", "Copy", "Paste"}, cfg.Gallery.Buttons, "unset sections take defaults")
			},
		},
		{
			name:      "invalid yaml returns parse error",
			contents:  invalidYAML,
			wantError: &swatcherrors.ParseError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *swatcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:      "schema version must follow major.minor",
			contents:  badVersion,
			wantError: &swatcherrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
		{
			name:      "selected values must reference items",
			contents:  unknownSelection,
			wantError: &swatcherrors.ValidationError{},
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *swatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "gallery.menu.selected[0]", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
			if tc.wantError != nil {
				require.Nil(t, cfg)
			}
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *swatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))
	require.Equal(t, CurrentVersion, cfg.Version)
	require.Equal(t, "auto", cfg.Scheme)
	require.Equal(t, "datetime", cfg.Gallery.Picker.Mode)
	require.Len(t, cfg.Gallery.Tabs, 4)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
