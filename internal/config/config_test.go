package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
format: json
schema:
  - "l#."
  - "A"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Color, "unset keys keep their default")
	assert.Equal(t, []string{"l#.", "A"}, cfg.Schema)
}

func TestLoad_SchemaAsString(t *testing.T) {
	path := writeConfig(t, `schema: "i+,c'"`+"\ncolor: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"i+", "c'"}, cfg.Schema)
	assert.False(t, cfg.Color)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "format: [unclosed"},
		{"unknown key", "colour: true"},
		{"bad format", "format: xml"},
		{"bad level", "log_level: chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
