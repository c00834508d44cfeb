package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFile verifies defaults are used without a file.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoad_OverridesDefaults verifies partial files keep the other defaults.
func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.yaml")
	data := []byte("current_year: 2024\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, cfg.CurrentYear)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "development", cfg.Log.Mode)
	assert.Equal(t, 1800, cfg.MinBirthYear)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "current_year: [1, 2"},
		{"negative year", "current_year: -5"},
		{"unknown format", "output:\n  format: xml\n"},
		{"unknown level", "log:\n  level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
