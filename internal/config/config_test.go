// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paintquote/pkg/types"
)

// isolate keeps Load away from the developer's real configuration.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "paintquote.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultEngineConfig(), cfg.Engine)
	assert.Equal(t, "data/history", cfg.History.Dir)
	assert.Equal(t, LogConfig{Level: "warn", Format: "console"}, cfg.Log)
	assert.Equal(t, ".paintquote/vocab", cfg.VocabDir)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
engine:
  default_markup_percent: 12
  default_paint_cost_per_gallon: 42.5
  per_unit_area_constants:
    door: 18
  known_brands:
    - Rodda
history:
  dir: /var/lib/paintquote
log:
  level: debug
  format: json
`)

	for _, p := range []string{path, ""} {
		cfg, err := Load(p)
		require.NoError(t, err, "path %q", p)

		assert.Equal(t, 12.0, cfg.Engine.DefaultMarkupPercent)
		assert.Equal(t, 42.5, cfg.Engine.DefaultPaintCostPerGallon)
		assert.Equal(t, 18.0, cfg.Engine.PerUnitAreaConstants.Door)
		assert.Equal(t, 15.0, cfg.Engine.PerUnitAreaConstants.Window, "unset keys keep their defaults")
		assert.Equal(t, 2, cfg.Engine.DefaultCoats)
		assert.Equal(t, []string{"Rodda"}, cfg.Engine.KnownBrands)
		assert.Equal(t, "/var/lib/paintquote", cfg.History.Dir)
		assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "engine:\n  default_markup_percent: 12\n")
	t.Setenv("PAINTQUOTE_ENGINE_DEFAULT_MARKUP_PERCENT", "15")
	t.Setenv("PAINTQUOTE_HISTORY_DIR", "/tmp/quotes")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15.0, cfg.Engine.DefaultMarkupPercent)
	assert.Equal(t, "/tmp/quotes", cfg.History.Dir)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"invalid coats", "engine:\n  default_coats: 0\n", "default_coats"},
		{"invalid spread rate", "engine:\n  default_spread_rate: -1\n", "default_spread_rate"},
		{"malformed yaml", "engine: [unclosed\n", "config: read file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			_, err := Load(writeConfig(t, dir, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("explicit path must exist", func(t *testing.T) {
		dir := isolate(t)
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "", Format: "json"}))
	require.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
