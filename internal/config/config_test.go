package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/scrollguard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	return dir
}

func TestManager_LoadDefaultsWithoutFile(t *testing.T) {
	m, err := config.NewManager(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, m.Load())

	assert.Equal(t, config.DefaultConfig(), m.Get())
	assert.Empty(t, m.GetConfigFile())
}

func TestManager_LoadFromFile(t *testing.T) {
	dir := writeConfig(t, `
[scroll_lock]
marker_attribute = "data-frozen"
container_selector = "#app"

[logging]
level = "DEBUG"
format = "json"
`)
	m, err := config.NewManager(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "data-frozen", cfg.ScrollLock.MarkerAttribute)
	assert.Equal(t, "#app", cfg.ScrollLock.ContainerSelector)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(dir, "config.toml"), m.GetConfigFile())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, `
[scroll_lock]
marker_attribute = "data-frozen"
`)
	t.Setenv("SCROLLGUARD_SCROLL_LOCK_MARKER_ATTRIBUTE", "data-from-env")

	m, err := config.NewManager(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, "data-from-env", m.Get().ScrollLock.MarkerAttribute)
}

func TestManager_InvalidValues(t *testing.T) {
	dir := writeConfig(t, `
[scroll_lock]
marker_attribute = "data scroll"

[logging]
format = "xml"
`)
	m, err := config.NewManager(dir)
	require.NoError(t, err)

	err = m.Load()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "scroll_lock.marker_attribute")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Equal(t, config.DefaultConfig(), m.Get(), "failed load keeps defaults")
}

func TestManager_ContainerSelector(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		valid    bool
	}{
		{"body", "body", true},
		{"html", "html", true},
		{"root", ":root", true},
		{"id", "#app", true},
		{"tag name", "main", false},
		{"class", ".app", false},
		{"bare hash", "#", false},
		{"descendant", "#app .content", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, "[scroll_lock]\ncontainer_selector = \""+tt.selector+"\"\n")
			m, err := config.NewManager(dir)
			require.NoError(t, err)

			err = m.Load()
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.selector, m.Get().ScrollLock.ContainerSelector)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), "scroll_lock.container_selector must be one of")
		})
	}
}

func TestManager_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "[scroll_lock\nmarker_attribute = ")
	m, err := config.NewManager(dir)
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSchema(t *testing.T) {
	data, err := config.Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Scrollguard Configuration", doc["title"])
	assert.Contains(t, string(data), "marker_attribute")
	assert.Contains(t, string(data), "container_selector")
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := config.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/scrollguard", dir)
}
