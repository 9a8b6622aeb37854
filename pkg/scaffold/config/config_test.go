package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ManifestPath)
	assert.Equal(t, DefaultProfile, cfg.Profile)
	assert.Equal(t, DefaultTargetPath, cfg.TargetPath)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, DefaultRetentionDays, cfg.Journal.RetentionDays)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "info", cfg.Logging.Components["scaffolder"])
}

func TestLoad_FromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "scaffold")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := `
profile: test
output: json
journal:
  enabled: false
  retention_days: 7
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Profile)
	assert.Equal(t, "json", cfg.Output)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, 7, cfg.Journal.RetentionDays)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset keys keep their defaults
	assert.Equal(t, DefaultTargetPath, cfg.TargetPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCAFFOLD_PROFILE", "project")
	t.Setenv("SCAFFOLD_OUTPUT", "plain")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "project", cfg.Profile)
	assert.Equal(t, "plain", cfg.Output)
}

func TestLoad_TildeExpansion(t *testing.T) {
	home := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "scaffold")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	content := `
manifest_path: ~/layouts/firmware.yaml
journal:
  path: ~/journal
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "layouts", "firmware.yaml"), cfg.ManifestPath)
	assert.Equal(t, filepath.Join(home, "journal"), cfg.Journal.Path)
}

func TestLoad_InvalidFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "scaffold")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("profile: [unclosed"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)

		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(configHome, "scaffold"), dir)
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("XDG_CONFIG_HOME", "")

		dir, err := ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "scaffold"), dir)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	require.NoError(t, EnsureConfigDir())

	info, err := os.Stat(filepath.Join(configHome, "scaffold"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteDefault(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	require.NoError(t, WriteDefault())

	path := filepath.Join(configHome, "scaffold", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: "+DefaultProfile)

	// A second call leaves the existing file untouched
	require.NoError(t, os.WriteFile(path, []byte("profile: test\n"), 0o644))
	require.NoError(t, WriteDefault())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "profile: test\n", string(data))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{"~/projects/fw", filepath.Join(home, "projects", "fw")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		got, err := ExpandPath(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
