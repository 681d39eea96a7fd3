package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("", false)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing optional file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), false)
		require.NoError(t, err)
		assert.Equal(t, ".claude/project-context.json", cfg.ContextFile)
	})

	t.Run("missing required file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
		require.Error(t, err)
	})

	t.Run("file overrides selected fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		content := "specs_dir: docs/specs\nroute_extensions: [\".go\"]\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path, true)
		require.NoError(t, err)
		assert.Equal(t, "docs/specs", cfg.SpecsDir)
		assert.Equal(t, []string{".go"}, cfg.RouteExtensions)
		assert.Equal(t, "debug", cfg.LogLevel)
		// untouched fields keep their defaults
		assert.Equal(t, []string{"node_modules", ".git"}, cfg.ExcludeDirs)
		assert.Len(t, cfg.SchemaPatterns, 5)
		assert.Equal(t, "openspec/templates", cfg.TemplatesDir)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("specs_dir: [unterminated"), 0644))

		_, err := Load(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SPECSCOUT_TEMPLATES_DIR": "/tmp/templates",
		"SPECSCOUT_LOG_LEVEL":     "DEBUG",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "/tmp/templates", cfg.TemplatesDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "openspec/specs", cfg.SpecsDir)
}
