package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultImportURL, cfg.Import.DefaultURL)
	assert.Equal(t, 30*time.Second, cfg.Import.Timeout)
	assert.Equal(t, "my-blueprint.json", cfg.Save.DefaultName)
	assert.Equal(t, 10, cfg.Recent.Limit)
	assert.True(t, cfg.Editor.LineNumbers)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
import:
  default_url: https://example.com/bp.json
  timeout: 5s
recent:
  limit: 3
editor:
  tab_width: 2
  highlight: false
log:
  verbose: true
`)
	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "https://example.com/bp.json", cfg.Import.DefaultURL)
	assert.Equal(t, 5*time.Second, cfg.Import.Timeout)
	assert.Equal(t, 3, cfg.Recent.Limit)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.False(t, cfg.Editor.Highlight)
	assert.True(t, cfg.Log.Verbose)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultSaveName, cfg.Save.DefaultName)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("BP_TEST_HOST", "blueprints.example.org")
	path := writeFile(t, "config.yaml", "import:\n  default_url: https://${BP_TEST_HOST}/x.json\n")

	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))
	assert.Equal(t, "https://blueprints.example.org/x.json", cfg.Import.DefaultURL)
}

func TestLoad_RejectsInvalidURL(t *testing.T) {
	path := writeFile(t, "config.yaml", "import:\n  default_url: \"not a url\"\n")

	cfg := NewDefaultConfig()
	err := Load(path, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid URL")
}

func TestLoad_RejectsNonPositiveLimit(t *testing.T) {
	path := writeFile(t, "config.yaml", "recent:\n  limit: -1\n")

	cfg := NewDefaultConfig()
	require.Error(t, Load(path, cfg))
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := NewDefaultConfig()
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptional_MissingFileKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), cfg))
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", "BP_TEST_FROM_DOTENV=hello\n")
	t.Cleanup(func() { os.Unsetenv("BP_TEST_FROM_DOTENV") })

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "hello", os.Getenv("BP_TEST_FROM_DOTENV"))
}
