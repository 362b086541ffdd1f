// Package config loads the editor configuration from YAML with environment
// variable expansion and validates it.
package config

import (
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const appName = "blueprints"

// Defaults.
const (
	DefaultImportURL   = "https://playground.wordpress.net/blueprint-schema.json"
	DefaultTimeout     = 30 * time.Second
	DefaultSaveName    = "my-blueprint.json"
	DefaultRecentLimit = 10
	DefaultTabWidth    = 4
)

// Config represents the application configuration.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Save   SaveConfig   `yaml:"save"`
	Recent RecentConfig `yaml:"recent"`
	Editor EditorConfig `yaml:"editor"`
	Log    LogConfig    `yaml:"log"`
}

// NewDefaultConfig returns a configuration populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Import: ImportConfig{DefaultURL: DefaultImportURL, Timeout: DefaultTimeout},
		Save:   SaveConfig{DefaultName: DefaultSaveName},
		Recent: RecentConfig{Path: defaultRecentPath(), Limit: DefaultRecentLimit},
		Editor: EditorConfig{LineNumbers: true, TabWidth: DefaultTabWidth, Highlight: true},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Import),
		validation.Field(&c.Save),
		validation.Field(&c.Recent),
		validation.Field(&c.Editor),
	)
}

// ImportConfig controls "Import from URL".
type ImportConfig struct {
	DefaultURL string        `yaml:"default_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

func (c ImportConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Second)),
	)
}

// SaveConfig controls "Save As".
type SaveConfig struct {
	DefaultName string `yaml:"default_name"`
}

func (c SaveConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultName, validation.Required),
	)
}

// RecentConfig locates the recent-documents registry.
type RecentConfig struct {
	Path  string `yaml:"path"`
	Limit int    `yaml:"limit"`
}

func (c RecentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Limit, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

type EditorConfig struct {
	LineNumbers bool `yaml:"line_numbers"`
	TabWidth    int  `yaml:"tab_width"`
	Highlight   bool `yaml:"highlight"`
}

func (c EditorConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TabWidth, validation.Required, validation.Min(1), validation.Max(16)),
	)
}

// LogConfig is not validated: an empty file disables logging.
type LogConfig struct {
	File    string `yaml:"file"`
	Verbose bool   `yaml:"verbose"`
}

// Dir returns the per-user configuration directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(os.TempDir(), appName)
}

// DefaultPath is the config file used when --config is not given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func defaultRecentPath() string {
	return filepath.Join(Dir(), "recent.yaml")
}
