package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/dublaj/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvThemeFile   = "DUBLAJ_THEME_FILE"
	EnvLogLevel    = "DUBLAJ_LOG_LEVEL"
	EnvJournalPath = "DUBLAJ_JOURNAL_PATH"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Form        FormConfig         `yaml:"form"`
	Journal     JournalConfig      `yaml:"journal"`
	LogLevel    string             `yaml:"log_level"`
}

// FormConfig controls how the form opens and looks
type FormConfig struct {
	Brand         string `yaml:"brand"`
	InitialMode   string `yaml:"initial_mode"` // "login" or "register"
	MaskPasswords *bool  `yaml:"mask_passwords"`
}

// JournalConfig controls the local submission journal
type JournalConfig struct {
	Enabled    *bool  `yaml:"enabled"`
	Path       string `yaml:"path"`        // empty means ~/.dublaj/journal.db
	MaxEntries int    `yaml:"max_entries"` // 0 keeps everything
}

// Masked reports whether password inputs hide their characters
func (f FormConfig) Masked() bool {
	return f.MaskPasswords == nil || *f.MaskPasswords
}

// IsEnabled reports whether submissions are journaled
func (j JournalConfig) IsEnabled() bool {
	return j.Enabled == nil || *j.Enabled
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadDotEnv loads a .env file from the working directory when present.
// Existing environment variables win.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
}

// loadThemeFile loads and merges theme from DUBLAJ_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("theme file not readable", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies the remaining environment overrides
func applyEnv(config *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.LogLevel = strings.ToLower(level)
	}
	if path := os.Getenv(EnvJournalPath); path != "" {
		config.Journal.Path = path
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	loadDotEnv()

	configPath, err := getConfigPath()
	if err != nil {
		return finish(&Config{}), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. A missing file yields defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return finish(&config), nil
}

// finish merges the theme file and env overrides, then fills defaults
func finish(config *Config) *Config {
	loadThemeFile(config)
	applyEnv(config)
	config.applyDefaults()
	return config
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dublaj", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dublaj", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()

	if c.Form.Brand == "" {
		c.Form.Brand = "AI Dublaj"
	}
	if c.Form.InitialMode == "" {
		c.Form.InitialMode = "login"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Journal.MaxEntries < 0 {
		c.Journal.MaxEntries = 0
	}
}
