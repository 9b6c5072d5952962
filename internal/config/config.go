package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Focus    FocusConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// FocusConfig holds scope behaviour settings applied to every dialog.
type FocusConfig struct {
	Contain      bool `mapstructure:"contain"`
	RestoreFocus bool `mapstructure:"restore_focus"`
	AutoFocus    bool `mapstructure:"auto_focus"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string
	Muted  string
}

// Load reads configuration from file and env. Env var overrides use prefix FOCUSDEMO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "focusdemo", "contacts.db"))
	v.SetDefault("focus.contain", true)
	v.SetDefault("focus.restore_focus", true)
	v.SetDefault("focus.auto_focus", true)
	v.SetDefault("ui.accent", "#a6e3a1")
	v.SetDefault("ui.muted", "#6c7086")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FOCUSDEMO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "focusdemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOCUSDEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("FOCUSDEMO_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "focusdemo", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("focus.contain", cfg.Focus.Contain)
	v.Set("focus.restore_focus", cfg.Focus.RestoreFocus)
	v.Set("focus.auto_focus", cfg.Focus.AutoFocus)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.muted", cfg.UI.Muted)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
