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
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// LoggingConfig holds logger settings. An empty File discards log output
// while the TUI owns the terminal.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowDescriptions bool `mapstructure:"show_descriptions"`
	Columns          int  `mapstructure:"columns"`
	DemoItems        bool `mapstructure:"demo_items"`
}

// Load reads configuration from file and env. Env var overrides use prefix PACKRAT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", filepath.Join(os.Getenv("HOME"), ".local", "share", "packrat", "packrat.log"))
	v.SetDefault("ui.show_descriptions", true)
	v.SetDefault("ui.columns", 3)
	v.SetDefault("ui.demo_items", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PACKRAT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "packrat"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PACKRAT")
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

// Save writes the provided config to disk, creating the config directory if
// needed. The board calls this when a presentation toggle changes so the
// choice survives restarts.
func Save(cfg Config) error {
	path := os.Getenv("PACKRAT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "packrat", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("ui.show_descriptions", cfg.UI.ShowDescriptions)
	v.Set("ui.columns", cfg.UI.Columns)
	v.Set("ui.demo_items", cfg.UI.DemoItems)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
