// Package config handles the XDG configuration directory, the config file
// and the settings derived from it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigName is the config file name without extension.
	ConfigName = "config"

	// DataFile is the default task file name.
	DataFile = "tasks.json"

	// EnvFile names the environment variable that overrides the task file path.
	EnvFile = "TODO_FILE"
)

// Config holds paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// File is the task file. A .yaml or .yml extension selects YAML.
	File string `mapstructure:"file" validate:"required"`

	Log LogConfig `mapstructure:"log"`

	// Color enables coloured status tags on terminals.
	Color bool `mapstructure:"color"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"quiet"`

	// Debug sends debug logs to stderr.
	Debug bool `mapstructure:"debug"`
}

// LogConfig controls the structured log.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	// File receives JSON log lines. Empty disables the log file.
	File string `mapstructure:"file"`
}

// New creates a Config with defaults for the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:   dir,
		File:  filepath.Join(dir, DataFile),
		Log:   LogConfig{Level: "info"},
		Color: true,
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// NewViper returns a viper instance with defaults and the TODO_FILE
// binding in place. Callers bind their flags before calling Load.
func NewViper() *viper.Viper {
	defaults := New("")

	v := viper.New()
	v.SetDefault("file", defaults.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("quiet", false)
	v.SetDefault("debug", false)
	_ = v.BindEnv("file", EnvFile)
	return v
}

// Load reads the config file into v and returns the validated Config.
// An explicit configFile must exist; the default config.yaml in the
// config directory is optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Dir = DefaultConfigDir()
	if configFile != "" {
		cfg.Dir = filepath.Dir(configFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
