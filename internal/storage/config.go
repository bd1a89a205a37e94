package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the configuration directory name.
	AppName = "todo"

	// EnvPrefix is the prefix for environment variable overrides,
	// so file_path is read from TODO_FILE_PATH.
	EnvPrefix = "TODO"

	// configFileName is the name of the optional user config file.
	configFileName = "config.yaml"

	// Default configuration values
	DefaultColor   = cli.ColorAuto
	DefaultVerbose = false
)

// Config keys, shared by the YAML file, the environment and flags.
const (
	KeyFilePath = "file_path"
	KeyColor    = "color"
	KeyVerbose  = "verbose"
)

// flagNames maps config keys to the command-line flags that override them.
var flagNames = map[string]string{
	KeyFilePath: "file",
	KeyColor:    "color",
	KeyVerbose:  "verbose",
}

// Config holds user settings.
// Precedence: command-line flag, environment, config file, default.
type Config struct {
	// FilePath is the task file location.
	FilePath string `mapstructure:"file_path"`

	// Color is one of "auto", "always" or "never".
	Color string `mapstructure:"color"`

	// Verbose enables debug logging on stderr.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		FilePath: DefaultFilePath,
		Color:    DefaultColor,
		Verbose:  DefaultVerbose,
	}
}

// DefaultConfigPath returns the default config file location.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName, configFileName)
}

// LoadConfig resolves the configuration.
// If path is empty, the file at DefaultConfigPath is used when present;
// an explicit path must exist. flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := DefaultConfig()
	v.SetDefault(KeyFilePath, defaults.FilePath)
	v.SetDefault(KeyColor, defaults.Color)
	v.SetDefault(KeyVerbose, defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		} else if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values todo cannot act on.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("invalid %s: must not be empty", KeyFilePath)
	}
	switch c.Color {
	case cli.ColorAuto, cli.ColorAlways, cli.ColorNever:
	default:
		return fmt.Errorf("invalid %s: %q (expected %s, %s or %s)",
			KeyColor, c.Color, cli.ColorAuto, cli.ColorAlways, cli.ColorNever)
	}
	return nil
}
