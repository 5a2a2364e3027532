// Package config loads modalpage settings using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for modalpage.
type Config struct {
	Animate         bool   `mapstructure:"animate" yaml:"animate"`
	Mouse           bool   `mapstructure:"mouse" yaml:"mouse"`
	CloseOnBackdrop bool   `mapstructure:"close_on_backdrop" yaml:"close_on_backdrop"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string `mapstructure:"log_file" yaml:"log_file"`
}

// flagKeys maps config keys to the CLI flag names bound to them.
var flagKeys = map[string]string{
	"animate":           "animate",
	"mouse":             "mouse",
	"close_on_backdrop": "close-on-backdrop",
	"log_level":         "log-level",
	"log_file":          "log-file",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animate:         true,
		Mouse:           true,
		CloseOnBackdrop: true,
		LogLevel:        "info",
		LogFile:         "",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("animate", def.Animate)
	v.SetDefault("mouse", def.Mouse)
	v.SetDefault("close_on_backdrop", def.CloseOnBackdrop)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix("MODALPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key := range flagKeys {
		if err := v.BindEnv(key, "MODALPAGE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding --%s flag: %w", name, err)
			}
		}
	}

	// Without a resolvable home directory there is no global file to read.
	if globalPath, err := GlobalPath(); err == nil && fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if projectPath := ProjectPath(); fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// GlobalPath returns the XDG global config path:
// $XDG_CONFIG_HOME/modalpage/modalpage.yml or ~/.config/modalpage/modalpage.yml.
func GlobalPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "modalpage", "modalpage.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating global config: %w", err)
	}
	return filepath.Join(home, ".config", "modalpage", "modalpage.yml"), nil
}

// ProjectPath returns the config path in the current working directory.
func ProjectPath() string {
	return "modalpage.yml"
}

// WriteGlobal writes cfg to the XDG global location, creating the directory.
// Returns the path written.
func WriteGlobal(cfg *Config) (string, error) {
	path, err := GlobalPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return path, write(path, cfg)
}

// WriteProject writes cfg to the project-local location and returns its path.
func WriteProject(cfg *Config) (string, error) {
	path := ProjectPath()
	return path, write(path, cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
