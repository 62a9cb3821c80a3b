// Package config loads unitcalc settings from config files and the
// environment using Viper.
//
// Precedence (lowest to highest): defaults < user config < project
// config < UNITCALC_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/X-Neon/simple-units/errors"
)

// Config holds the tool-wide settings.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig controls how results and logs are rendered.
type OutputConfig struct {
	// JSON switches logs to machine-readable structured output.
	JSON bool `mapstructure:"json"`
	// Verbosity is the default -v count when no flag is given.
	Verbosity int `mapstructure:"verbosity"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the unitcalc configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: UNITCALC_OUTPUT_JSON etc.
	v.SetEnvPrefix("UNITCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.json", false)
	v.SetDefault("output.verbosity", 0)
}

// mergeConfigFiles merges configuration files in precedence order:
// user config, then a unitcalc.toml found in the working directory or
// any parent of it.
func mergeConfigFiles(v *viper.Viper) {
	var configPaths []string

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(homeDir, ".unitcalc", "config.toml"))
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range tempViper.AllSettings() {
			v.Set(key, value)
		}
	}
}

// findProjectConfig searches for unitcalc.toml by walking up the
// directory tree. Returns the first match, or "" if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "unitcalc.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
