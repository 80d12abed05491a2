// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the console settings. Tokens never live here; they belong to
// the session store.
type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	} `mapstructure:"api" yaml:"api"`
	Language string `mapstructure:"language" yaml:"language"`
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the settings applied when no file, environment variable
// or flag overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"api.base_url": "http://127.0.0.1:8000/api/",
		"language":     "en",
		"debug":        false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "NCHRD")
		default: // Linux, macOS, etc.
			configDir = "/etc/nchrd"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "nchrd")
	}

	return filepath.Join(configDir, "nchrd.yaml"), nil
}

// LoadConfig resolves the settings from (lowest to highest precedence)
// defaults, the nchrd.yaml file, NCHRD_* environment variables and the
// command's flags. A missing config file is fine; a malformed one is not.
func LoadConfig(cmd *cobra.Command, explicitFile *string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("nchrd")
	v.SetConfigType("yaml")

	// Explicit --config path has the highest precedence among files.
	if explicitFile != nil {
		v.SetConfigFile(*explicitFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("nchrd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

// WriteConfigFile persists the settings to the standard location.
func WriteConfigFile(c *Config, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
