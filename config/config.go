// Package config provides configuration management for the Messages desktop shell.
// It handles loading, saving, and watching application settings and the
// persisted window state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yllada/messages-desktop/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
// The navigation target, window title and menu are fixed and deliberately
// absent here.
type Config struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// HideOnClose hides the window instead of destroying it when closed.
	HideOnClose bool `yaml:"hide_on_close"`
	// ShowTrayIcon shows a tray indicator that can reopen the window.
	ShowTrayIcon bool `yaml:"show_tray_icon"`
	// ShowNotifications forwards web notifications to the desktop.
	ShowNotifications bool `yaml:"show_notifications"`
	// RememberWindowSize restores the last window size instead of the default.
	RememberWindowSize bool `yaml:"remember_window_size"`
	// ConnectivityCheck periodically probes the messaging service.
	ConnectivityCheck bool `yaml:"connectivity_check"`
	// ReloadOnReconnect reloads the page when connectivity comes back.
	ReloadOnReconnect bool `yaml:"reload_on_reconnect"`

	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:              common.ThemeAuto,
		HideOnClose:        true,
		ShowTrayIcon:       true,
		ShowNotifications:  true,
		RememberWindowSize: false,
		ConnectivityCheck:  false,
		ReloadOnReconnect:  true,
	}
}

// DefaultConfigAt returns the defaults bound to path without reading or
// writing it. It stands in for a file that failed to parse.
func DefaultConfigAt(path string) *Config {
	cfg := DefaultConfig()
	cfg.path = path
	return cfg
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path, writing defaults there when
// the file does not exist yet.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.path = configPath
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: error parsing %s: %v", common.ErrConfigLoad, configPath, err)
	}

	config.validate()
	config.path = configPath

	return config, nil
}

// validate repairs out-of-range values in place.
func (c *Config) validate() {
	validThemes := []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	if !common.StringInSlice(c.Theme, validThemes) {
		c.Theme = common.ThemeAuto
	}
}

// Save saves the configuration to the file it was loaded from.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrConfigSave, err)
	}

	c.path = configPath
	return nil
}

// FilePath returns the file the configuration is bound to.
func (c *Config) FilePath() string {
	return c.path
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}
