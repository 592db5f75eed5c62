package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/vpndash"
	projectConfigDir = ".vpndash"
	configFileName   = "config.yaml"
)

// LoadConfig loads the vpndash configuration by layering default, user, and project settings.
func LoadConfig() (DashboardConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return DashboardConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return DashboardConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	if err := Validate(config); err != nil {
		return DashboardConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a DashboardConfig from a YAML file.
func loadConfigFromFile(filePath string) (DashboardConfig, error) {
	var config DashboardConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return DashboardConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DashboardConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in overlay keep the base value.
func mergeConfigs(base, overlay DashboardConfig) DashboardConfig {
	merged := base

	if overlay.Endpoint != "" {
		merged.Endpoint = overlay.Endpoint
	}
	if overlay.RequestTimeout > 0 {
		merged.RequestTimeout = overlay.RequestTimeout
	}
	if overlay.UserAgent != "" {
		merged.UserAgent = overlay.UserAgent
	}
	if overlay.StatusInterval > 0 {
		merged.StatusInterval = overlay.StatusInterval
	}
	if overlay.TrafficInterval > 0 {
		merged.TrafficInterval = overlay.TrafficInterval
	}
	if overlay.UptimeInterval > 0 {
		merged.UptimeInterval = overlay.UptimeInterval
	}
	if overlay.NotificationTTL > 0 {
		merged.NotificationTTL = overlay.NotificationTTL
	}
	if overlay.DefaultServer != "" {
		merged.DefaultServer = overlay.DefaultServer
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.ConfirmDisconnect != nil {
		v := *overlay.ConfirmDisconnect
		merged.ConfirmDisconnect = &v
	}
	if overlay.Demo.Listen != "" {
		merged.Demo.Listen = overlay.Demo.Listen
	}

	return merged
}

// Validate checks that the merged configuration is usable.
func Validate(c DashboardConfig) error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.DefaultServer == "" {
		return fmt.Errorf("defaultServer must not be empty")
	}
	switch c.Theme {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q: must be auto, dark or light", c.Theme)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
