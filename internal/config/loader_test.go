package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes raw YAML so durations stay in their string form.
func writeConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func withConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	withConfigPaths(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"))

	loaded, err := LoadConfig()
	require.NoError(t, err)

	def := GetDefaultConfig()
	assert.Equal(t, def.Endpoint, loaded.Endpoint)
	assert.Equal(t, 10*time.Second, loaded.StatusInterval)
	assert.Equal(t, 2*time.Second, loaded.TrafficInterval)
	assert.Equal(t, time.Second, loaded.UptimeInterval)
	assert.Equal(t, 5*time.Second, loaded.NotificationTTL)
	assert.Equal(t, "ssh-tunnel", loaded.DefaultServer)
	assert.True(t, loaded.ShouldConfirmDisconnect())
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	userDir := filepath.Join(tempDir, "home", userConfigDir)
	projectDir := filepath.Join(tempDir, "work", projectConfigDir)

	userPath := writeConfigFile(t, userDir, `
endpoint: http://vpn.local:8080
defaultServer: eu-west
statusInterval: 30s
`)
	projectPath := writeConfigFile(t, projectDir, `
defaultServer: us-east
confirmDisconnect: false
notificationTTL: 1s
`)
	withConfigPaths(t, userPath, projectPath)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://vpn.local:8080", loaded.Endpoint)
	assert.Equal(t, "us-east", loaded.DefaultServer, "project layer wins")
	assert.Equal(t, 30*time.Second, loaded.StatusInterval)
	assert.Equal(t, 2*time.Second, loaded.TrafficInterval, "unset keys keep defaults")
	assert.Equal(t, time.Second, loaded.NotificationTTL)
	assert.False(t, loaded.ShouldConfirmDisconnect())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	userPath := writeConfigFile(t, filepath.Join(tempDir, "user"), "endpoint: [unterminated")
	withConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		server   string
		wantErr  bool
	}{
		{"default is valid", DefaultEndpoint, DefaultServerID, false},
		{"https is valid", "https://vpn.example.com", DefaultServerID, false},
		{"missing scheme", "127.0.0.1:5000", DefaultServerID, true},
		{"unsupported scheme", "ftp://vpn", DefaultServerID, true},
		{"empty server", DefaultEndpoint, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Endpoint = tt.endpoint
			cfg.DefaultServer = tt.server
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Theme(t *testing.T) {
	cfg := GetDefaultConfig()
	for _, theme := range []string{"", "auto", "dark", "light"} {
		cfg.Theme = theme
		assert.NoError(t, Validate(cfg), theme)
	}
	cfg.Theme = "neon"
	assert.Error(t, Validate(cfg))
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "vpndash"), dir)
}
