package config

import (
	"time"
)

// DashboardConfig is the top-level configuration structure for vpndash.
type DashboardConfig struct {
	// Endpoint is the base URL of the VPN control API, e.g. "http://127.0.0.1:5000".
	Endpoint       string        `yaml:"endpoint,omitempty"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"`
	UserAgent      string        `yaml:"userAgent,omitempty"`

	StatusInterval  time.Duration `yaml:"statusInterval,omitempty"`
	TrafficInterval time.Duration `yaml:"trafficInterval,omitempty"`
	UptimeInterval  time.Duration `yaml:"uptimeInterval,omitempty"`
	NotificationTTL time.Duration `yaml:"notificationTTL,omitempty"`

	DefaultServer string `yaml:"defaultServer,omitempty"`

	// Theme is "auto", "dark" or "light".
	Theme string `yaml:"theme,omitempty"`

	// ConfirmDisconnect is a pointer so an overlay can explicitly turn it off.
	ConfirmDisconnect *bool `yaml:"confirmDisconnect,omitempty"`

	Demo DemoServerConfig `yaml:"demo,omitempty"`
}

// DemoServerConfig configures the bundled demo backend.
type DemoServerConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// ShouldConfirmDisconnect reports whether the disconnect action asks first.
func (c DashboardConfig) ShouldConfirmDisconnect() bool {
	if c.ConfirmDisconnect == nil {
		return true
	}
	return *c.ConfirmDisconnect
}
