package config

import "time"

const (
	DefaultEndpoint        = "http://127.0.0.1:5000"
	DefaultServerID        = "ssh-tunnel"
	DefaultStatusInterval  = 10 * time.Second
	DefaultTrafficInterval = 2 * time.Second
	DefaultUptimeInterval  = time.Second
	DefaultNotificationTTL = 5 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDemoListen      = "127.0.0.1:5000"
	DefaultTheme           = "auto"
)

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() DashboardConfig {
	confirm := true
	return DashboardConfig{
		Endpoint:          DefaultEndpoint,
		RequestTimeout:    DefaultRequestTimeout,
		UserAgent:         "vpndash",
		StatusInterval:    DefaultStatusInterval,
		TrafficInterval:   DefaultTrafficInterval,
		UptimeInterval:    DefaultUptimeInterval,
		NotificationTTL:   DefaultNotificationTTL,
		DefaultServer:     DefaultServerID,
		Theme:             DefaultTheme,
		ConfirmDisconnect: &confirm,
		Demo: DemoServerConfig{
			Listen: DefaultDemoListen,
		},
	}
}
