// Package config provides configuration management for vpndash.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Built-in defaults (see GetDefaultConfig)
//  2. User configuration: ~/.config/vpndash/config.yaml
//  3. Project configuration: ./.vpndash/config.yaml
//  4. Command line flags, applied by the cmd package after loading
//
// # Example
//
//	endpoint: http://127.0.0.1:5000
//	defaultServer: eu-west
//	statusInterval: 10s
//	trafficInterval: 2s
//	notificationTTL: 5s
//	confirmDisconnect: true
//
// Durations accept Go duration strings. Zero or missing values keep the
// value from the previous layer.
package config
