package controller

import (
	"vpndash/internal/tui/model"
	"vpndash/pkg/logging"
)

const (
	controllerSubsystem = "Controller"
	pollerSubsystem     = "Poller"
	actionSubsystem     = "Action"
)

// LogInfo logs an informational message through pkg/logging.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message when the TUI runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogWarn logs a warning message through pkg/logging.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error message through pkg/logging.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
