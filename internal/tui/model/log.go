package model

import (
	"strings"

	"vpndash/internal/tui/design"
	"vpndash/pkg/logging"
)

// AddRawLineToActivityLog adds a pre-formatted log line to the activity log,
// keeping at most MaxActivityLogLines and marking the log dirty.
func AddRawLineToActivityLog(m *Model, level logging.LogLevel, line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	m.ActivityLogLevels = append(m.ActivityLogLevels, level)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
		m.ActivityLogLevels = m.ActivityLogLevels[len(m.ActivityLogLevels)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// StyledActivityLog renders the activity log with each line coloured by its level.
func StyledActivityLog(m *Model) string {
	lines := make([]string, len(m.ActivityLog))
	for i, line := range m.ActivityLog {
		level := logging.LevelInfo
		if i < len(m.ActivityLogLevels) {
			level = m.ActivityLogLevels[i]
		}
		lines[i] = design.LogLevelStyle(level).Render(line)
	}
	return strings.Join(lines, "\n")
}
