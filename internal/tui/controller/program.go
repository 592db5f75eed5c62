package controller

import (
	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/internal/tui/model"
	"vpndash/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the dashboard Bubble Tea program.
func NewProgram(
	cfg config.DashboardConfig,
	client api.VPNAPI,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *tea.Program {
	m := model.InitialModel(cfg, client, debugMode, logChannel)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
