package controller

import (
	"strings"

	"vpndash/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes key presses according to the current mode. Quit works
// from every mode.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		return handleQuit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeConfirmDisconnect:
		return handleConfirmDisconnectKey(m, msg)
	case model.ModeHelpOverlay:
		return handleHelpOverlayKey(m, msg)
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, msg)
	case model.ModeConfigOverlay:
		return handleConfigOverlayKey(m, msg)
	default:
		return handleDashboardKey(m, msg)
	}
}

func handleDashboardKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.Servers)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Select):
		selectServerAtCursor(m)
	case key.Matches(msg, m.Keys.Connect):
		return handleConnectKey(m)
	case key.Matches(msg, m.Keys.Disconnect):
		return handleDisconnectKey(m)
	case key.Matches(msg, m.Keys.ToggleConfig):
		return handleToggleConfig(m)
	case key.Matches(msg, m.Keys.Refresh):
		LogInfo(pollerSubsystem, "Manual status refresh")
		return m, model.FetchStatusCmd(m.API, m.Config.RequestTimeout)
	case key.Matches(msg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		refreshLogViewport(m)
	case key.Matches(msg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
	case key.Matches(msg, m.Keys.Dismiss):
		m.DismissNewestNotification()
	}
	return m, nil
}

// selectServerAtCursor makes the highlighted server the single selection.
func selectServerAtCursor(m *model.Model) {
	if m.Cursor < 0 || m.Cursor >= len(m.Servers) {
		return
	}
	id := m.Servers[m.Cursor].ID
	if id == m.SelectedServer {
		return
	}
	m.SelectedServer = id
	LogInfo(controllerSubsystem, "Selected server %s", id)
}

func handleHelpOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Help) || msg.String() == "esc" {
		m.CurrentAppMode = model.ModeMainDashboard
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleLog) || msg.String() == "esc":
		m.CurrentAppMode = model.ModeMainDashboard
		return m, nil
	case key.Matches(msg, m.Keys.Copy):
		return m, model.CopyToClipboardCmd("activity log", strings.Join(m.ActivityLog, "\n"))
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

func handleConfigOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleConfig) || msg.String() == "esc":
		hideConfig(m)
		return m, nil
	case key.Matches(msg, m.Keys.RefreshConfig):
		return handleRefreshConfig(m)
	case key.Matches(msg, m.Keys.Copy):
		return m, model.CopyToClipboardCmd("config", m.ConfigView.Doc.Config)
	}
	var cmd tea.Cmd
	m.ConfigViewport, cmd = m.ConfigViewport.Update(msg)
	return m, cmd
}

func refreshLogViewport(m *model.Model) {
	m.LogViewport.SetContent(model.StyledActivityLog(m))
	m.LogViewport.GotoBottom()
	m.ActivityLogDirty = false
}
