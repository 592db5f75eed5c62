package controller

import (
	"fmt"

	"vpndash/internal/api"
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// actionBusy reports the in-flight lock shared by connect and disconnect and
// raises an info notification when it is held.
func actionBusy(m *model.Model) (bool, tea.Cmd) {
	if m.ActionInFlight == model.ActionNone {
		return false, nil
	}
	LogDebug(m, actionSubsystem, "Ignoring request, %s already in flight", m.ActionInFlight)
	return true, m.AddNotification(model.NotificationInfo, fmt.Sprintf("Please wait, %s in progress", m.ActionInFlight))
}

func handleConnectKey(m *model.Model) (*model.Model, tea.Cmd) {
	if busy, cmd := actionBusy(m); busy {
		return m, cmd
	}
	if m.Connected() {
		LogDebug(m, actionSubsystem, "Connect ignored, already connected")
		return m, nil
	}
	if m.SelectedServer == "" {
		LogWarn(actionSubsystem, "Connect requested with no server selected")
		return m, m.AddNotification(model.NotificationError, "Select a server first")
	}

	m.ActionInFlight = model.ActionConnect
	LogInfo(actionSubsystem, "Connecting to %s", m.SelectedServer)
	return m, tea.Batch(
		model.ConnectCmd(m.API, m.Config.RequestTimeout, m.SelectedServer),
		m.Spinner.Tick,
	)
}

func handleDisconnectKey(m *model.Model) (*model.Model, tea.Cmd) {
	if busy, cmd := actionBusy(m); busy {
		return m, cmd
	}
	if !m.Connected() {
		LogDebug(m, actionSubsystem, "Disconnect ignored, not connected")
		return m, nil
	}
	if m.Config.ShouldConfirmDisconnect() {
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeConfirmDisconnect
		return m, nil
	}
	return startDisconnect(m)
}

// handleConfirmDisconnectKey resolves the confirmation overlay. Only an
// affirmative answer issues the request.
func handleConfirmDisconnectKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.CurrentAppMode = model.ModeMainDashboard
		return startDisconnect(m)
	case "n", "N", "esc":
		m.CurrentAppMode = model.ModeMainDashboard
		LogInfo(actionSubsystem, "Disconnect cancelled")
		return m, nil
	}
	return m, nil
}

func startDisconnect(m *model.Model) (*model.Model, tea.Cmd) {
	if busy, cmd := actionBusy(m); busy {
		return m, cmd
	}
	m.ActionInFlight = model.ActionDisconnect
	LogInfo(actionSubsystem, "Disconnecting")
	return m, tea.Batch(
		model.DisconnectCmd(m.API, m.Config.RequestTimeout),
		m.Spinner.Tick,
	)
}

// handleActionResult releases the in-flight lock regardless of outcome.
func handleActionResult(m *model.Model, msg model.ActionResultMsg) (*model.Model, tea.Cmd) {
	m.ActionInFlight = model.ActionNone

	if msg.Err != nil {
		LogError(actionSubsystem, msg.Err, "%s failed", capitalize(msg.Action.String()))
		prefix := "Connection failed: "
		if msg.Action == model.ActionDisconnect {
			prefix = "Disconnect failed: "
		}
		return m, m.AddNotification(model.NotificationError, prefix+api.UserMessage(msg.Err))
	}

	if msg.Result.Status != nil {
		status := *msg.Result.Status
		m.Snapshot = &status
		m.LastUpdated = m.Now
	}

	var cmds []tea.Cmd
	switch msg.Action {
	case model.ActionConnect:
		text := msg.Result.Message
		if text == "" {
			text = "Connected to " + m.SelectedServerName()
		}
		LogInfo(actionSubsystem, "Connected via %s", msg.Server)
		cmds = append(cmds,
			m.AddNotification(model.NotificationSuccess, text),
			model.FetchStatusCmd(m.API, m.Config.RequestTimeout),
			m.StartFastPoll(),
		)
	case model.ActionDisconnect:
		text := msg.Result.Message
		if text == "" {
			text = "Disconnected"
		}
		m.StopFastPoll()
		LogInfo(actionSubsystem, "Disconnected")
		cmds = append(cmds,
			m.AddNotification(model.NotificationSuccess, text),
			model.FetchStatusCmd(m.API, m.Config.RequestTimeout),
		)
	}
	return m, tea.Batch(cmds...)
}
