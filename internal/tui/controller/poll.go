package controller

import (
	"vpndash/internal/api"
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

func handleStatusTick(m *model.Model, msg model.StatusTickMsg) (*model.Model, tea.Cmd) {
	if msg.Gen != m.StatusGen {
		return m, nil
	}
	return m, tea.Batch(
		model.FetchStatusCmd(m.API, m.Config.RequestTimeout),
		model.StatusTickCmd(m.Config.StatusInterval, m.StatusGen),
	)
}

func handleFastTick(m *model.Model, msg model.FastTickMsg) (*model.Model, tea.Cmd) {
	if !m.FastPollActive || msg.Gen != m.FastGen {
		return m, nil
	}
	return m, model.FetchFastStatusCmd(m.API, m.Config.RequestTimeout, msg.Gen)
}

func handleUptimeTick(m *model.Model, msg model.UptimeTickMsg) (*model.Model, tea.Cmd) {
	if msg.Gen != m.UptimeGen {
		return m, nil
	}
	m.Now = msg.Time
	return m, model.UptimeTickCmd(m.Config.UptimeInterval, m.UptimeGen)
}

// handleStatusResult replaces the snapshot wholesale and keeps the traffic
// poll in step with the reported connection state. A failure keeps the previous
// snapshot and raises a single notification; the slow poll keeps its schedule
// either way.
func handleStatusResult(m *model.Model, msg model.StatusResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(pollerSubsystem, msg.Err, "Status refresh failed")
		return m, m.AddNotification(model.NotificationError, "Failed to refresh status: "+api.UserMessage(msg.Err))
	}

	status := msg.Status
	m.Snapshot = &status
	m.LastUpdated = msg.At
	if msg.At.After(m.Now) {
		m.Now = msg.At
	}
	LogDebug(m, pollerSubsystem, "Status refreshed: connected=%t server=%s", status.Connected, api.StringOr(status.Server, "-"))

	// traffic polling only runs while connected
	switch {
	case !status.Connected && m.FastPollActive:
		LogInfo(pollerSubsystem, "Not connected, stopping traffic polling")
		m.StopFastPoll()
	case status.Connected && !m.FastPollActive && m.ActionInFlight == model.ActionNone:
		LogInfo(pollerSubsystem, "Connected, starting traffic polling")
		return m, m.StartFastPoll()
	}
	return m, nil
}

// handleFastStatusResult only touches the traffic counters. Errors go to the
// activity log without a notification.
func handleFastStatusResult(m *model.Model, msg model.FastStatusResultMsg) (*model.Model, tea.Cmd) {
	if !m.FastPollActive || msg.Gen != m.FastGen {
		return m, nil
	}
	if msg.Err != nil {
		LogWarn(pollerSubsystem, "Traffic refresh failed: %v", msg.Err)
	} else if m.Snapshot != nil {
		m.Snapshot.Upload = msg.Status.Upload
		m.Snapshot.Download = msg.Status.Download
	}
	return m, model.FastTickCmd(m.Config.TrafficInterval, msg.Gen)
}

func handleServersResult(m *model.Model, msg model.ServersResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(pollerSubsystem, msg.Err, "Loading server list failed")
		return m, m.AddNotification(model.NotificationError, "Failed to load servers: "+api.UserMessage(msg.Err))
	}

	m.Servers = msg.Servers
	m.ServersLoaded = true
	m.Cursor = 0
	for i, s := range m.Servers {
		if s.ID == m.SelectedServer {
			m.Cursor = i
			break
		}
	}
	LogInfo(pollerSubsystem, "Loaded %d servers", len(m.Servers))
	return m, nil
}
