package model

import (
	"time"

	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/internal/tui/design"
	"vpndash/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InitialModel builds the dashboard model. The slow poll and uptime loops
// start at generation 1; the fast poll stays off until a connect succeeds.
func InitialModel(cfg config.DashboardConfig, client api.VPNAPI, debugMode bool, logChannel <-chan logging.LogEntry) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	h := help.New()
	h.ShowAll = true

	return &Model{
		CurrentAppMode: ModeMainDashboard,
		LastAppMode:    ModeMainDashboard,
		DebugMode:      debugMode,
		Config:         cfg,
		API:            client,
		Now:            time.Now(),
		SelectedServer: cfg.DefaultServer,
		StatusGen:      1,
		UptimeGen:      1,
		Spinner:        s,
		ConfigViewport: viewport.New(0, 0),
		LogViewport:    viewport.New(0, 0),
		ActivityLog:    []string{},
		LogChannel:     logChannel,
		Keys:           DefaultKeyMap(),
		Help:           h,
	}
}

// Init issues the startup fetches and starts the slow poll and uptime loops.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		FetchStatusCmd(m.API, m.Config.RequestTimeout),
		FetchServersCmd(m.API, m.Config.RequestTimeout),
		StatusTickCmd(m.Config.StatusInterval, m.StatusGen),
		UptimeTickCmd(m.Config.UptimeInterval, m.UptimeGen),
	}
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	return tea.Batch(cmds...)
}

// StartFastPoll cancels any running fast poll and starts a new one.
func (m *Model) StartFastPoll() tea.Cmd {
	m.FastGen++
	m.FastPollActive = true
	return FastTickCmd(m.Config.TrafficInterval, m.FastGen)
}

// StopFastPoll cancels the fast poll, if any.
func (m *Model) StopFastPoll() {
	m.FastGen++
	m.FastPollActive = false
}

// StopAllTimers cancels every timer loop.
func (m *Model) StopAllTimers() {
	m.StatusGen++
	m.UptimeGen++
	m.StopFastPoll()
}

// AddNotification appends a notification and returns the command that
// dismisses it after the configured TTL.
func (m *Model) AddNotification(kind NotificationKind, text string) tea.Cmd {
	m.NextNotificationID++
	n := Notification{
		ID:        m.NextNotificationID,
		Kind:      kind,
		Text:      text,
		CreatedAt: m.Now,
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > MaxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-MaxNotifications:]
	}
	return DismissNotificationCmd(m.Config.NotificationTTL, n.ID)
}

// DismissNotification removes the notification with the given id. Unknown
// ids are ignored.
func (m *Model) DismissNotification(id int) {
	for i, n := range m.Notifications {
		if n.ID == id {
			m.Notifications = append(m.Notifications[:i], m.Notifications[i+1:]...)
			return
		}
	}
}

// DismissNewestNotification removes the most recent notification.
func (m *Model) DismissNewestNotification() {
	if len(m.Notifications) == 0 {
		return
	}
	m.Notifications = m.Notifications[:len(m.Notifications)-1]
}
