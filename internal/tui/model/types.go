package model

import (
	"time"

	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMainDashboard AppMode = iota
	ModeConfirmDisconnect
	ModeHelpOverlay
	ModeLogOverlay
	ModeConfigOverlay
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeMainDashboard:
		return "MainDashboard"
	case ModeConfirmDisconnect:
		return "ConfirmDisconnect"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeConfigOverlay:
		return "ConfigOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// ActionKind identifies a mutating request against the VPN API.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionConnect
	ActionDisconnect
)

func (a ActionKind) String() string {
	switch a {
	case ActionConnect:
		return "connect"
	case ActionDisconnect:
		return "disconnect"
	default:
		return "none"
	}
}

// NotificationKind selects how a notification is styled.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationSuccess
	NotificationError
)

// Notification is a transient message shown above the status bar.
type Notification struct {
	ID        int
	Kind      NotificationKind
	Text      string
	CreatedAt time.Time
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	MaxNotifications    = 5
)

// ConfigViewer holds the state of the client configuration overlay. The
// document is cached after the first successful fetch.
type ConfigViewer struct {
	Loaded  bool
	Loading bool
	Visible bool
	// RevealOnLoad is set by the first toggle so only that fetch opens the overlay.
	RevealOnLoad bool
	Doc          api.ConfigDocument
}

// Model represents the state of the dashboard. It is only mutated from the
// bubbletea Update loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool
	Config         config.DashboardConfig
	API            api.VPNAPI

	// Last full status snapshot; nil until the first successful poll.
	Snapshot    *api.StatusSnapshot
	LastUpdated time.Time
	Now         time.Time

	Servers        []api.ServerDescriptor
	ServersLoaded  bool
	Cursor         int
	SelectedServer string

	// Timer loops. A tick whose generation differs from the current one is
	// dropped, which is how a loop is cancelled.
	StatusGen      int
	FastGen        int
	UptimeGen      int
	FastPollActive bool

	ActionInFlight ActionKind
	Spinner        spinner.Model

	ConfigView     ConfigViewer
	ConfigViewport viewport.Model

	Notifications      []Notification
	NextNotificationID int

	ActivityLog       []string
	ActivityLogLevels []logging.LogLevel
	ActivityLogDirty  bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	Keys KeyMap
	Help help.Model

	QuittingMessage string
}

// Connected reports whether the last snapshot says the tunnel is up.
func (m *Model) Connected() bool {
	return m.Snapshot != nil && m.Snapshot.Connected
}

// ConnectEnabled mirrors the connect button's disabled flag.
func (m *Model) ConnectEnabled() bool {
	return m.ActionInFlight == ActionNone && !m.Connected()
}

// DisconnectEnabled mirrors the disconnect button's disabled flag.
func (m *Model) DisconnectEnabled() bool {
	return m.ActionInFlight == ActionNone && m.Connected()
}

// SelectedServerName returns the display name of the selected server, or its
// id when the list has not been loaded.
func (m *Model) SelectedServerName() string {
	for _, s := range m.Servers {
		if s.ID == m.SelectedServer {
			return s.Name
		}
	}
	return m.SelectedServer
}
