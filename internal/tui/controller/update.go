package controller

import (
	"strings"

	"vpndash/internal/tui/model"
	"vpndash/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the entry point used by AppModel.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler. It
// is the only place the model is mutated.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg, model.UptimeTickMsg, model.FastTickMsg:
	default:
		LogDebug(m, controllerSubsystem, "Received msg: %T", msg)
	}

	if m.CurrentAppMode == model.ModeQuitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg), nil
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case model.StatusTickMsg:
		return handleStatusTick(m, msg)
	case model.FastTickMsg:
		return handleFastTick(m, msg)
	case model.UptimeTickMsg:
		return handleUptimeTick(m, msg)

	case model.StatusResultMsg:
		return handleStatusResult(m, msg)
	case model.FastStatusResultMsg:
		return handleFastStatusResult(m, msg)
	case model.ServersResultMsg:
		return handleServersResult(m, msg)
	case model.ActionResultMsg:
		return handleActionResult(m, msg)
	case model.ConfigResultMsg:
		return handleConfigResult(m, msg)

	case model.DismissNotificationMsg:
		m.DismissNotification(msg.ID)
		return m, nil
	case model.ClipboardResultMsg:
		return handleClipboardResult(m, msg)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case spinner.TickMsg:
		if m.ActionInFlight == model.ActionNone && !m.ConfigView.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func handleQuit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Stopping timers..."
	m.StopAllTimers()
	LogInfo(controllerSubsystem, "Quitting, all poll loops cancelled")
	return m, tea.Quit
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level < logging.LevelInfo && !m.DebugMode {
		return m
	}
	model.AddRawLineToActivityLog(m, msg.Entry.Level, msg.Entry.Format())
	if m.CurrentAppMode == model.ModeLogOverlay {
		refreshLogViewport(m)
	}
	return m
}

func handleClipboardResult(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to copy %s to clipboard", msg.What)
		return m, m.AddNotification(model.NotificationError, "Could not copy "+msg.What+" to clipboard")
	}
	LogInfo(controllerSubsystem, "Copied %s to clipboard", msg.What)
	return m, m.AddNotification(model.NotificationSuccess, capitalize(msg.What)+" copied to clipboard")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
