package controller

import (
	"vpndash/internal/api"
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const configSubsystem = "ConfigViewer"

// handleToggleConfig fetches the config on the first reveal and flips
// visibility of the cached document afterwards.
func handleToggleConfig(m *model.Model) (*model.Model, tea.Cmd) {
	cv := &m.ConfigView
	switch {
	case cv.Loading:
		return m, nil
	case cv.Visible:
		hideConfig(m)
		return m, nil
	case cv.Loaded:
		showConfig(m)
		return m, nil
	}

	cv.Loading = true
	cv.RevealOnLoad = true
	LogInfo(configSubsystem, "Fetching client configuration")
	return m, tea.Batch(model.FetchConfigCmd(m.API, m.Config.RequestTimeout), m.Spinner.Tick)
}

// handleRefreshConfig re-fetches the cached document while it is shown.
func handleRefreshConfig(m *model.Model) (*model.Model, tea.Cmd) {
	if m.ConfigView.Loading {
		return m, nil
	}
	m.ConfigView.Loading = true
	LogInfo(configSubsystem, "Re-fetching client configuration")
	return m, tea.Batch(model.FetchConfigCmd(m.API, m.Config.RequestTimeout), m.Spinner.Tick)
}

// handleConfigResult caches the document. Only a fetch started by the first
// toggle reveals the overlay; a refresh never does.
func handleConfigResult(m *model.Model, msg model.ConfigResultMsg) (*model.Model, tea.Cmd) {
	cv := &m.ConfigView
	cv.Loading = false
	reveal := cv.RevealOnLoad
	cv.RevealOnLoad = false

	if msg.Err != nil {
		LogError(configSubsystem, msg.Err, "Loading client configuration failed")
		return m, m.AddNotification(model.NotificationError, "Failed to load config: "+api.UserMessage(msg.Err))
	}

	cv.Doc = msg.Doc
	cv.Loaded = true
	m.ConfigViewport.SetContent(configContent(msg.Doc))
	m.ConfigViewport.GotoTop()
	if reveal && !cv.Visible && m.CurrentAppMode == model.ModeMainDashboard {
		showConfig(m)
	}
	return m, nil
}

func showConfig(m *model.Model) {
	m.ConfigView.Visible = true
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = model.ModeConfigOverlay
}

func hideConfig(m *model.Model) {
	m.ConfigView.Visible = false
	m.CurrentAppMode = model.ModeMainDashboard
}

func configContent(doc api.ConfigDocument) string {
	content := doc.Config
	if doc.Note != "" {
		content += "\n\n" + doc.Note
	}
	if doc.QRCodeURL != nil && *doc.QRCodeURL != "" {
		content += "\nQR code: " + *doc.QRCodeURL
	}
	return content
}
