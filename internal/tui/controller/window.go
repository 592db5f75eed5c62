package controller

import (
	"vpndash/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	overlayMaxWidth    = 100
	overlayChromeWidth = 8
	overlayChromeLines = 9
)

// handleWindowSizeMsg records the terminal size and resizes the overlay
// viewports to fit inside it.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height

	w := msg.Width - overlayChromeWidth
	if w > overlayMaxWidth {
		w = overlayMaxWidth
	}
	if w < 10 {
		w = 10
	}
	h := msg.Height - overlayChromeLines
	if h < 3 {
		h = 3
	}

	m.ConfigViewport.Width = w
	m.ConfigViewport.Height = h
	m.LogViewport.Width = w
	m.LogViewport.Height = h
	m.Help.Width = w

	if m.ActivityLogDirty && m.CurrentAppMode == model.ModeLogOverlay {
		refreshLogViewport(m)
	}
	return m
}
