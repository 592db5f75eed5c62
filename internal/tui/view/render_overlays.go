package view

import (
	"vpndash/internal/tui/design"
	"vpndash/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	container := design.OverlayContainerStyle.Render(title + "\n" + body)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	title := design.OverlayTitleStyle.Render(IconText(IconScroll, "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"))
	content := m.LogViewport.View()
	if len(m.ActivityLog) == 0 {
		content = design.DimStyle.Render("No activity yet")
	}
	container := design.OverlayContainerStyle.Render(title + "\n" + content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderConfigOverlay(m *model.Model) string {
	hint := "(↑/↓ scroll  •  y copy  •  r re-fetch  •  w/Esc close)"
	if m.ConfigView.Loading {
		hint = m.Spinner.View() + " re-fetching..."
	}
	title := design.OverlayTitleStyle.Render(IconText(IconGear, "Client configuration  ") + hint)
	container := design.OverlayContainerStyle.Render(title + "\n" + m.ConfigViewport.View())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderConfirmDisconnectOverlay(m *model.Model) string {
	sv := BuildStatusView(m)
	title := design.OverlayTitleStyle.Render(IconText(IconWarning, "Disconnect from VPN?"))
	body := "Server: " + design.ValueStyle.Render(sv.Server) + "\n\n" +
		design.TextSecondaryStyle.Render("y confirm  •  n/Esc cancel")
	container := design.ConfirmOverlayStyle.Render(title + "\n" + body)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}
