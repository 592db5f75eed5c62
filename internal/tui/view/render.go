package view

import (
	"fmt"
	"strings"

	"vpndash/internal/tui/components"
	"vpndash/internal/tui/design"
	"vpndash/internal/tui/model"
	"vpndash/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	sideBySideMinWidth = 80
	statusPanelLines   = 7
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeConfigOverlay:
		return renderConfigOverlay(m)
	case model.ModeConfirmDisconnect:
		return renderConfirmDisconnectOverlay(m)
	}

	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}
	return renderDashboard(m)
}

func renderDashboard(m *model.Model) string {
	width := m.Width

	sections := []string{renderHeader(m, width)}
	sections = append(sections, renderPanelsRow(m, width))
	sections = append(sections, renderButtons(m))
	if n := renderNotifications(m, width); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, design.DimStyle.Render(m.Help.ShortHelpView(m.Keys.ShortHelp())))
	sections = append(sections, renderStatusBar(m, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model, width int) string {
	sv := BuildStatusView(m)
	indicator := design.TextErrorStyle.Render(IconText(IconOffline, sv.Label))
	if sv.Connected {
		indicator = design.TextSuccessStyle.Render(IconText(IconConnected, sv.Label))
	} else if !sv.Known {
		indicator = design.TextSecondaryStyle.Render(IconText(IconOffline, sv.Label))
	}

	title := design.HeaderStyle.Render(IconText(IconShield, "VPN Dashboard"))
	endpoint := ""
	if m.Config.Endpoint != "" {
		endpoint = design.DimStyle.Render(m.Config.Endpoint)
	}
	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", indicator)
	gap := width - lipgloss.Width(left) - lipgloss.Width(endpoint)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + endpoint
}

func renderPanelsRow(m *model.Model, width int) string {
	serverLines := len(m.Servers)
	if serverLines == 0 {
		serverLines = 1
	}
	height := statusPanelLines
	if serverLines > height {
		height = serverLines
	}
	// title line plus border
	height += 3

	if width >= sideBySideMinWidth {
		left := width / 2
		right := width - left
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderStatusPanel(m, left, height),
			renderServerPanel(m, right, height),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderStatusPanel(m, width, statusPanelLines+3),
		renderServerPanel(m, width, serverLines+3),
	)
}

func renderStatusPanel(m *model.Model, width, height int) string {
	sv := BuildStatusView(m)

	row := func(label, value string) string {
		return design.LabelStyle.Render(label) + design.ValueStyle.Render(value)
	}
	lines := []string{
		row("Status", sv.Label),
		row("Server", sv.Server),
		row("Public IP", sv.PublicIP),
		row("Method", sv.Method),
		row("Upload", IconText(IconUpload, sv.Upload)),
		row("Download", IconText(IconDownload, sv.Download)),
		row("Uptime", sv.Uptime),
	}

	panelType := components.PanelTypeDefault
	if sv.Connected {
		panelType = components.PanelTypeSuccess
	}
	return components.NewPanel("Connection").
		WithContent(strings.Join(lines, "\n")).
		WithDimensions(width, height).
		WithType(panelType).
		Render()
}

func renderServerPanel(m *model.Model, width, height int) string {
	var content string
	if !m.ServersLoaded {
		content = design.DimStyle.Render("Loading servers...")
	} else if len(m.Servers) == 0 {
		content = design.DimStyle.Render("No servers available")
	} else {
		content = renderServerList(m, width-design.PanelStyle.GetHorizontalFrameSize())
	}
	return components.NewPanel("Servers").
		WithContent(content).
		WithDimensions(width, height).
		SetFocused(true).
		Render()
}

// renderServerList draws one radio item per server in received order. The
// checked item is the selection; the cursor only highlights.
func renderServerList(m *model.Model, width int) string {
	lines := make([]string, 0, len(m.Servers))
	for i, s := range m.Servers {
		cursor := "  "
		style := design.ListItemStyle
		if i == m.Cursor {
			cursor = IconCursor + " "
			style = design.ListItemCursorStyle
		}
		radio := IconRadioOff
		if s.ID == m.SelectedServer {
			radio = IconRadioOn
		}

		line := fmt.Sprintf("%s%s %s", cursor, radio, s.Name)
		if s.Location != "" {
			line += design.DimStyle.Render(" · " + s.Location)
		}
		if s.Type != "" {
			line += " " + design.ServerTypeBadgeStyle(s.Type).Render(s.Type)
		}
		if s.Ping != "" {
			line += design.DimStyle.Render(" " + s.Ping)
		}
		if lipgloss.Width(line) > width && width > 0 {
			line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func renderButtons(m *model.Model) string {
	connect := components.Button{Label: "Connect", Key: "c", Disabled: !m.ConnectEnabled()}
	if m.ActionInFlight == model.ActionConnect {
		connect = components.Button{Label: m.Spinner.View() + " Connecting...", Disabled: true}
	}

	disconnect := components.Button{Label: "Disconnect", Key: "d", Danger: true, Disabled: !m.DisconnectEnabled()}
	if m.ActionInFlight == model.ActionDisconnect {
		disconnect = components.Button{Label: m.Spinner.View() + " Disconnecting...", Danger: true, Disabled: true}
	}

	configLabel := "Show config"
	switch {
	case m.ConfigView.Loading:
		configLabel = m.Spinner.View() + " Loading config..."
	case m.ConfigView.Visible:
		configLabel = "Hide config"
	}
	config := components.Button{Label: configLabel, Key: "w", Disabled: m.ConfigView.Loading}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		connect.Render(), " ",
		disconnect.Render(), " ",
		config.Render(),
	)
}

func renderNotifications(m *model.Model, width int) string {
	if len(m.Notifications) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Notifications))
	for _, n := range m.Notifications {
		var style lipgloss.Style
		var icon string
		switch n.Kind {
		case model.NotificationSuccess:
			style, icon = design.NotificationSuccessStyle, IconCheck
		case model.NotificationError:
			style, icon = design.NotificationErrorStyle, IconCross
		default:
			style, icon = design.NotificationInfoStyle, IconInfo
		}
		text := utils.TruncateString(n.Text, width-4)
		lines = append(lines, style.Render(IconText(icon, text)))
	}
	return strings.Join(lines, "\n")
}

func renderStatusBar(m *model.Model, width int) string {
	left := "Selected: " + m.SelectedServerName()
	if m.FastPollActive {
		left += " · live traffic"
	}
	return components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(lastUpdatedText(m)).
		Render()
}
