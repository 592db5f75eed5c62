package design

import (
	"vpndash/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// Spacing in terminal cells
const (
	SpaceXS = 1
	SpaceSM = 2

	MinPanelHeight = 4
	MinPanelWidth  = 20
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// State Colors
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextTertiary = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Base Styles
var (
	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Component Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBorderFocus)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, SpaceXS)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceXS)

	ListItemCursorStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDangerStyle = ButtonStyle.
				Background(ColorError)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorTextTertiary).
				Foreground(ColorSurfaceAlt).
				Bold(false)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextTertiary)
)

// Notification styles, one per kind.
var (
	NotificationSuccessStyle = lipgloss.NewStyle().
					Border(lipgloss.NormalBorder(), false, false, false, true).
					BorderForeground(ColorSuccess).
					Foreground(ColorSuccess).
					PaddingLeft(SpaceXS)

	NotificationErrorStyle = NotificationSuccessStyle.
				BorderForeground(ColorError).
				Foreground(ColorError)

	NotificationInfoStyle = NotificationSuccessStyle.
				BorderForeground(ColorInfo).
				Foreground(ColorInfo)
)

// Overlay styles
var (
	OverlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1).
				Foreground(ColorText)

	OverlayContainerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Background(ColorBackgroundOverlay).
				Foreground(ColorText).
				Padding(1, 2)

	ConfirmOverlayStyle = OverlayContainerStyle.
				BorderForeground(ColorWarning)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextTertiary).Italic(true)
)

// LogLevelStyle returns the activity log style for a log level.
func LogLevelStyle(level logging.LogLevel) lipgloss.Style {
	switch {
	case level >= logging.LevelError:
		return LogErrorStyle
	case level == logging.LevelWarn:
		return LogWarnStyle
	case level == logging.LevelDebug:
		return LogDebugStyle
	default:
		return LogInfoStyle
	}
}

// Server type badge colors.
var serverTypeColors = map[string]lipgloss.AdaptiveColor{
	"wireguard": ColorSuccess,
	"ssh":       ColorInfo,
	"proxy":     ColorWarning,
}

// ServerTypeBadgeStyle returns the badge style for a server category tag.
func ServerTypeBadgeStyle(serverType string) lipgloss.Style {
	c, ok := serverTypeColors[serverType]
	if !ok {
		c = ColorTextSecondary
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
