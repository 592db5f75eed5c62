package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "✘" // U+2718
	IconInfo      = "ℹ" // U+2139 without VS16
	IconWarning   = "⚠" // U+26A0 without VS16
	IconShield    = "🛡" // U+1F6E1 without VS16
	IconConnected = "●"
	IconOffline   = "○"
	IconRadioOn   = "◉"
	IconRadioOff  = "○"
	IconCursor    = "›"
	IconUpload    = "↑"
	IconDownload  = "↓"
	IconGear      = "⚙" // U+2699 without VS16
	IconScroll    = "📜" // U+1F4DC
)

// SafeIcon wraps an icon with trailing spacing so a wide glyph does not
// swallow the next character: one space after single-cell icons, two after
// double-cell ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
