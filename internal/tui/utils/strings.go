package utils

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to at most width terminal cells, appending an
// ellipsis when anything was cut.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width, "…")
}
