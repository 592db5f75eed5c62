package components

import (
	"vpndash/internal/tui/design"
)

// Button renders an action label with its key hint.
type Button struct {
	Label    string
	Key      string
	Disabled bool
	Danger   bool
}

// Render returns the styled button.
func (b Button) Render() string {
	text := b.Label
	if b.Key != "" {
		text = "[" + b.Key + "] " + b.Label
	}
	switch {
	case b.Disabled:
		return design.ButtonDisabledStyle.Render(text)
	case b.Danger:
		return design.ButtonDangerStyle.Render(text)
	default:
		return design.ButtonStyle.Render(text)
	}
}
