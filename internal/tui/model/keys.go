package model

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Select        key.Binding
	Connect       key.Binding
	Disconnect    key.Binding
	ToggleConfig  key.Binding
	RefreshConfig key.Binding
	Copy          key.Binding
	ToggleLog     key.Binding
	Dismiss       key.Binding
	Refresh       key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "select server"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect"),
		),
		Disconnect: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disconnect"),
		),
		ToggleConfig: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle client config"),
		),
		RefreshConfig: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-fetch config"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy to clipboard"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle activity log"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss notification"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh status"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Connect, k.Disconnect, k.ToggleConfig, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Connect, k.Disconnect, k.Refresh},
		{k.ToggleConfig, k.RefreshConfig, k.Copy},
		{k.ToggleLog, k.Dismiss, k.Help, k.Quit},
	}
}
