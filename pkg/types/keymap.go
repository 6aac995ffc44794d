package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for both application modes.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Browsing
	Up         key.Binding
	Down       key.Binding
	ToggleMark key.Binding
	EnterEdit  key.Binding
	ToggleCase key.Binding
	Delete     key.Binding
	Rerun      key.Binding

	// Editing
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleMark: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "toggle deletion"),
		),
		EnterEdit: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "insert pattern"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "case sensitive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete marked"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rerun search"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "set pattern"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit insert mode"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
	}
}

// ShortHelp implements help.KeyMap for browsing mode.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EnterEdit, k.ToggleMark, k.Delete, k.ToggleCase, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for browsing mode.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleMark, k.Delete},
		{k.EnterEdit, k.ToggleCase, k.Rerun, k.Help, k.Quit},
	}
}

// EditingHelp is the key help shown while composing a pattern.
type EditingHelp struct{ KeyMap }

func (e EditingHelp) ShortHelp() []key.Binding {
	return []key.Binding{e.Commit, e.Cancel, e.Backspace}
}

func (e EditingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{e.ShortHelp()}
}
