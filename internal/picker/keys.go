package picker

import "github.com/charmbracelet/bubbles/key"

// Action is what a keypress asks the picker to do.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionPageUp
	ActionPageDown
	ActionToggle
	ActionCommit
	ActionQuit
)

// KeyMap binds key names to picker actions.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Toggle   key.Binding
	Commit   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "k", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "j", "down"),
			key.WithHelp("s/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "mark"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "delete marked"),
		),
		Quit: key.NewBinding(
			key.WithKeys("e", "q", "esc", "ctrl+c"),
			key.WithHelp("e/q", "quit"),
		),
	}
}

// Action maps a key name to its action, or ActionNone.
func (k KeyMap) Action(name string) Action {
	bindings := []struct {
		b key.Binding
		a Action
	}{
		{k.Up, ActionUp},
		{k.Down, ActionDown},
		{k.PageUp, ActionPageUp},
		{k.PageDown, ActionPageDown},
		{k.Toggle, ActionToggle},
		{k.Commit, ActionCommit},
		{k.Quit, ActionQuit},
	}
	for _, entry := range bindings {
		if !entry.b.Enabled() {
			continue
		}
		for _, candidate := range entry.b.Keys() {
			if candidate == name {
				return entry.a
			}
		}
	}
	return ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Commit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Toggle, k.Commit, k.Quit},
	}
}
