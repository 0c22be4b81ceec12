package interactive

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshyorko/sortbot/gridcore"
)

// KeyMap holds all the key bindings for the dashboard
type KeyMap struct {
	// Cursor (arrows + vim-style)
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Matrix
	MarkA   key.Binding
	MarkB   key.Binding
	Confirm key.Binding

	// Global
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		MarkA: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "white part"),
		),
		MarkB: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "black part"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm/start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Resolve maps a key press onto the grid state machine's key set.
// Unbound keys, including help, resolve to KeyNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) gridcore.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return gridcore.KeyQuit
	case key.Matches(msg, k.Restart):
		return gridcore.KeyRestart
	case key.Matches(msg, k.Up):
		return gridcore.KeyUp
	case key.Matches(msg, k.Down):
		return gridcore.KeyDown
	case key.Matches(msg, k.Left):
		return gridcore.KeyLeft
	case key.Matches(msg, k.Right):
		return gridcore.KeyRight
	case key.Matches(msg, k.MarkA):
		return gridcore.KeyMarkA
	case key.Matches(msg, k.MarkB):
		return gridcore.KeyMarkB
	case key.Matches(msg, k.Confirm):
		return gridcore.KeyConfirm
	}
	return gridcore.KeyNone
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MarkA, k.MarkB, k.Confirm, k.Restart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.MarkA, k.MarkB, k.Confirm},
		{k.Restart, k.Help, k.Quit},
	}
}

// keys is the global key map instance
var keys = DefaultKeyMap()
