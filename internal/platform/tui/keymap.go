package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
)

// KeyMap holds the key bindings for a tennis session.
// Bindings come from the controls section of the configuration.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Start   key.Binding
	Quit    key.Binding
	Rallies key.Binding
}

// NewKeyMap creates key bindings from the configured controls.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	km := KeyMap{
		Up:      binding(c.Up, "move up"),
		Down:    binding(c.Down, "move down"),
		Start:   binding(c.Start, "start"),
		Quit:    binding(c.Quit, "quit"),
		Rallies: binding(c.Rallies, "rally log"),
	}
	if len(c.Rallies) == 0 {
		km.Rallies.SetEnabled(false)
	}
	return km
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Controls)
}

// binding builds a key binding whose help text lists every key.
func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keyName(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// keyName returns a printable name for a key.
func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Resolve translates a key message to a game action.
// The rally log toggle is not a game action and resolves to ActionNone.
func (k KeyMap) Resolve(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Rallies, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Rallies, k.Quit},
	}
}
