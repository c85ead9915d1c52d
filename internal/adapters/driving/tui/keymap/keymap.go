// Package keymap defines the keybindings for the review screen.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings the review screen responds to.
type KeyMap struct {
	// Up moves the cursor up the doomed-line list.
	Up key.Binding

	// Down moves the cursor down the doomed-line list.
	Down key.Binding

	// Confirm approves the removal and starts the run.
	Confirm key.Binding

	// Cancel leaves the review without touching the document.
	Cancel key.Binding

	// Quit exits the application outright.
	Quit key.Binding
}

// binding pairs a key list with the label shown in the help line.
// The first key doubles as the help key.
func binding(label string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], label),
	)
}

// DefaultKeyMap returns the review screen's default bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up:      binding("up", "up", "k"),
		Down:    binding("down", "down", "j"),
		Confirm: binding("confirm", "y", "enter"),
		Cancel:  binding("cancel", "esc", "n"),
		Quit:    binding("quit", "q", "ctrl+c"),
	}
}

// ShortHelp lists the bindings for the one-line help footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Up, k.Down}
}

// FullHelp groups every binding for an expanded help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Confirm, k.Cancel},
		{k.Quit},
	}
}

// Matches reports whether keyStr is one of the binding's keys.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
