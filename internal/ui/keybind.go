package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds every key binding the app reacts to.
// Bubble Tea reports space as " ", so bindings list it that way.
type KeyMap struct {
	Open      key.Binding // page: press "Open Modal"
	Activate  key.Binding // dialog: press the focused button
	Next      key.Binding
	Prev      key.Binding
	Close     key.Binding // handled by the Escape KeyListener
	Quit      key.Binding // page only
	ForceQuit key.Binding // everywhere
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "o"),
			key.WithHelp("enter", "open"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// bindingHelp implements help.KeyMap over a fixed list of bindings.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding  { return b }
func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// PageHelp returns the hints shown under the page.
func (k *KeyMap) PageHelp() help.KeyMap {
	return bindingHelp{k.Open, k.Quit}
}

// DialogHelp returns the hints shown at the foot of the dialog.
func (k *KeyMap) DialogHelp() help.KeyMap {
	return bindingHelp{k.Next, k.Activate, k.Close}
}

// KeyListener is a global key hook. It only fires between Attach and Detach,
// mirroring a listener registered on mount and removed on unmount.
type KeyListener struct {
	Binding  key.Binding
	OnKey    func() tea.Cmd
	attached bool
}

// NewKeyListener creates a detached listener.
func NewKeyListener(binding key.Binding, onKey func() tea.Cmd) *KeyListener {
	return &KeyListener{Binding: binding, OnKey: onKey}
}

// Attach starts delivering matching keys to OnKey.
func (l *KeyListener) Attach() { l.attached = true }

// Detach stops delivery. Safe to call more than once.
func (l *KeyListener) Detach() { l.attached = false }

// Attached reports whether the listener is live.
func (l *KeyListener) Attached() bool { return l.attached }

// Handle processes a KeyMsg. Returns (consumed, cmd).
// Keys are only consumed while attached and matching Binding.
func (l *KeyListener) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if !l.attached || !key.Matches(msg, l.Binding) {
		return false, nil
	}
	if l.OnKey == nil {
		return true, nil
	}
	return true, l.OnKey()
}
