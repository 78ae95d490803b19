// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Level  key.Binding
	Next   key.Binding
	Back   key.Binding

	// Control
	CtrlC key.Binding
	Quit  key.Binding
	Help  key.Binding

	// Portal actions
	ToggleMode key.Binding
	Simulate   key.Binding
	Chat       key.Binding
	Insurance  key.Binding
	Mortgage   key.Binding
	Wire       key.Binding
	Reveal     key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Level: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "choose level"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", "enter"),
		key.WithHelp("→/enter", "continue"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h", "backspace"),
		key.WithHelp("←", "back"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "exit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "buyer/agent view"),
	),
	Simulate: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "simulate day 75"),
	),
	Chat: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chat"),
	),
	Insurance: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insurance quote"),
	),
	Mortgage: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mortgage bids"),
	),
	Wire: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "wire portal"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reveal account numbers"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.ToggleMode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back, k.Up, k.Down},
		{k.ToggleMode, k.Chat, k.Simulate},
		{k.Insurance, k.Mortgage, k.Wire, k.Reveal},
		{k.Enter, k.Level, k.Escape},
		{k.Help, k.Quit, k.CtrlC},
	}
}
