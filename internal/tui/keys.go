package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the canvas keybindings for bubbles/help.
type keyMap struct {
	Pen     key.Binding
	Edit    key.Binding
	Enter   key.Binding
	Escape  key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Pan     key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pen: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pen tool"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit last curve"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit / leave edit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard / leave edit"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Pan: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "pan"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pen, k.Edit, k.Enter, k.Escape, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pen, k.Edit, k.Enter, k.Escape},
		{k.ZoomIn, k.ZoomOut, k.Pan},
		{k.Help, k.Quit},
	}
}
