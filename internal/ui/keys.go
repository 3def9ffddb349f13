package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the help footer
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Ends     key.Binding
	Goto     key.Binding
	Scroll   key.Binding
	Menu     key.Binding
	Copy     key.Binding
	Pager    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap mirrors the normal input mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("down", "pgdown", " ", "j"), key.WithHelp("↓/space", "next")),
		Previous: key.NewBinding(key.WithKeys("up", "pgup", "b", "k"), key.WithHelp("↑/b", "previous")),
		Ends:     key.NewBinding(key.WithKeys("home", "end", "g", "G"), key.WithHelp("g/G", "first/last")),
		Goto:     key.NewBinding(key.WithKeys(":", "#"), key.WithHelp(":", "go to anchor")),
		Scroll:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle scrolling")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Pager:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Ends, k.Goto},
		{k.Scroll, k.Menu, k.Copy, k.Pager},
		{k.Help, k.Quit},
	}
}
