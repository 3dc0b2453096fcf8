package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Reject key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reject, k.Accept, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("+", "a", "right"),
			key.WithHelp("+/a/→", "accept"),
		),
		Reject: key.NewBinding(
			key.WithKeys("-", "r", "left"),
			key.WithHelp("-/r/←", "reject"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
