package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	survey  key.Binding
	login   key.Binding
	signup  key.Binding
	logout  key.Binding
	page    key.Binding
	edit    key.Binding
	refresh key.Binding
	theme   key.Binding
	play    key.Binding
	save    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		survey:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new survey")),
		login:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		signup:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "sign up")),
		logout:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		page:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		play:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play")),
		save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.survey, k.login, k.signup, k.logout},
		{k.page, k.edit, k.refresh, k.theme},
		{k.play, k.save, k.back, k.quit},
	}
}
