package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	back       key.Binding
	playPause  key.Binding
	next       key.Binding
	previous   key.Binding
	mute       key.Binding
	volumeUp   key.Binding
	volumeDown key.Binding
	remove     key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		playPause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		next:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		previous:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		volumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "louder")),
		volumeDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "quieter")),
		remove:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.playPause, k.next, k.previous},
		{k.mute, k.volumeUp, k.volumeDown},
		{k.remove, k.quit},
	}
}
