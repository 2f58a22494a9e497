package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the input line key bindings.
type KeyMap struct {
	CompleteNext, CompletePrevious key.Binding
	Return                         key.Binding
	Backspace, Delete              key.Binding
	Left, Right, Home, End         key.Binding

	Replace, AddWord, AddWordPrompt key.Binding
	NextSuggestion, PrevSuggestion  key.Binding
	SetOption                       key.Binding

	Buffers, NewBuffer, CloseBuffer key.Binding
	Undo, Redo                      key.Binding
	Quit                            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		CompleteNext:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next suggestion")),
		CompletePrevious: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous suggestion")),
		Return:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("delete", "delete right")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Replace:        key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "apply suggestion")),
		AddWord:        key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add word")),
		AddWordPrompt:  key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "add word to dictionary")),
		NextSuggestion: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next suggestion")),
		PrevSuggestion: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous suggestion")),
		SetOption:      key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "set option")),

		Buffers:     key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "buffers")),
		NewBuffer:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "new buffer")),
		CloseBuffer: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close buffer")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
