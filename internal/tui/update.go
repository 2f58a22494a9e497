package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JackWReid/spellfix/internal/host"
	"github.com/JackWReid/spellfix/internal/suggest"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.FocusMsg:
		m.session.Focus()

	case checkMsg:
		m.session.PerformSpellChecks()
		cmd = tickCheck()

	case tea.KeyMsg:
		switch {
		case m.status.Prompt != PromptNone:
			m.handlePrompt(msg)
		case m.picker.Active:
			m.handlePicker(msg)
		default:
			cmd = m.handleKey(msg)
		}
	}

	m.refresh()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s, km := m.session, m.keys
	if !key.Matches(msg, km.Return) {
		m.status.ClearMessage()
	}

	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit

	case key.Matches(msg, km.CompleteNext):
		s.Complete(false)
	case key.Matches(msg, km.CompletePrevious):
		s.Complete(true)
	case key.Matches(msg, km.Return):
		if sent := s.Send(); sent != "" {
			m.status.SetMessage(fmt.Sprintf("sent %q", sent))
		}

	case key.Matches(msg, km.Backspace):
		s.Backspace()
	case key.Matches(msg, km.Delete):
		s.DeleteForward()
	case key.Matches(msg, km.Left):
		s.Move(host.MoveLeft)
	case key.Matches(msg, km.Right):
		s.Move(host.MoveRight)
	case key.Matches(msg, km.Home):
		s.Move(host.MoveHome)
	case key.Matches(msg, km.End):
		s.Move(host.MoveEnd)

	case key.Matches(msg, km.Replace):
		s.Act(suggest.ActionReplace)
	case key.Matches(msg, km.AddWord):
		s.Act(suggest.ActionAddWord)
	case key.Matches(msg, km.AddWordPrompt):
		m.status.StartPrompt(PromptAddWord)
	case key.Matches(msg, km.SetOption):
		if m.options != nil {
			m.status.StartPrompt(PromptSet)
		}
	case key.Matches(msg, km.NextSuggestion):
		s.Act(suggest.ActionNext)
	case key.Matches(msg, km.PrevSuggestion):
		s.Act(suggest.ActionPrevious)

	case key.Matches(msg, km.Buffers):
		m.picker.Show(s.Index())
	case key.Matches(msg, km.NewBuffer):
		s.NewBuffer(fmt.Sprintf("buffer %d", len(s.Buffers())+1))
		m.bar.markAll()
	case key.Matches(msg, km.CloseBuffer):
		s.Close()
		m.bar.markAll()

	case key.Matches(msg, km.Undo):
		s.Undo()
	case key.Matches(msg, km.Redo):
		s.Redo()

	case msg.Type == tea.KeySpace:
		s.InsertText(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		s.InsertText(string(msg.Runes))
	}
	return nil
}

func (m Model) handlePrompt(msg tea.KeyMsg) {
	prompt := m.status.Prompt
	input, done, cancelled := m.status.HandlePromptKey(msg)
	if cancelled || !done {
		return
	}
	if prompt == PromptSet {
		m.setOption(input)
		return
	}
	dict, word := parseAddWord(input)
	if word == "" {
		return
	}
	m.session.ActWith(suggest.ActionAddWord, dict, word)
	m.status.SetMessage(fmt.Sprintf("added %q", word))
}

func (m Model) handlePicker(msg tea.KeyMsg) {
	n := len(m.session.Buffers())
	switch msg.Type {
	case tea.KeyUp:
		m.picker.MoveUp(n)
	case tea.KeyDown, tea.KeyTab:
		m.picker.MoveDown(n)
	case tea.KeyEnter:
		m.picker.Hide()
		m.session.Switch(m.picker.Selected)
		m.bar.markAll()
	case tea.KeyEsc:
		m.picker.Hide()
	}
}

func (m Model) setOption(input string) {
	k, v, ok := parseSet(input)
	if !ok {
		m.status.SetMessage("usage: option value")
		return
	}
	if err := m.options.Set(k, v); err != nil {
		m.status.SetMessage(err.Error())
		return
	}
	got, _ := m.options.Get(k)
	m.status.SetMessage(fmt.Sprintf("%s = %s", k, got))
	m.bar.markAll()
}
