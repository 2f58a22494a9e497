// Package tui is a Bubble Tea chat input with spelling suggestions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/JackWReid/spellfix/internal/host"
	"github.com/JackWReid/spellfix/internal/logger"
	"github.com/JackWReid/spellfix/internal/suggest"
)

// checkInterval is how often pending spell checks are polled.
const checkInterval = host.SpellCheckDelay / 3

type checkMsg time.Time

// bar caches the two suggestion items of the current buffer. The engine
// says when an item is stale; it is recomputed after the update.
type bar struct {
	stale  map[suggest.Item]bool
	active string
	full   string
}

func (b *bar) markAll() {
	b.stale[suggest.ItemActiveSuggestion] = true
	b.stale[suggest.ItemFullList] = true
}

// Model is the Bubble Tea model.
type Model struct {
	session *host.Session
	options *config.Store
	keys    KeyMap
	status  *StatusBar
	picker  *Picker
	bar     *bar

	width  int
	height int
	ready  bool
}

// NewModel creates the model for a session. options may be nil, which
// disables the set prompt.
func NewModel(session *host.Session, options *config.Store) Model {
	m := Model{
		session: session,
		options: options,
		keys:    DefaultKeyMap(),
		status:  NewStatusBar(),
		picker:  &Picker{},
		bar:     &bar{stale: map[suggest.Item]bool{}},
	}
	m.bar.markAll()
	b := m.bar
	session.OnRender(func(buf suggest.BufferID, item suggest.Item) {
		if buf == session.Current().ID {
			b.stale[item] = true
		}
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCheck()
}

func tickCheck() tea.Cmd {
	return tea.Tick(checkInterval, func(t time.Time) tea.Msg {
		return checkMsg(t)
	})
}

// refresh recomputes the stale bar items.
func (m Model) refresh() {
	if m.bar.stale[suggest.ItemActiveSuggestion] {
		m.bar.active = m.session.ActiveSuggestion()
	}
	if m.bar.stale[suggest.ItemFullList] {
		m.bar.full = m.session.FullList()
	}
	for k := range m.bar.stale {
		delete(m.bar.stale, k)
	}
}

// Run starts the program on the terminal.
func Run(session *host.Session, options *config.Store) error {
	p := tea.NewProgram(NewModel(session, options), tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		logger.Error("tui: %v", err)
		return err
	}
	return nil
}
