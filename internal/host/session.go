// Package host is the chat side of the suggestion engine: named input
// buffers with undo, debounced spell checking and line submission.
//
// A Session is not safe for concurrent use. It is driven from a single
// goroutine, like a Bubble Tea update loop.
package host

import (
	"strings"
	"time"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/JackWReid/spellfix/internal/logger"
	"github.com/JackWReid/spellfix/internal/spell"
	"github.com/JackWReid/spellfix/internal/suggest"
)

// RenderFunc is told which bar item of which buffer needs repainting.
type RenderFunc func(buf suggest.BufferID, item suggest.Item)

// Session owns the buffers and the engine that watches them.
type Session struct {
	engine    *suggest.Engine
	checker   *spell.Checker
	buffers   []*Buffer
	current   int
	multiline bool
	onRender  RenderFunc

	// now is swapped in tests.
	now func() time.Time
}

// NewSession creates a session with one buffer named "main".
func NewSession(checker *spell.Checker, opts config.Options, palette suggest.Palette) *Session {
	s := &Session{
		checker: checker,
		buffers: []*Buffer{NewBuffer("main")},
		now:     time.Now,
	}
	s.engine = suggest.New(s, opts, palette)
	return s
}

func (s *Session) Engine() *suggest.Engine { return s.engine }

// OnRender registers the repaint callback.
func (s *Session) OnRender(fn RenderFunc) {
	s.onRender = fn
}

// Buffers returns the buffers in display order.
func (s *Session) Buffers() []*Buffer {
	return s.buffers
}

func (s *Session) Current() *Buffer { return s.buffers[s.current] }
func (s *Session) Index() int       { return s.current }

func (s *Session) lookup(id suggest.BufferID) *Buffer {
	for _, b := range s.buffers {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Host interface

func (s *Session) Text(id suggest.BufferID) string {
	if b := s.lookup(id); b != nil {
		return b.line.Text
	}
	return ""
}

// SetText rewrites a line on the engine's behalf. The rewrite is undoable
// and, as any edit, is reported back as TextChanged.
func (s *Session) SetText(id suggest.BufferID, text string) {
	b := s.lookup(id)
	if b == nil {
		return
	}
	before, cursor := b.line.Text, b.line.Cursor
	b.line.SetText(text)
	b.undo.PushReplaceLine(before, text, cursor, b.line.Cursor)
	s.edited(b)
}

func (s *Session) Cursor(id suggest.BufferID) int {
	if b := s.lookup(id); b != nil {
		return b.line.Cursor
	}
	return 0
}

func (s *Session) SetCursor(id suggest.BufferID, pos int) {
	if b := s.lookup(id); b != nil {
		b.line.SetCursor(pos)
	}
}

func (s *Session) ActiveDictionaries(suggest.BufferID) []string {
	return s.checker.Names()
}

// AddWord teaches the checker a word and rechecks every buffer.
func (s *Session) AddWord(dictionary, word string) error {
	if err := s.checker.AddWord(dictionary, word); err != nil {
		return err
	}
	now := s.now()
	for _, b := range s.buffers {
		b.ScheduleSpellCheck(now.Add(-SpellCheckDelay))
	}
	return nil
}

func (s *Session) RequestRender(id suggest.BufferID, item suggest.Item) {
	if s.onRender != nil {
		s.onRender(id, item)
	}
}

// Projections of the current buffer

func (s *Session) ActiveSuggestion() string {
	return s.engine.ActiveSuggestion(s.Current().ID)
}

func (s *Session) FullList() string {
	return s.engine.FullList(s.Current().ID)
}

// Editing

// edited runs after every change to a buffer's text.
func (s *Session) edited(b *Buffer) {
	b.ScheduleSpellCheck(s.now())
	s.syncMultiline()
	s.engine.Dispatch(suggest.TextChanged{Buffer: b.ID})
}

func (s *Session) syncMultiline() {
	active := strings.ContainsRune(s.Current().line.Text, '\n')
	if active != s.multiline {
		s.multiline = active
		s.engine.Dispatch(suggest.MultilineChanged{Active: active})
	}
}

// InsertText types text at the cursor of the current buffer.
func (s *Session) InsertText(text string) {
	if text == "" {
		return
	}
	b := s.Current()
	for _, ch := range text {
		b.undo.PushInsertChar(b.line.Cursor, ch)
		b.line.InsertChar(ch)
	}
	s.edited(b)
}

// Backspace deletes the character before the cursor.
func (s *Session) Backspace() {
	b := s.Current()
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: suggest.KeyDelete})
	cursor := b.line.Cursor
	if ch, ok := b.line.DeleteBefore(); ok {
		b.undo.PushDeleteChar(cursor-1, ch, cursor)
		s.edited(b)
	}
}

// DeleteForward deletes the character under the cursor.
func (s *Session) DeleteForward() {
	b := s.Current()
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: suggest.KeyDelete})
	cursor := b.line.Cursor
	if ch, ok := b.line.DeleteAfter(); ok {
		b.undo.PushDeleteChar(cursor, ch, cursor)
		s.edited(b)
	}
}

// Movement is one of the cursor motions of the input line.
type Movement int

const (
	MoveLeft Movement = iota
	MoveRight
	MoveHome
	MoveEnd
)

// Move moves the cursor of the current buffer.
func (s *Session) Move(m Movement) {
	b := s.Current()
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: suggest.KeyMove})
	var moved bool
	switch m {
	case MoveLeft:
		moved = b.line.Left()
	case MoveRight:
		moved = b.line.Right()
	case MoveHome:
		moved = b.line.Home()
	case MoveEnd:
		moved = b.line.End()
	}
	if moved {
		b.ScheduleSpellCheck(s.now())
		s.engine.Dispatch(suggest.CursorMoved{Buffer: b.ID})
	}
}

// Complete handles the completion keys. Like any completion the key
// counts as an edit of the line.
func (s *Session) Complete(previous bool) {
	b := s.Current()
	key := suggest.KeyCompleteNext
	if previous {
		key = suggest.KeyCompletePrevious
	}
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: key})
	s.engine.Dispatch(suggest.TextChanged{Buffer: b.ID})
}

// Act runs one of the suggestion actions on the current buffer.
func (s *Session) Act(a suggest.Action) {
	s.ActWith(a, "", "")
}

// ActWith runs an action with arguments; only AddWord takes any.
func (s *Session) ActWith(a suggest.Action, dictionary, word string) {
	b := s.Current()
	s.engine.Dispatch(suggest.UserAction{Buffer: b.ID, Action: a, Dictionary: dictionary, Word: word})
	if a == suggest.ActionNext || a == suggest.ActionPrevious {
		s.engine.Dispatch(suggest.TextChanged{Buffer: b.ID})
	}
}

// Undo reverts the last edit of the current buffer.
func (s *Session) Undo() bool {
	b := s.Current()
	if b.undo.Len() == 0 {
		return false
	}
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: suggest.KeyDelete})
	col, ok := b.undo.Undo(&b.line)
	if !ok {
		return false
	}
	b.line.SetCursor(col)
	s.edited(b)
	return true
}

// Redo re-applies the last undone edit of the current buffer.
func (s *Session) Redo() bool {
	b := s.Current()
	col, ok := b.undo.Redo(&b.line)
	if !ok {
		return false
	}
	b.line.SetCursor(col)
	s.edited(b)
	return true
}

// Send submits the current line. A pending pick is applied first when
// auto_replace is on. Returns the sent text, which may be empty.
func (s *Session) Send() string {
	b := s.Current()
	s.engine.Dispatch(suggest.KeyEvent{Buffer: b.ID, Key: suggest.KeyReturn})

	text := b.line.Text
	if strings.TrimSpace(text) != "" {
		b.history = append(b.history, text)
		logger.Debug("sent %d runes on %s", len([]rune(text)), b.Name)
	}
	b.line = Line{}
	b.undo.Reset()
	b.spellErrors = nil
	b.spellCheckPending = false
	b.misspelling = nil
	s.edited(b)
	s.engine.Dispatch(suggest.MisspellingCleared{Buffer: b.ID})
	return text
}

// Spell checking

// PerformSpellChecks checks every buffer whose debounce has expired and
// reports whether any line was checked.
func (s *Session) PerformSpellChecks() bool {
	now := s.now()
	ran := false
	for _, b := range s.buffers {
		if b.spellCheckDue(now) {
			s.check(b)
			ran = true
		}
	}
	return ran
}

// CheckNow checks a buffer immediately.
func (s *Session) CheckNow(id suggest.BufferID) {
	if b := s.lookup(id); b != nil {
		s.check(b)
	}
}

func (s *Session) check(b *Buffer) {
	b.spellCheckPending = false
	b.spellErrors = s.checker.CheckLine(b.line.Text)

	m, ok := s.checker.CheckAt(b.line.Text, b.line.Cursor)
	if !ok {
		s.clearMisspelling(b)
		return
	}
	b.misspelling = &m
	s.engine.Dispatch(suggest.MisspellingDetected{
		Buffer:       b.ID,
		Word:         m.Word,
		Candidates:   m.Candidates,
		Groups:       m.Groups,
		Dictionaries: m.Dictionaries,
	})
}

func (s *Session) clearMisspelling(b *Buffer) {
	if b.misspelling == nil {
		return
	}
	b.misspelling = nil
	s.engine.Dispatch(suggest.MisspellingCleared{Buffer: b.ID})
}

// Buffers

// NewBuffer opens a buffer after the existing ones and switches to it.
func (s *Session) NewBuffer(name string) *Buffer {
	b := NewBuffer(name)
	s.buffers = append(s.buffers, b)
	s.Switch(len(s.buffers) - 1)
	return b
}

// Switch makes buffer i current.
func (s *Session) Switch(i int) {
	if i < 0 || i >= len(s.buffers) {
		return
	}
	from := s.Current().ID
	s.current = i
	s.syncMultiline()
	s.engine.Dispatch(suggest.BufferSwitched{From: from, To: s.Current().ID})
}

// Close closes the current buffer. Closing the last one leaves a fresh
// "main" buffer behind.
func (s *Session) Close() {
	closed := s.Current()
	s.buffers = append(s.buffers[:s.current], s.buffers[s.current+1:]...)
	s.engine.Dispatch(suggest.BufferClosed{Buffer: closed.ID})
	if len(s.buffers) == 0 {
		s.buffers = []*Buffer{NewBuffer("main")}
	}
	if s.current >= len(s.buffers) {
		s.current = len(s.buffers) - 1
	}
	s.syncMultiline()
	s.engine.Dispatch(suggest.BufferSwitched{To: s.Current().ID})
}

// Focus reports that the window showing the current buffer got focus.
func (s *Session) Focus() {
	s.engine.Dispatch(suggest.WindowSwitched{Buffer: s.Current().ID})
}
