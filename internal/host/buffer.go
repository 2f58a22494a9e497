package host

import (
	"time"

	"github.com/google/uuid"

	"github.com/JackWReid/spellfix/internal/spell"
	"github.com/JackWReid/spellfix/internal/suggest"
)

// SpellCheckDelay is how long typing must pause before a line is checked.
const SpellCheckDelay = 300 * time.Millisecond

// Buffer holds all per-buffer state: input line, undo history, spelling
// results and the lines already sent.
type Buffer struct {
	ID   suggest.BufferID
	Name string

	line    Line
	undo    *UndoStack
	history []string

	// Spell checking state
	spellErrors       []spell.SpellError // Cached spell errors
	misspelling       *spell.Misspelling // Last one reported to the engine
	spellCheckPending bool               // Debounce flag
	lastEdit          time.Time          // Last edit timestamp
}

// NewBuffer creates an empty buffer with a fresh time-ordered id.
func NewBuffer(name string) *Buffer {
	return &Buffer{
		ID:   suggest.BufferID(uuid.Must(uuid.NewV7()).String()),
		Name: name,
		undo: NewUndoStack(),
	}
}

func (b *Buffer) Text() string { return b.line.Text }
func (b *Buffer) Cursor() int  { return b.line.Cursor }

// History returns the sent lines, oldest first.
func (b *Buffer) History() []string {
	return append([]string(nil), b.history...)
}

// SpellErrors returns the cached spell errors of the line.
func (b *Buffer) SpellErrors() []spell.SpellError {
	return b.spellErrors
}

// SpellErrorCount returns the number of cached spell errors.
func (b *Buffer) SpellErrorCount() int {
	return len(b.spellErrors)
}

// ScheduleSpellCheck marks that a spell check should be performed after debouncing.
func (b *Buffer) ScheduleSpellCheck(now time.Time) {
	b.spellCheckPending = true
	b.lastEdit = now
}

// spellCheckDue reports whether a pending check has waited long enough.
func (b *Buffer) spellCheckDue(now time.Time) bool {
	return b.spellCheckPending && now.Sub(b.lastEdit) >= SpellCheckDelay
}
