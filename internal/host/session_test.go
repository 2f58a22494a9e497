package host

import (
	"testing"
	"time"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/JackWReid/spellfix/internal/spell"
	"github.com/JackWReid/spellfix/internal/suggest"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time         { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T, mutate func(*config.Options)) (*Session, *testClock) {
	t.Helper()
	dict := spell.NewFuzzyDictionary("en_GB", []string{"say", "hello", "world"})
	opts := config.Defaults()
	if mutate != nil {
		mutate(&opts)
	}
	s := NewSession(spell.NewChecker(nil, dict), opts, nil)
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.now = clock.now
	return s, clock
}

func TestSpellCheckDebounce(t *testing.T) {
	s, clock := newTestSession(t, nil)
	s.InsertText("say helo")

	if s.PerformSpellChecks() {
		t.Fatal("check ran before the debounce expired")
	}
	clock.advance(SpellCheckDelay)
	if !s.PerformSpellChecks() {
		t.Fatal("check did not run after the debounce")
	}
	if s.PerformSpellChecks() {
		t.Fatal("check ran twice for one edit")
	}

	rec, ok := s.Engine().Record(s.Current().ID)
	if !ok || rec.Word != "helo" || len(rec.Candidates) != 1 || rec.Candidates[0] != "hello" {
		t.Fatalf("record = %+v, %v", rec, ok)
	}
	if s.Current().SpellErrorCount() != 1 {
		t.Errorf("spell errors = %d, expected 1", s.Current().SpellErrorCount())
	}
}

func TestCycleThenTypeCommits(t *testing.T) {
	s, _ := newTestSession(t, nil)
	b := s.Current()
	s.InsertText("say helo")
	s.CheckNow(b.ID)

	s.Act(suggest.ActionNext)
	if got := s.ActiveSuggestion(); got != "hello" {
		t.Fatalf("active suggestion = %q", got)
	}
	if got := s.FullList(); got != "hello," {
		t.Fatalf("full list = %q", got)
	}

	s.InsertText(" ")
	if b.Text() != "say hello" {
		t.Fatalf("after typing: %q", b.Text())
	}
	if _, ok := s.Engine().Cycle(b.ID); ok {
		t.Error("cycle state should be gone after the commit")
	}

	if !s.Undo() || b.Text() != "say helo " {
		t.Fatalf("undo of the correction: %q", b.Text())
	}
	if !s.Redo() || b.Text() != "say hello" {
		t.Fatalf("redo of the correction: %q", b.Text())
	}
}

func TestReplaceModeCompletion(t *testing.T) {
	s, _ := newTestSession(t, func(o *config.Options) { o.ReplaceMode = true })
	b := s.Current()
	s.InsertText("helo")
	s.CheckNow(b.ID)

	s.Complete(false)
	if b.Text() != "hello" || b.Cursor() != 5 {
		t.Fatalf("after complete: %q cursor %d", b.Text(), b.Cursor())
	}
	if in, ok := s.Engine().Inline(b.ID); !ok || !in.Armed {
		t.Fatalf("inline state = %+v, %v", in, ok)
	}

	s.Move(MoveLeft)
	if in, ok := s.Engine().Inline(b.ID); ok && in.Armed {
		t.Error("moving should cancel inline replacement")
	}
}

func TestReplaceModeReachesNextWord(t *testing.T) {
	s, _ := newTestSession(t, func(o *config.Options) { o.ReplaceMode = true })
	b := s.Current()
	s.InsertText("helo")
	s.CheckNow(b.ID)
	s.Complete(false)
	if b.Text() != "hello" {
		t.Fatalf("after first complete: %q", b.Text())
	}

	s.InsertText(" say wrld")
	s.CheckNow(b.ID)
	if rec, ok := s.Engine().Record(b.ID); !ok || rec.Word != "wrld" {
		t.Fatalf("record = %+v, %v", rec, ok)
	}
	s.Complete(false)
	if b.Text() != "hello say world" {
		t.Fatalf("after second complete: %q", b.Text())
	}
	if in, ok := s.Engine().Inline(b.ID); !ok || !in.Armed || in.Candidates[0] != "world" {
		t.Errorf("inline state = %+v, %v", in, ok)
	}
}

func TestDeleteKeysDispatchBeforeEdit(t *testing.T) {
	tests := []struct {
		cursor int
		edit   func(*Session)
		desc   string
	}{
		{8, func(s *Session) { s.Backspace() }, "backspace"},
		{7, func(s *Session) { s.DeleteForward() }, "delete forward"},
		{8, func(s *Session) { s.Undo() }, "undo"},
	}
	for _, tt := range tests {
		s, _ := newTestSession(t, nil)
		b := s.Current()
		s.InsertText("say helo")
		s.CheckNow(b.ID)
		s.SetCursor(b.ID, tt.cursor)

		var seen []string
		s.OnRender(func(suggest.BufferID, suggest.Item) {
			seen = append(seen, b.Text())
		})
		tt.edit(s)
		if len(seen) == 0 {
			t.Errorf("no render for the delete key (%s)", tt.desc)
			continue
		}
		if seen[0] != "say helo" {
			t.Errorf("line at delete key = %q, expected %q (%s)", seen[0], "say helo", tt.desc)
		}
		if b.Text() == "say helo" {
			t.Errorf("line unchanged after edit (%s)", tt.desc)
		}
	}
}

func TestUndoWithNothingToUndo(t *testing.T) {
	s, _ := newTestSession(t, nil)
	var renders int
	s.OnRender(func(suggest.BufferID, suggest.Item) { renders++ })
	if s.Undo() {
		t.Fatal("Undo() on an empty history reported true")
	}
	if renders != 0 {
		t.Errorf("renders = %d, expected none", renders)
	}
}

func TestSendCommitsPick(t *testing.T) {
	s, _ := newTestSession(t, nil)
	b := s.Current()
	s.InsertText("say helo")
	s.CheckNow(b.ID)
	s.Act(suggest.ActionNext)

	if got := s.Send(); got != "say hello" {
		t.Fatalf("Send() = %q", got)
	}
	if b.Text() != "" || b.Cursor() != 0 {
		t.Errorf("line not cleared: %q", b.Text())
	}
	if h := b.History(); len(h) != 1 || h[0] != "say hello" {
		t.Errorf("history = %v", h)
	}
	if _, ok := s.Engine().Record(b.ID); ok {
		t.Error("record should be cleared after send")
	}
	if s.Undo() {
		t.Error("undo history should be reset after send")
	}
}

func TestAddWordRechecks(t *testing.T) {
	s, clock := newTestSession(t, nil)
	b := s.Current()
	s.InsertText("say helo")
	s.CheckNow(b.ID)

	s.Act(suggest.ActionAddWord)
	if _, ok := s.Engine().Record(b.ID); ok {
		t.Fatal("adding the misspelled word should clear its record")
	}
	if !s.PerformSpellChecks() {
		t.Fatal("adding a word should make every buffer due for a check")
	}
	clock.advance(time.Second)
	if b.SpellErrorCount() != 0 {
		t.Errorf("spell errors after AddWord = %d", b.SpellErrorCount())
	}
}

func TestBackspaceDropsPick(t *testing.T) {
	s, _ := newTestSession(t, nil)
	b := s.Current()
	s.InsertText("say helo")
	s.CheckNow(b.ID)
	s.Act(suggest.ActionNext)

	s.Backspace()
	if b.Text() != "say hel" {
		t.Fatalf("after backspace: %q", b.Text())
	}
	if _, ok := s.Engine().Cycle(b.ID); ok {
		t.Error("delete key should drop the pick")
	}
}

func TestBuffers(t *testing.T) {
	s, _ := newTestSession(t, nil)
	first := s.Current()

	second := s.NewBuffer("second")
	if s.Index() != 1 || s.Current() != second {
		t.Fatalf("new buffer not current: index %d", s.Index())
	}
	if first.ID == second.ID {
		t.Fatal("buffer ids must differ")
	}

	s.InsertText("text in second")
	s.Switch(0)
	if s.Current().Text() != "" {
		t.Errorf("first buffer text = %q", s.Current().Text())
	}

	s.Switch(5)
	if s.Index() != 0 {
		t.Errorf("out of range switch moved to %d", s.Index())
	}

	s.Close()
	if len(s.Buffers()) != 1 || s.Current() != second {
		t.Fatalf("after close: %d buffers", len(s.Buffers()))
	}
	s.Close()
	if len(s.Buffers()) != 1 || s.Current().Name != "main" || s.Current() == second {
		t.Fatal("closing the last buffer should leave a fresh main buffer")
	}
}

func TestMultilineAndRenders(t *testing.T) {
	s, _ := newTestSession(t, nil)
	var renders []string
	s.OnRender(func(buf suggest.BufferID, item suggest.Item) {
		renders = append(renders, string(item))
	})

	s.InsertText("one\ntwo")
	if !s.multiline {
		t.Error("newline in the line should enable the multiline guard")
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	s.Backspace()
	if s.multiline {
		t.Errorf("multiline guard still on for %q", s.Current().Text())
	}

	s.Focus()
	if len(renders) == 0 {
		t.Error("focus should request a render")
	}
}
