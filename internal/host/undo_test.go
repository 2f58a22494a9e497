package host

import "testing"

func TestUndoInsertChar(t *testing.T) {
	l := Line{Text: "hello", Cursor: 5}
	undo := NewUndoStack()

	undo.PushInsertChar(5, '!')
	l.InsertChar('!')

	// Force flush by pushing a different op type.
	undo.flushCoalesce()

	col, ok := undo.Undo(&l)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if l.Text != "hello" {
		t.Errorf("after undo: %q", l.Text)
	}
	if col != 5 {
		t.Errorf("cursor after undo: %d", col)
	}
}

func TestUndoDeleteChar(t *testing.T) {
	l := Line{Text: "hello", Cursor: 5}
	undo := NewUndoStack()

	ch, _ := l.DeleteBefore()
	undo.PushDeleteChar(4, ch, 5)

	col, ok := undo.Undo(&l)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if l.Text != "hello" {
		t.Errorf("after undo: %q", l.Text)
	}
	if col != 5 {
		t.Errorf("cursor: %d", col)
	}
}

func TestUndoCoalescing(t *testing.T) {
	var l Line
	undo := NewUndoStack()

	// Simulate typing "hello" at consecutive positions.
	for i, ch := range "hello" {
		undo.PushInsertChar(i, ch)
		l.InsertChar(ch)
	}

	// Should be coalesced into a single undo operation.
	undo.flushCoalesce()
	if undo.Len() != 1 {
		t.Fatalf("expected 1 coalesced op, got %d", undo.Len())
	}

	col, ok := undo.Undo(&l)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if l.Text != "" {
		t.Errorf("after undo coalesced insert: %q", l.Text)
	}
	if col != 0 {
		t.Errorf("cursor: %d", col)
	}

	col, ok = undo.Redo(&l)
	if !ok || l.Text != "hello" || col != 5 {
		t.Errorf("after redo: %q cursor %d", l.Text, col)
	}
}

func TestUndoCoalescingBreaksOnGap(t *testing.T) {
	undo := NewUndoStack()

	undo.PushInsertChar(0, 'a')
	undo.PushInsertChar(1, 'b')
	// Gap: insert at col 5 (non-adjacent).
	undo.PushInsertChar(5, 'c')

	undo.flushCoalesce()
	if undo.Len() != 2 {
		t.Errorf("expected 2 ops (coalesced ab + separate c), got %d", undo.Len())
	}
}

func TestUndoEmpty(t *testing.T) {
	l := Line{Text: "hello"}
	undo := NewUndoStack()

	if _, ok := undo.Undo(&l); ok {
		t.Error("undo on empty stack should return false")
	}
	if _, ok := undo.Redo(&l); ok {
		t.Error("redo on empty stack should return false")
	}
}

func TestUndoReplaceLine(t *testing.T) {
	l := Line{Text: "say the", Cursor: 7}
	undo := NewUndoStack()

	undo.PushReplaceLine("say teh", "say the", 7, 7)
	col, ok := undo.Undo(&l)
	if !ok || l.Text != "say teh" || col != 7 {
		t.Fatalf("after undo: %q cursor %d", l.Text, col)
	}
	col, ok = undo.Redo(&l)
	if !ok || l.Text != "say the" || col != 7 {
		t.Fatalf("after redo: %q cursor %d", l.Text, col)
	}

	undo.PushReplaceLine("same", "same", 0, 0)
	if undo.Len() != 1 {
		t.Errorf("no-op replacement recorded, len %d", undo.Len())
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	var l Line
	undo := NewUndoStack()
	undo.PushInsertChar(0, 'a')
	l.InsertChar('a')
	undo.Undo(&l)

	undo.PushInsertChar(0, 'b')
	if _, ok := undo.Redo(&l); ok {
		t.Error("redo should be cleared by a new edit")
	}
}
