package host

// OpType describes the kind of edit operation for undo.
type OpType int

const (
	OpInsertChar  OpType = iota // Inserted a character
	OpInsertChars               // Coalesced group of character inserts
	OpDeleteChar                // Deleted a character
	OpReplaceLine               // Whole line rewritten (a correction)
)

// UndoOp represents a single undoable operation or a coalesced group.
type UndoOp struct {
	Type   OpType
	Col    int
	Char   rune   // For single char ops.
	Text   string // For coalesced inserts.
	Before string // For line replacements.
	After  string
	// Cursor position to restore after undo.
	CursorCol int
	// Cursor position to restore after redo of a replacement.
	AfterCol int
}

// UndoStack manages the undo history with coalescing of consecutive inserts.
type UndoStack struct {
	ops      []UndoOp
	redoOps  []UndoOp
	coalesce *coalesceState
}

type coalesceState struct {
	startCol int
	nextCol  int
	chars    []rune
}

func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

func (u *UndoStack) clearRedo() {
	u.redoOps = nil
}

// PushInsertChar records a character insertion, coalescing with the previous
// insert if it's at the adjacent position.
func (u *UndoStack) PushInsertChar(col int, ch rune) {
	u.clearRedo()
	if u.coalesce != nil {
		c := u.coalesce
		if col == c.nextCol {
			c.chars = append(c.chars, ch)
			c.nextCol = col + 1
			return
		}
		u.flushCoalesce()
	}
	u.coalesce = &coalesceState{
		startCol: col,
		nextCol:  col + 1,
		chars:    []rune{ch},
	}
}

// PushDeleteChar records a character deletion at col.
func (u *UndoStack) PushDeleteChar(col int, ch rune, cursorCol int) {
	u.clearRedo()
	u.flushCoalesce()
	u.ops = append(u.ops, UndoOp{
		Type:      OpDeleteChar,
		Col:       col,
		Char:      ch,
		CursorCol: cursorCol,
	})
}

// PushReplaceLine records a whole-line rewrite.
func (u *UndoStack) PushReplaceLine(before, after string, cursorBefore, cursorAfter int) {
	if before == after {
		return
	}
	u.clearRedo()
	u.flushCoalesce()
	u.ops = append(u.ops, UndoOp{
		Type:      OpReplaceLine,
		Before:    before,
		After:     after,
		CursorCol: cursorBefore,
		AfterCol:  cursorAfter,
	})
}

// flushCoalesce converts the current coalescing state into an UndoOp.
func (u *UndoStack) flushCoalesce() {
	if u.coalesce == nil {
		return
	}
	c := u.coalesce
	if len(c.chars) == 1 {
		u.ops = append(u.ops, UndoOp{
			Type:      OpInsertChar,
			Col:       c.startCol,
			Char:      c.chars[0],
			CursorCol: c.startCol,
		})
	} else {
		u.ops = append(u.ops, UndoOp{
			Type:      OpInsertChars,
			Col:       c.startCol,
			Text:      string(c.chars),
			CursorCol: c.startCol,
		})
	}
	u.coalesce = nil
}

// Undo pops the last operation and applies its inverse to the line.
// Returns the cursor position to restore, and whether an undo occurred.
func (u *UndoStack) Undo(l *Line) (col int, ok bool) {
	u.flushCoalesce()
	if len(u.ops) == 0 {
		return 0, false
	}
	op := u.ops[len(u.ops)-1]
	u.ops = u.ops[:len(u.ops)-1]
	u.redoOps = append(u.redoOps, op)

	switch op.Type {
	case OpInsertChar:
		l.deleteRange(op.Col, op.Col+1)
	case OpInsertChars:
		l.deleteRange(op.Col, op.Col+len([]rune(op.Text)))
	case OpDeleteChar:
		l.insertAt(op.Col, []rune{op.Char})
	case OpReplaceLine:
		l.Text = op.Before
	}
	return op.CursorCol, true
}

// Redo re-applies an operation from the redo stack.
// Returns the cursor position to restore, and whether a redo occurred.
func (u *UndoStack) Redo(l *Line) (col int, ok bool) {
	if len(u.redoOps) == 0 {
		return 0, false
	}
	op := u.redoOps[len(u.redoOps)-1]
	u.redoOps = u.redoOps[:len(u.redoOps)-1]
	u.ops = append(u.ops, op)

	switch op.Type {
	case OpInsertChar:
		l.insertAt(op.Col, []rune{op.Char})
		return op.Col + 1, true
	case OpInsertChars:
		text := []rune(op.Text)
		l.insertAt(op.Col, text)
		return op.Col + len(text), true
	case OpDeleteChar:
		l.deleteRange(op.Col, op.Col+1)
		return op.CursorCol, true
	case OpReplaceLine:
		l.Text = op.After
		return op.AfterCol, true
	}
	return 0, false
}

// Len returns the number of pending undo operations.
func (u *UndoStack) Len() int {
	n := len(u.ops)
	if u.coalesce != nil {
		n++
	}
	return n
}

// Reset forgets all history.
func (u *UndoStack) Reset() {
	u.ops, u.redoOps, u.coalesce = nil, nil, nil
}
