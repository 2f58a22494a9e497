package host

// Line holds the input line and its cursor (a rune index).
type Line struct {
	Text   string
	Cursor int
}

// Len returns the rune-length of the line.
func (l *Line) Len() int {
	return len([]rune(l.Text))
}

// SetText replaces the text and clamps the cursor.
func (l *Line) SetText(text string) {
	l.Text = text
	l.SetCursor(l.Cursor)
}

// SetCursor moves the cursor, clamped to the line.
func (l *Line) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := l.Len(); pos > n {
		pos = n
	}
	l.Cursor = pos
}

// InsertChar inserts a character at the cursor and moves past it.
func (l *Line) InsertChar(ch rune) {
	l.insertAt(l.Cursor, []rune{ch})
	l.Cursor++
}

func (l *Line) insertAt(col int, text []rune) {
	runes := []rune(l.Text)
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	newRunes := make([]rune, 0, len(runes)+len(text))
	newRunes = append(newRunes, runes[:col]...)
	newRunes = append(newRunes, text...)
	newRunes = append(newRunes, runes[col:]...)
	l.Text = string(newRunes)
}

func (l *Line) deleteRange(start, end int) {
	runes := []rune(l.Text)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return
	}
	l.Text = string(append(runes[:start], runes[end:]...))
}

// DeleteBefore deletes the character before the cursor.
func (l *Line) DeleteBefore() (rune, bool) {
	if l.Cursor == 0 {
		return 0, false
	}
	runes := []rune(l.Text)
	if l.Cursor > len(runes) {
		l.Cursor = len(runes)
	}
	ch := runes[l.Cursor-1]
	l.deleteRange(l.Cursor-1, l.Cursor)
	l.Cursor--
	return ch, true
}

// DeleteAfter deletes the character under the cursor.
func (l *Line) DeleteAfter() (rune, bool) {
	runes := []rune(l.Text)
	if l.Cursor >= len(runes) {
		return 0, false
	}
	ch := runes[l.Cursor]
	l.deleteRange(l.Cursor, l.Cursor+1)
	return ch, true
}

func (l *Line) Left() bool {
	if l.Cursor == 0 {
		return false
	}
	l.Cursor--
	return true
}

func (l *Line) Right() bool {
	if l.Cursor >= l.Len() {
		return false
	}
	l.Cursor++
	return true
}

func (l *Line) Home() bool {
	moved := l.Cursor != 0
	l.Cursor = 0
	return moved
}

func (l *Line) End() bool {
	n := l.Len()
	moved := l.Cursor != n
	l.Cursor = n
	return moved
}
