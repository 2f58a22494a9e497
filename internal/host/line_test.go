package host

import "testing"

func TestLineEditing(t *testing.T) {
	var l Line
	for _, ch := range "héllo" {
		l.InsertChar(ch)
	}
	if l.Text != "héllo" || l.Cursor != 5 {
		t.Fatalf("after typing: %q cursor %d", l.Text, l.Cursor)
	}

	ch, ok := l.DeleteBefore()
	if !ok || ch != 'o' || l.Text != "héll" || l.Cursor != 4 {
		t.Errorf("DeleteBefore: %q %v -> %q cursor %d", ch, ok, l.Text, l.Cursor)
	}

	l.Home()
	if _, ok := l.DeleteBefore(); ok {
		t.Error("DeleteBefore at line start should do nothing")
	}
	ch, ok = l.DeleteAfter()
	if !ok || ch != 'h' || l.Text != "éll" || l.Cursor != 0 {
		t.Errorf("DeleteAfter: %q %v -> %q cursor %d", ch, ok, l.Text, l.Cursor)
	}

	l.End()
	if _, ok := l.DeleteAfter(); ok {
		t.Error("DeleteAfter at line end should do nothing")
	}
}

func TestLineMovement(t *testing.T) {
	tests := []struct {
		move     func(*Line) bool
		start    int
		expected int
		moved    bool
		desc     string
	}{
		{(*Line).Left, 2, 1, true, "left"},
		{(*Line).Left, 0, 0, false, "left at start"},
		{(*Line).Right, 2, 3, true, "right"},
		{(*Line).Right, 3, 3, false, "right at end"},
		{(*Line).Home, 2, 0, true, "home"},
		{(*Line).Home, 0, 0, false, "home at start"},
		{(*Line).End, 1, 3, true, "end"},
		{(*Line).End, 3, 3, false, "end at end"},
	}
	for _, tt := range tests {
		l := Line{Text: "abc", Cursor: tt.start}
		moved := tt.move(&l)
		if l.Cursor != tt.expected || moved != tt.moved {
			t.Errorf("%s: cursor %d moved %v, expected %d %v", tt.desc, l.Cursor, moved, tt.expected, tt.moved)
		}
	}
}

func TestLineSetTextClampsCursor(t *testing.T) {
	l := Line{Text: "hello world", Cursor: 11}
	l.SetText("hi")
	if l.Cursor != 2 {
		t.Errorf("cursor after shrinking text = %d, expected 2", l.Cursor)
	}
	l.SetCursor(-4)
	if l.Cursor != 0 {
		t.Errorf("negative cursor clamped to %d", l.Cursor)
	}
}
