package suggest

import (
	"testing"
	"unicode/utf8"
)

func TestApply(t *testing.T) {
	tests := []struct {
		text        string
		span        Span
		replacement string
		cursor      int
		wantText    string
		wantCursor  int
		desc        string
	}{
		{"teh", Span{0, 3}, "the", 3, "the", 3, "same length keeps cursor"},
		{"i cant go", Span{2, 6}, "can't", 6, "i can't go", 8, "longer moves past word plus one"},
		{"hellooo world", Span{0, 7}, "hello", 7, "hello world", 7, "shorter keeps cursor"},
		{"teh  ", Span{0, 3}, "the", 5, "the ", 4, "trailing spaces collapse"},
		{"a teh   ", Span{2, 5}, "the", 5, "a the ", 5, "many trailing spaces collapse"},
		{"teh ", Span{0, 3}, "the", 4, "the ", 4, "single trailing space kept"},
		{"ab", Span{0, 2}, "abcdef", 2, "abcdef", 6, "cursor clamped to text"},
		{"naïve cafe", Span{6, 10}, "café", 10, "naïve café", 10, "rune offsets"},
	}

	for _, tt := range tests {
		gotText, gotCursor := Apply(tt.text, tt.span, tt.replacement, tt.cursor)
		if gotText != tt.wantText || gotCursor != tt.wantCursor {
			t.Errorf("Apply(%q, %v, %q, %d) = %q, %d, expected %q, %d (%s)",
				tt.text, tt.span, tt.replacement, tt.cursor, gotText, gotCursor, tt.wantText, tt.wantCursor, tt.desc)
		}
	}
}

func TestApplyRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		word string
		repl string
	}{
		{"teh cat", "teh", "the"},
		{"say helo", "helo", "hello"},
		{"wrld peace", "wrld", "world"},
		{"x recieve y", "recieve", "receive"},
	}
	for _, tt := range tests {
		span, _, ok := Locate(tt.word, tt.text, utf8.RuneCountInString(tt.text))
		if !ok {
			t.Fatalf("Locate(%q, %q) failed", tt.word, tt.text)
		}
		out, _ := Apply(tt.text, span, tt.repl, span.End)
		end := span.Start + utf8.RuneCountInString(tt.repl)
		again, _, ok := Locate(tt.repl, out, end)
		if !ok || again.Start != span.Start {
			t.Errorf("replacement %q not found at %d in %q (got %v, %v)", tt.repl, span.Start, out, again, ok)
		}
	}
}

func TestSpliceInlineCursor(t *testing.T) {
	tests := []struct {
		text       string
		span       Span
		repl       string
		cursor     int
		wantText   string
		wantCursor int
		desc       string
	}{
		{"teh x", Span{0, 3}, "the", 5, "the x", 5, "cursor after word, same length"},
		{"helo x", Span{0, 4}, "hello", 6, "hello x", 7, "cursor after word follows growth"},
		{"hello x", Span{0, 5}, "helo", 7, "helo x", 6, "cursor after word follows shrink"},
		{"helo", Span{0, 4}, "hello", 2, "hello", 5, "cursor inside word moves to its end"},
		{"x helo", Span{2, 6}, "hello", 1, "x hello", 1, "cursor before word untouched"},
	}
	for _, tt := range tests {
		gotText, gotCursor := spliceInline(tt.text, tt.span, tt.repl, tt.cursor)
		if gotText != tt.wantText || gotCursor != tt.wantCursor {
			t.Errorf("spliceInline(%q, %v, %q, %d) = %q, %d, expected %q, %d (%s)",
				tt.text, tt.span, tt.repl, tt.cursor, gotText, gotCursor, tt.wantText, tt.wantCursor, tt.desc)
		}
	}
}
