package suggest

import (
	"strings"
	"unicode/utf8"
)

// Apply splices replacement over span and returns the new text and cursor.
// A longer replacement moves the cursor past the inserted text plus one;
// otherwise the cursor stays where it was.
func Apply(text string, span Span, replacement string, cursor int) (string, int) {
	t := []rune(text)
	start, end := clampSpan(span, len(t))
	r := []rune(replacement)

	out := make([]rune, 0, len(t)-(end-start)+len(r))
	out = append(out, t[:start]...)
	out = append(out, r...)
	out = append(out, t[end:]...)
	newText := normalizeTrailing(string(out))

	if delta := len(r) - (end - start); delta > 0 {
		cursor += delta + 1
	}
	return newText, clamp(cursor, 0, utf8.RuneCountInString(newText))
}

// spliceInline swaps the word at span for replacement while the user
// cycles in place. The cursor follows the end of the word.
func spliceInline(text string, span Span, replacement string, cursor int) (string, int) {
	t := []rune(text)
	start, end := clampSpan(span, len(t))
	r := []rune(replacement)

	out := make([]rune, 0, len(t)-(end-start)+len(r))
	out = append(out, t[:start]...)
	out = append(out, r...)
	out = append(out, t[end:]...)
	newText := normalizeTrailing(string(out))

	switch {
	case cursor >= end:
		cursor += len(r) - (end - start)
	case cursor > start:
		cursor = start + len(r)
	}
	return newText, clamp(cursor, 0, utf8.RuneCountInString(newText))
}

// normalizeTrailing collapses two or more trailing spaces into one.
func normalizeTrailing(s string) string {
	if strings.HasSuffix(s, "  ") {
		return strings.TrimRight(s, " ") + " "
	}
	return s
}

func clampSpan(span Span, n int) (int, int) {
	start := clamp(span.Start, 0, n)
	end := clamp(span.End, start, n)
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
