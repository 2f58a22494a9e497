package suggest

// Locate finds the rightmost occurrence of word in text starting at or
// before cursor. Offsets are in runes. proximity is cursor minus the end of
// the match, negative when the cursor sits inside the word.
func Locate(word, text string, cursor int) (span Span, proximity int, ok bool) {
	w := []rune(word)
	t := []rune(text)
	if len(w) == 0 || len(w) > len(t) || cursor < 0 {
		return Span{}, 0, false
	}
	start := cursor
	if start > len(t)-len(w) {
		start = len(t) - len(w)
	}
	for i := start; i >= 0; i-- {
		if runesEqual(t[i:i+len(w)], w) {
			end := i + len(w)
			return Span{Start: i, End: end}, cursor - end, true
		}
	}
	return Span{}, 0, false
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
