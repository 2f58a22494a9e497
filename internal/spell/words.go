package spell

import (
	"strings"
	"unicode"
)

// WordPosition is a word and its rune columns in a line.
type WordPosition struct {
	Word     string
	StartCol int
	EndCol   int
}

// ExtractWords tokenizes a line into words with their positions (rune indices)
// Words are defined as sequences of letters and apostrophes
func ExtractWords(line string) []WordPosition {
	var words []WordPosition
	runes := []rune(line)

	inWord := false
	var startCol int
	var currentWord strings.Builder

	for i, r := range runes {
		isLetter := unicode.IsLetter(r)
		isApostrophe := r == '\''

		if isLetter || (isApostrophe && inWord) {
			if !inWord {
				startCol = i
				inWord = true
				currentWord.Reset()
			}
			currentWord.WriteRune(r)
		} else if inWord {
			words = append(words, trimApostrophes(currentWord.String(), startCol))
			inWord = false
		}
	}

	// Handle word at end of line
	if inWord {
		words = append(words, trimApostrophes(currentWord.String(), startCol))
	}

	return words
}

// trimApostrophes drops trailing quote marks.
func trimApostrophes(word string, start int) WordPosition {
	w := strings.TrimRight(word, "'")
	return WordPosition{Word: w, StartCol: start, EndCol: start + len([]rune(w))}
}

// WordAt returns the rightmost word starting before cursor: the word under
// the cursor, or the last one typed when only separators follow it.
func WordAt(line string, cursor int) (WordPosition, bool) {
	words := ExtractWords(line)
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].StartCol < cursor {
			return words[i], true
		}
	}
	return WordPosition{}, false
}

// skipWord reports words too short or too shouty to check.
func skipWord(word string) bool {
	runes := []rune(word)

	// Skip very short words (1-2 letters) as fuzzy matching doesn't work well for them
	if len(runes) <= 2 {
		return true
	}

	// Skip words that are all uppercase (likely acronyms like API, HTTP)
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// matchCase gives s the capitalization pattern of like.
func matchCase(like, s string) string {
	runes := []rune(like)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return s
	}
	out := []rune(s)
	if len(out) > 0 {
		out[0] = unicode.ToUpper(out[0])
	}
	return string(out)
}
