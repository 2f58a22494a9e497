package spell

import "testing"

func TestExtractWords(t *testing.T) {
	tests := []struct {
		line     string
		expected []WordPosition
		desc     string
	}{
		{
			line: "hello world",
			expected: []WordPosition{
				{Word: "hello", StartCol: 0, EndCol: 5},
				{Word: "world", StartCol: 6, EndCol: 11},
			},
			desc: "simple two words",
		},
		{
			line: "don't can't won't",
			expected: []WordPosition{
				{Word: "don't", StartCol: 0, EndCol: 5},
				{Word: "can't", StartCol: 6, EndCol: 11},
				{Word: "won't", StartCol: 12, EndCol: 17},
			},
			desc: "contractions with apostrophes",
		},
		{
			line: "word123 test-case under_score",
			expected: []WordPosition{
				{Word: "word", StartCol: 0, EndCol: 4},
				{Word: "test", StartCol: 8, EndCol: 12},
				{Word: "case", StartCol: 13, EndCol: 17},
				{Word: "under", StartCol: 18, EndCol: 23},
				{Word: "score", StartCol: 24, EndCol: 29},
			},
			desc: "words with numbers and punctuation",
		},
		{
			line: "say 'teh'",
			expected: []WordPosition{
				{Word: "say", StartCol: 0, EndCol: 3},
				{Word: "teh", StartCol: 5, EndCol: 8},
			},
			desc: "closing quote trimmed",
		},
		{
			line: "über café",
			expected: []WordPosition{
				{Word: "über", StartCol: 0, EndCol: 4},
				{Word: "café", StartCol: 5, EndCol: 9},
			},
			desc: "rune columns",
		},
		{line: "", expected: nil, desc: "empty line"},
		{line: "123 456 789", expected: nil, desc: "only numbers"},
	}

	for _, tt := range tests {
		result := ExtractWords(tt.line)
		if len(result) != len(tt.expected) {
			t.Errorf("ExtractWords(%q) returned %d words, expected %d (%s)",
				tt.line, len(result), len(tt.expected), tt.desc)
			continue
		}
		for i, wp := range result {
			if wp != tt.expected[i] {
				t.Errorf("ExtractWords(%q)[%d] = %+v, expected %+v (%s)", tt.line, i, wp, tt.expected[i], tt.desc)
			}
		}
	}
}

func TestWordAt(t *testing.T) {
	tests := []struct {
		line   string
		cursor int
		word   string
		ok     bool
		desc   string
	}{
		{"say teh ", 8, "teh", true, "separator after word"},
		{"say teh", 5, "teh", true, "cursor inside word"},
		{"say teh", 4, "say", true, "cursor at word start belongs to previous"},
		{"say teh", 0, "", false, "cursor at line start"},
		{"", 0, "", false, "empty line"},
	}
	for _, tt := range tests {
		wp, ok := WordAt(tt.line, tt.cursor)
		if ok != tt.ok || wp.Word != tt.word {
			t.Errorf("WordAt(%q, %d) = %q, %v, expected %q, %v (%s)", tt.line, tt.cursor, wp.Word, ok, tt.word, tt.ok, tt.desc)
		}
	}
}

func TestMatchCase(t *testing.T) {
	if got := matchCase("Teh", "the"); got != "The" {
		t.Errorf("matchCase(Teh, the) = %q", got)
	}
	if got := matchCase("teh", "the"); got != "the" {
		t.Errorf("matchCase(teh, the) = %q", got)
	}
}
