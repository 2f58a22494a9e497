package spell

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultSuggestions caps candidates per dictionary.
const DefaultSuggestions = 5

// SpellError represents a misspelled word location in the line
type SpellError struct {
	StartCol int    // Starting column (rune index)
	EndCol   int    // Ending column (rune index)
	Word     string // The misspelled word
}

// Misspelling is what the checker reports for the word at the cursor.
type Misspelling struct {
	Word         string
	StartCol     int
	EndCol       int
	Candidates   []string
	Groups       []int
	Dictionaries []string
}

// Payload renders "word:a,b/c,d".
func (m Misspelling) Payload() string {
	groups := make([]string, 0, len(m.Groups))
	i := 0
	for _, n := range m.Groups {
		groups = append(groups, strings.Join(m.Candidates[i:i+n], ","))
		i += n
	}
	return m.Word + ":" + strings.Join(groups, "/")
}

// WordSaver persists words added to a dictionary.
type WordSaver interface {
	SaveWord(dictionary, word string) error
}

// Checker runs a line through an ordered set of dictionaries. A word is
// correct when any dictionary accepts it.
type Checker struct {
	mu             sync.RWMutex
	dicts          []Dictionary
	saver          WordSaver
	maxSuggestions int
}

// NewChecker creates a checker. saver may be nil.
func NewChecker(saver WordSaver, dicts ...Dictionary) *Checker {
	return &Checker{dicts: dicts, saver: saver, maxSuggestions: DefaultSuggestions}
}

// SetMaxSuggestions changes the per-dictionary candidate cap.
func (c *Checker) SetMaxSuggestions(n int) {
	if n > 0 {
		c.mu.Lock()
		c.maxSuggestions = n
		c.mu.Unlock()
	}
}

// Names returns the dictionary names in order.
func (c *Checker) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.dicts))
	for i, d := range c.dicts {
		names[i] = d.Name()
	}
	return names
}

// CheckWord returns true if any dictionary knows the word.
func (c *Checker) CheckWord(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if word == "" || len(c.dicts) == 0 {
		return true
	}
	for _, d := range c.dicts {
		if d.Check(word) {
			return true
		}
	}
	return false
}

// CheckLine returns every misspelled word in the line.
func (c *Checker) CheckLine(line string) []SpellError {
	var errors []SpellError
	for _, wp := range ExtractWords(line) {
		if skipWord(wp.Word) || c.CheckWord(wp.Word) {
			continue
		}
		errors = append(errors, SpellError{
			StartCol: wp.StartCol,
			EndCol:   wp.EndCol,
			Word:     wp.Word,
		})
	}
	return errors
}

// CheckAt reports the word at the cursor when it is misspelled, with each
// dictionary's suggestions as one group.
func (c *Checker) CheckAt(line string, cursor int) (Misspelling, bool) {
	wp, ok := WordAt(line, cursor)
	if !ok || skipWord(wp.Word) || c.CheckWord(wp.Word) {
		return Misspelling{}, false
	}
	return c.misspelling(wp), true
}

func (c *Checker) misspelling(wp WordPosition) Misspelling {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := Misspelling{Word: wp.Word, StartCol: wp.StartCol, EndCol: wp.EndCol}
	for _, d := range c.dicts {
		found := d.Suggest(wp.Word, c.maxSuggestions)
		for _, s := range found {
			m.Candidates = append(m.Candidates, matchCase(wp.Word, s))
		}
		m.Groups = append(m.Groups, len(found))
		m.Dictionaries = append(m.Dictionaries, d.Name())
	}
	return m
}

// AddWord teaches a dictionary a word and persists it. An empty name
// means the first dictionary.
func (c *Checker) AddWord(dictionary, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return fmt.Errorf("empty word")
	}
	c.mu.RLock()
	var target Dictionary
	for _, d := range c.dicts {
		if dictionary == "" || d.Name() == dictionary {
			target = d
			break
		}
	}
	saver := c.saver
	c.mu.RUnlock()

	if target == nil {
		return fmt.Errorf("unknown dictionary %q", dictionary)
	}
	target.Add(word)
	if saver != nil {
		if err := saver.SaveWord(target.Name(), strings.ToLower(word)); err != nil {
			return fmt.Errorf("saving %q: %w", word, err)
		}
	}
	return nil
}

// Train adds words to a named dictionary without persisting them.
func (c *Checker) Train(dictionary string, words []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.dicts {
		if d.Name() == dictionary {
			for _, w := range words {
				d.Add(w)
			}
			return
		}
	}
}
