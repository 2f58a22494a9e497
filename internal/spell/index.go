package spell

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/f1monkey/spellchecker"
)

// IndexDictionary is backed by f1monkey/spellchecker.
type IndexDictionary struct {
	name string
	mu   sync.Mutex
	sc   *spellchecker.Spellchecker
}

// NewIndexDictionary indexes words. The alphabet is taken from the words
// themselves so non-English lists work.
func NewIndexDictionary(name string, words []string) (*IndexDictionary, error) {
	lower := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lower = append(lower, w)
		}
	}
	sc, err := spellchecker.New(alphabetOf(lower), spellchecker.WithMaxErrors(2))
	if err != nil {
		return nil, fmt.Errorf("building index for %s: %w", name, err)
	}
	sc.Add(lower...)
	return &IndexDictionary{name: name, sc: sc}, nil
}

func alphabetOf(words []string) string {
	seen := map[rune]bool{}
	for _, r := range "abcdefghijklmnopqrstuvwxyz'" {
		seen[r] = true
	}
	for _, w := range words {
		for _, r := range w {
			seen[r] = true
		}
	}
	runes := make([]rune, 0, len(seen))
	for r := range seen {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

func (d *IndexDictionary) Name() string { return d.name }

func (d *IndexDictionary) Check(word string) bool {
	if word == "" {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sc.IsCorrect(strings.ToLower(word))
}

func (d *IndexDictionary) Suggest(word string, n int) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	lower := strings.ToLower(word)
	found, err := d.sc.Suggest(lower, n+1)
	if err != nil {
		return nil
	}
	var out []string
	for _, s := range found {
		if s != lower {
			out = append(out, s)
		}
		if len(out) == n {
			break
		}
	}
	return out
}

func (d *IndexDictionary) Add(word string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sc.Add(strings.ToLower(word))
}
