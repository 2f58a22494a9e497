package spell

import (
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

// FuzzyDictionary is backed by a sajari/fuzzy model.
type FuzzyDictionary struct {
	name  string
	model *fuzzy.Model

	mu    sync.RWMutex
	known map[string]struct{}
}

// NewFuzzyDictionary trains a model on words.
func NewFuzzyDictionary(name string, words []string) *FuzzyDictionary {
	model := fuzzy.NewModel()

	// Set depth to 2 for better performance vs accuracy trade-off
	model.SetDepth(2)
	// Every listed word counts after one occurrence
	model.SetThreshold(1)

	d := &FuzzyDictionary{name: name, model: model, known: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

func (d *FuzzyDictionary) Name() string { return d.name }

// Check returns true if the word is spelled correctly
func (d *FuzzyDictionary) Check(word string) bool {
	if word == "" {
		return true
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.known[strings.ToLower(word)]
	return ok
}

// Suggest returns up to n ranked corrections.
func (d *FuzzyDictionary) Suggest(word string, n int) []string {
	lower := strings.ToLower(word)
	var out []string
	for _, s := range d.model.SpellCheckSuggestions(lower, n+1) {
		if s != lower && s != "" {
			out = append(out, s)
		}
		if len(out) == n {
			break
		}
	}
	return out
}

func (d *FuzzyDictionary) Add(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return
	}
	d.mu.Lock()
	_, seen := d.known[w]
	d.known[w] = struct{}{}
	d.mu.Unlock()
	if !seen {
		d.model.TrainWord(w)
	}
}
