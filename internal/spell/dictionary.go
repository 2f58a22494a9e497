package spell

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JackWReid/spellfix/internal/config"
)

//go:embed dictionaries/*.txt
var embedded embed.FS

// Dictionary is one word list that can check and suggest.
type Dictionary interface {
	Name() string
	Check(word string) bool
	Suggest(word string, n int) []string
	Add(word string)
}

// EmbeddedNames lists the bundled word lists.
func EmbeddedNames() []string {
	entries, err := embedded.ReadDir("dictionaries")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	return names
}

// ReadWords reads one word per line, skipping blanks and # comments.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return words, sc.Err()
}

func loadWords(cfg config.DictionaryConfig) ([]string, error) {
	if cfg.Words == "" {
		f, err := embedded.Open("dictionaries/" + cfg.Name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("no bundled word list for %s", cfg.Name)
		}
		defer f.Close()
		return ReadWords(f)
	}
	f, err := os.Open(cfg.Words)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}

// Open builds the dictionary described by cfg.
func Open(cfg config.DictionaryConfig) (Dictionary, error) {
	words, err := loadWords(cfg)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", cfg.Name, err)
	}
	switch cfg.Engine {
	case config.EngineIndex:
		return NewIndexDictionary(cfg.Name, words)
	case config.EngineFuzzy, "":
		return NewFuzzyDictionary(cfg.Name, words), nil
	}
	return nil, fmt.Errorf("dictionary %s: unknown engine %q", cfg.Name, cfg.Engine)
}
