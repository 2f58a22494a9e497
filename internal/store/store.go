// Package store keeps personal dictionary words and option values in sqlite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/JackWReid/spellfix/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS personal_words (
	dictionary TEXT NOT NULL,
	word       TEXT NOT NULL,
	added_at   INTEGER NOT NULL,
	PRIMARY KEY (dictionary, word)
);
CREATE TABLE IF NOT EXISTS options (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store is a sqlite-backed word and option store.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the database at path. ":memory:" is accepted.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	logger.Info("Store opened: %s", path)
	return &Store{db: db}, nil
}

// SaveWord records a word added to a dictionary. Saving a word twice is
// not an error.
func (s *Store) SaveWord(dictionary, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO personal_words (dictionary, word, added_at) VALUES (?, ?, ?)",
		dictionary, word, time.Now().Unix(),
	)
	if err != nil {
		logger.Error("Failed to save word %q: %v", word, err)
		return err
	}
	return nil
}

// Words returns a dictionary's personal words in the order they were added.
func (s *Store) Words(dictionary string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		"SELECT word FROM personal_words WHERE dictionary = ? ORDER BY added_at, rowid",
		dictionary,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// SaveOption stores an option value, replacing any earlier one.
func (s *Store) SaveOption(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		"INSERT INTO options (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// LoadOptions returns every stored option.
func (s *Store) LoadOptions() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT key, value FROM options")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opts := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		opts[k] = v
	}
	return opts, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
