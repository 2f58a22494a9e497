package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Option keys.
const (
	KeyAutoPopUpItem        = "auto_pop_up_item"
	KeyAutoReplace          = "auto_replace"
	KeyCatchInputCompletion = "catch_input_completion"
	KeyEatInputChar         = "eat_input_char"
	KeySuggestItem          = "suggest_item"
	KeyHideSingleDict       = "hide_single_dict"
	KeyCompleteNear         = "complete_near"
	KeyReplaceMode          = "replace_mode"
	KeyHighlightColor       = "highlight_color"
)

// Options is a typed snapshot of the option store.
type Options struct {
	AutoPopUpItem        bool
	AutoReplace          bool
	CatchInputCompletion bool
	EatInputChar         bool
	SuggestItem          string
	HideSingleDict       bool
	CompleteNear         int
	ReplaceMode          bool
	HighlightColor       string
}

type optionKind int

const (
	kindBool optionKind = iota
	kindInt
	kindString
)

type optionDef struct {
	kind        optionKind
	value       string
	description string
}

var defaults = map[string]optionDef{
	KeyAutoPopUpItem: {kindBool, "off",
		"automatically pop up the suggestion item on a misspelled word"},
	KeyAutoReplace: {kindBool, "on",
		"replace the misspelled word with the selected suggestion on the next edit"},
	KeyCatchInputCompletion: {kindBool, "on",
		"use the completion keys to cycle through suggestions"},
	KeyEatInputChar: {kindBool, "on",
		"drop the character typed right after choosing a suggestion"},
	KeySuggestItem: {kindString, "${white}%S${default}",
		"item format (%S = suggestion, %D = dictionary), colors allowed with ${color}"},
	KeyHideSingleDict: {kindBool, "on",
		"hide the dictionary name in the item when only one dictionary is active"},
	KeyCompleteNear: {kindInt, "0",
		"cycle only when the cursor is at most this many characters past the misspelled word (0 = off)"},
	KeyReplaceMode: {kindBool, "off",
		"replace the misspelled word inline while cycling"},
	KeyHighlightColor: {kindString, "red",
		"color of the selected entry in the suggestion list"},
}

// Defaults returns the built-in option values.
func Defaults() Options {
	s := NewStore(nil)
	return s.Options()
}

// Persister saves option values somewhere durable.
type Persister interface {
	SaveOption(key, value string) error
}

// ChangeFunc is called after an option changed value.
type ChangeFunc func(key, value string, opts Options)

// Store is the key-value option store.
type Store struct {
	mu        sync.RWMutex
	values    map[string]string
	persister Persister
	listeners []ChangeFunc
}

// NewStore creates a store holding the default values. p may be nil.
func NewStore(p Persister) *Store {
	values := make(map[string]string, len(defaults))
	for k, def := range defaults {
		values[k] = def.value
	}
	return &Store{values: values, persister: p}
}

// Keys returns the recognized option keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Describe returns the description of an option.
func (s *Store) Describe(key string) (string, bool) {
	def, ok := defaults[key]
	return def.description, ok
}

// Get returns the raw value of an option.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set validates and stores a value, persists it and notifies listeners.
func (s *Store) Set(key, value string) error {
	norm, err := normalize(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.values[key]
	s.values[key] = norm
	listeners := append([]ChangeFunc(nil), s.listeners...)
	persister := s.persister
	s.mu.Unlock()

	if persister != nil {
		if err := persister.SaveOption(key, norm); err != nil {
			return fmt.Errorf("saving option %s: %w", key, err)
		}
	}
	if old == norm {
		return nil
	}
	opts := s.Options()
	for _, fn := range listeners {
		fn(key, norm, opts)
	}
	return nil
}

// Load applies a batch of values without persisting them. Unknown keys and
// invalid values are reported together.
func (s *Store) Load(values map[string]string) error {
	var bad []string
	s.mu.Lock()
	for k, v := range values {
		norm, err := normalize(k, v)
		if err != nil {
			bad = append(bad, err.Error())
			continue
		}
		s.values[k] = norm
	}
	s.mu.Unlock()
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("invalid options: %s", strings.Join(bad, "; "))
	}
	return nil
}

// OnChange registers a listener fired after each successful Set that
// changes a value.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Options returns a typed snapshot.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, _ := strconv.Atoi(s.values[KeyCompleteNear])
	return Options{
		AutoPopUpItem:        isOn(s.values[KeyAutoPopUpItem]),
		AutoReplace:          isOn(s.values[KeyAutoReplace]),
		CatchInputCompletion: isOn(s.values[KeyCatchInputCompletion]),
		EatInputChar:         isOn(s.values[KeyEatInputChar]),
		SuggestItem:          s.values[KeySuggestItem],
		HideSingleDict:       isOn(s.values[KeyHideSingleDict]),
		CompleteNear:         n,
		ReplaceMode:          isOn(s.values[KeyReplaceMode]),
		HighlightColor:       s.values[KeyHighlightColor],
	}
}

func isOn(v string) bool { return v == "on" }

func normalize(key, value string) (string, error) {
	def, ok := defaults[key]
	if !ok {
		return "", fmt.Errorf("unknown option %q", key)
	}
	switch def.kind {
	case kindBool:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "on", "true", "yes", "1":
			return "on", nil
		case "off", "false", "no", "0":
			return "off", nil
		}
		return "", fmt.Errorf("option %s: %q is not on/off", key, value)
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return "", fmt.Errorf("option %s: %q is not a non-negative integer", key, value)
		}
		return strconv.Itoa(n), nil
	}
	return value, nil
}
