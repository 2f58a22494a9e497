package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// PromptType indicates what kind of prompt is active.
type PromptType int

const (
	PromptNone    PromptType = iota
	PromptAddWord            // "Add word: [dictionary] word"
	PromptSet                // "Set: option value"
)

// StatusBar generates status bar text and handles prompt state.
type StatusBar struct {
	Prompt        PromptType
	PromptText    string // User input during a prompt.
	StatusMessage string // Temporary message (e.g. the last line sent).
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// FormatLeft returns the left-aligned portion of the status bar.
// bufferInfo is an optional "[2/3]" indicator when multiple buffers are open.
func (s *StatusBar) FormatLeft(name string, bufferInfo string, spellErrorCount int) string {
	if s.Prompt == PromptAddWord {
		return " Add word: " + s.PromptText
	}
	if s.Prompt == PromptSet {
		return " Set: " + s.PromptText
	}
	if s.StatusMessage != "" {
		return " " + s.StatusMessage
	}

	name = truncateName(name, 24)
	spellIndicator := ""
	if spellErrorCount > 0 {
		spellIndicator = " ●"
	}
	if bufferInfo != "" {
		return fmt.Sprintf(" %s%s %s", name, spellIndicator, bufferInfo)
	}
	return fmt.Sprintf(" %s%s", name, spellIndicator)
}

// FormatRight returns the right-aligned portion of the status bar.
func (s *StatusBar) FormatRight(spellErrorCount int, dictionaries []string, sent int) string {
	if s.Prompt != PromptNone {
		return ""
	}
	errorStr := ""
	if spellErrorCount > 0 {
		errorStr = fmt.Sprintf("%d errors  ", spellErrorCount)
	}
	return fmt.Sprintf("%s%d sent  %s ", errorStr, sent, strings.Join(dictionaries, ","))
}

// StartPrompt begins a prompt of the given type.
func (s *StatusBar) StartPrompt(pt PromptType) {
	s.Prompt = pt
	s.PromptText = ""
}

// ClearPrompt resets the prompt state.
func (s *StatusBar) ClearPrompt() {
	s.Prompt = PromptNone
	s.PromptText = ""
}

func (s *StatusBar) SetMessage(msg string) {
	s.StatusMessage = msg
}

func (s *StatusBar) ClearMessage() {
	s.StatusMessage = ""
}

// truncateName shortens a buffer name to width terminal cells.
func truncateName(name string, width int) string {
	if name == "" {
		return "[unnamed]"
	}
	return runewidth.Truncate(name, width, "…")
}

// HandlePromptKey processes a keypress during an active prompt.
// Returns (input string, done bool, cancelled bool).
func (s *StatusBar) HandlePromptKey(msg tea.KeyMsg) (string, bool, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		s.ClearPrompt()
		return "", false, true
	case tea.KeyEnter:
		text := s.PromptText
		s.ClearPrompt()
		return text, true, false
	case tea.KeyBackspace:
		if len(s.PromptText) > 0 {
			runes := []rune(s.PromptText)
			s.PromptText = string(runes[:len(runes)-1])
		}
		return "", false, false
	case tea.KeySpace:
		s.PromptText += " "
		return "", false, false
	case tea.KeyRunes:
		s.PromptText += string(msg.Runes)
		return "", false, false
	}
	return "", false, false
}

// parseSet splits "option value". The value may contain spaces.
func parseSet(input string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(strings.TrimSpace(input), " ")
	return key, strings.TrimSpace(value), ok && key != ""
}

// parseAddWord splits "[dictionary] word".
func parseAddWord(input string) (dictionary, word string) {
	fields := strings.Fields(input)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return "", fields[0]
	}
	return fields[0], fields[1]
}
