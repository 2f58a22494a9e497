package suggest

import "github.com/JackWReid/spellfix/internal/config"

// Event is anything the engine reacts to. Events are handled strictly in
// the order they are dispatched.
type Event interface {
	isEvent()
}

// MisspellingDetected carries a structured misspelling signal.
type MisspellingDetected struct {
	Buffer       BufferID
	Word         string
	Candidates   []string
	Groups       []int
	Dictionaries []string
}

// SuggestPayload carries a "word:a,b/c,d" signal.
type SuggestPayload struct {
	Buffer  BufferID
	Payload string
}

// MisspellingCleared reports that the buffer no longer has a misspelling.
type MisspellingCleared struct {
	Buffer BufferID
}

type TextChanged struct {
	Buffer BufferID
}

type CursorMoved struct {
	Buffer BufferID
}

// BufferSwitched reports a change of the displayed buffer. From may be empty.
type BufferSwitched struct {
	From, To BufferID
}

type WindowSwitched struct {
	Buffer BufferID
}

type BufferClosed struct {
	Buffer BufferID
}

// MultilineChanged toggles the multiline-input guard.
type MultilineChanged struct {
	Active bool
}

// OptionsChanged replaces the engine's options.
type OptionsChanged struct {
	Options config.Options
}

// Action is a user command.
type Action int

const (
	ActionNext Action = iota
	ActionPrevious
	ActionReplace
	ActionAddWord
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionReplace:
		return "replace"
	case ActionAddWord:
		return "addword"
	}
	return "unknown"
}

// ParseAction maps a command name to an Action.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "", "next":
		return ActionNext, true
	case "previous":
		return ActionPrevious, true
	case "replace":
		return ActionReplace, true
	case "addword":
		return ActionAddWord, true
	}
	return 0, false
}

// UserAction is a command. Dictionary and Word are only read by
// ActionAddWord; both may be empty.
type UserAction struct {
	Buffer     BufferID
	Action     Action
	Dictionary string
	Word       string
}

// Key is an input key the engine intercepts.
type Key int

const (
	KeyCompleteNext Key = iota
	KeyCompletePrevious
	KeyReturn
	KeyDelete
	KeyMove
)

type KeyEvent struct {
	Buffer BufferID
	Key    Key
}

func (MisspellingDetected) isEvent() {}
func (SuggestPayload) isEvent()      {}
func (MisspellingCleared) isEvent()  {}
func (TextChanged) isEvent()         {}
func (CursorMoved) isEvent()         {}
func (BufferSwitched) isEvent()      {}
func (WindowSwitched) isEvent()      {}
func (BufferClosed) isEvent()        {}
func (MultilineChanged) isEvent()    {}
func (OptionsChanged) isEvent()      {}
func (UserAction) isEvent()          {}
func (KeyEvent) isEvent()            {}
