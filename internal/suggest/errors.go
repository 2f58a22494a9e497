package suggest

import "errors"

// These never reach the host; the engine logs them and shows nothing.
var (
	ErrNoActiveMisspelling        = errors.New("no active misspelling")
	ErrWordNotLocatable           = errors.New("misspelled word not found before cursor")
	ErrEmptyCandidateList         = errors.New("no suggestions for misspelled word")
	ErrMalformedSuggestionPayload = errors.New("malformed suggestion payload")
)
