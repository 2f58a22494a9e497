package suggest

// Item names a display projection.
type Item string

const (
	ItemActiveSuggestion Item = "active_suggestion"
	ItemFullList         Item = "full_list"
)

// Host is the chat client the engine drives.
//
// SetText and SetCursor may dispatch events back into the engine; those are
// queued behind the current one. They must not call ActiveSuggestion or
// FullList synchronously. RequestRender is called with no engine locks
// held.
type Host interface {
	Text(buf BufferID) string
	SetText(buf BufferID, text string)
	Cursor(buf BufferID) int
	SetCursor(buf BufferID, pos int)
	ActiveDictionaries(buf BufferID) []string
	AddWord(dictionary, word string) error
	RequestRender(buf BufferID, item Item)
}
