package suggest

// BufferID identifies one editing context.
type BufferID string

// SourceKind records how the current pick came about.
type SourceKind int

const (
	Located      SourceKind = iota // pick found near the cursor after a move
	Cycling                        // user asked for next/previous
	ReplaceArmed                   // next edit commits the pick
)

func (k SourceKind) String() string {
	switch k {
	case Located:
		return "located"
	case Cycling:
		return "cycling"
	case ReplaceArmed:
		return "armed"
	}
	return "unknown"
}

// MisspellRecord is the latest misspelling reported for a buffer.
type MisspellRecord struct {
	Word         string
	Candidates   []string
	Groups       []int    // candidates contributed per dictionary
	Dictionaries []string // parallel to Groups when known

	generation uint64
}

func (r *MisspellRecord) sameAs(o *MisspellRecord) bool {
	if r.Word != o.Word || len(r.Candidates) != len(o.Candidates) || len(r.Groups) != len(o.Groups) {
		return false
	}
	for i := range r.Candidates {
		if r.Candidates[i] != o.Candidates[i] {
			return false
		}
	}
	for i := range r.Groups {
		if r.Groups[i] != o.Groups[i] {
			return false
		}
	}
	return true
}

func (r MisspellRecord) clone() MisspellRecord {
	r.Candidates = append([]string(nil), r.Candidates...)
	r.Groups = append([]int(nil), r.Groups...)
	r.Dictionaries = append([]string(nil), r.Dictionaries...)
	return r
}

// CycleState is the user's position in the candidate list.
type CycleState struct {
	Kind  SourceKind
	Index int // -1 means no selection
	Pick  string

	generation uint64
}

// Span is a half-open rune range [Start, End).
type Span struct {
	Start, End int
}

// InlineReplaceState tracks in-place cycling when replace mode is on.
type InlineReplaceState struct {
	Armed       bool
	Span        Span
	SavedCursor int
	Candidates  []string
	Index       int
}

type bufferState struct {
	record *MisspellRecord
	cycle  *CycleState
	inline *InlineReplaceState

	anchor       int // cursor position while the misspelling was live, -1 when unset
	savedLine    string
	hasSavedLine bool
}

func (st *bufferState) saveLine(text string) {
	st.savedLine = text
	st.hasSavedLine = true
}

func (st *bufferState) dropSavedLine() {
	st.savedLine = ""
	st.hasSavedLine = false
}

// dropReplaceMode forgets the inline state and the relocation anchor.
func (st *bufferState) dropReplaceMode() {
	st.inline = nil
	st.anchor = -1
}

// Store holds suggestion state per buffer. It is not safe for concurrent
// use; Engine serializes access.
type Store struct {
	buffers    map[BufferID]*bufferState
	generation uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{buffers: make(map[BufferID]*bufferState)}
}

func (s *Store) peek(buf BufferID) *bufferState {
	return s.buffers[buf]
}

func (s *Store) state(buf BufferID) *bufferState {
	st, ok := s.buffers[buf]
	if !ok {
		st = &bufferState{anchor: -1}
		s.buffers[buf] = st
	}
	return st
}

// SetMisspelling replaces the buffer's record and clears its cycle state.
// An identical record leaves everything untouched and reports false.
func (s *Store) SetMisspelling(buf BufferID, rec MisspellRecord) bool {
	st := s.state(buf)
	if st.record != nil && st.record.sameAs(&rec) {
		return false
	}
	s.generation++
	r := rec.clone()
	r.generation = s.generation
	st.record = &r
	st.cycle = nil
	return true
}

// ClearMisspelling drops the record and any pick built from it.
func (s *Store) ClearMisspelling(buf BufferID) {
	if st := s.peek(buf); st != nil {
		st.record = nil
		st.cycle = nil
	}
}

// Clear removes all suggestion state for the buffer.
func (s *Store) Clear(buf BufferID) {
	if st := s.peek(buf); st != nil {
		st.record = nil
		st.cycle = nil
		st.dropReplaceMode()
		st.dropSavedLine()
	}
}

// Remove forgets the buffer entirely.
func (s *Store) Remove(buf BufferID) {
	delete(s.buffers, buf)
}

// Record returns a copy of the buffer's record.
func (s *Store) Record(buf BufferID) (MisspellRecord, bool) {
	st := s.peek(buf)
	if st == nil || st.record == nil {
		return MisspellRecord{}, false
	}
	return st.record.clone(), true
}

// Cycle returns a copy of the buffer's cycle state.
func (s *Store) Cycle(buf BufferID) (CycleState, bool) {
	st := s.peek(buf)
	if st == nil || st.cycle == nil {
		return CycleState{}, false
	}
	return *st.cycle, true
}

// Inline returns a copy of the buffer's inline replace state.
func (s *Store) Inline(buf BufferID) (InlineReplaceState, bool) {
	st := s.peek(buf)
	if st == nil || st.inline == nil {
		return InlineReplaceState{}, false
	}
	in := *st.inline
	in.Candidates = append([]string(nil), in.Candidates...)
	return in, true
}
