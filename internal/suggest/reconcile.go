package suggest

import (
	"fmt"

	"github.com/JackWReid/spellfix/internal/logger"
)

// anchorSlack is how far past the anchor (beyond complete_near) the cursor
// may travel before stale state is dropped.
const anchorSlack = 3

func hasPick(st *bufferState) bool {
	return st.cycle != nil && st.cycle.Pick != ""
}

func (e *Engine) onTextChanged(buf BufferID) {
	if e.multiline {
		return
	}
	st := e.store.peek(buf)
	if st == nil {
		return
	}
	if !hasPick(st) {
		e.trackAnchor(buf, st)
		return
	}
	if st.cycle.Kind != ReplaceArmed {
		// This edit is the echo of the key that produced the pick.
		st.cycle.Kind = ReplaceArmed
		return
	}
	if e.opts.AutoReplace {
		e.commit(buf, st)
		return
	}
	e.request(buf, ItemActiveSuggestion, ItemFullList)
}

func (e *Engine) onCursorMoved(buf BufferID) {
	st := e.store.peek(buf)
	if st == nil {
		return
	}
	if !hasPick(st) {
		e.trackAnchor(buf, st)
		return
	}
	e.request(buf, ItemActiveSuggestion)
}

// trackAnchor remembers the cursor while a misspelling is live, and drops
// the buffer's state once the cursor has wandered too far past it.
func (e *Engine) trackAnchor(buf BufferID, st *bufferState) {
	cursor := e.host.Cursor(buf)
	if st.record != nil && cursor > 0 {
		st.anchor = cursor
		return
	}
	if st.anchor >= 0 && cursor > st.anchor+e.opts.CompleteNear+anchorSlack {
		logger.Event(string(buf), "discard", map[string]interface{}{
			"anchor": st.anchor,
			"cursor": cursor,
		})
		e.store.Clear(buf)
		e.request(buf, ItemActiveSuggestion, ItemFullList)
	}
}

// commit applies the current pick. Record and cycle state are read
// together; a pick built from an older record is discarded.
func (e *Engine) commit(buf BufferID, st *bufferState) {
	rec, c := st.record, st.cycle
	defer e.request(buf, ItemActiveSuggestion, ItemFullList)

	if c == nil {
		logger.Debug("suggest: commit on %s: %v", buf, ErrNoActiveMisspelling)
		return
	}
	st.cycle = nil
	base, ok := e.commitBase(buf, st)
	st.dropSavedLine()

	switch {
	case rec == nil || c.generation != rec.generation:
		logger.Debug("suggest: commit on %s: pick is stale", buf)
		return
	case c.Pick == "":
		return
	case !ok:
		logger.Debug("suggest: commit on %s: no line saved at cycle time", buf)
		return
	}

	cursor := e.host.Cursor(buf)
	span, _, found := Locate(rec.Word, base, cursor)
	if !found {
		logger.Debug("suggest: commit on %s: %v", buf, fmt.Errorf("%w: %q", ErrWordNotLocatable, rec.Word))
		return
	}
	text, newCursor := Apply(base, span, c.Pick, cursor)
	logger.Event(string(buf), "commit", map[string]interface{}{
		"word": rec.Word,
		"pick": c.Pick,
	})
	e.host.SetText(buf, text)
	e.host.SetCursor(buf, newCursor)
}

// commitBase picks the text a commit edits. With eat_input_char the line
// saved at cycle time wins, dropping whatever was typed since.
func (e *Engine) commitBase(buf BufferID, st *bufferState) (string, bool) {
	if !st.hasSavedLine || st.savedLine == "" {
		return "", false
	}
	base := st.savedLine
	if e.opts.EatInputChar {
		return base, true
	}
	runes := []rune(base)
	cursor := e.host.Cursor(buf)
	before := cursor - 1
	if before < 0 {
		before = len(runes) - 1
	}
	if cursor > len(runes) || runes[before] == ' ' {
		return e.host.Text(buf), true
	}
	return base, true
}

func (e *Engine) onBufferSwitched(from, to BufferID) {
	if from != "" && from != to {
		if st := e.store.peek(from); st != nil && st.cycle != nil && st.cycle.Kind != ReplaceArmed {
			st.cycle = nil
			st.dropSavedLine()
		}
	}
	if to != "" {
		e.request(to, ItemActiveSuggestion)
	}
}

func (e *Engine) onAction(a UserAction) {
	switch a.Action {
	case ActionNext:
		e.cycle(a.Buffer, Next)
	case ActionPrevious:
		e.cycle(a.Buffer, Previous)
	case ActionReplace:
		st := e.store.state(a.Buffer)
		st.saveLine(e.host.Text(a.Buffer))
		e.commit(a.Buffer, st)
	case ActionAddWord:
		e.addWord(a.Buffer, a.Dictionary, a.Word)
	}
}

// cycle steps through the extended candidate list and saves the line as
// it was when the user asked.
func (e *Engine) cycle(buf BufferID, dir Direction) {
	st := e.store.state(buf)
	st.saveLine(e.host.Text(buf))

	rec := st.record
	if rec == nil {
		logger.Debug("suggest: cycle on %s: %v", buf, ErrNoActiveMisspelling)
		return
	}
	if len(rec.Candidates) == 0 {
		logger.Debug("suggest: cycle on %s: %v", buf, ErrEmptyCandidateList)
		st.cycle = nil
		e.request(buf, ItemActiveSuggestion, ItemFullList)
		return
	}

	ext := extended(rec.Candidates, e.opts.AutoReplace)
	index := -1
	if st.cycle != nil && st.cycle.generation == rec.generation {
		index = st.cycle.Index
	}
	index = Advance(index, len(ext), dir)
	st.cycle = &CycleState{
		Kind:       Cycling,
		Index:      index,
		Pick:       ext[index],
		generation: rec.generation,
	}
	logger.Event(string(buf), "cycle", map[string]interface{}{
		"index": index,
		"pick":  ext[index],
	})
	e.request(buf, ItemActiveSuggestion, ItemFullList)
}

// addWord handles the three forms: no arguments adds the current
// misspelled word, a bare word needs exactly one active dictionary, and a
// dictionary must be one of the active ones.
func (e *Engine) addWord(buf BufferID, dict, word string) {
	st := e.store.peek(buf)
	var rec *MisspellRecord
	if st != nil {
		rec = st.record
	}
	active := e.host.ActiveDictionaries(buf)

	switch {
	case word == "":
		if rec == nil {
			logger.Debug("suggest: addword on %s: %v", buf, ErrNoActiveMisspelling)
			return
		}
		word, dict = rec.Word, ""
	case dict == "":
		if len(active) != 1 {
			logger.Info("addword %q: name a dictionary, %d are active", word, len(active))
			return
		}
		dict = active[0]
	default:
		if !contains(active, dict) {
			logger.Info("addword %q: dictionary %q is not active", word, dict)
			return
		}
	}

	if err := e.host.AddWord(dict, word); err != nil {
		logger.Error("addword %q to %q: %v", word, dict, err)
		return
	}
	if rec != nil && rec.Word == word {
		e.store.Clear(buf)
		e.request(buf, ItemActiveSuggestion, ItemFullList)
	}
}

func (e *Engine) onKey(buf BufferID, k Key) {
	switch k {
	case KeyCompleteNext, KeyCompletePrevious:
		if !e.opts.CatchInputCompletion {
			return
		}
		dir := Next
		if k == KeyCompletePrevious {
			dir = Previous
		}
		e.onComplete(buf, dir)
	case KeyReturn:
		if !e.opts.CatchInputCompletion {
			return
		}
		e.onReturn(buf)
	case KeyDelete:
		e.onDelete(buf)
	case KeyMove:
		e.onMove(buf)
	}
}

func (e *Engine) onReturn(buf BufferID) {
	st := e.store.peek(buf)
	if st == nil {
		return
	}
	if hasPick(st) && e.opts.AutoReplace {
		e.commit(buf, st)
	}
	if st.inline != nil {
		st.dropReplaceMode()
		e.request(buf, ItemFullList)
	}
}

func (e *Engine) onDelete(buf BufferID) {
	st := e.store.peek(buf)
	if st == nil {
		return
	}
	st.dropReplaceMode()
	st.cycle = nil
	st.dropSavedLine()
	e.request(buf, ItemActiveSuggestion, ItemFullList)
}

// onMove keeps a valid pick as Located. A pick that no longer belongs to
// the record is replaced with the first candidate.
func (e *Engine) onMove(buf BufferID) {
	st := e.store.peek(buf)
	if st == nil {
		return
	}
	if e.opts.ReplaceMode && st.inline != nil && st.inline.Armed {
		st.dropReplaceMode()
		st.cycle = nil
		e.request(buf, ItemActiveSuggestion, ItemFullList)
		return
	}
	rec, c := st.record, st.cycle
	if rec == nil || c == nil {
		return
	}
	if c.Pick != "" && (c.generation != rec.generation || !contains(rec.Candidates, c.Pick)) {
		if len(rec.Candidates) == 0 {
			st.cycle = nil
		} else {
			st.cycle = &CycleState{
				Kind:       Located,
				Index:      0,
				Pick:       rec.Candidates[0],
				generation: rec.generation,
			}
		}
		e.request(buf, ItemActiveSuggestion)
		return
	}
	c.Kind = Located
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
