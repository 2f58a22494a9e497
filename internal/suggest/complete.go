package suggest

import "github.com/JackWReid/spellfix/internal/logger"

// onComplete handles the completion keys. In replace mode the first press
// swaps the misspelled word for the first candidate in place and later
// presses walk the list; otherwise the keys cycle the suggestion item.
func (e *Engine) onComplete(buf BufferID, dir Direction) {
	st := e.store.peek(buf)
	if st == nil || (st.record == nil && (st.inline == nil || !st.inline.Armed)) {
		return
	}

	if e.opts.ReplaceMode {
		if st.inline == nil || !st.inline.Armed {
			e.armInline(buf, st)
			return
		}
		e.cycleInline(buf, st, dir)
		return
	}

	if st.record == nil {
		return
	}
	if near := e.opts.CompleteNear; near > 0 {
		_, proximity, ok := Locate(st.record.Word, e.host.Text(buf), e.host.Cursor(buf))
		if !ok || proximity > near {
			e.request(buf, ItemActiveSuggestion)
			return
		}
	}
	e.cycle(buf, dir)
}

// tooFar applies the complete_near limit; 0 disables it.
func (e *Engine) tooFar(proximity int) bool {
	return e.opts.CompleteNear > 0 && proximity > e.opts.CompleteNear
}

func (e *Engine) armInline(buf BufferID, st *bufferState) {
	rec := st.record
	if rec == nil {
		return
	}
	text, cursor := e.host.Text(buf), e.host.Cursor(buf)
	span, proximity, ok := Locate(rec.Word, text, cursor)
	if !ok || e.tooFar(proximity) || len(rec.Candidates) == 0 {
		// Likely a nick completion, or the word is out of reach.
		st.dropReplaceMode()
		e.request(buf, ItemFullList)
		return
	}

	cands := append([]string(nil), rec.Candidates...)
	newText, newCursor := spliceInline(text, span, cands[0], cursor)
	st.inline = &InlineReplaceState{
		Armed:       true,
		Span:        Span{Start: span.Start, End: span.Start + len([]rune(cands[0]))},
		SavedCursor: cursor,
		Candidates:  cands,
		Index:       0,
	}
	logger.Event(string(buf), "inline arm", map[string]interface{}{
		"word": rec.Word,
		"pick": cands[0],
	})
	e.host.SetText(buf, newText)
	e.host.SetCursor(buf, newCursor)
	e.request(buf, ItemFullList)
}

func (e *Engine) cycleInline(buf BufferID, st *bufferState, dir Direction) {
	in := st.inline
	if len(in.Candidates) == 0 {
		st.inline = nil
		return
	}
	prev := clamp(in.Index, 0, len(in.Candidates)-1)
	next := Advance(prev, len(in.Candidates), dir)

	text, cursor := e.host.Text(buf), e.host.Cursor(buf)
	span, proximity, ok := Locate(in.Candidates[prev], text, cursor)
	if !ok || e.tooFar(proximity) {
		st.dropReplaceMode()
		e.request(buf, ItemFullList)
		return
	}

	newText, newCursor := spliceInline(text, span, in.Candidates[next], cursor)
	in.Index = next
	in.Span = Span{Start: span.Start, End: span.Start + len([]rune(in.Candidates[next]))}
	logger.Event(string(buf), "inline cycle", map[string]interface{}{
		"index": next,
		"pick":  in.Candidates[next],
	})
	e.host.SetText(buf, newText)
	e.host.SetCursor(buf, newCursor)
	e.request(buf, ItemFullList)
}
