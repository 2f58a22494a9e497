package suggest

import (
	"slices"
	"sync"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/JackWReid/spellfix/internal/logger"
)

type renderRequest struct {
	buf  BufferID
	item Item
}

// Engine owns all per-buffer suggestion state and reacts to events.
type Engine struct {
	host    Host
	palette Palette

	mu       sync.Mutex // guards queue and draining
	queue    []Event
	draining bool

	stateMu   sync.RWMutex
	store     *Store
	opts      config.Options
	multiline bool
	renders   []renderRequest
}

// New creates an engine. A nil palette means PlainPalette.
func New(host Host, opts config.Options, palette Palette) *Engine {
	if palette == nil {
		palette = PlainPalette
	}
	return &Engine{
		host:    host,
		palette: palette,
		store:   NewStore(),
		opts:    opts,
	}
}

// Watch keeps the engine's options in sync with s.
func (e *Engine) Watch(s *config.Store) {
	s.OnChange(func(key, value string, opts config.Options) {
		if key == config.KeyCatchInputCompletion {
			logger.Info("completion and return keys intercepted: %s", value)
		}
		e.Dispatch(OptionsChanged{Options: opts})
	})
}

// Options returns the options currently in effect.
func (e *Engine) Options() config.Options {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.opts
}

// Dispatch queues ev and, unless another call is already draining the
// queue, handles queued events in order before returning.
func (e *Engine) Dispatch(ev Event) {
	e.mu.Lock()
	e.queue = append(e.queue, ev)
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true
	for len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		for _, r := range e.handle(next) {
			e.host.RequestRender(r.buf, r.item)
		}

		e.mu.Lock()
	}
	e.draining = false
	e.mu.Unlock()
}

// Record returns the buffer's misspelling record.
func (e *Engine) Record(buf BufferID) (MisspellRecord, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.store.Record(buf)
}

// Cycle returns the buffer's cycle state.
func (e *Engine) Cycle(buf BufferID) (CycleState, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.store.Cycle(buf)
}

// Inline returns the buffer's inline replace state.
func (e *Engine) Inline(buf BufferID) (InlineReplaceState, bool) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.store.Inline(buf)
}

func (e *Engine) handle(ev Event) []renderRequest {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	switch ev := ev.(type) {
	case MisspellingDetected:
		e.onMisspelling(ev.Buffer, MisspellRecord{
			Word:         ev.Word,
			Candidates:   ev.Candidates,
			Groups:       ev.Groups,
			Dictionaries: ev.Dictionaries,
		})
	case SuggestPayload:
		rec, err := ParsePayload(ev.Payload)
		if err != nil {
			logger.Debug("suggest: %v", err)
			break
		}
		if dicts := e.host.ActiveDictionaries(ev.Buffer); len(dicts) == len(rec.Groups) {
			rec.Dictionaries = dicts
		}
		e.onMisspelling(ev.Buffer, rec)
	case MisspellingCleared:
		e.store.ClearMisspelling(ev.Buffer)
		e.request(ev.Buffer, ItemActiveSuggestion, ItemFullList)
	case TextChanged:
		e.onTextChanged(ev.Buffer)
	case CursorMoved:
		e.onCursorMoved(ev.Buffer)
	case BufferSwitched:
		e.onBufferSwitched(ev.From, ev.To)
	case WindowSwitched:
		e.request(ev.Buffer, ItemActiveSuggestion)
	case BufferClosed:
		e.store.Remove(ev.Buffer)
	case MultilineChanged:
		e.multiline = ev.Active
	case OptionsChanged:
		e.opts = ev.Options
	case UserAction:
		e.onAction(ev)
	case KeyEvent:
		e.onKey(ev.Buffer, ev.Key)
	}

	out := e.renders
	e.renders = nil
	return out
}

func (e *Engine) request(buf BufferID, items ...Item) {
	for _, item := range items {
		r := renderRequest{buf: buf, item: item}
		dup := false
		for _, have := range e.renders {
			if have == r {
				dup = true
				break
			}
		}
		if !dup {
			e.renders = append(e.renders, r)
		}
	}
}

func (e *Engine) onMisspelling(buf BufferID, rec MisspellRecord) {
	changed := e.store.SetMisspelling(buf, rec)
	st := e.store.peek(buf)
	logger.Event(string(buf), "misspelling", map[string]interface{}{
		"word":       rec.Word,
		"candidates": len(rec.Candidates),
		"changed":    changed,
	})

	if e.opts.ReplaceMode {
		// While cycling in place the inserted candidate may itself be
		// flagged; keep the list the user is walking. Any other word
		// starts a new list.
		if st.inline != nil && st.inline.Armed && slices.Contains(st.inline.Candidates, rec.Word) {
			return
		}
		st.inline = &InlineReplaceState{
			Candidates: append([]string(nil), st.record.Candidates...),
			Index:      0,
		}
		e.request(buf, ItemFullList)
		return
	}

	if changed && e.opts.AutoPopUpItem {
		e.cycle(buf, Next)
		st.dropSavedLine()
	}
	e.request(buf, ItemFullList)
}
