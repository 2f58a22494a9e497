package suggest

import (
	"regexp"
	"strings"

	"github.com/JackWReid/spellfix/internal/config"
	"github.com/muesli/termenv"
)

// Palette turns a color name into a terminal escape sequence. Unknown
// names yield "".
type Palette func(name string) string

var colorRef = regexp.MustCompile(`\$\{([^\{\}]+)\}`)

var namedColors = map[string]termenv.ANSIColor{
	"black":        termenv.ANSIBlack,
	"red":          termenv.ANSIRed,
	"green":        termenv.ANSIGreen,
	"yellow":       termenv.ANSIYellow,
	"brown":        termenv.ANSIYellow,
	"blue":         termenv.ANSIBlue,
	"magenta":      termenv.ANSIMagenta,
	"cyan":         termenv.ANSICyan,
	"white":        termenv.ANSIWhite,
	"gray":         termenv.ANSIBrightBlack,
	"darkgray":     termenv.ANSIBrightBlack,
	"lightred":     termenv.ANSIBrightRed,
	"lightgreen":   termenv.ANSIBrightGreen,
	"lightblue":    termenv.ANSIBrightBlue,
	"lightmagenta": termenv.ANSIBrightMagenta,
	"lightcyan":    termenv.ANSIBrightCyan,
}

// TermPalette resolves names for the given profile: named ANSI colors,
// "default"/"reset", attributes, numbers and "#rrggbb".
func TermPalette(p termenv.Profile) Palette {
	return func(name string) string {
		if p == termenv.Ascii {
			return ""
		}
		switch name {
		case "default", "reset", "resetcolor":
			return termenv.CSI + termenv.ResetSeq + "m"
		case "bold":
			return termenv.CSI + termenv.BoldSeq + "m"
		case "underline":
			return termenv.CSI + termenv.UnderlineSeq + "m"
		case "reverse":
			return termenv.CSI + termenv.ReverseSeq + "m"
		}
		var c termenv.Color
		if ansi, ok := namedColors[name]; ok {
			c = p.Convert(ansi)
		} else {
			c = p.Color(name)
		}
		if c == nil {
			return ""
		}
		seq := c.Sequence(false)
		if seq == "" {
			return ""
		}
		return termenv.CSI + seq + "m"
	}
}

// PlainPalette drops all colors.
func PlainPalette(string) string { return "" }

func substituteColors(s string, pal Palette) string {
	return colorRef.ReplaceAllStringFunc(s, func(m string) string {
		return pal(m[2 : len(m)-1])
	})
}

// formatActive fills the suggest_item template.
func formatActive(opts config.Options, pick, dict string, active []string, pal Palette) string {
	tmpl := opts.SuggestItem
	if tmpl == "" {
		return pick
	}
	out := strings.ReplaceAll(tmpl, "%S", pick)
	switch {
	case dict != "":
		out = strings.ReplaceAll(out, "%D", dict)
	case !opts.HideSingleDict:
		out = strings.ReplaceAll(out, "%D", strings.Join(active, ","))
	default:
		out = strings.TrimRight(strings.ReplaceAll(out, "%D", ""), " ")
	}
	return substituteColors(out, pal)
}

// dictionaryFor returns the dictionary that contributed the candidate at
// index, or "" when only one dictionary is involved.
func dictionaryFor(rec *MisspellRecord, index int, active []string) string {
	if len(rec.Groups) < 2 || index < 0 {
		return ""
	}
	dicts := rec.Dictionaries
	if len(dicts) == 0 {
		dicts = active
	}
	if len(dicts) < 2 {
		return ""
	}
	count := 0
	for i, n := range rec.Groups {
		count += n
		if count > index {
			if i < len(dicts) {
				return dicts[i]
			}
			return ""
		}
	}
	return ""
}

// formatList joins the list with the entry at index wrapped in markers.
func formatList(list []string, index int, start, reset string) string {
	parts := make([]string, len(list))
	copy(parts, list)
	if index >= 0 && index < len(parts) {
		parts[index] = start + parts[index] + reset
	}
	return strings.Join(parts, ",")
}

// ActiveSuggestion renders the currently picked candidate, or "" when
// there is none.
func (e *Engine) ActiveSuggestion(buf BufferID) string {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()

	st := e.store.peek(buf)
	if st == nil || st.record == nil || st.cycle == nil || st.cycle.Pick == "" {
		return ""
	}
	active := e.host.ActiveDictionaries(buf)
	dict := dictionaryFor(st.record, st.cycle.Index, active)
	return formatActive(e.opts, st.cycle.Pick, dict, active, e.palette)
}

// FullList renders all candidates with the current one highlighted, or ""
// when nothing is picked.
func (e *Engine) FullList(buf BufferID) string {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()

	st := e.store.peek(buf)
	if st == nil {
		return ""
	}
	start := e.palette(e.opts.HighlightColor)
	reset := e.palette("reset")

	if e.opts.ReplaceMode {
		in := st.inline
		if in == nil || len(in.Candidates) == 0 || in.Index < 0 {
			return ""
		}
		return formatList(in.Candidates, in.Index, start, reset)
	}

	if st.record == nil || st.cycle == nil || st.cycle.Index < 0 {
		return ""
	}
	return formatList(extended(st.record.Candidates, e.opts.AutoReplace), st.cycle.Index, start, reset)
}
