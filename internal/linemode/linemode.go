// Package linemode corrects piped input one line at a time, taking the
// first suggestion for every misspelled word.
package linemode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/JackWReid/spellfix/internal/host"
	"github.com/JackWReid/spellfix/internal/logger"
	"github.com/JackWReid/spellfix/internal/suggest"
)

// Stats counts what a run did.
type Stats struct {
	Lines       int
	Misspelled  int
	Corrections int
}

// Run reads lines from r and writes each corrected line to w.
func Run(r io.Reader, w io.Writer, s *host.Session) (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for sc.Scan() {
		line := Correct(s, sc.Text(), &stats)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return stats, err
		}
		stats.Lines++
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}
	logger.Info("line mode: %d lines, %d misspelled, %d corrected",
		stats.Lines, stats.Misspelled, stats.Corrections)
	return stats, nil
}

// Correct runs one line through the session's current buffer. Words are
// fixed from the end of the line backwards so earlier spans stay valid.
func Correct(s *host.Session, line string, stats *Stats) string {
	s.InsertText(line)
	b := s.Current()
	s.CheckNow(b.ID)

	errs := b.SpellErrors()
	for i := len(errs) - 1; i >= 0; i-- {
		stats.Misspelled++
		s.SetCursor(b.ID, errs[i].EndCol)
		s.CheckNow(b.ID)

		rec, ok := s.Engine().Record(b.ID)
		if !ok || rec.Word != errs[i].Word || len(rec.Candidates) == 0 {
			continue
		}
		before := b.Text()
		// auto_pop_up_item may already have picked the first candidate.
		if c, ok := s.Engine().Cycle(b.ID); !ok || c.Index != 0 {
			s.Act(suggest.ActionNext)
		}
		s.Act(suggest.ActionReplace)
		if b.Text() != before {
			stats.Corrections++
		}
	}
	return s.Send()
}
