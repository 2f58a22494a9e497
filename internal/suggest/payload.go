package suggest

import (
	"fmt"
	"strings"
)

// ParsePayload decodes "word:s1,s2/d1,d2", where "/" separates the
// candidates contributed by each dictionary.
func ParsePayload(payload string) (MisspellRecord, error) {
	word, list, ok := strings.Cut(payload, ":")
	if !ok || word == "" || strings.Contains(list, ":") {
		return MisspellRecord{}, fmt.Errorf("%w: %q", ErrMalformedSuggestionPayload, payload)
	}
	rec := MisspellRecord{Word: word}
	if list == "" {
		return rec, nil
	}
	for _, group := range strings.Split(list, "/") {
		n := 0
		for _, c := range strings.Split(group, ",") {
			if c == "" {
				continue
			}
			rec.Candidates = append(rec.Candidates, c)
			n++
		}
		rec.Groups = append(rec.Groups, n)
	}
	return rec, nil
}

// FormatPayload is the inverse of ParsePayload.
func FormatPayload(rec MisspellRecord) string {
	if len(rec.Groups) == 0 {
		return rec.Word + ":" + strings.Join(rec.Candidates, ",")
	}
	groups := make([]string, 0, len(rec.Groups))
	i := 0
	for _, n := range rec.Groups {
		end := i + n
		if end > len(rec.Candidates) {
			end = len(rec.Candidates)
		}
		groups = append(groups, strings.Join(rec.Candidates[i:end], ","))
		i = end
	}
	return rec.Word + ":" + strings.Join(groups, "/")
}
