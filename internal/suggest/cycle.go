package suggest

// Direction of a cycle step.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Advance moves index one step through a list of the given length,
// wrapping at both ends. An empty list leaves index unchanged.
func Advance(index, length int, dir Direction) int {
	if length <= 0 {
		return index
	}
	if index >= length {
		index = -1
	}
	if dir == Previous {
		if index <= 0 {
			return length - 1
		}
		return index - 1
	}
	if index >= length-1 {
		return 0
	}
	return index + 1
}

// extended appends the "leave unchanged" sentinel when auto-replace is on.
func extended(candidates []string, autoReplace bool) []string {
	out := make([]string, len(candidates), len(candidates)+1)
	copy(out, candidates)
	if autoReplace {
		out = append(out, "")
	}
	return out
}
