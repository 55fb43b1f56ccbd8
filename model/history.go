package model

const defaultHistoryDepth = 5

// History remembers the hashes of recent generations to detect universes that
// have settled into a still life or a short-period oscillator
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps the last depth generations. A non-positive depth uses the
// default of 5.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth, hashes: make([]string, 0, depth)}
}

// Observe reports whether u repeats one of the recorded generations and then
// records it
func (h *History) Observe(u *Universe) bool {
	current := u.Hash()
	repeated := false
	for _, hash := range h.hashes {
		if hash == current {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	// Keep only the last depth states
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
