package merkle

import "github.com/holiman/uint256"

// DefaultHistorySize is the number of recent roots a tree remembers unless
// overridden with WithHistorySize.
const DefaultHistorySize = 30

// History is a fixed-capacity, insertion-ordered buffer of recently produced
// roots. Once full, the oldest root is evicted first. It is appended to only
// as a side effect of Tree.Insert and must be protected by the same
// single-writer discipline as the tree itself.
type History struct {
	roots []uint256.Int
	next  int
	count int
}

func newHistory(size int) *History {
	return &History{roots: make([]uint256.Int, size)}
}

// Capacity returns the maximum number of roots the history retains.
func (h *History) Capacity() int {
	return len(h.roots)
}

// Len returns the number of roots currently retained.
func (h *History) Len() int {
	return h.count
}

// Contains reports whether root is one of the retained recent roots. The
// zero element is never a known root.
func (h *History) Contains(root *uint256.Int) bool {
	if root.IsZero() {
		return false
	}
	for i := 0; i < h.count; i++ {
		idx := (h.next - 1 - i + len(h.roots)) % len(h.roots)
		if h.roots[idx].Eq(root) {
			return true
		}
	}
	return false
}

// Roots returns the retained roots, newest first.
func (h *History) Roots() []uint256.Int {
	out := make([]uint256.Int, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.roots[(h.next-1-i+len(h.roots))%len(h.roots)]
	}
	return out
}

// push records a new root, evicting the oldest entry once the buffer is full.
func (h *History) push(root *uint256.Int) {
	h.roots[h.next] = *root
	h.next = (h.next + 1) % len(h.roots)
	if h.count < len(h.roots) {
		h.count++
	}
}
