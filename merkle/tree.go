package merkle

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/stealth-crypto/stealth/hash/mimc"
	"github.com/stealth-crypto/stealth/logger"
)

// MaxDepth is the deepest supported tree. A tree of depth d holds 2^d leaves.
const MaxDepth = 32

// Tree is an append-only binary Merkle tree of fixed depth.
//
// Tree is not safe for unsynchronized concurrent use: insertions must be
// serialized, and reads must not overlap an in-flight insertion.
type Tree struct {
	depth     int
	nextIndex uint64

	// filled[l] caches the most recently completed left subtree hash at
	// level l; zeros[l] is the hash of an empty subtree of height l.
	filled []uint256.Int
	zeros  []uint256.Int

	// inserted leaves, retained so that Prove can rebuild interior siblings
	// for any assigned index.
	leaves []uint256.Int

	root    uint256.Int
	hasRoot bool

	history *History
	hasher  *mimc.MiMC
}

type config struct {
	hasher      *mimc.MiMC
	historySize int
}

// Option configures a Tree at construction time.
type Option func(*config)

// WithHasher sets the compression function used by the tree. The default is
// mimc.New().
func WithHasher(h *mimc.MiMC) Option {
	return func(c *config) { c.hasher = h }
}

// WithHistorySize sets the number of recent roots the tree retains. The
// default is DefaultHistorySize.
func WithHistorySize(n int) Option {
	return func(c *config) { c.historySize = n }
}

// New returns an empty tree of the given depth and precomputes its
// empty-subtree ladder: zeros[0] = 0 and zeros[l+1] = Compress(zeros[l], zeros[l]).
func New(depth int, opts ...Option) (*Tree, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth must be between 1 and %d, got %d", ErrInvalidConfig, MaxDepth, depth)
	}

	cfg := config{hasher: mimc.New(), historySize: DefaultHistorySize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.historySize < 1 {
		return nil, fmt.Errorf("%w: history size must be at least 1, got %d", ErrInvalidConfig, cfg.historySize)
	}

	t := &Tree{
		depth:   depth,
		zeros:   make([]uint256.Int, depth+1),
		filled:  make([]uint256.Int, depth),
		history: newHistory(cfg.historySize),
		hasher:  cfg.hasher,
	}
	for l := 0; l < depth; l++ {
		t.zeros[l+1] = t.hasher.Compress(&t.zeros[l], &t.zeros[l])
		t.filled[l] = t.zeros[l]
	}

	log := logger.Logger()
	log.Debug().Int("depth", depth).Uint64("capacity", t.Capacity()).Msg("merkle tree initialized")

	return t, nil
}

// Depth returns the number of levels between the leaves and the root.
func (t *Tree) Depth() int {
	return t.depth
}

// Capacity returns the maximum number of leaves, 2^depth.
func (t *Tree) Capacity() uint64 {
	return uint64(1) << t.depth
}

// Len returns the number of inserted leaves.
func (t *Tree) Len() uint64 {
	return t.nextIndex
}

// IsEmpty reports whether no leaf has been inserted yet.
func (t *Tree) IsEmpty() bool {
	return t.nextIndex == 0
}

// Hasher returns the compression function used by the tree, as needed for
// tree-independent proof verification.
func (t *Tree) Hasher() *mimc.MiMC {
	return t.hasher
}

// Zeros returns the empty-subtree hash at the given level, 0 <= level <= depth.
func (t *Tree) Zeros(level int) uint256.Int {
	return t.zeros[level]
}

// Root returns the most recent root. ok is false until the first insertion.
func (t *Tree) Root() (root uint256.Int, ok bool) {
	return t.root, t.hasRoot
}

// History returns the buffer of recent roots.
func (t *Tree) History() *History {
	return t.history
}

// IsKnownRoot reports whether root is the current root or one of the
// retained recent roots.
func (t *Tree) IsKnownRoot(root *uint256.Int) bool {
	return t.history.Contains(root)
}

// Insert appends a leaf and returns its index. The root is recomputed
// incrementally and recorded in the history. Once the tree is full, Insert
// fails with ErrTreeFull and mutates nothing.
func (t *Tree) Insert(leaf *uint256.Int) (uint64, error) {
	if t.nextIndex == t.Capacity() {
		return 0, fmt.Errorf("%w: capacity %d reached", ErrTreeFull, t.Capacity())
	}

	index := t.nextIndex
	cur := *leaf
	pos := index
	for l := 0; l < t.depth; l++ {
		if pos&1 == 0 {
			// left child: cache it as a future left sibling and pair it
			// with the empty subtree on the right.
			t.filled[l] = cur
			cur = t.hasher.Compress(&cur, &t.zeros[l])
		} else {
			cur = t.hasher.Compress(&t.filled[l], &cur)
		}
		pos >>= 1
	}

	t.leaves = append(t.leaves, *leaf)
	t.root = cur
	t.hasRoot = true
	t.history.push(&cur)
	t.nextIndex = index + 1

	return index, nil
}

// Prove returns a membership proof for the leaf at index. The index must
// have been assigned by a previous insertion.
func (t *Tree) Prove(index uint64) (*Proof, error) {
	if index >= t.nextIndex {
		return nil, fmt.Errorf("%w: index %d, tree has %d leaves", ErrInvalidIndex, index, t.nextIndex)
	}

	path := make([]uint256.Int, t.depth)
	pos := index
	for l := 0; l < t.depth; l++ {
		path[l] = t.nodeAt(l, pos^1)
		pos >>= 1
	}

	return &Proof{
		Leaf:      t.leaves[index],
		LeafIndex: index,
		Path:      path,
	}, nil
}

// nodeAt returns the hash of the node at (level, pos). Subtrees no insertion
// has reached resolve to the empty-subtree ladder; everything else is
// rebuilt from the retained leaves.
func (t *Tree) nodeAt(level int, pos uint64) uint256.Int {
	if pos<<level >= t.nextIndex {
		return t.zeros[level]
	}
	if level == 0 {
		return t.leaves[pos]
	}
	left := t.nodeAt(level-1, 2*pos)
	right := t.nodeAt(level-1, 2*pos+1)
	return t.hasher.Compress(&left, &right)
}
