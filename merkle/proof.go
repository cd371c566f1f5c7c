package merkle

import (
	"github.com/holiman/uint256"

	"github.com/stealth-crypto/stealth/hash/mimc"
)

// Proof is a Merkle membership proof: a leaf, its index, and the sibling
// hashes from the leaf level up to the root. A Proof carries no reference to
// the tree that produced it and stays verifiable after the tree moves on.
type Proof struct {
	// Leaf is the value whose membership is being proven.
	Leaf uint256.Int
	// LeafIndex is the position of the leaf; its bits select, per level,
	// whether the sibling is the left or the right operand.
	LeafIndex uint64
	// Path holds one sibling hash per level, lowest level first.
	Path []uint256.Int
}

// Depth returns the number of levels covered by the proof.
func (p *Proof) Depth() int {
	return len(p.Path)
}

// ComputeRoot walks the path from the leaf upward and returns the implied root.
func (p *Proof) ComputeRoot(h *mimc.MiMC) uint256.Int {
	cur := p.Leaf
	pos := p.LeafIndex
	for i := range p.Path {
		if pos&1 == 1 {
			cur = h.Compress(&p.Path[i], &cur)
		} else {
			cur = h.Compress(&cur, &p.Path[i])
		}
		pos >>= 1
	}
	return cur
}

// Verify reports whether the proof's implied root equals candidateRoot. It
// is a pure function of its inputs: no tree state is consulted, no error is
// possible, and concurrent calls need no coordination. Callers decide which
// candidate roots they trust (the current root, or any History member).
func (p *Proof) Verify(candidateRoot *uint256.Int, h *mimc.MiMC) bool {
	root := p.ComputeRoot(h)
	return root.Eq(candidateRoot)
}
