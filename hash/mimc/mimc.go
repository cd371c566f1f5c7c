// Package mimc implements a MiMC-Feistel compression function over
// fixed-width unsigned integers, for use in arithmetic-circuit proof systems.
//
// All arithmetic is wrapping arithmetic modulo 2^256 (the natural overflow
// semantics of uint256), NOT a reduction modulo a prime matching any
// particular proof system's scalar field. Integrators must confirm that this
// numeric domain is compatible with their circuit before relying on it; the
// full configuration (key, round constants) is exposed for that purpose.
//
// The implementation is NOT constant-time and is not suitable for
// password hashing or as a general-purpose cryptographic hash.
package mimc

import (
	"errors"

	"github.com/holiman/uint256"
)

// ErrNoConstants is returned by the configurable constructors when the
// round-constant table would be empty.
var ErrNoConstants = errors.New("mimc: at least one round constant is required")

// MiMC is a keyed MiMC-Feistel compression function. A MiMC instance is
// immutable after construction and safe for concurrent use.
type MiMC struct {
	key       uint256.Int
	constants []uint256.Int
}

// New returns a MiMC instance with the canonical parameters: the 20
// circomlib-lineage round constants and a zero key.
func New() *MiMC {
	return &MiMC{constants: canonicalConstants()}
}

// NewFromSeed returns a MiMC instance whose round constants are derived from
// seed by iterated Keccak-256, with the key derived from seed || "key".
// The first constant is always zero, as in the canonical table.
func NewFromSeed(seed string, rounds int) (*MiMC, error) {
	if rounds < 1 {
		return nil, ErrNoConstants
	}
	h := &MiMC{constants: deriveConstants(seed, rounds)}
	h.key.SetBytes(keccak256([]byte(seed + "key")))
	return h, nil
}

// NewFromParams returns a MiMC instance with an explicit key and
// round-constant table. The inputs are copied.
func NewFromParams(key *uint256.Int, constants []uint256.Int) (*MiMC, error) {
	if len(constants) == 0 {
		return nil, ErrNoConstants
	}
	h := &MiMC{constants: make([]uint256.Int, len(constants))}
	copy(h.constants, constants)
	if key != nil {
		h.key.Set(key)
	}
	return h, nil
}

// Rounds returns the number of Feistel rounds (one per round constant).
func (h *MiMC) Rounds() int {
	return len(h.constants)
}

// Key returns a copy of the round key.
func (h *MiMC) Key() uint256.Int {
	return h.key
}

// Constants returns a copy of the round-constant table.
func (h *MiMC) Constants() []uint256.Int {
	cs := make([]uint256.Int, len(h.constants))
	copy(cs, h.constants)
	return cs
}

// Compress combines two field elements into one. It is total and
// deterministic; swapping the operands changes the result.
//
// Each round updates the Feistel halves (l, r) as
//
//	mask = r + key + constants[i]
//	(l, r) = (r, l + mask^3)
//
// and the final output folds the halves together as l + r, all modulo 2^256.
func (h *MiMC) Compress(a, b *uint256.Int) uint256.Int {
	var l, r, mask, cube uint256.Int
	l.Set(a)
	r.Set(b)

	for i := range h.constants {
		mask.Add(&r, &h.key)
		mask.Add(&mask, &h.constants[i])
		cube.Mul(&mask, &mask)
		cube.Mul(&cube, &mask)
		l.Add(&l, &cube)
		l, r = r, l
	}

	var out uint256.Int
	out.Add(&l, &r)
	return out
}

// HashSingle hashes a single value by compressing it with zero.
func (h *MiMC) HashSingle(x *uint256.Int) uint256.Int {
	var zero uint256.Int
	return h.Compress(x, &zero)
}
