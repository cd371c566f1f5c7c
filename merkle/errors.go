package merkle

import "errors"

var (
	// ErrInvalidConfig is returned by New when the requested depth or an
	// option value is out of range. It is never returned after construction.
	ErrInvalidConfig = errors.New("merkle: invalid tree configuration")

	// ErrTreeFull is returned by Insert once the tree holds 2^depth leaves.
	// A failed insertion leaves the tree untouched; reads keep working.
	ErrTreeFull = errors.New("merkle: tree is full")

	// ErrInvalidIndex is returned by Prove for an index that is out of range
	// or not yet assigned by an insertion.
	ErrInvalidIndex = errors.New("merkle: leaf index out of range")

	// ErrInvalidProof is returned by VerifyBatch for proofs that do not match
	// the candidate root.
	ErrInvalidProof = errors.New("merkle: invalid proof")
)
