// Package merkle implements an append-only binary Merkle accumulator over
// the MiMC compression function, with membership-proof generation and
// tree-independent verification.
//
// The tree follows the standard incremental construction used by
// commitment accumulators: insertion walks the leaf-to-root path once,
// keeping one cached hash per level for the most recently completed left
// subtree, and missing right siblings are filled from a precomputed ladder
// of empty-subtree hashes.
//
// A bounded history of recent roots lets applications accept proofs that
// were generated against a root made stale by concurrent insertions. Whether
// a stale root is acceptable is a policy decision; Proof.Verify never
// consults the history.
//
// A Tree has no internal synchronization. Insertions must be serialized by
// the caller; reads (Root, Prove, IsKnownRoot) may run concurrently with each
// other but not with an in-flight insertion. Proof.Verify is a pure function
// over its inputs and needs no coordination at all.
package merkle
