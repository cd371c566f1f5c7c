// Package stealth provides ZK-friendly cryptographic primitives: a MiMC
// compression hash designed for arithmetic-circuit proof systems, and an
// append-only Merkle accumulator built on it, with membership-proof
// generation and verification.
//
// stealth targets privacy-preserving protocols (commitment/nullifier schemes,
// anonymous credentials, mixers) that prove set membership inside a
// zero-knowledge circuit and verify the proof cheaply elsewhere.
//
// The hash operates on fixed-width unsigned integers with wrapping
// arithmetic; it is NOT constant-time and NOT a substitute for
// general-purpose hash families. See the hash/mimc package documentation for
// the exact numeric domain.
package stealth

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("1.0.0")
