package merkle

import (
	"fmt"

	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	"github.com/stealth-crypto/stealth/hash/mimc"
)

// VerifyBatch verifies proofs against the same candidate root, one goroutine
// per proof. It returns nil if every proof verifies, and ErrInvalidProof
// (wrapped with the offending leaf index) otherwise. Safe because Verify is
// a pure function over immutable inputs.
func VerifyBatch(h *mimc.MiMC, candidateRoot *uint256.Int, proofs []*Proof) error {
	var g errgroup.Group
	for _, p := range proofs {
		p := p // per-iteration copy; required under the go <1.22 directive
		g.Go(func() error {
			if !p.Verify(candidateRoot, h) {
				return fmt.Errorf("%w: leaf index %d", ErrInvalidProof, p.LeafIndex)
			}
			return nil
		})
	}
	return g.Wait()
}
