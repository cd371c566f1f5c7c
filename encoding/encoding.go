// Package encoding offers (de)serialization APIs for stealth objects.
//
// Two independent conventions are provided over the same data: a schema-less
// CBOR stream prefixed with a version header (Serialize/Deserialize), and a
// fixed-width big-endian binary layout (MarshalProofBinary/
// UnmarshalProofBinary). Both are thin adapters; no tree or hash logic lives
// here.
package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"

	"github.com/stealth-crypto/stealth"
	"github.com/stealth-crypto/stealth/logger"
	"github.com/stealth-crypto/stealth/merkle"
)

var (
	// ErrInvalidLength reports input of the wrong size for the expected
	// fixed-width layout.
	ErrInvalidLength = errors.New("encoding: invalid length")

	// ErrParse reports input that could not be parsed.
	ErrParse = errors.New("encoding: parse error")
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// proofWire is the CBOR form of a merkle.Proof; field elements travel as
// 32-byte big-endian strings.
type proofWire struct {
	LeafIndex uint64   `cbor:"leafIndex"`
	Leaf      []byte   `cbor:"leaf"`
	Path      [][]byte `cbor:"path"`
}

// Serialize writes proof to w using the CBOR convention, prefixed with the
// stealth version header.
func Serialize(w io.Writer, proof *merkle.Proof) error {
	encoder := encMode.NewEncoder(w)

	if err := encoder.Encode(stealth.Version.String()); err != nil {
		return err
	}
	return encoder.Encode(toWire(proof))
}

// Deserialize reads a proof written by Serialize. A version mismatch is
// logged but not fatal; a malformed stream is.
func Deserialize(r io.Reader) (*merkle.Proof, error) {
	decoder := cbor.NewDecoder(r)

	var header string
	if err := decoder.Decode(&header); err != nil {
		return nil, err
	}
	objectVersion, err := semver.ParseTolerant(header)
	if err != nil {
		return nil, fmt.Errorf("%w: when parsing version header: %v", ErrParse, err)
	}
	if objectVersion.Compare(stealth.Version) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", stealth.Version.String()).Str("object", objectVersion.String()).Msg("version mismatch with serialized proof. there are no guarantees on compatibility")
	}

	var wire proofWire
	if err := decoder.Decode(&wire); err != nil {
		return nil, err
	}
	return fromWire(&wire)
}

func toWire(proof *merkle.Proof) *proofWire {
	leaf := ElementToBytes(&proof.Leaf)
	w := &proofWire{
		LeafIndex: proof.LeafIndex,
		Leaf:      leaf[:],
		Path:      make([][]byte, len(proof.Path)),
	}
	for i := range proof.Path {
		b := ElementToBytes(&proof.Path[i])
		w.Path[i] = b[:]
	}
	return w
}

func fromWire(w *proofWire) (*merkle.Proof, error) {
	leaf, err := ElementFromBytes(w.Leaf)
	if err != nil {
		return nil, err
	}
	proof := &merkle.Proof{
		Leaf:      leaf,
		LeafIndex: w.LeafIndex,
		Path:      make([]uint256.Int, len(w.Path)),
	}
	for i, b := range w.Path {
		proof.Path[i], err = ElementFromBytes(b)
		if err != nil {
			return nil, err
		}
	}
	return proof, nil
}
