package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/holiman/uint256"

	"github.com/stealth-crypto/stealth/merkle"
)

// Fixed-width binary layout of a proof, big-endian throughout:
//
//	[0]        depth (number of path entries)
//	[1:9]      leaf index
//	[9:41]     leaf value
//	[41:...]   depth sibling hashes, 32 bytes each, lowest level first
const (
	binaryHeaderLen  = 1 + 8 + 32
	binaryElementLen = 32
)

// MarshalProofBinary encodes proof with the fixed-width binary convention.
func MarshalProofBinary(proof *merkle.Proof) ([]byte, error) {
	if len(proof.Path) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: path of %d entries exceeds the 1-byte depth field", ErrInvalidLength, len(proof.Path))
	}

	out := make([]byte, binaryHeaderLen+binaryElementLen*len(proof.Path))
	out[0] = byte(len(proof.Path))
	binary.BigEndian.PutUint64(out[1:9], proof.LeafIndex)
	leaf := proof.Leaf.Bytes32()
	copy(out[9:binaryHeaderLen], leaf[:])
	for i := range proof.Path {
		sibling := proof.Path[i].Bytes32()
		copy(out[binaryHeaderLen+i*binaryElementLen:], sibling[:])
	}
	return out, nil
}

// UnmarshalProofBinary decodes data written by MarshalProofBinary. The input
// must be exactly the length implied by its depth byte.
func UnmarshalProofBinary(data []byte) (*merkle.Proof, error) {
	if len(data) < binaryHeaderLen {
		return nil, fmt.Errorf("%w: expected at least %d bytes, got %d", ErrInvalidLength, binaryHeaderLen, len(data))
	}
	depth := int(data[0])
	if want := binaryHeaderLen + binaryElementLen*depth; len(data) != want {
		return nil, fmt.Errorf("%w: expected %d bytes for depth %d, got %d", ErrInvalidLength, want, depth, len(data))
	}

	proof := &merkle.Proof{
		LeafIndex: binary.BigEndian.Uint64(data[1:9]),
		Path:      make([]uint256.Int, depth),
	}
	proof.Leaf.SetBytes(data[9:binaryHeaderLen])
	for i := 0; i < depth; i++ {
		off := binaryHeaderLen + i*binaryElementLen
		proof.Path[i].SetBytes(data[off : off+binaryElementLen])
	}
	return proof, nil
}
