package encoding

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ElementToBytes returns the 32-byte big-endian representation of v.
func ElementToBytes(v *uint256.Int) [32]byte {
	return v.Bytes32()
}

// ElementFromBytes parses exactly 32 big-endian bytes into a field element.
func ElementFromBytes(b []byte) (uint256.Int, error) {
	var v uint256.Int
	if len(b) != 32 {
		return v, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidLength, len(b))
	}
	v.SetBytes(b)
	return v, nil
}

// ElementToHex returns the fixed-width (64 nibble) lowercase hex
// representation of v, without a prefix.
func ElementToHex(v *uint256.Int) string {
	b := v.Bytes32()
	return hex.EncodeToString(b[:])
}

// ElementFromHex parses a hex string, with or without a "0x" prefix, of at
// most 32 bytes. Shorter input is zero-extended on the left.
func ElementFromHex(s string) (uint256.Int, error) {
	var v uint256.Int
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return v, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(b) > 32 {
		return v, fmt.Errorf("%w: expected at most 32 bytes, got %d", ErrInvalidLength, len(b))
	}
	v.SetBytes(b)
	return v, nil
}
