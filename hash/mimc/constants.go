package mimc

import (
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// Canonical round constants, derived as keccak256("mimcsponge" || i)
// truncated to the working width. These are the circomlib / Tornado Cash
// MiMC-Feistel constants.
var canonicalTable = [...]string{
	"0",
	"25823191961023811529686723375255045",
	"48376936063113800887806988124358800",
	"75580405153655082660116863095114839",
	"66651710483985382365580181188706173",
	"45887003413921204775397977044284378",
	"14399999722617037892747232478295923",
	"29376176727758177809204424209125257",
	"13768859312518298840937540532277016",
	"54749662990362840569021981534456448",
	"25161436470718351277017231215227846",
	"90370030464179443930112165274275271",
	"92014788260850167582827910417652439",
	"40376490640073034398204558905403523",
	"90379224439153137712327643289289624",
	"11220341520269979188892857030918685",
	"11480168113674888067906254878279274",
	"11144081894867681653997893051446803",
	"64965960071752809090438003157362764",
	"98428510787134995495896453413714864",
}

func canonicalConstants() []uint256.Int {
	cs := make([]uint256.Int, len(canonicalTable))
	for i, s := range canonicalTable {
		cs[i] = *uint256.MustFromDecimal(s)
	}
	return cs
}

// deriveConstants stretches a seed into a round-constant table by iterated
// Keccak-256. The first constant is zero, matching the canonical table.
func deriveConstants(seed string, rounds int) []uint256.Int {
	cs := make([]uint256.Int, rounds)
	rnd := keccak256([]byte(seed))
	for i := 1; i < rounds; i++ {
		rnd = keccak256(rnd)
		cs[i].SetBytes(rnd)
	}
	return cs
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
