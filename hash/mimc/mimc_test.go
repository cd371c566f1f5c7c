package mimc

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCanonicalParams(t *testing.T) {
	assert := require.New(t)

	h := New()
	assert.Equal(20, h.Rounds())
	key := h.Key()
	assert.True(key.IsZero())

	cs := h.Constants()
	assert.Len(cs, 20)
	assert.True(cs[0].IsZero())
	assert.False(cs[1].IsZero())
}

func TestCompressDeterministic(t *testing.T) {
	assert := require.New(t)

	h := New()
	a := uint256.NewInt(123)
	b := uint256.NewInt(456)

	h1 := h.Compress(a, b)
	h2 := h.Compress(a, b)
	assert.True(h1.Eq(&h2))
}

func TestCompressOrderSensitive(t *testing.T) {
	assert := require.New(t)

	h := New()
	a := uint256.NewInt(123)
	b := uint256.NewInt(456)

	ab := h.Compress(a, b)
	ba := h.Compress(b, a)
	assert.False(ab.Eq(&ba))
}

func TestCompressDoesNotMutateInputs(t *testing.T) {
	assert := require.New(t)

	h := New()
	a := uint256.NewInt(123)
	b := uint256.NewInt(456)
	_ = h.Compress(a, b)

	assert.Equal(uint64(123), a.Uint64())
	assert.Equal(uint64(456), b.Uint64())
}

func TestHashSingle(t *testing.T) {
	assert := require.New(t)

	h := New()
	x := uint256.NewInt(12345)
	var zero uint256.Int

	got := h.HashSingle(x)
	want := h.Compress(x, &zero)
	assert.True(got.Eq(&want))
}

func TestNewFromSeed(t *testing.T) {
	assert := require.New(t)

	h1, err := NewFromSeed("stealth", 20)
	assert.NoError(err)
	h2, err := NewFromSeed("stealth", 20)
	assert.NoError(err)
	h3, err := NewFromSeed("other", 20)
	assert.NoError(err)

	a := uint256.NewInt(1)
	b := uint256.NewInt(2)

	r1 := h1.Compress(a, b)
	r2 := h2.Compress(a, b)
	r3 := h3.Compress(a, b)
	assert.True(r1.Eq(&r2))
	assert.False(r1.Eq(&r3))

	cs := h1.Constants()
	assert.Len(cs, 20)
	assert.True(cs[0].IsZero())

	_, err = NewFromSeed("stealth", 0)
	assert.ErrorIs(err, ErrNoConstants)
}

func TestNewFromParams(t *testing.T) {
	assert := require.New(t)

	_, err := NewFromParams(nil, nil)
	assert.ErrorIs(err, ErrNoConstants)

	constants := []uint256.Int{*uint256.NewInt(0), *uint256.NewInt(17)}
	key := uint256.NewInt(42)
	h, err := NewFromParams(key, constants)
	assert.NoError(err)
	assert.Equal(2, h.Rounds())

	a := uint256.NewInt(1)
	b := uint256.NewInt(2)
	before := h.Compress(a, b)

	// the hasher must have copied its parameters
	constants[1].SetUint64(99)
	key.SetUint64(99)
	after := h.Compress(a, b)
	assert.True(before.Eq(&after))
}

func TestConstantsAccessorReturnsCopy(t *testing.T) {
	assert := require.New(t)

	h := New()
	a := uint256.NewInt(1)
	b := uint256.NewInt(2)
	before := h.Compress(a, b)

	cs := h.Constants()
	cs[1].SetUint64(99)
	after := h.Compress(a, b)
	assert.True(before.Eq(&after))
}

func TestCompressProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	h := New()

	properties.Property("compress is deterministic", prop.ForAll(
		func(a, b uint64) bool {
			x := uint256.NewInt(a)
			y := uint256.NewInt(b)
			r1 := h.Compress(x, y)
			r2 := h.Compress(x, y)
			return r1.Eq(&r2)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("compress is order sensitive", prop.ForAll(
		func(a, b uint64) bool {
			if a == b {
				return true
			}
			x := uint256.NewInt(a)
			y := uint256.NewInt(b)
			ab := h.Compress(x, y)
			ba := h.Compress(y, x)
			return !ab.Eq(&ba)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
