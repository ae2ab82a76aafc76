package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStringRoundTrip(t *testing.T) {
	cases := []string{"0", "-0", "123.456", "-0.001", "1000000"}
	for _, s := range cases {
		d, err := ParseString(s, DefaultConfig())
		require.NoError(t, err, s)
		back, err := ParseString(d.String(), DefaultConfig())
		require.NoError(t, err, s)
		assert.True(t, back.Equal(d), s)
	}
}

func TestFromStringExponent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decimals = 5
	d, err := ParseString("1e400", cfg)
	require.NoError(t, err)
	assert.True(t, d.IsInf())
	assert.Equal(t, 1, d.Sign())
}

func TestFromStringMalformed(t *testing.T) {
	_, err := ParseString("abc", DefaultConfig())
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.ThrowOnError = true
	assert.Panics(t, func() { FromString("abc", cfg) })
}

func TestFromHex(t *testing.T) {
	d := FromHex("ff", DefaultConfig())
	assert.Equal(t, "255", d.String())
}

func TestToIntNarrowing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThrowOnError = false
	d := FromInt64Config(300, cfg)
	v, err := d.ToInt8()
	assert.NoError(t, err)
	assert.Equal(t, int8(math.MaxInt8), v)

	cfg.ThrowOnError = true
	d2 := d.WithConfig(cfg)
	_, err = d2.ToInt8()
	assert.Error(t, err)
}

func TestFitsInt(t *testing.T) {
	d := FromInt64(100)
	assert.True(t, d.FitsInt8())
	assert.True(t, d.FitsInt64())

	big := FromInt64(100000)
	assert.False(t, big.FitsInt8())
}

func TestToFloat64(t *testing.T) {
	d := MustFromString("3.5")
	f, err := d.ToFloat64()
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)
}

func TestFromFloat64SpecialValues(t *testing.T) {
	cfg := DefaultConfig()
	nan := FromFloat64Config(math.NaN(), cfg)
	assert.True(t, nan.IsNaN())

	pinf := FromFloat64Config(math.Inf(1), cfg)
	assert.True(t, pinf.IsInf())
	assert.Equal(t, 1, pinf.Sign())
}
