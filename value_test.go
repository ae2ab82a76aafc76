package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroNaNInf(t *testing.T) {
	z := Zero()
	assert.True(t, z.IsZero())
	assert.True(t, z.IsNormal())
	assert.Equal(t, 0, z.Sign())

	n := NaN()
	assert.True(t, n.IsNaN())
	assert.False(t, n.IsNormal())

	pinf := Inf(true)
	ninf := Inf(false)
	assert.True(t, pinf.IsInf())
	assert.True(t, ninf.IsInf())
	assert.Equal(t, 1, pinf.Sign())
	assert.Equal(t, -1, ninf.Sign())
}

func TestNegAbs(t *testing.T) {
	d := MustFromString("-12.50")
	assert.Equal(t, 1, d.Neg().Sign())
	assert.Equal(t, 1, d.Abs().Sign())
	assert.True(t, d.Neg().Abs().Equal(d.Abs()))

	z := Zero()
	assert.Equal(t, 0, z.Neg().Sign())
}

func TestIntegerPart(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		hadFrac  bool
	}{
		{"12.75", "12", true},
		{"-12.75", "-12", true},
		{"5", "5", false},
		{"0.00", "0", false},
	}
	for _, c := range cases {
		d := MustFromString(c.in)
		ip, hadFrac := d.IntegerPart()
		assert.Equal(t, c.hadFrac, hadFrac, c.in)
		assert.Equal(t, c.want, ip.String(), c.in)
	}
}

func TestRoundTo(t *testing.T) {
	d := MustFromString("1.005")
	r := RoundTo(d, 2)
	assert.Equal(t, "1.01", r.String())
}

func TestWithConfigWidensOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decimals = 10
	d := FromInt64Config(3, cfg).Divide(FromInt64Config(7, cfg))
	narrower := cfg
	narrower.Decimals = 2
	widened := d.WithConfig(narrower)
	require.Equal(t, 10, widened.Decimals())
}

func TestSaturatesToInfinity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decimals = 2
	n := FromInt64Config(99, cfg)
	result := n.Mul(n).Mul(n).Mul(n)
	assert.True(t, result.IsInf())
}
