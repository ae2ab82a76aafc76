package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivideBasic(t *testing.T) {
	a := MustFromString("10")
	b := MustFromString("4")
	result := Divide(a, b)
	assert.Equal(t, "2.5", result.String())
}

func TestDivideByZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThrowOnError = false
	a := FromInt64Config(5, cfg)
	zero := FromInt64Config(0, cfg)
	result := Divide(a, zero)
	assert.True(t, result.IsInf())
	assert.Equal(t, 1, result.Sign())

	zeroOverZero := Divide(zero, zero)
	assert.True(t, zeroOverZero.IsNaN())
}

func TestDivideByZeroPanics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThrowOnError = true
	zero := FromInt64Config(0, cfg)
	require.Panics(t, func() { Divide(zero, zero) })
}

func TestModTruncatedTowardZero(t *testing.T) {
	a := MustFromString("-5")
	b := MustFromString("3")
	result := Mod(a, b)
	assert.Equal(t, "-2", result.String())

	a2 := MustFromString("5")
	b2 := MustFromString("3")
	assert.Equal(t, "2", Mod(a2, b2).String())
}

func TestDivisionRepeatingDecimal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Decimals = 10
	a := FromInt64Config(1, cfg)
	b := FromInt64Config(3, cfg)
	result := Divide(a, b)
	assert.Equal(t, "0.3333333333", result.String())
}
