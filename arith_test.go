package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := MustFromString("10.5")
	b := MustFromString("3.25")
	assert.Equal(t, "13.75", a.Add(b).String())
	assert.Equal(t, "7.25", a.Sub(b).String())
	assert.Equal(t, "-7.25", b.Sub(a).String())
}

func TestAddInfinity(t *testing.T) {
	pinf := Inf(true)
	ninf := Inf(false)
	finite := MustFromString("5")

	assert.True(t, pinf.Add(finite).IsInf())
	assert.Equal(t, 1, pinf.Add(finite).Sign())
	assert.True(t, pinf.Add(ninf).IsNaN())
	assert.True(t, pinf.Add(pinf).IsInf())
}

func TestMul(t *testing.T) {
	a := MustFromString("2.5")
	b := MustFromString("4")
	assert.Equal(t, "10", a.Mul(b).String())

	zero := Zero()
	assert.True(t, Inf(true).Mul(zero).IsNaN())
}

func TestNaNPropagates(t *testing.T) {
	n := NaN()
	finite := MustFromString("1")
	assert.True(t, n.Add(finite).IsNaN())
	assert.True(t, n.Mul(finite).IsNaN())
	assert.True(t, n.Sub(finite).IsNaN())
}
