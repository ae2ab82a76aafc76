package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmpOrdering(t *testing.T) {
	a := MustFromString("1.5")
	b := MustFromString("1.50")
	c := MustFromString("2")
	assert.True(t, a.Equal(b))
	assert.True(t, a.Less(c))
	assert.True(t, c.Greater(a))
	assert.True(t, a.LessOrEqual(b))
	assert.True(t, a.GreaterOrEqual(b))
}

func TestCmpNaNUnordered(t *testing.T) {
	n := NaN()
	a := MustFromString("1")
	assert.False(t, n.Equal(n))
	assert.False(t, n.Equal(a))
	assert.Equal(t, 0, n.Cmp(a))
}

func TestCmpInfinity(t *testing.T) {
	pinf := Inf(true)
	ninf := Inf(false)
	finite := MustFromString("1000000")
	assert.True(t, pinf.Greater(finite))
	assert.True(t, ninf.Less(finite))
	assert.True(t, pinf.Greater(ninf))
	assert.True(t, pinf.Equal(Inf(true)))
}
