package decimal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitBufferString(t *testing.T) {
	b := digitBuffer{mag: big.NewInt(12345), decimals: 2}
	assert.Equal(t, "123.45", b.String())

	zero := zeroBuf()
	assert.Equal(t, "0", zero.String())

	small := digitBuffer{mag: big.NewInt(5), decimals: 3}
	assert.Equal(t, "0.005", small.String())
}

func TestDigitBufferTrailTrim(t *testing.T) {
	b := digitBuffer{mag: big.NewInt(123000), decimals: 4}
	trimmed := b.trailTrim()
	assert.Equal(t, 1, trimmed.decimals)
	assert.Equal(t, "12.3", trimmed.String())
}

func TestDigitBufferWithDecimals(t *testing.T) {
	b := digitBuffer{mag: big.NewInt(5), decimals: 0}
	widened := b.withDecimals(2)
	assert.Equal(t, "5.00", widened.String())

	narrowed := widened.withDecimals(0)
	assert.Equal(t, "5", narrowed.String())
}

func TestRoundToHalfUp(t *testing.T) {
	b := digitBuffer{mag: big.NewInt(125), decimals: 2} // 1.25
	rounded := roundTo(b, 1, false)
	assert.Equal(t, "1.3", rounded.String())

	truncated := roundTo(b, 1, true)
	assert.Equal(t, "1.2", truncated.String())
}

func TestAlign(t *testing.T) {
	a := digitBuffer{mag: big.NewInt(5), decimals: 0}
	b := digitBuffer{mag: big.NewInt(25), decimals: 2}
	ra, rb, dec := align(a, b)
	assert.Equal(t, 2, dec)
	assert.Equal(t, "5.00", ra.String())
	assert.Equal(t, "0.25", rb.String())
}
