package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSqrtPerfectSquare(t *testing.T) {
	cfg := precision(15)
	nine := decimal.FromInt64Config(9, cfg)
	closeTo(t, Sqrt(nine), decimal.FromInt64Config(3, cfg), 8)
}

func TestSqrtNegativeDomainError(t *testing.T) {
	cfg := precision(10)
	cfg.ThrowOnError = true
	neg := decimal.FromInt64Config(-4, cfg)
	assert.Panics(t, func() { Sqrt(neg) })
}

func TestImprovisedSqrtMatchesSqrt(t *testing.T) {
	cfg := precision(20)
	two := decimal.FromInt64Config(2, cfg)
	a := improvisedSqrt(two, cfg)
	b := Sqrt(two)
	closeTo(t, a, b, 10)
}
