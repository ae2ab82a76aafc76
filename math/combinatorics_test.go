package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFactorial(t *testing.T) {
	cfg := precision(10)
	five := decimal.FromInt64Config(5, cfg)
	assert.Equal(t, "120", Factorial(five).String())

	zero := decimal.Zero().WithConfig(cfg)
	assert.Equal(t, "1", Factorial(zero).String())
}

func TestFactorialDomainError(t *testing.T) {
	cfg := precision(10)
	cfg.ThrowOnError = true
	neg := decimal.FromInt64Config(-1, cfg)
	assert.Panics(t, func() { Factorial(neg) })
}

func TestNPrNCr(t *testing.T) {
	cfg := precision(10)
	n := decimal.FromInt64Config(5, cfg)
	k := decimal.FromInt64Config(2, cfg)
	assert.Equal(t, "20", NPr(n, k).String())
	assert.Equal(t, "10", NCr(n, k).String())
}

func TestMultinomialCoefficient(t *testing.T) {
	cfg := precision(10)
	n := decimal.FromInt64Config(6, cfg)
	a := decimal.FromInt64Config(3, cfg)
	b := decimal.FromInt64Config(2, cfg)
	c := decimal.FromInt64Config(1, cfg)
	assert.Equal(t, "60", MultinomialCoefficient(n, a, b, c).String())
}
