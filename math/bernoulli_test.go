package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBernoulliKnownValues(t *testing.T) {
	cfg := precision(15)
	assert.Equal(t, "1", Bernoulli(decimal.FromInt64Config(0, cfg)).String())
	closeTo(t, Bernoulli(decimal.FromInt64Config(1, cfg)), decimal.MustFromString("-0.5").WithConfig(cfg), 10)
	closeTo(t, Bernoulli(decimal.FromInt64Config(2, cfg)), decimal.MustFromString("0.1666666666666666666667").WithConfig(cfg), 10)
}

func TestBernoulliOddAboveOneIsZero(t *testing.T) {
	cfg := precision(15)
	assert.True(t, Bernoulli(decimal.FromInt64Config(3, cfg)).IsZero())
	assert.True(t, Bernoulli(decimal.FromInt64Config(5, cfg)).IsZero())
}

func TestBernoulliDomainError(t *testing.T) {
	cfg := precision(10)
	cfg.ThrowOnError = true
	neg := decimal.FromInt64Config(-1, cfg)
	assert.Panics(t, func() { Bernoulli(neg) })
}
