package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSinhCoshZero(t *testing.T) {
	cfg := precision(15)
	zero := decimal.Zero().WithConfig(cfg)
	closeTo(t, Sinh(zero), zero, 10)
	closeTo(t, Cosh(zero), decimal.FromInt64Config(1, cfg), 10)
}

func TestCoshSquaredMinusSinhSquared(t *testing.T) {
	cfg := precision(15)
	x := decimal.MustFromString("0.75").WithConfig(cfg)
	c := Cosh(x)
	s := Sinh(x)
	identity := c.Mul(c).Sub(s.Mul(s))
	closeTo(t, identity, decimal.FromInt64Config(1, cfg), 8)
}

func TestAsinhInverseOfSinh(t *testing.T) {
	cfg := precision(15)
	x := decimal.MustFromString("1.2").WithConfig(cfg)
	roundTrip := Asinh(Sinh(x))
	closeTo(t, roundTrip, x, 8)
}

func TestAtanhDomainError(t *testing.T) {
	cfg := precision(10)
	cfg.ThrowOnError = true
	one := decimal.FromInt64Config(1, cfg)
	assert.Panics(t, func() { Atanh(one) })
}
