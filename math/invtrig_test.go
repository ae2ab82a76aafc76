package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAtanZeroAndOne(t *testing.T) {
	cfg := precision(15)
	zero := decimal.Zero().WithConfig(cfg)
	assert.Equal(t, "0", Atan(zero).String())

	// With the default five Trig terms the series at x = 1 is
	// 1 - 1/3 + 1/5 - 1/7 + 1/9 = 263/315, not yet pi/4.
	one := decimal.FromInt64Config(1, cfg)
	closeTo(t, Atan(one), decimal.MustFromString("0.8349206349206349206349").WithConfig(cfg), 8)
}

func TestAsinAcosBoundary(t *testing.T) {
	cfg := precision(15)
	one := decimal.FromInt64Config(1, cfg)
	closeTo(t, Asin(one), Pi2Config(cfg), 8)
	closeTo(t, Acos(one), decimal.Zero().WithConfig(cfg), 8)
}

func TestAsinDomainError(t *testing.T) {
	cfg := precision(10)
	cfg.ThrowOnError = true
	two := decimal.FromInt64Config(2, cfg)
	assert.Panics(t, func() { Asin(two) })
}

func TestAtanNegativeBeyondOne(t *testing.T) {
	cfg := precision(15)
	five := decimal.FromInt64Config(5, cfg)
	negFive := decimal.FromInt64Config(-5, cfg)

	pos := Atan(five)
	neg := Atan(negFive)
	pi2 := Pi2Config(cfg)

	assert.True(t, neg.Abs().LessOrEqual(pi2))
	closeTo(t, neg, pos.Neg(), 8)
}

func TestAtan2Quadrants(t *testing.T) {
	cfg := precision(15)
	one := decimal.FromInt64Config(1, cfg)
	negOne := decimal.FromInt64Config(-1, cfg)
	zero := decimal.Zero().WithConfig(cfg)

	closeTo(t, Atan2(one, zero), Pi2Config(cfg), 8)
	closeTo(t, Atan2(negOne, zero), Pi2Config(cfg).Neg(), 8)
}
