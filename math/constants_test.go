package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPiAccurateToFortyDigits(t *testing.T) {
	cfg := decimal.DefaultConfig()
	cfg.Decimals = 40
	pi := PiConfig(cfg)
	want := decimal.MustFromString("3.1415926535897932384626433832795028841972").WithConfig(cfg)
	closeTo(t, pi, want, 35)
}

func TestConstantsCacheIsStable(t *testing.T) {
	cfg := precision(20)
	a := PiConfig(cfg)
	b := PiConfig(cfg)
	assert.True(t, a.Equal(b))
}

func TestPi2AndPi4Relations(t *testing.T) {
	cfg := precision(20)
	pi := PiConfig(cfg)
	pi2 := Pi2Config(cfg)
	pi4 := Pi4Config(cfg)
	closeTo(t, pi2.Mul(decimal.FromInt64Config(2, cfg)), pi, 15)
	closeTo(t, pi4.Mul(decimal.FromInt64Config(4, cfg)), pi, 15)
}

func TestSqrt2Squared(t *testing.T) {
	cfg := precision(20)
	sqrt2 := Sqrt2Config(cfg)
	closeTo(t, sqrt2.Mul(sqrt2), decimal.FromInt64Config(2, cfg), 15)
}
