package math

import (
	"testing"

	"github.com/dmoreau-labs/decimal"
)

func TestErfZeroAndInfinity(t *testing.T) {
	cfg := precision(15)
	zero := decimal.Zero().WithConfig(cfg)
	closeTo(t, Erf(zero), zero, 10)

	pinf := decimal.Inf(true).WithConfig(cfg)
	closeTo(t, Erf(pinf), decimal.FromInt64Config(1, cfg), 10)
}

func TestHypot(t *testing.T) {
	cfg := precision(10)
	three := decimal.FromInt64Config(3, cfg)
	four := decimal.FromInt64Config(4, cfg)
	closeTo(t, Hypot(three, four), decimal.FromInt64Config(5, cfg), 8)
}
