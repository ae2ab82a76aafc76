package math

import (
	"math"

	"github.com/dmoreau-labs/decimal"
)

// Sqrt returns the square root of x, computed as Pow(x, 0.5). A negative
// x is a domain violation.
func Sqrt(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	if x.Sign() < 0 {
		return domainError(cfg, "square root of a negative number")
	}
	if x.IsZero() {
		return decimal.Zero().WithConfig(cfg)
	}
	half := decimal.MustFromString("0.5").WithConfig(cfg)
	return Pow(x, half)
}

// improvisedSqrt computes sqrt(x) with Newton's method using only Add,
// Sub, Mul and Divide -- never Pow, Ln or Exp -- seeded from the
// platform float64 square root, the same "seed from a float64, refine
// exactly" trick the teacher's decsqrt.go uses for its own Newton
// iteration. It exists so Constants (Sqrt2, 1/Sqrt2, 2/SqrtPi) can
// bootstrap without depending on Pow, which itself may need to consult
// Constants for non-integer exponents.
func improvisedSqrt(x decimal.Decimal, cfg decimal.Config) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero().WithConfig(cfg)
	}
	wc := widen(cfg)
	xw := x.WithConfig(wc)
	xf, _ := x.ToFloat64()
	if xf <= 0 || math.IsInf(xf, 0) || math.IsNaN(xf) {
		xf = 1
	}
	r := decimal.MustFromFloat64(math.Sqrt(xf), wc)
	two := decimal.FromInt64Config(2, wc)
	rounds := cfg.Sqrt
	if rounds <= 0 {
		rounds = 1
	}
	for i := 0; i < rounds; i++ {
		r = r.Add(xw.Divide(r)).Divide(two)
	}
	return finish(r, cfg)
}
