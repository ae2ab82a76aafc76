package math

import "github.com/dmoreau-labs/decimal"

// Erf returns the error function of x, via the series
//
//	erf(x) = (2/sqrt(pi)) * Sum_{n=0}^inf (-1)^n x^(2n+1) / (n! (2n+1))
//
// summed for x.Config().E terms -- there is no dedicated config knob for
// this series, so the exponential term count is reused, matching the
// two functions' similar convergence behavior.
func Erf(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	one := decimal.FromInt64Config(1, cfg)
	if x.IsInf() {
		if x.Sign() > 0 {
			return one
		}
		return one.Neg()
	}
	wc := widen(cfg)
	xw := x.WithConfig(wc)
	if xw.IsZero() {
		return decimal.Zero().WithConfig(cfg)
	}

	x2 := xw.Mul(xw)
	term := xw
	sum := xw
	sign := false
	factorial := decimal.FromInt64Config(1, wc)
	terms := cfg.E
	if terms < 1 {
		terms = 1
	}
	for n := 1; n < terms; n++ {
		factorial = factorial.Mul(decimal.FromInt64Config(int64(n), wc))
		term = term.Mul(x2)
		denom := factorial.Mul(decimal.FromInt64Config(int64(2*n+1), wc))
		t := term.Divide(denom)
		if sign {
			sum = sum.Add(t)
		} else {
			sum = sum.Sub(t)
		}
		sign = !sign
	}
	scaled := sum.Mul(TwoOverSqrtPiConfig(wc))
	return finish(scaled, cfg)
}

// Hypot returns sqrt(x*x + y*y).
func Hypot(x, y decimal.Decimal) decimal.Decimal {
	return Sqrt(x.Mul(x).Add(y.Mul(y)))
}
