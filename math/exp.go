package math

import "github.com/dmoreau-labs/decimal"

// Exp returns e^x via the Taylor series e^x = Sum x^n/n!, summing the
// number of terms named in x.Config().E. Exp(0) is exactly 1, Exp(+Inf)
// is +Inf, and Exp(-Inf) is 0; NaN propagates.
func Exp(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		if x.Sign() > 0 {
			return decimal.Inf(true).WithConfig(cfg)
		}
		return decimal.Zero().WithConfig(cfg)
	}
	if x.IsZero() {
		return decimal.FromInt64Config(1, cfg)
	}
	wc := widen(cfg)
	xw := x.WithConfig(wc)
	term := decimal.FromInt64Config(1, wc)
	sum := decimal.FromInt64Config(1, wc)
	for n := 1; n <= cfg.E; n++ {
		term = term.Mul(xw).Divide(decimal.FromInt64Config(int64(n), wc))
		sum = sum.Add(term)
	}
	return finish(sum, cfg)
}

// Pow returns x^y. When y is a finite integer, it is computed by
// repeated squaring of x; otherwise it falls back to Exp(y * Ln(x)),
// which requires x > 0. Pow(0, 0) is a domain violation, per the usual
// convention that it is mathematically undefined; Pow(x, 0) is 1 for
// any other x.
func Pow(x, y decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() || y.IsNaN() {
		return decimal.NaN().WithConfig(cfg)
	}
	if y.IsZero() {
		if x.IsZero() {
			return domainError(cfg, "0^0 is undefined")
		}
		return decimal.FromInt64Config(1, cfg)
	}
	if y.IsInt() && !y.IsInf() {
		n, err := y.ToInt64()
		if err == nil {
			return powInt(x, n)
		}
	}
	if x.Sign() <= 0 {
		return domainError(cfg, "non-integer power of a non-positive base")
	}
	return Exp(y.Mul(Ln(x)))
}

func powInt(x decimal.Decimal, n int64) decimal.Decimal {
	cfg := x.Config()
	neg := n < 0
	if neg {
		n = -n
	}
	result := decimal.FromInt64Config(1, cfg)
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return decimal.Divide(decimal.FromInt64Config(1, cfg), result)
	}
	return result
}
