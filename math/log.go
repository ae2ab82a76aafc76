package math

import "github.com/dmoreau-labs/decimal"

// Ln returns the natural logarithm of x. x is reduced to m*2^k with m in
// [1, 2] by halving while m > 2 or doubling while m < 1, then ln(m) is
// summed from its atanh-style series 2*Sum (((m-1)/(m+1))^(2i+1))/(2i+1)
// for the number of terms named in x.Config().Ln, and k*ln(2) is added
// back. Zero and negative x are domain violations.
//
// Note the reduction deliberately keeps m == 2 rather than halving it to
// 1: reducing x == 2 leaves k == 0, so the series alone computes Ln(2)
// without referring back to Constants' Ln2, which is itself computed by
// calling lnRaw on exactly 2 -- keeping 2 unreduced avoids a circular
// dependency between Ln and Constants.
func Ln(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		if x.Sign() > 0 {
			return decimal.Inf(true).WithConfig(cfg)
		}
		return domainError(cfg, "natural logarithm of negative infinity")
	}
	switch x.Sign() {
	case 0:
		return domainError(cfg, "natural logarithm of zero")
	case -1:
		return domainError(cfg, "natural logarithm of a negative number")
	}
	one := decimal.FromInt64Config(1, cfg)
	if x.Equal(one) {
		return decimal.Zero().WithConfig(cfg)
	}

	return finish(lnRaw(x, cfg, nil), cfg)
}

// lnRaw is Ln's core reduce-and-sum step, factored out so
// generateConstants can supply an already-computed ln2 for the k*ln(2)
// term instead of routing through Ln2Config -- which calls back into
// getConstants, and getConstants is not reentrant under the write lock
// generateConstants runs inside while it builds that very cache entry.
// ln2, if non-nil, must already hold the value of Ln(2) and is rescaled
// to this call's working precision; if nil, Ln2Config supplies it.
func lnRaw(x decimal.Decimal, cfg decimal.Config, ln2 *decimal.Decimal) decimal.Decimal {
	wc := widen(cfg)
	two := decimal.FromInt64Config(2, wc)
	oneW := decimal.FromInt64Config(1, wc)
	m := x.WithConfig(wc)
	k := 0
	for m.Cmp(two) > 0 {
		m = m.Divide(two)
		k++
	}
	for m.Cmp(oneW) < 0 {
		m = m.Mul(two)
		k--
	}

	ratio := m.Sub(oneW).Divide(m.Add(oneW))
	ratioSq := ratio.Mul(ratio)
	term := ratio
	sum := ratio
	for i := 1; i < cfg.Ln; i++ {
		term = term.Mul(ratioSq)
		denom := decimal.FromInt64Config(int64(2*i+1), wc)
		sum = sum.Add(term.Divide(denom))
	}
	lnm := sum.Mul(two)

	if k == 0 {
		return lnm
	}
	var l2 decimal.Decimal
	if ln2 != nil {
		l2 = ln2.WithConfig(wc)
	} else {
		l2 = Ln2Config(wc)
	}
	kDec := decimal.FromInt64Config(int64(k), wc)
	return lnm.Add(kDec.Mul(l2))
}

// Log returns the logarithm of x in an arbitrary base: Ln(x)/Ln(base).
func Log(x, base decimal.Decimal) decimal.Decimal {
	return Ln(x).Divide(Ln(base))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x decimal.Decimal) decimal.Decimal {
	return Ln(x).Mul(Log2EConfig(x.Config()))
}

// Log10 returns the base-10 logarithm of x.
func Log10(x decimal.Decimal) decimal.Decimal {
	return Ln(x).Divide(Ln10Config(x.Config()))
}
