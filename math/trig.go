package math

import "github.com/dmoreau-labs/decimal"

// TrigPhaseCorrect reduces x into (-pi, pi] by subtracting the nearest
// multiple of 2*pi, the phase-reduction step Sin/Cos/Tan perform before
// summing their power series (the series only converges quickly for
// small arguments).
func TrigPhaseCorrect(x decimal.Decimal) decimal.Decimal {
	if !x.IsNormal() {
		return x
	}
	cfg := x.Config()
	wc := widen(cfg)
	xw := x.WithConfig(wc)
	pi := PiConfig(wc)
	twoPi := pi.Mul(decimal.FromInt64Config(2, wc))
	reduced := decimal.Mod(xw, twoPi)
	if reduced.Cmp(pi) > 0 {
		reduced = reduced.Sub(twoPi)
	} else if reduced.Cmp(pi.Neg()) <= 0 {
		reduced = reduced.Add(twoPi)
	}
	return finish(reduced, cfg)
}

func trigDomainCheck(x decimal.Decimal) (decimal.Decimal, bool) {
	if x.IsNaN() {
		return x, true
	}
	if x.IsInf() {
		return domainError(x.Config(), "trigonometric function of infinity is undefined"), true
	}
	return decimal.Decimal{}, false
}

// Sin returns sin(x) via its Taylor series, summed for the number of
// terms named in x.Config().Trig, after reducing x with
// TrigPhaseCorrect.
func Sin(x decimal.Decimal) decimal.Decimal {
	if r, done := trigDomainCheck(x); done {
		return r
	}
	cfg := x.Config()
	wc := widen(cfg)
	rw := TrigPhaseCorrect(x).WithConfig(wc)
	rsq := rw.Mul(rw)
	term := rw
	sum := rw
	sign := false
	denom := int64(2)
	for n := 1; n < cfg.Trig; n++ {
		term = term.Mul(rsq).Divide(decimal.FromInt64Config(denom, wc)).Divide(decimal.FromInt64Config(denom+1, wc))
		if sign {
			sum = sum.Add(term)
		} else {
			sum = sum.Sub(term)
		}
		sign = !sign
		denom += 2
	}
	return finish(sum, cfg)
}

// Cos returns cos(x) via its Taylor series, summed for the number of
// terms named in x.Config().Trig, after reducing x with
// TrigPhaseCorrect.
func Cos(x decimal.Decimal) decimal.Decimal {
	if r, done := trigDomainCheck(x); done {
		return r
	}
	cfg := x.Config()
	wc := widen(cfg)
	rw := TrigPhaseCorrect(x).WithConfig(wc)
	rsq := rw.Mul(rw)
	term := decimal.FromInt64Config(1, wc)
	sum := term
	sign := false
	denom := int64(1)
	for n := 1; n < cfg.Trig; n++ {
		term = term.Mul(rsq).Divide(decimal.FromInt64Config(denom, wc)).Divide(decimal.FromInt64Config(denom+1, wc))
		if sign {
			sum = sum.Add(term)
		} else {
			sum = sum.Sub(term)
		}
		sign = !sign
		denom += 2
	}
	return finish(sum, cfg)
}

// Tan returns sin(x)/cos(x). A cosine of zero yields a signed Infinity
// or NaN following the usual division-by-zero behavior.
func Tan(x decimal.Decimal) decimal.Decimal {
	return decimal.Divide(Sin(x), Cos(x))
}

// Cot returns cos(x)/sin(x).
func Cot(x decimal.Decimal) decimal.Decimal {
	return decimal.Divide(Cos(x), Sin(x))
}

// Sec returns 1/cos(x).
func Sec(x decimal.Decimal) decimal.Decimal {
	return decimal.Divide(decimal.FromInt64Config(1, x.Config()), Cos(x))
}

// Csc returns 1/sin(x).
func Csc(x decimal.Decimal) decimal.Decimal {
	return decimal.Divide(decimal.FromInt64Config(1, x.Config()), Sin(x))
}
