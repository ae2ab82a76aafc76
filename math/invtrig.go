package math

import "github.com/dmoreau-labs/decimal"

// Atan returns the arctangent of x. For |x| <= 1 it sums the series
// Sum (-1)^n x^(2n+1)/(2n+1) for the number of terms named in
// x.Config().Trig; otherwise it uses atan(x) = sign(x)*pi/2 - atan(1/x)
// to fall back into the convergent range.
func Atan(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		pi2 := Pi2Config(cfg)
		if x.Sign() > 0 {
			return pi2
		}
		return pi2.Neg()
	}
	wc := widen(cfg)
	xw := x.WithConfig(wc)
	one := decimal.FromInt64Config(1, wc)
	if xw.Abs().Cmp(one) > 0 {
		recip := Atan(decimal.Divide(one, xw).WithConfig(cfg))
		pi2 := Pi2Config(cfg)
		var result decimal.Decimal
		if x.Sign() < 0 {
			result = pi2.Neg().Sub(recip)
		} else {
			result = pi2.Sub(recip)
		}
		return finish(result, cfg)
	}
	rsq := xw.Mul(xw)
	term := xw
	sum := xw
	sign := false
	n := int64(1)
	for i := 1; i < cfg.Trig; i++ {
		term = term.Mul(rsq)
		t := term.Divide(decimal.FromInt64Config(2*n+1, wc))
		if sign {
			sum = sum.Add(t)
		} else {
			sum = sum.Sub(t)
		}
		sign = !sign
		n++
	}
	return finish(sum, cfg)
}

// Atan2 returns the angle, in (-pi, pi], of the point (x, y) from the
// origin, resolving the quadrant x alone cannot.
func Atan2(y, x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() || y.IsNaN() {
		return decimal.NaN().WithConfig(cfg)
	}
	pi := PiConfig(cfg)
	pi2 := Pi2Config(cfg)
	switch {
	case x.Sign() > 0:
		return Atan(decimal.Divide(y, x))
	case x.Sign() < 0 && y.Sign() >= 0:
		return Atan(decimal.Divide(y, x)).Add(pi)
	case x.Sign() < 0 && y.Sign() < 0:
		return Atan(decimal.Divide(y, x)).Sub(pi)
	case x.IsZero() && y.Sign() > 0:
		return pi2
	case x.IsZero() && y.Sign() < 0:
		return pi2.Neg()
	default:
		return domainError(cfg, "atan2 of (0, 0) is undefined")
	}
}

// Asin returns the arcsine of x, via Atan(x / sqrt(1 - x^2)). |x| > 1 is
// a domain violation.
func Asin(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	one := decimal.FromInt64Config(1, cfg)
	if x.Abs().Cmp(one) > 0 {
		return domainError(cfg, "arcsine of a value outside [-1, 1]")
	}
	if x.Abs().Cmp(one) == 0 {
		pi2 := Pi2Config(cfg)
		if x.Sign() < 0 {
			return pi2.Neg()
		}
		return pi2
	}
	inside := one.Sub(x.Mul(x))
	denom := Sqrt(inside.WithConfig(cfg))
	return Atan(decimal.Divide(x, denom))
}

// Acos returns the arccosine of x, via pi/2 - Asin(x).
func Acos(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	return Pi2Config(cfg).Sub(Asin(x))
}

// Acot returns the arccotangent of x, via Atan(1/x).
func Acot(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return Atan(decimal.Divide(one, x))
}

// Asec returns the arcsecant of x, via Acos(1/x).
func Asec(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return Acos(decimal.Divide(one, x))
}

// Acsc returns the arccosecant of x, via Asin(1/x).
func Acsc(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return Asin(decimal.Divide(one, x))
}
