package math

import "github.com/dmoreau-labs/decimal"

// Sinh returns sinh(x) = (e^x - e^-x) / 2, composed from Exp; no special
// casing for infinities is needed since Exp already saturates correctly.
func Sinh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	two := decimal.FromInt64Config(2, cfg)
	ex := Exp(x)
	enx := Exp(x.Neg())
	return ex.Sub(enx).Divide(two)
}

// Cosh returns cosh(x) = (e^x + e^-x) / 2.
func Cosh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	two := decimal.FromInt64Config(2, cfg)
	ex := Exp(x)
	enx := Exp(x.Neg())
	return ex.Add(enx).Divide(two)
}

// Tanh returns tanh(x). For |x| below Pi2 it sums the Bernoulli-number
// series (the number of terms named in x.Config().Tanh); outside that
// range, where the series converges too slowly to be worth it, it falls
// back to the Sinh/Cosh identity.
func Tanh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() {
		return x
	}
	if x.IsInf() {
		one := decimal.FromInt64Config(1, cfg)
		if x.Sign() > 0 {
			return one
		}
		return one.Neg()
	}
	pi2 := Pi2Config(cfg)
	if x.Abs().Cmp(pi2) >= 0 {
		return decimal.Divide(Sinh(x), Cosh(x))
	}

	wc := widen(cfg)
	xw := x.WithConfig(wc)
	if xw.IsZero() {
		return decimal.Zero().WithConfig(cfg)
	}

	// tanh(x) = Sum_{n=1}^inf B_2n * 4^n * (4^n - 1) * x^(2n-1) / (2n)!
	sum := decimal.Zero().WithConfig(wc)
	xPow := xw
	x2 := xw.Mul(xw)
	factorial := decimal.FromInt64Config(1, wc)
	fourN := decimal.FromInt64Config(4, wc)
	terms := cfg.Tanh
	if terms < 1 {
		terms = 1
	}
	for n := 1; n <= terms; n++ {
		bn := Bernoulli(decimal.FromInt64Config(int64(2*n), wc))
		factorial = factorial.Mul(decimal.FromInt64Config(int64(2*n-1), wc)).Mul(decimal.FromInt64Config(int64(2*n), wc))
		coeff := bn.Mul(fourN).Mul(fourN.Sub(decimal.FromInt64Config(1, wc)))
		term := coeff.Mul(xPow).Divide(factorial)
		sum = sum.Add(term)
		xPow = xPow.Mul(x2)
		fourN = fourN.Mul(decimal.FromInt64Config(4, wc))
	}
	return finish(sum, cfg)
}

// Coth returns 1/tanh(x).
func Coth(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return decimal.Divide(one, Tanh(x))
}

// Sech returns 1/cosh(x).
func Sech(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return decimal.Divide(one, Cosh(x))
}

// Csch returns 1/sinh(x).
func Csch(x decimal.Decimal) decimal.Decimal {
	one := decimal.FromInt64Config(1, x.Config())
	return decimal.Divide(one, Sinh(x))
}

// Asinh returns ln(x + sqrt(x^2 + 1)).
func Asinh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	one := decimal.FromInt64Config(1, cfg)
	inside := x.Mul(x).Add(one)
	return Ln(x.Add(Sqrt(inside)))
}

// Acosh returns ln(x + sqrt(x^2 - 1)). x < 1 is a domain violation.
func Acosh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	one := decimal.FromInt64Config(1, cfg)
	if x.Cmp(one) < 0 {
		return domainError(cfg, "hyperbolic arccosine of a value below 1")
	}
	inside := x.Mul(x).Sub(one)
	return Ln(x.Add(Sqrt(inside)))
}

// Atanh returns 0.5*ln((1+x)/(1-x)). |x| >= 1 is a domain violation.
func Atanh(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	one := decimal.FromInt64Config(1, cfg)
	half := decimal.MustFromString("0.5").WithConfig(cfg)
	if x.Abs().Cmp(one) >= 0 {
		return domainError(cfg, "hyperbolic arctangent of a value outside (-1, 1)")
	}
	ratio := decimal.Divide(one.Add(x), one.Sub(x))
	return half.Mul(Ln(ratio))
}

// Acoth returns 0.5*ln((x+1)/(x-1)). |x| <= 1 is a domain violation.
func Acoth(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	one := decimal.FromInt64Config(1, cfg)
	half := decimal.MustFromString("0.5").WithConfig(cfg)
	if x.Abs().Cmp(one) <= 0 {
		return domainError(cfg, "hyperbolic arccotangent of a value inside [-1, 1]")
	}
	ratio := decimal.Divide(x.Add(one), x.Sub(one))
	return half.Mul(Ln(ratio))
}

// Asech returns ln((1+sqrt(1-x^2))/x). x outside (0, 1] is a domain
// violation.
func Asech(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	one := decimal.FromInt64Config(1, cfg)
	zero := decimal.Zero().WithConfig(cfg)
	if x.Cmp(zero) <= 0 || x.Cmp(one) > 0 {
		return domainError(cfg, "hyperbolic arcsecant of a value outside (0, 1]")
	}
	inside := one.Sub(x.Mul(x))
	return Ln(one.Add(Sqrt(inside)).Divide(x))
}

// Acsch returns ln(1/x + sqrt(1/x^2 + 1)). x == 0 is a domain violation.
func Acsch(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsZero() {
		return domainError(cfg, "hyperbolic arccosecant of zero")
	}
	one := decimal.FromInt64Config(1, cfg)
	recip := decimal.Divide(one, x)
	inside := recip.Mul(recip).Add(one)
	return Ln(recip.Add(Sqrt(inside)))
}
