package decimal

import "fmt"

// MustFromString is FromString under the default Config, but panics on a
// malformed string instead of returning NaN -- the replacement this
// package offers for languages with a Decimal literal suffix (e.g.
// `"3.14"_D`), since Go has no such literal mechanism. Grounded on
// govalues-decimal's MustAdd/MustSub/MustMul/MustQuo panic-on-error
// convention.
func MustFromString(s string) Decimal {
	cfg := DefaultConfig()
	cfg.ThrowOnError = false
	d, err := parseDecimalString(s, cfg)
	if err != nil {
		panic(fmt.Sprintf("decimal: MustFromString(%q): %v", s, err))
	}
	return d.WithConfig(DefaultConfig())
}

// MustFromInt64 is the literal-suffix replacement for an integer
// constant, e.g. `42 as Decimal`.
func MustFromInt64(n int64) Decimal {
	return FromInt64(n)
}
