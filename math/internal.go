package math

import "github.com/dmoreau-labs/decimal"

// guardDigits is the number of extra fractional digits series-based
// functions carry through their loop before rounding back down to the
// operand's requested precision, the same guard-digit idea the teacher's
// pi() and log() express as `p := prec + decimal.DigitsPerWord`.
const guardDigits = 10

// widen returns cfg with Decimals increased by guardDigits, used to run
// a series computation at slightly more precision than the caller asked
// for so the final rounding step has real digits to round, not noise.
func widen(cfg decimal.Config) decimal.Config {
	cfg.Decimals += guardDigits
	return cfg
}

func finish(x decimal.Decimal, cfg decimal.Config) decimal.Decimal {
	if x.Decimals() > cfg.Decimals {
		x = decimal.RoundTo(x, cfg.Decimals)
	}
	return x.WithConfig(cfg)
}

// domainError panics with decimal.ErrNaN when cfg.ThrowOnError is set, or
// returns NaN under cfg otherwise -- the uniform way every domain
// violation in this package (log of a non-positive value, arcsine
// outside [-1,1], factorial of a negative number, ...) is reported,
// mirroring the teacher's own panic(decimal.ErrNaN{...}) convention for
// Log of a negative operand.
func domainError(cfg decimal.Config, msg string) decimal.Decimal {
	if cfg.ThrowOnError {
		panic(decimal.ErrNaN{Msg: msg})
	}
	n := decimal.NaN()
	return n.WithConfig(cfg)
}
