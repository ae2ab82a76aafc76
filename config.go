package decimal

// Config bundles the tunable iteration counts and behavior flags that
// control every variable-precision algorithm in this package and in
// decimal/math. It is the Go translation of the C++ DecimalIterations
// bundle in the original source this package was distilled from,
// reshaped as an immutable value embedded directly in every Decimal
// (see Decimal.cfg) rather than threaded alongside each call -- the
// teacher package bundles the analogous precision/rounding knobs in a
// separate context.Context wrapper; here the bundle travels with the
// value instead, per this package's value-semantics requirement.
type Config struct {
	// Decimals is the number of fractional digits Divide and the
	// decimal/math functions round their results to; parsing, Add, Sub
	// and Mul keep every digit exactly. Results whose magnitude reaches
	// 10^Decimals saturate to a signed Infinity. Default 40.
	Decimals int

	// E is the number of terms in the Exp Taylor series. Default 40.
	E int

	// Pi is the minimum number of Chudnovsky series terms used to
	// regenerate the 1/Pi constant. Default 1. Each term contributes
	// roughly 14 digits, and at least Decimals/14 + 2 terms are always
	// summed, whatever Pi is set to.
	Pi int

	// Div is the number of Newton-Raphson reciprocal-refinement rounds
	// DivisionEngine runs after its initial long division. 0 disables
	// refinement and uses the long-division quotient directly.
	Div int

	// Ln is the number of terms in the Ln series.
	Ln int

	// Tanh is the number of Bernoulli-number terms in the Tanh series.
	Tanh int

	// Sqrt is the number of Newton iterations the internal sqrt bootstrap
	// runs.
	Sqrt int

	// Trig is the number of terms in the Sin/Cos/Atan series.
	Trig int

	// TruncNotRound, when true, truncates toward zero instead of rounding
	// half up whenever a result must be narrowed to fewer fractional
	// digits than it was computed with.
	TruncNotRound bool

	// ThrowOnError selects whether a domain violation (divide by zero,
	// log of a non-positive number, a narrowing conversion that does not
	// fit, ...) panics/returns an error, or is silently folded into a
	// special value (NaN or a signed Infinity).
	ThrowOnError bool
}

// DefaultConfig returns the default Config: 40 decimals, 40-term E/Ln/Tanh
// series, 1-term Chudnovsky Pi, 5 Newton-Raphson division-refinement
// rounds, 5-term trig series, round-half-up narrowing, and domain errors
// raised rather than silently coerced to special values.
func DefaultConfig() Config {
	return Config{
		Decimals:      40,
		E:             40,
		Pi:            1,
		Div:           5,
		Ln:            40,
		Tanh:          40,
		Sqrt:          40,
		Trig:          5,
		TruncNotRound: false,
		ThrowOnError:  true,
	}
}
