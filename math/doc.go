// Package math implements the transcendental and special functions
// built on top of decimal.Decimal's core arithmetic: exponentials,
// logarithms, trigonometrics and their inverses, hyperbolics and their
// inverses, the error function, rounding, combinatorics, the
// Chudnovsky-derived constants, and the Bernoulli number generator.
//
// Every function here takes and returns decimal.Decimal by value, the
// same value-semantics, no-aliasing contract the decimal package itself
// follows; none of them mirror the mutable-receiver shape this
// subpackage's ancestor used for Exp, Log and Pi.
//
// Series-based functions (Exp, Ln, Sin, Cos, Atan, Tanh, Erf) sum the
// number of terms named in the operand's decimal.Config (E, Ln, Trig,
// Tanh respectively), plus a small internal guard allowance of
// additional fractional digits carried through the computation and
// rounded away from the final result -- the same "compute a few extra
// digits, round down once at the end" shape the teacher's pi() and
// log() used via their own `p := prec + decimal.DigitsPerWord` guard
// widening.
package math
