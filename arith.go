package decimal

import "math/big"

// Add returns d + other. Special values propagate per the special-value
// algebra -- NaN absorbs, Infinity plus a finite value (or a same-signed
// Infinity) stays Infinity, and opposite-signed Infinities cancel to
// NaN -- and otherwise the two operands are aligned to a common
// fractional-digit count and added (or, for opposite signs, the smaller
// magnitude is subtracted from the larger, taking the sign of the
// larger), the same carry/borrow shape as the teacher's add10VW digit
// propagation, delegated here to big.Int once the operands share a
// scale.
func (d Decimal) Add(other Decimal) Decimal {
	if d.IsNaN() || other.IsNaN() {
		return resultNaN(d, other)
	}
	if d.IsInf() || other.IsInf() {
		return addInf(d, other)
	}
	cfg := combineConfig(d.cfg, d, other)
	a, b, dec := align(d.buf, other.buf)
	if d.sign == other.sign || a.isZero() || b.isZero() {
		sign := d.sign
		if sign == 0 {
			sign = other.sign
		}
		return makeResult(sign, digitBuffer{mag: new(big.Int).Add(a.mag, b.mag), decimals: dec}, cfg)
	}
	switch a.mag.Cmp(b.mag) {
	case 0:
		return zeroResult(cfg)
	case 1:
		return makeResult(d.sign, digitBuffer{mag: new(big.Int).Sub(a.mag, b.mag), decimals: dec}, cfg)
	default:
		return makeResult(other.sign, digitBuffer{mag: new(big.Int).Sub(b.mag, a.mag), decimals: dec}, cfg)
	}
}

func addInf(a, b Decimal) Decimal {
	cfg := combineConfig(a.cfg, a, b)
	switch {
	case a.IsInf() && b.IsInf():
		if a.sign == b.sign {
			return Inf(a.sign > 0).WithConfig(cfg)
		}
		return resultNaNCfg(cfg)
	case a.IsInf():
		return Inf(a.sign > 0).WithConfig(cfg)
	default:
		return Inf(b.sign > 0).WithConfig(cfg)
	}
}

// Sub returns d - other, implemented as d.Add(other.Neg()) so it inherits
// Add's special-value handling verbatim (negating an Infinity flips the
// side it propagates from, which is exactly what subtraction needs).
func (d Decimal) Sub(other Decimal) Decimal {
	return d.Add(other.Neg())
}

// Mul returns d * other, propagating NaN and Infinity (Infinity times a
// signed finite non-zero value is a signed Infinity; Infinity times 0 is
// NaN) and otherwise multiplying the two magnitudes and summing their
// fractional-digit counts, the long-multiplication step CoreArithmetic
// specifies.
func (d Decimal) Mul(other Decimal) Decimal {
	if d.IsNaN() || other.IsNaN() {
		return resultNaN(d, other)
	}
	cfg := combineConfig(d.cfg, d, other)
	if d.IsInf() || other.IsInf() {
		if (d.IsInf() && other.IsNormal() && other.buf.isZero()) || (other.IsInf() && d.IsNormal() && d.buf.isZero()) {
			return resultNaNCfg(cfg)
		}
		return Inf(mulSign(d.sign, other.sign) > 0).WithConfig(cfg)
	}
	mag := new(big.Int).Mul(d.buf.mag, other.buf.mag)
	dec := d.buf.decimals + other.buf.decimals
	return makeResult(mulSign(d.sign, other.sign), digitBuffer{mag: mag, decimals: dec}, cfg)
}
