package decimal

import "math/big"

// digitBuffer is the base-10 fixed-point magnitude underlying every
// normal Decimal: an unsigned integer magnitude together with a count of
// how many of its trailing digits lie after the decimal point. It plays
// the role the component design calls DigitBuffer -- an ordered sequence
// of decimal digits plus a fractional-digit count -- but is stored as a
// big.Int rather than a digit-per-element sequence, the same pairing
// go-inf-inf's Dec (unscaled big.Int + scale) and cockroachdb/apd's
// Decimal (Coeff big.Int + Exponent) use for their coefficient+scale
// representations. Every digitBuffer is immutable from the caller's
// perspective: operations return a new value rather than mutating in
// place.
type digitBuffer struct {
	mag      *big.Int // always >= 0
	decimals int      // always >= 0
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

func zeroBuf() digitBuffer {
	return digitBuffer{mag: new(big.Int), decimals: 0}
}

// pow10 returns 10^n as a freshly allocated big.Int. n < 0 is treated as 0.
func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func (b digitBuffer) isZero() bool { return b.mag.Sign() == 0 }

// trailTrim removes non-significant trailing fractional zeros, e.g.
// 1.2300 (decimals=4) becomes 1.23 (decimals=2).
func (b digitBuffer) trailTrim() digitBuffer {
	if b.decimals == 0 {
		return b
	}
	if b.mag.Sign() == 0 {
		return digitBuffer{mag: b.mag, decimals: 0}
	}
	m := new(big.Int).Set(b.mag)
	dec := b.decimals
	for dec > 0 {
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(m, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		m = q
		dec--
	}
	return digitBuffer{mag: m, decimals: dec}
}

// withDecimals rescales b to exactly n fractional digits: widening pads
// the magnitude with trailing zeros, narrowing truncates toward zero
// (callers that need rounding instead of truncation use roundTo).
func (b digitBuffer) withDecimals(n int) digitBuffer {
	if n == b.decimals {
		return b
	}
	if n > b.decimals {
		return digitBuffer{mag: new(big.Int).Mul(b.mag, pow10(n-b.decimals)), decimals: n}
	}
	return digitBuffer{mag: new(big.Int).Quo(b.mag, pow10(b.decimals-n)), decimals: n}
}

// roundTo narrows b to exactly places fractional digits, rounding half
// up unless truncNotRound is set, in which case it truncates toward
// zero. places must be <= b.decimals.
func roundTo(b digitBuffer, places int, truncNotRound bool) digitBuffer {
	drop := b.decimals - places
	if drop <= 0 {
		return b.withDecimals(places)
	}
	divisor := pow10(drop)
	q, rem := new(big.Int).QuoRem(b.mag, divisor, new(big.Int))
	if !truncNotRound && rem.Sign() != 0 {
		twice := new(big.Int).Lsh(rem, 1)
		if twice.CmpAbs(divisor) >= 0 {
			q.Add(q, bigOne)
		}
	}
	return digitBuffer{mag: q, decimals: places}
}

// align rescales a and b to a common fractional-digit count (the larger
// of the two) and returns that count alongside the rescaled buffers, as
// CoreArithmetic requires before adding or comparing magnitudes.
func align(a, b digitBuffer) (digitBuffer, digitBuffer, int) {
	d := a.decimals
	if b.decimals > d {
		d = b.decimals
	}
	return a.withDecimals(d), b.withDecimals(d), d
}

func (b digitBuffer) String() string {
	s := b.mag.String()
	if b.decimals == 0 {
		return s
	}
	for len(s) <= b.decimals {
		s = "0" + s
	}
	i := len(s) - b.decimals
	return s[:i] + "." + s[i:]
}
