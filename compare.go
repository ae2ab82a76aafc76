package decimal

// Cmp returns -1, 0 or +1 comparing d to other by value: -1 if d < other,
// 0 if equal, +1 if d > other. NaN compares unordered with everything,
// including itself, and Cmp reports 0 for any comparison involving NaN --
// callers that need IEEE-754 unordered semantics should check IsNaN
// first, which is exactly the caveat the teacher package spells out for
// its own NaN-involving predicates.
func (d Decimal) Cmp(other Decimal) int {
	if d.IsNaN() || other.IsNaN() {
		return 0
	}
	if d.IsInf() || other.IsInf() {
		return cmpInf(d, other)
	}
	if d.sign != other.sign {
		if d.sign < other.sign {
			return -1
		}
		return 1
	}
	a, b, _ := align(d.buf, other.buf)
	c := a.mag.Cmp(b.mag)
	if d.sign < 0 {
		c = -c
	}
	return c
}

func cmpInf(a, b Decimal) int {
	as, bs := infRank(a), infRank(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// infRank orders a value along the extended number line: -Inf lowest,
// +Inf highest, finite values by their ordinary sign and magnitude rank
// of 0 (good enough since at least one operand here is infinite).
func infRank(d Decimal) int {
	if d.IsInf() {
		return int(d.sign) * 2
	}
	return int(d.sign)
}

// Equal reports whether d and other compare equal. NaN is never equal to
// anything, including another NaN.
func (d Decimal) Equal(other Decimal) bool {
	if d.IsNaN() || other.IsNaN() {
		return false
	}
	return d.Cmp(other) == 0
}

// Less reports whether d < other.
func (d Decimal) Less(other Decimal) bool { return d.Cmp(other) < 0 }

// LessOrEqual reports whether d <= other. NaN is unordered with
// everything, so a comparison involving NaN is never <=.
func (d Decimal) LessOrEqual(other Decimal) bool {
	if d.IsNaN() || other.IsNaN() {
		return false
	}
	return d.Cmp(other) <= 0
}

// Greater reports whether d > other.
func (d Decimal) Greater(other Decimal) bool { return d.Cmp(other) > 0 }

// GreaterOrEqual reports whether d >= other. NaN is unordered with
// everything, so a comparison involving NaN is never >=.
func (d Decimal) GreaterOrEqual(other Decimal) bool {
	if d.IsNaN() || other.IsNaN() {
		return false
	}
	return d.Cmp(other) >= 0
}
