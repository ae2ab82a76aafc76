package math

import "github.com/dmoreau-labs/decimal"

// Floor returns the largest integer value not greater than x.
func Floor(x decimal.Decimal) decimal.Decimal {
	if !x.IsNormal() {
		return x
	}
	whole, hadFrac := x.IntegerPart()
	if !hadFrac {
		return whole
	}
	if x.Sign() < 0 {
		one := decimal.FromInt64Config(1, x.Config())
		return whole.Sub(one)
	}
	return whole
}

// Ceil returns the smallest integer value not less than x. This
// resolves the spec's Open Question in favor of the mathematically
// correct identity ceil(x) = x when x is already an integer, else
// floor(x)+1 -- the original C++ Ceil unconditionally added 1 even to
// exact integers, which is the same kind of off-by-one the Ceil bug
// discussion already flags.
func Ceil(x decimal.Decimal) decimal.Decimal {
	if !x.IsNormal() {
		return x
	}
	whole, hadFrac := x.IntegerPart()
	if !hadFrac {
		return whole
	}
	if x.Sign() > 0 {
		one := decimal.FromInt64Config(1, x.Config())
		return whole.Add(one)
	}
	return whole
}

// Round returns x rounded to the given number of decimal places.
func Round(x decimal.Decimal, places int) decimal.Decimal {
	return decimal.RoundTo(x, places)
}

// Abs returns the absolute value of x.
func Abs(x decimal.Decimal) decimal.Decimal {
	return x.Abs()
}

// Sign returns -1, 0 or 1 as a Decimal, matching the sign of x.
func Sign(x decimal.Decimal) decimal.Decimal {
	return decimal.FromInt64Config(int64(x.Sign()), x.Config())
}

// Inc returns x + 1.
func Inc(x decimal.Decimal) decimal.Decimal {
	return x.Add(decimal.FromInt64Config(1, x.Config()))
}

// Dec returns x - 1.
func Dec(x decimal.Decimal) decimal.Decimal {
	return x.Sub(decimal.FromInt64Config(1, x.Config()))
}
