// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decimal implements arbitrary-precision, base-10 fixed-point
decimal arithmetic with IEEE-754-style special values: positive and
negative Infinity, and NaN.

Unlike this package's ancestor, which models its API on math/big.Float's
mutable, receiver-is-the-result convention, every Decimal here is an
immutable value: arithmetic methods and functions never write through a
receiver or argument, they return a new Decimal. There is no aliasing
rule to remember -- passing the same Decimal as both operands is always
safe, because there is nothing to overwrite. The zero value Decimal{} is
not a usable number (it has no magnitude, and arithmetic on it panics);
start from Zero() or one of the constructors below.

	a := decimal.MustFromString("1.5")
	b := decimal.FromInt64(2)
	c := a.Mul(b)          // c == 3, a and b unchanged
	d := a.Add(a)          // d == 3, safe even though both operands are a

Every Decimal carries its own Config (see the Config type), the bundle
of iteration counts and behavior flags that determine how many
fractional digits a result keeps and how many series terms a
transcendental function sums before stopping. WithConfig returns a copy
of a Decimal under a different Config; it never discards digits the
value already has.

Construction starts from a primitive, a decimal string, or a hex string:

	decimal.FromInt64(42)
	decimal.MustFromString("3.1415926535")
	decimal.FromHex("2a", decimal.DefaultConfig())

Conversions back to a Go primitive (the To* family) report whether the
value fits the destination type; when it does not, the behavior is
controlled by the receiver's Config.ThrowOnError: set, the conversion
returns an error; unset, it saturates to the nearest representable
value instead.

Domain errors in arithmetic and the transcendental functions in
decimal/math -- division by zero, the logarithm of a non-positive
value, an arcsine argument outside [-1, 1], and so on -- follow the
same Config.ThrowOnError switch, but since most of these operations have
no natural error return, the violation is reported by panicking with an
ErrNaN instead, mirroring this package's own ErrNaN panic used
previously for Sqrt of a negative operand. With ThrowOnError unset, the
same operations instead return NaN or a signed Infinity.
*/
package decimal
