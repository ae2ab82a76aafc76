package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FromString parses s as a signed base-10 decimal under cfg: an optional
// leading '+'/'-', digits, an optional '.' followed by digits, and an
// optional exponent suffix ('e' or 'E', optional sign, digits) -- the
// exponent form is this package's one addition to the literal grammar
// the distilled spec describes, needed so forms like "1e400" parse the
// way the package's own saturation examples require. Leading zeros in
// the integer part are stripped; trailing fractional zeros are kept
// as-is (trimming happens only as a side effect of arithmetic, never of
// parsing). An empty or malformed string yields NaN, or panics with
// ErrNaN if cfg.ThrowOnError is set.
func FromString(s string, cfg Config) Decimal {
	d, err := ParseString(s, cfg)
	if err != nil {
		if cfg.ThrowOnError {
			panic(ErrNaN{err.Error()})
		}
		return resultNaNCfg(cfg)
	}
	return d
}

// ParseString parses s the same way FromString does, but always returns
// an error instead of panicking or substituting NaN, regardless of
// cfg.ThrowOnError. decimal/math uses it internally to parse
// intermediate computed strings (e.g. a Chudnovsky partial sum rendered
// by big.Rat.FloatString) where the caller needs a deterministic error,
// not a policy-dependent panic.
func ParseString(s string, cfg Config) (Decimal, error) {
	return parseDecimalString(s, cfg)
}

func parseDecimalString(s string, cfg Config) (Decimal, error) {
	orig := s
	if s == "" {
		return Decimal{}, illegalOp("empty string is not a valid decimal")
	}
	sign := int8(1)
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}
	mantissa := s
	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return Decimal{}, illegalOp("invalid exponent in %q", orig)
		}
		exp = e
	}
	intPart, fracPart := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, fracPart = mantissa[:i], mantissa[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, illegalOp("%q has no digits", orig)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Decimal{}, illegalOp("%q is not a valid decimal literal", orig)
	}
	digits := intPart + fracPart
	decimals := len(fracPart) - exp
	mag := new(big.Int)
	if digits != "" {
		mag.SetString(digits, 10)
	}
	if decimals < 0 {
		mag.Mul(mag, pow10(-decimals))
		decimals = 0
	}
	if mag.Sign() == 0 {
		sign = 0
	}
	buf := digitBuffer{mag: mag, decimals: decimals}
	d := makeResult(sign, buf, cfg)
	if d.kind == kindNormal {
		// makeResult trims; parsing keeps the fractional digits as written.
		d.buf = buf
	}
	return d, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FromHex parses s (no leading "0x") as an unsigned base-16 integer,
// accumulating it by repeated multiply-by-16, per Converter's hex
// contract. An invalid digit yields NaN, or panics with ErrNaN if
// cfg.ThrowOnError is set.
func FromHex(s string, cfg Config) Decimal {
	if s == "" {
		if cfg.ThrowOnError {
			panic(ErrNaN{"empty hex string"})
		}
		return resultNaNCfg(cfg)
	}
	mag := new(big.Int)
	sixteen := big.NewInt(16)
	for i := 0; i < len(s); i++ {
		v, ok := hexDigit(s[i])
		if !ok {
			if cfg.ThrowOnError {
				panic(ErrNaN{"invalid hex digit in " + s})
			}
			return resultNaNCfg(cfg)
		}
		mag.Mul(mag, sixteen)
		mag.Add(mag, big.NewInt(int64(v)))
	}
	sign := int8(1)
	if mag.Sign() == 0 {
		sign = 0
	}
	return makeResult(sign, digitBuffer{mag: mag, decimals: 0}, cfg)
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// FromInt64 returns the exact integer value n under the default Config.
func FromInt64(n int64) Decimal {
	return FromInt64Config(n, DefaultConfig())
}

// FromInt64Config returns the exact integer value n under cfg.
func FromInt64Config(n int64, cfg Config) Decimal {
	sign := int8(1)
	if n < 0 {
		sign = -1
	} else if n == 0 {
		sign = 0
	}
	mag := new(big.Int).Abs(big.NewInt(n))
	return makeResult(sign, digitBuffer{mag: mag, decimals: 0}, cfg)
}

// FromUint64 returns the exact integer value n under the default Config.
func FromUint64(n uint64) Decimal {
	return FromUint64Config(n, DefaultConfig())
}

// FromUint64Config returns the exact integer value n under cfg.
func FromUint64Config(n uint64, cfg Config) Decimal {
	sign := int8(1)
	if n == 0 {
		sign = 0
	}
	mag := new(big.Int).SetUint64(n)
	return makeResult(sign, digitBuffer{mag: mag, decimals: 0}, cfg)
}

// FromFloat64 textualises f via the platform's shortest round-trip
// format and parses the result back under the default Config, per
// Converter's "from floating-point primitive" contract. Non-finite
// inputs become a signed Infinity or NaN.
func FromFloat64(f float64) Decimal {
	return FromFloat64Config(f, DefaultConfig())
}

// FromFloat64Config is FromFloat64 under an explicit Config.
func FromFloat64Config(f float64, cfg Config) Decimal {
	switch {
	case math.IsNaN(f):
		return resultNaNCfg(cfg)
	case math.IsInf(f, 1):
		return Inf(true).WithConfig(cfg)
	case math.IsInf(f, -1):
		return Inf(false).WithConfig(cfg)
	}
	d, err := parseDecimalString(strconv.FormatFloat(f, 'g', -1, 64), cfg)
	if err != nil {
		return resultNaNCfg(cfg)
	}
	return d
}

// FromFloat32 is FromFloat64 for a narrower input, under the default
// Config.
func FromFloat32(f float32) Decimal {
	return FromFloat64(float64(f))
}

// MustFromFloat64 is FromFloat64Config under cfg, provided for callers
// computing internally from a platform float that is known not to be
// NaN or Infinite, such as a Newton-iteration seed.
func MustFromFloat64(f float64, cfg Config) Decimal {
	return FromFloat64Config(f, cfg)
}

// String returns d's canonical decimal form: an optional '-', the
// integer portion, and, unless Decimals() is 0, a '.' followed by the
// fractional portion with its trailing zeros intact.
func (d Decimal) String() string {
	switch d.kind {
	case kindNaN:
		return "NaN"
	case kindInfinity:
		if d.sign < 0 {
			return "-Inf"
		}
		return "+Inf"
	}
	s := d.buf.String()
	if d.sign < 0 {
		s = "-" + s
	}
	return s
}

// ToFixedString renders d with exactly cfg.Decimals fractional digits,
// zero-padded, regardless of d's own trimmed fractional digit count.
func (d Decimal) ToFixedString() string {
	switch d.kind {
	case kindNaN:
		return "NaN"
	case kindInfinity:
		if d.sign < 0 {
			return "-Inf"
		}
		return "+Inf"
	}
	s := d.buf.withDecimals(d.cfg.Decimals).String()
	if d.sign < 0 {
		s = "-" + s
	}
	return s
}

// ToHex renders the integer portion of d (truncated toward zero) as a
// base-16 string with no "0x" prefix, lowercase unless uppercase is
// requested. A negative integer portion is written with a leading '-';
// Infinity and NaN return an error.
func (d Decimal) ToHex(uppercase bool) (string, error) {
	if d.kind != kindNormal {
		return "", illegalOp("cannot render %s as hex", d.String())
	}
	ip, _ := d.IntegerPart()
	s := ip.buf.mag.Text(16)
	if uppercase {
		s = strings.ToUpper(s)
	}
	if ip.sign < 0 {
		s = "-" + s
	}
	return s, nil
}

// ToInt64 narrows d to an int64. If d does not fit (it is not Normal, not
// integral, or out of range), it returns 0 and an *IllegalOperationError
// when d.Config().ThrowOnError is set; with ThrowOnError false it instead
// saturates silently (err is nil): a negative d gives the range minimum,
// NaN or any other d the range maximum. A non-integral d saturates the
// same way; it is not truncated.
func (d Decimal) ToInt64() (int64, error) {
	return d.narrowSigned(math.MinInt64, math.MaxInt64)
}

// ToInt32 is ToInt64 narrowed further to the int32 range.
func (d Decimal) ToInt32() (int32, error) {
	v, err := d.narrowSigned(math.MinInt32, math.MaxInt32)
	return int32(v), err
}

// ToInt16 is ToInt64 narrowed further to the int16 range.
func (d Decimal) ToInt16() (int16, error) {
	v, err := d.narrowSigned(math.MinInt16, math.MaxInt16)
	return int16(v), err
}

// ToInt8 is ToInt64 narrowed further to the int8 range.
func (d Decimal) ToInt8() (int8, error) {
	v, err := d.narrowSigned(math.MinInt8, math.MaxInt8)
	return int8(v), err
}

// ToUint64 narrows d to a uint64 with the same fit/saturate contract as
// ToInt64.
func (d Decimal) ToUint64() (uint64, error) {
	return d.narrowUnsigned(math.MaxUint64)
}

// ToUint32 is ToUint64 narrowed further to the uint32 range.
func (d Decimal) ToUint32() (uint32, error) {
	v, err := d.narrowUnsigned(math.MaxUint32)
	return uint32(v), err
}

// ToUint16 is ToUint64 narrowed further to the uint16 range.
func (d Decimal) ToUint16() (uint16, error) {
	v, err := d.narrowUnsigned(math.MaxUint16)
	return uint16(v), err
}

// ToUint8 is ToUint64 narrowed further to the uint8 range.
func (d Decimal) ToUint8() (uint8, error) {
	v, err := d.narrowUnsigned(math.MaxUint8)
	return uint8(v), err
}

func (d Decimal) fitsInteger() bool {
	return d.kind == kindNormal && d.buf.decimals == 0
}

func (d Decimal) narrowSigned(lo, hi int64) (int64, error) {
	if !d.fitsInteger() {
		return d.saturateSigned(lo, hi)
	}
	signedMag := signedInt(d.sign, d.buf.mag)
	if signedMag.Cmp(big.NewInt(lo)) < 0 || signedMag.Cmp(big.NewInt(hi)) > 0 {
		return d.saturateSigned(lo, hi)
	}
	return signedMag.Int64(), nil
}

func (d Decimal) saturateSigned(lo, hi int64) (int64, error) {
	if d.cfg.ThrowOnError {
		return 0, illegalOp("%s does not fit the requested width", d.String())
	}
	if d.kind == kindNaN || d.sign >= 0 {
		return hi, nil
	}
	return lo, nil
}

func (d Decimal) narrowUnsigned(hi uint64) (uint64, error) {
	if !d.fitsInteger() || d.sign < 0 {
		return d.saturateUnsigned(hi)
	}
	if d.buf.mag.Cmp(new(big.Int).SetUint64(hi)) > 0 {
		return d.saturateUnsigned(hi)
	}
	return d.buf.mag.Uint64(), nil
}

func (d Decimal) saturateUnsigned(hi uint64) (uint64, error) {
	if d.cfg.ThrowOnError {
		return 0, illegalOp("%s does not fit the requested unsigned width", d.String())
	}
	if d.kind == kindNormal && d.sign < 0 {
		return 0, nil
	}
	return hi, nil
}

// ToFloat64 converts d to the nearest float64, saturating to +/-Inf if d
// exceeds float64's range. NaN and Infinity convert directly.
func (d Decimal) ToFloat64() (float64, error) {
	switch d.kind {
	case kindNaN:
		return math.NaN(), nil
	case kindInfinity:
		if d.sign < 0 {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f, nil
}

// ToFloat32 is ToFloat64 narrowed to float32.
func (d Decimal) ToFloat32() (float32, error) {
	f, err := d.ToFloat64()
	return float32(f), err
}

// FitsInt64 reports whether d is Normal, integral, and within int64's
// range.
func (d Decimal) FitsInt64() bool {
	return d.fitsInteger() && d.fitsSignedRange(math.MinInt64, math.MaxInt64)
}

// FitsInt32 reports whether d is Normal, integral, and within int32's
// range.
func (d Decimal) FitsInt32() bool { return d.fitsInteger() && d.fitsSignedRange(math.MinInt32, math.MaxInt32) }

// FitsInt16 reports whether d is Normal, integral, and within int16's
// range.
func (d Decimal) FitsInt16() bool { return d.fitsInteger() && d.fitsSignedRange(math.MinInt16, math.MaxInt16) }

// FitsInt8 reports whether d is Normal, integral, and within int8's
// range.
func (d Decimal) FitsInt8() bool { return d.fitsInteger() && d.fitsSignedRange(math.MinInt8, math.MaxInt8) }

// FitsUint64 reports whether d is Normal, integral, non-negative, and
// within uint64's range.
func (d Decimal) FitsUint64() bool {
	return d.fitsInteger() && d.sign >= 0 && d.buf.mag.IsUint64()
}

// FitsUint32 reports whether d is Normal, integral, non-negative, and
// within uint32's range.
func (d Decimal) FitsUint32() bool {
	return d.fitsInteger() && d.sign >= 0 && d.buf.mag.IsUint64() && d.buf.mag.Uint64() <= math.MaxUint32
}

// FitsUint16 reports whether d is Normal, integral, non-negative, and
// within uint16's range.
func (d Decimal) FitsUint16() bool {
	return d.fitsInteger() && d.sign >= 0 && d.buf.mag.IsUint64() && d.buf.mag.Uint64() <= math.MaxUint16
}

// FitsUint8 reports whether d is Normal, integral, non-negative, and
// within uint8's range.
func (d Decimal) FitsUint8() bool {
	return d.fitsInteger() && d.sign >= 0 && d.buf.mag.IsUint64() && d.buf.mag.Uint64() <= math.MaxUint8
}

func (d Decimal) fitsSignedRange(lo, hi int64) bool {
	if !d.buf.mag.IsInt64() {
		return false
	}
	v := d.buf.mag.Int64()
	if d.sign < 0 {
		v = -v
	}
	return v >= lo && v <= hi
}
