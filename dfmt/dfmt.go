// Package dfmt adapts Decimal to the standard text, JSON and fmt
// formatting interfaces, the way the teacher's decimal_marsh.go adapts
// math/big.Float to encoding.TextMarshaler/TextUnmarshaler -- reworked
// here as free functions and a small wrapper type since Decimal itself
// is a plain value with no pointer receiver to hang GobEncode/GobDecode
// off of.
package dfmt

import (
	"bytes"
	"fmt"

	"github.com/dmoreau-labs/decimal"
)

// Value wraps a decimal.Decimal so it can satisfy
// encoding.TextMarshaler, encoding.TextUnmarshaler, json.Marshaler,
// json.Unmarshaler and fmt.Scanner without decimal.Decimal itself
// needing a pointer receiver -- UnmarshalText/UnmarshalJSON/Scan all
// need somewhere to write the decoded value back to, and a bare
// decimal.Decimal has no such home.
type Value struct {
	D   decimal.Decimal
	Cfg decimal.Config
}

// New wraps d in a Value carrying d's own Config, so round-tripping
// through MarshalText/UnmarshalText preserves precision.
func New(d decimal.Decimal) Value {
	return Value{D: d, Cfg: d.Config()}
}

// MarshalText implements encoding.TextMarshaler. Only the value itself
// is marshaled, in full precision; the Config is not -- a decoder
// supplies its own Config by setting the target Value's Cfg field before
// calling UnmarshalText if precision needs to be preserved across the
// wire.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.D.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing text under
// v's existing Config (decimal.DefaultConfig() if v is the zero Value).
func (v *Value) UnmarshalText(text []byte) error {
	cfg := v.Cfg
	if cfg == (decimal.Config{}) {
		cfg = decimal.DefaultConfig()
	}
	d, err := decimal.ParseString(string(text), cfg)
	if err != nil {
		return fmt.Errorf("dfmt: cannot unmarshal %q into a Decimal: %w", text, err)
	}
	v.D = d
	v.Cfg = cfg
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the Decimal as a bare
// JSON number (not a quoted string), matching how encoding/json
// marshals other numeric types. NaN and the Infinities have no JSON
// number form; their String text (NaN, +Inf, -Inf) is written instead,
// which encoding/json rejects as invalid JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.D.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts both a bare
// JSON number and a quoted string, since many JSON producers of
// arbitrary-precision decimals quote them to dodge float64 truncation.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return v.UnmarshalText(data)
}

// Scan implements fmt.Scanner, so a Value can be the target of
// fmt.Scan/Sscan/Fscan.
func (v *Value) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(r rune) bool {
		return r == '+' || r == '-' || r == '.' || r == 'e' || r == 'E' ||
			(r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	return v.UnmarshalText(token)
}

// Format implements fmt.Formatter, supporting %v, %s (default string
// form) and %x/%X (hexadecimal form of the integer part, via
// decimal.Decimal.ToHex).
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		s, err := v.D.ToHex(verb == 'X')
		if err != nil {
			fmt.Fprintf(f, "%%!%c(dfmt.Value=%v)", verb, err)
			return
		}
		writeString(f, s)
	case 'v', 's':
		writeString(f, v.D.String())
	default:
		fmt.Fprintf(f, "%%!%c(dfmt.Value=%s)", verb, v.D.String())
	}
}

func writeString(f fmt.State, s string) {
	if width, ok := f.Width(); ok && width > len(s) {
		pad := width - len(s)
		if f.Flag('-') {
			fmt.Fprint(f, s, spaces(pad))
			return
		}
		fmt.Fprint(f, spaces(pad), s)
		return
	}
	fmt.Fprint(f, s)
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
