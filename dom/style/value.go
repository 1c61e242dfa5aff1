package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Value is a raw (un-computed) value of a CSS property. For example, with
//
//     display: block
//
// a value of Keyword("block") is set. Only keywords are interpreted by the
// cascade; the other variants are carried through unchanged for layout and
// rendering.
type Value interface {
	fmt.Stringer
	isValue()
}

// Keyword is an identifier value, e.g. `block` or `normal`.
type Keyword string

// Length is a number with a unit, e.g. `12px`. Units are not resolved.
type Length struct {
	Amount float64
	Unit   string
}

// Percentage is a value like `50%`, stored as 50.
type Percentage float64

// Number is a unit-less number, e.g. `700` for font-weight.
type Number float64

// Color is a color given in hex notation, e.g. `#ff0000`.
type Color struct {
	color.RGBA
}

// String is a quoted string value, unquoted.
type String string

// Raw is any value which does not fit into one of the other variants,
// e.g. function calls or lists of values. It holds the trimmed source text.
type Raw string

func (Keyword) isValue()    {}
func (Length) isValue()     {}
func (Percentage) isValue() {}
func (Number) isValue()     {}
func (Color) isValue()      {}
func (String) isValue()     {}
func (Raw) isValue()        {}

func (k Keyword) String() string { return string(k) }
func (l Length) String() string  { return formatFloat(l.Amount) + l.Unit }
func (p Percentage) String() string {
	return formatFloat(float64(p)) + "%"
}
func (n Number) String() string { return formatFloat(float64(n)) }
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
func (s String) String() string { return strconv.Quote(string(s)) }
func (r Raw) String() string    { return string(r) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsKeyword checks wether v is the keyword kw. Keywords are compared
// case-insensitively, as CSS does.
func IsKeyword(v Value, kw string) bool {
	k, ok := v.(Keyword)
	return ok && strings.EqualFold(string(k), kw)
}

// ParseValue lexes the source text of a declaration value and classifies it.
// Single-token values map to the corresponding variant; everything else
// (including the empty string) is returned as Raw. Keywords are lower-cased.
// ParseValue never fails.
func ParseValue(src string) Value {
	src = strings.TrimSpace(src)
	l := css.NewLexer(parse.NewInputString(src))
	var tokens []token
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		tokens = append(tokens, token{tt, string(data)})
	}
	if len(tokens) != 1 {
		if len(tokens) == 2 && tokens[0].tt == css.DelimToken && tokens[0].data == "-" {
			if v, ok := numeric(tokens[1]); ok { // lexers may split a sign off
				return negate(v)
			}
		}
		return Raw(src)
	}
	tok := tokens[0]
	if v, ok := numeric(tok); ok {
		return v
	}
	switch tok.tt {
	case css.IdentToken:
		return Keyword(strings.ToLower(tok.data))
	case css.HashToken:
		if c, ok := parseHexColor(tok.data[1:]); ok {
			return c
		}
	case css.StringToken:
		if len(tok.data) >= 2 {
			return String(tok.data[1 : len(tok.data)-1])
		}
	}
	tracer().Debugf("style: value %q kept as raw value", src)
	return Raw(src)
}

type token struct {
	tt   css.TokenType
	data string
}

func numeric(tok token) (Value, bool) {
	switch tok.tt {
	case css.NumberToken:
		if f, err := strconv.ParseFloat(tok.data, 64); err == nil {
			return Number(f), true
		}
	case css.PercentageToken:
		if f, err := strconv.ParseFloat(strings.TrimSuffix(tok.data, "%"), 64); err == nil {
			return Percentage(f), true
		}
	case css.DimensionToken:
		i := len(tok.data)
		for i > 0 && !isNumberByte(tok.data[i-1]) {
			i--
		}
		if f, err := strconv.ParseFloat(tok.data[:i], 64); err == nil {
			return Length{Amount: f, Unit: strings.ToLower(tok.data[i:])}, true
		}
	}
	return nil, false
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}

func negate(v Value) Value {
	switch n := v.(type) {
	case Number:
		return -n
	case Percentage:
		return -n
	case Length:
		n.Amount = -n.Amount
		return n
	}
	return v
}

func parseHexColor(hex string) (Color, bool) {
	var digits [8]uint8
	if len(hex) != 3 && len(hex) != 4 && len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}
	for i := 0; i < len(hex); i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return Color{}, false
		}
		digits[i] = uint8(d)
	}
	c := color.RGBA{A: 0xff}
	switch len(hex) {
	case 3, 4:
		c.R, c.G, c.B = digits[0]*0x11, digits[1]*0x11, digits[2]*0x11
		if len(hex) == 4 {
			c.A = digits[3] * 0x11
		}
	case 6, 8:
		c.R, c.G, c.B = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	}
	return Color{c}, true
}
