// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"go4.org/mem"

	"github.com/davrell/jot/internal/codepoint"
	"github.com/davrell/jot/internal/escape"
	"github.com/davrell/jot/internal/report"
)

// DefaultRecursionLimit is the nesting depth a Parser permits unless
// overridden with SetRecursionLimit.
const DefaultRecursionLimit = 1000

// Category sentinels wrapped by a *SyntaxError, for use with errors.Is.
var (
	// ErrMalformedToken reports an unexpected byte, a bad escape sequence,
	// or a truncated literal or number.
	ErrMalformedToken = errors.New("malformed token")

	// ErrRecursionLimit reports input nested more deeply than the
	// configured recursion limit.
	ErrRecursionLimit = errors.New("recursion limit exceeded")

	// ErrTrailingData reports non-whitespace input after the root value.
	ErrTrailingData = errors.New("trailing data after value")
)

// SyntaxError is the concrete type of all errors reported by a Parser.
type SyntaxError struct {
	Offset  int    // byte offset of the error, 0-based
	Line    int    // line number of the error, 1-based
	Message string // a description of the error
	Detail  string // a rendered line/caret snippet locating the error

	err error
}

// Error satisfies the error interface. The result includes the caret
// diagnostic, so it spans multiple lines for non-empty input.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at line %d, offset %d: %s%s", e.Line, e.Offset, e.Message, e.Detail)
}

// Unwrap returns the category of the error, one of ErrMalformedToken,
// ErrRecursionLimit, or ErrTrailingData.
func (e *SyntaxError) Unwrap() error { return e.err }

// A Parser builds a Value tree from a JSON input buffer in a single
// left-to-right scan. A Parser owns only its input view, a cursor, and a
// nesting counter; independent parsers never share state.
type Parser struct {
	data  []byte
	pos   int
	depth int
	limit int
}

// NewParser constructs a parser that reads input from data. The caller
// must not modify data until parsing is complete.
func NewParser(data []byte) *Parser {
	return &Parser{data: data, limit: DefaultRecursionLimit}
}

// SetRecursionLimit sets the maximum nesting depth the parser will
// descend into before failing, protecting the call stack from inputs such
// as a run of 100000 open brackets. Values less than 1 are ignored.
func (p *Parser) SetRecursionLimit(n int) {
	if n > 0 {
		p.limit = n
	}
}

// Parse parses the input as a single JSON document: one value surrounded
// by optional insignificant whitespace. Anything else after the root
// value is reported as ErrTrailingData. All errors have concrete type
// [*SyntaxError]; a failed parse returns no partial tree.
func (p *Parser) Parse() (*Value, error) {
	p.pos, p.depth = 0, 0
	p.skipSpace()
	if p.pos >= len(p.data) {
		return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input")
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.data) {
		return nil, p.failf(p.pos, ErrTrailingData, "unexpected %q after value", p.data[p.pos])
	}
	return v, nil
}

// Parse parses data as a single JSON document with the default settings.
func Parse(data []byte) (*Value, error) { return NewParser(data).Parse() }

// ParseString parses s as a single JSON document with the default
// settings.
func ParseString(s string) (*Value, error) { return Parse([]byte(s)) }

func (p *Parser) failf(pos int, category error, msg string, args ...any) error {
	clip := min(pos, len(p.data))
	return &SyntaxError{
		Offset:  pos,
		Line:    1 + bytes.Count(p.data[:clip], []byte("\n")),
		Message: fmt.Sprintf(msg, args...),
		Detail:  report.Snippet(p.data, pos),
		err:     category,
	}
}

// skipSpace advances the cursor past insignificant whitespace: space,
// tab, carriage return, and newline.
func (p *Parser) skipSpace() {
	for p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}
}

// parseValue parses a single value of any kind, dispatching on its first
// byte. Precondition: the cursor is at a non-whitespace byte.
func (p *Parser) parseValue() (*Value, error) {
	p.depth++
	if p.depth > p.limit {
		return nil, p.failf(p.pos, ErrRecursionLimit,
			"nesting depth exceeds limit %d (see SetRecursionLimit)", p.limit)
	}
	defer func() { p.depth-- }()

	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == 't':
		return p.parseLiteral(litTrue, NewBool(true))
	case c == 'f':
		return p.parseLiteral(litFalse, NewBool(false))
	case c == 'n':
		return p.parseLiteral(litNull, NewNull())
	default:
		return nil, p.failf(p.pos, ErrMalformedToken, "unexpected %q at start of value", c)
	}
}

// parseObject parses an object. Precondition: the cursor is at "{".
func (p *Parser) parseObject() (*Value, error) {
	p.pos++ // move past the opening brace
	obj := NewObject()

	p.skipSpace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}

	for {
		if p.pos >= len(p.data) {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in object")
		}
		if p.data[p.pos] != '"' {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected %q, want object key", p.data[p.pos])
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.failf(p.pos, ErrMalformedToken, "missing %q after object key", ":")
		}
		p.pos++ // move past the colon
		p.skipSpace()

		if p.pos >= len(p.data) {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in object")
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		// Duplicate keys are accepted, as the grammar permits; the first
		// value for a key wins.
		if i, ok := slices.BinarySearchFunc(obj.mems, key, compareMember); !ok {
			obj.mems = slices.Insert(obj.mems, i, member{key: key, val: val})
		}

		// After a member, either a comma introduces another member or the
		// matching brace closes the object.
		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in object")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.failf(p.pos, ErrMalformedToken,
				"unexpected %q, want %q or %q after object member", p.data[p.pos], ",", "}")
		}
	}
}

// parseArray parses an array. Precondition: the cursor is at "[".
// The structural loop is the same as for objects, without the key prefix.
func (p *Parser) parseArray() (*Value, error) {
	p.pos++ // move past the opening bracket
	arr := NewArray()

	p.skipSpace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}

	for {
		if p.pos >= len(p.data) {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in array")
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.vals = append(arr.vals, val)

		p.skipSpace()
		if p.pos >= len(p.data) {
			return nil, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in array")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipSpace()
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.failf(p.pos, ErrMalformedToken,
				"unexpected %q, want %q or %q after array element", p.data[p.pos], ",", "]")
		}
	}
}

// parseString parses a string and returns its unescaped contents.
// Precondition: the cursor is at the opening quote.
func (p *Parser) parseString() (string, error) {
	p.pos++ // move past the opening quote

	// Unescaped byte runs are appended to buf as whole segments rather
	// than byte a time; a string with no escapes is taken directly from
	// the input without building a buffer at all.
	var buf []byte
	var esc bool
	seg := p.pos
	for p.pos < len(p.data) {
		switch c := p.data[p.pos]; {
		case c == '"':
			if !esc {
				s := string(p.data[seg:p.pos])
				p.pos++
				return s, nil
			}
			buf = append(buf, p.data[seg:p.pos]...)
			p.pos++
			return string(buf), nil

		case c == '\\':
			esc = true
			buf = append(buf, p.data[seg:p.pos]...)
			p.pos++
			if p.pos >= len(p.data) {
				return "", p.failf(p.pos, ErrMalformedToken, "unexpected end of input in escape sequence")
			}
			if r := escape.Unescaped[p.data[p.pos]]; r != 0 {
				buf = append(buf, r)
				p.pos++
			} else if p.data[p.pos] == 'u' {
				var err error
				buf, err = p.parseUnicodeEscape(buf)
				if err != nil {
					return "", err
				}
			} else {
				return "", p.failf(p.pos, ErrMalformedToken, "invalid %q after escape", p.data[p.pos])
			}
			seg = p.pos

		case c < ' ':
			return "", p.failf(p.pos, ErrMalformedToken, "unescaped control byte %#02x in string", c)

		default:
			p.pos++
		}
	}
	return "", p.failf(p.pos, ErrMalformedToken, "unexpected end of input in string")
}

// parseUnicodeEscape parses the remainder of a "\u" escape sequence and
// appends the UTF-8 encoding of the code point it denotes to buf.
// Precondition: the cursor is at the "u".
//
// A code unit in the surrogate range must be a high surrogate immediately
// followed by a second "\u" escape holding a low surrogate; the pair
// jointly encodes one code point beyond U+FFFF.
func (p *Parser) parseUnicodeEscape(buf []byte) ([]byte, error) {
	start := p.pos - 1 // position of the backslash
	u1, err := p.readHex4()
	if err != nil {
		return nil, err
	}

	var cp uint32
	if codepoint.IsSurrogate(u1) {
		if !codepoint.IsHighSurrogate(u1) {
			return nil, p.failf(start, ErrMalformedToken, "unpaired low surrogate %04X", u1)
		}
		if p.pos+1 >= len(p.data) || p.data[p.pos] != '\\' || p.data[p.pos+1] != 'u' {
			return nil, p.failf(start, ErrMalformedToken,
				"high surrogate %04X not followed by a low surrogate escape", u1)
		}
		p.pos++ // move past the backslash
		u2, err := p.readHex4()
		if err != nil {
			return nil, err
		}
		if !codepoint.IsLowSurrogate(u2) {
			return nil, p.failf(start, ErrMalformedToken,
				"%04X is not a valid low surrogate for %04X", u2, u1)
		}
		cp = codepoint.FromSurrogates(u1, u2)
	} else {
		cp = uint32(u1)
	}

	out, ok := codepoint.AppendUTF8(buf, cp)
	if !ok {
		return nil, p.failf(start, ErrMalformedToken, "invalid code point %#x", cp)
	}
	return out, nil
}

// readHex4 consumes the "u" of a Unicode escape and the four hex digits
// after it, returning the UTF-16 code unit they encode.
func (p *Parser) readHex4() (uint16, error) {
	p.pos++ // move past the "u"
	if p.pos+4 > len(p.data) {
		return 0, p.failf(p.pos, ErrMalformedToken, "unexpected end of input in Unicode escape")
	}
	var u uint16
	for i := 0; i < 4; i++ {
		b := p.data[p.pos]
		u <<= 4
		switch {
		case '0' <= b && b <= '9':
			u += uint16(b - '0')
		case 'a' <= b && b <= 'f':
			u += uint16(b-'a') + 10
		case 'A' <= b && b <= 'F':
			u += uint16(b-'A') + 10
		default:
			return 0, p.failf(p.pos, ErrMalformedToken, "not a hex digit: %q", b)
		}
		p.pos++
	}
	return u, nil
}

// parseNumber parses a number. The scan consumes the longest prefix of
// the input that forms a valid number and stops, leaving any following
// bytes for the enclosing structural loop: in "[42 ,true]" the number
// scan ends at the space. The accepted prefix grammar is deliberately
// looser than RFC 8259: redundant leading zeroes, a bare trailing decimal
// point, and an exponent after a bare point ("01", "2.", "2.e+3") all
// parse. Precondition: the cursor is at "-" or a digit.
func (p *Parser) parseNumber() (*Value, error) {
	start := p.pos
	pos := p.pos
	if p.data[pos] == '-' {
		pos++
	}
	digits := 0
	for pos < len(p.data) && isDigit(p.data[pos]) {
		pos++
		digits++
	}
	if pos < len(p.data) && p.data[pos] == '.' {
		pos++
		for pos < len(p.data) && isDigit(p.data[pos]) {
			pos++
			digits++
		}
	}
	if digits == 0 {
		return nil, p.failf(start, ErrMalformedToken, "invalid number")
	}

	// An exponent marker is consumed only when at least one digit follows
	// it; otherwise it is left for the structural loop, like any other
	// non-numeric byte.
	if pos < len(p.data) && (p.data[pos] == 'e' || p.data[pos] == 'E') {
		q := pos + 1
		if q < len(p.data) && (p.data[q] == '+' || p.data[q] == '-') {
			q++
		}
		if q < len(p.data) && isDigit(p.data[q]) {
			pos = q
			for pos < len(p.data) && isDigit(p.data[pos]) {
				pos++
			}
		}
	}

	text := string(p.data[start:pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.failf(start, ErrMalformedToken, "number %q out of range", text)
		}
		return nil, p.failf(start, ErrMalformedToken, "invalid number %q", text)
	}
	p.pos = pos
	return NewNumber(f), nil
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// parseLiteral consumes the exact bytes of want and returns v, or reports
// an error without consuming anything. Precondition: the cursor is at the
// first byte of the literal.
func (p *Parser) parseLiteral(want mem.RO, v *Value) (*Value, error) {
	n := want.Len()
	if p.pos+n > len(p.data) || !mem.B(p.data[p.pos:p.pos+n]).Equal(want) {
		return nil, p.failf(p.pos, ErrMalformedToken, "invalid literal, want %q", want.StringCopy())
	}
	p.pos += n
	return v, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
