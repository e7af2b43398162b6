// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"io"
	"math"
	"strconv"

	"go4.org/mem"

	"github.com/davrell/jot/internal/escape"
)

// Format selects one of the two serialization formats of a Value.
type Format byte

const (
	// Pretty indents every nesting level by four spaces, separates keys
	// from values with ": ", and writes one element per line.
	Pretty Format = iota

	// Minimized emits no whitespace beyond what the grammar requires.
	Minimized
)

func (f Format) String() string {
	if f == Pretty {
		return "pretty"
	}
	return "minimized"
}

const indentWidth = 4

// Encode returns the serialized text of v in the given format. The
// members of objects are written in sorted key order, so equal trees
// produce identical bytes regardless of insertion order.
func (v *Value) Encode(f Format) []byte { return appendValue(nil, v, f, 0) }

// JSON returns the minimized serialized text of v.
func (v *Value) JSON() string { return string(v.Encode(Minimized)) }

// Write writes the serialized text of v to w in the given format.
func Write(w io.Writer, v *Value, f Format) error {
	_, err := w.Write(v.Encode(f))
	return err
}

// appendValue appends the text of v to buf. The caller is responsible for
// any indentation before the first byte; container loops indent their own
// members, which is what lets a value printed after an object key start
// on the same line.
func appendValue(buf []byte, v *Value, f Format, indent int) []byte {
	switch v.Kind() {
	case Object:
		// Empty containers take the short form in both formats.
		if len(v.mems) == 0 {
			return append(buf, "{}"...)
		}
		buf = append(buf, '{')
		for i, m := range v.mems {
			if i > 0 {
				buf = append(buf, ',')
			}
			if f == Pretty {
				buf = append(buf, '\n')
				buf = appendIndent(buf, indent+1)
			}
			buf = appendString(buf, m.key)
			buf = append(buf, ':')
			if f == Pretty {
				buf = append(buf, ' ')
			}
			buf = appendValue(buf, m.val, f, indent+1)
		}
		if f == Pretty {
			buf = append(buf, '\n')
			buf = appendIndent(buf, indent)
		}
		return append(buf, '}')

	case Array:
		if len(v.vals) == 0 {
			return append(buf, "[]"...)
		}
		buf = append(buf, '[')
		for i, e := range v.vals {
			if i > 0 {
				buf = append(buf, ',')
			}
			if f == Pretty {
				buf = append(buf, '\n')
				buf = appendIndent(buf, indent+1)
			}
			buf = appendValue(buf, e, f, indent+1)
		}
		if f == Pretty {
			buf = append(buf, '\n')
			buf = appendIndent(buf, indent)
		}
		return append(buf, ']')

	case String:
		return appendString(buf, v.text)

	case Number:
		return appendNumber(buf, v.num)

	case Bool:
		if v.flag {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)

	default:
		return append(buf, "null"...)
	}
}

func appendIndent(buf []byte, level int) []byte {
	for i := 0; i < level*indentWidth; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	buf = escape.Quote(buf, mem.S(s))
	return append(buf, '"')
}

// appendNumber appends the shortest decimal form of n that parses back to
// exactly the same bit pattern.
//
// NaN and the infinities have no representation in the grammar. Rather
// than fail or drop them, they are written as quoted strings of their
// formatted spelling ("NaN", "+Inf", "-Inf"), a deliberate deviation from
// RFC 8259. Such values do not survive a round trip as numbers.
func appendNumber(buf []byte, n float64) []byte {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		buf = append(buf, '"')
		buf = strconv.AppendFloat(buf, n, 'g', -1, 64)
		return append(buf, '"')
	}
	return strconv.AppendFloat(buf, n, 'g', -1, 64)
}
