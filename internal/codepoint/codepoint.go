// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package codepoint converts Unicode code points between the UTF-8 and
// UTF-16 encoding forms used by JSON string escapes.
package codepoint

// Max is the largest valid Unicode code point.
const Max = 0x10FFFF

// Surrogate range boundaries in UTF-16.
const (
	surrMin  = 0xD800 // first high surrogate
	surrHalf = 0xDC00 // first low surrogate
	surrMax  = 0xDFFF // last low surrogate
)

// IsSurrogate reports whether u is a UTF-16 surrogate code unit.
func IsSurrogate(u uint16) bool { return surrMin <= u && u <= surrMax }

// IsHighSurrogate reports whether u is the first (high) unit of a
// surrogate pair.
func IsHighSurrogate(u uint16) bool { return surrMin <= u && u < surrHalf }

// IsLowSurrogate reports whether u is the second (low) unit of a
// surrogate pair.
func IsLowSurrogate(u uint16) bool { return surrHalf <= u && u <= surrMax }

// FromSurrogates combines a UTF-16 surrogate pair into the code point it
// encodes. The caller is responsible for checking that high and low are in
// the high and low surrogate ranges respectively.
func FromSurrogates(high, low uint16) uint32 {
	return 0x10000 + (uint32(high&0x03FF) << 10) + uint32(low&0x03FF)
}

// AppendUTF8 appends the UTF-8 encoding of cp to dst and reports whether
// cp is a valid code point. Code points above Max leave dst unchanged.
//
// Encoding forms by code point range:
//
//	U+0000   .. U+007F    1 byte
//	U+0080   .. U+07FF    2 bytes
//	U+0800   .. U+FFFF    3 bytes
//	U+010000 .. U+10FFFF  4 bytes
func AppendUTF8(dst []byte, cp uint32) ([]byte, bool) {
	switch {
	case cp <= 0x007F:
		return append(dst, byte(cp)), true
	case cp <= 0x07FF:
		return append(dst,
			byte((cp>>6)&0x1F|0xC0),
			byte(cp&0x3F|0x80),
		), true
	case cp <= 0xFFFF:
		return append(dst,
			byte((cp>>12)&0x0F|0xE0),
			byte((cp>>6)&0x3F|0x80),
			byte(cp&0x3F|0x80),
		), true
	case cp <= Max:
		return append(dst,
			byte((cp>>18)&0x07|0xF0),
			byte((cp>>12)&0x3F|0x80),
			byte((cp>>6)&0x3F|0x80),
			byte(cp&0x3F|0x80),
		), true
	default:
		return dst, false
	}
}
