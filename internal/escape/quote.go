// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var hexDigit = []byte("0123456789abcdef")

// Quote appends the escaped form of src to buf and returns the result,
// without surrounding quotation marks.
//
// Only bytes that require escaping are rewritten: the quotation mark, the
// backslash, and control bytes below U+0020, the latter using their letter
// escapes where the grammar defines one and "\u00XX" otherwise. All other
// bytes, including UTF-8 continuation bytes, are copied through verbatim.
func Quote(buf []byte, src mem.RO) []byte {
	// Consecutive unescaped bytes are appended as whole segments rather
	// than one at a time.
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b >= ' ' && b != '"' && b != '\\' {
			continue
		}
		buf = mem.Append(buf, src.SliceFrom(start).SliceTo(i-start))
		if e := Escaped[b]; e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
		start = i + 1
	}
	return mem.Append(buf, src.SliceFrom(start))
}
