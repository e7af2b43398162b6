// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package report renders caret-annotated source snippets for parse
// diagnostics.
package report

import (
	"bytes"
	"strconv"
)

// maxWidth is the widest window of context kept on either side of the
// cursor, in bytes.
const maxWidth = 24

// Snippet renders a two-line diagnostic locating the byte at pos in data:
// the source line containing the cursor, prefixed with its 1-based line
// number, and beneath it a dash-padded caret marking the offending byte.
//
// The window is clipped at line boundaries and at maxWidth bytes on each
// side of the cursor. Non-ASCII bytes in the window are replaced by '?' so
// that the caret stays aligned without any notion of display width; a
// cursor sitting on a newline ends its window there and is shown the same
// way. An empty buffer yields an empty string; a cursor at or past the end
// of the buffer is clamped to the final byte.
func Snippet(data []byte, pos int) string {
	if len(data) == 0 {
		return ""
	}
	if pos >= len(data) {
		pos = len(data) - 1
	}

	line := 1 + bytes.Count(data[:pos], []byte("\n"))

	start := pos
	for start > 0 && data[start-1] != '\n' && pos-start < maxWidth {
		start--
	}
	end := pos
	if data[pos] != '\n' {
		for end < len(data)-1 && data[end+1] != '\n' && end-pos < maxWidth {
			end++
		}
	}

	prefix := "Line " + strconv.Itoa(line) + ": "

	var buf bytes.Buffer
	buf.Grow(7 + 2*len(prefix) + 2*(end-start+1))
	buf.WriteByte('\n')
	buf.WriteString(prefix)
	for _, b := range data[start : end+1] {
		if b > 127 || b == '\n' {
			b = '?'
		}
		buf.WriteByte(b)
	}
	buf.WriteByte('\n')
	pad(&buf, ' ', len(prefix))
	pad(&buf, '-', pos-start)
	buf.WriteByte('^')
	pad(&buf, '-', end-pos)
	buf.WriteString(" [!]")
	return buf.String()
}

func pad(buf *bytes.Buffer, b byte, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte(b)
	}
}
