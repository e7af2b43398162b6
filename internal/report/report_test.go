// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package report_test

import (
	"strings"
	"testing"

	"github.com/davrell/jot/internal/report"
	"github.com/stretchr/testify/require"
)

func TestSnippet(t *testing.T) {
	t.Run("SingleLine", func(t *testing.T) {
		got := report.Snippet([]byte(`{"a": tru}`), 6)
		want := "\n" +
			`Line 1: {"a": tru}` + "\n" +
			`        ------^--- [!]`
		require.Equal(t, want, got)
	})

	t.Run("LineNumber", func(t *testing.T) {
		input := "{\n  \"a\": 1,\n  \"b\": x\n}"
		got := report.Snippet([]byte(input), strings.IndexByte(input, 'x'))
		want := "\n" +
			`Line 3:   "b": x` + "\n" +
			`        -------^ [!]`
		require.Equal(t, want, got)
	})

	t.Run("Clipped", func(t *testing.T) {
		// A long line keeps at most 24 bytes of context on each side.
		input := strings.Repeat("a", 60) + "X" + strings.Repeat("b", 60)
		got := report.Snippet([]byte(input), 60)
		want := "\n" +
			"Line 1: " + strings.Repeat("a", 24) + "X" + strings.Repeat("b", 24) + "\n" +
			"        " + strings.Repeat("-", 24) + "^" + strings.Repeat("-", 24) + " [!]"
		require.Equal(t, want, got)
	})

	t.Run("NonASCII", func(t *testing.T) {
		// Multibyte input is shown byte for byte with '?' placeholders so
		// the caret column still lines up.
		got := report.Snippet([]byte("é!"), 2)
		want := "\n" +
			`Line 1: ??!` + "\n" +
			`        --^ [!]`
		require.Equal(t, want, got)
	})

	t.Run("Clamped", func(t *testing.T) {
		// A cursor past the end points at the final byte.
		got := report.Snippet([]byte("[1"), 10)
		want := "\n" +
			`Line 1: [1` + "\n" +
			`        -^ [!]`
		require.Equal(t, want, got)
	})

	t.Run("TrailingNewline", func(t *testing.T) {
		// A cursor clamped onto a final newline stays on one row, with
		// the newline shown as a placeholder.
		got := report.Snippet([]byte("[1,\n"), 10)
		want := "\n" +
			`Line 1: [1,?` + "\n" +
			`        ---^ [!]`
		require.Equal(t, want, got)
	})

	t.Run("CursorOnNewline", func(t *testing.T) {
		// The window never crosses into the following line.
		got := report.Snippet([]byte("a\nb"), 1)
		want := "\n" +
			`Line 1: a?` + "\n" +
			`        -^ [!]`
		require.Equal(t, want, got)
	})

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, "", report.Snippet(nil, 0))
	})
}
