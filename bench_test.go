// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davrell/jot"
	gojson "github.com/goccy/go-json"
)

// benchInput synthesizes a moderately nested document with a mix of
// strings, numbers, and containers, roughly 40 KiB of minimized text.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < 400; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"record-%04d","score":%g,`+
			`"tags":["alpha","beta\ngamma"],"meta":{"ok":%v,"note":null}}`,
			i, i, float64(i)*0.375, i%2 == 0)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jot.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseBaseline(b *testing.B) {
	// The same input through goccy/go-json, for comparison.
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v any
		if err := gojson.Unmarshal(input, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	v, err := jot.Parse(benchInput())
	if err != nil {
		b.Fatal(err)
	}
	for _, f := range []jot.Format{jot.Minimized, jot.Pretty} {
		b.Run(f.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = v.Encode(f)
			}
		})
	}
}
