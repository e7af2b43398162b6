// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot_test

import (
	"errors"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/davrell/jot"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		val  *jot.Value
		want jot.Kind
	}{
		{jot.NewNull(), jot.Null},
		{new(jot.Value), jot.Null},
		{nil, jot.Null},
		{jot.NewObject(), jot.Object},
		{jot.NewArray(), jot.Array},
		{jot.NewString("x"), jot.String},
		{jot.NewNumber(1.5), jot.Number},
		{jot.NewBool(true), jot.Bool},
	}
	for _, tc := range tests {
		if got := tc.val.Kind(); got != tc.want {
			t.Errorf("Kind of %v: got %v, want %v", tc.val, got, tc.want)
		}
		if !tc.val.Is(tc.want) {
			t.Errorf("Is(%v) is false for %v", tc.want, tc.val)
		}
	}
}

func TestAccessors(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		if got, err := jot.NewString("pie").Text(); err != nil || got != "pie" {
			t.Errorf("Text: got %q, %v; want pie, nil", got, err)
		}
		if got, err := jot.NewNumber(2.5).Float64(); err != nil || got != 2.5 {
			t.Errorf("Float64: got %v, %v; want 2.5, nil", got, err)
		}
		if got, err := jot.NewBool(true).Bool(); err != nil || got != true {
			t.Errorf("Bool: got %v, %v; want true, nil", got, err)
		}
		items, err := jot.NewArray(jot.NewNumber(1), jot.NewNumber(2)).Items()
		if err != nil || len(items) != 2 {
			t.Errorf("Items: got %d items, %v; want 2, nil", len(items), err)
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		v := jot.NewNumber(3)
		if _, err := v.Text(); err == nil {
			t.Error("Text on a number unexpectedly succeeded")
		} else {
			var ke *jot.KindError
			if !errors.As(err, &ke) {
				t.Errorf("Text error: got %[1]T (%[1]v), want *KindError", err)
			} else if ke.Want != jot.String || ke.Got != jot.Number {
				t.Errorf("KindError: got want=%v got=%v", ke.Want, ke.Got)
			}
		}
		if _, err := v.Bool(); err == nil {
			t.Error("Bool on a number unexpectedly succeeded")
		}
		if _, err := jot.NewString("x").Float64(); err == nil {
			t.Error("Float64 on a string unexpectedly succeeded")
		}
	})

	t.Run("CommaOK", func(t *testing.T) {
		if s, ok := jot.NewString("q").TextOK(); !ok || s != "q" {
			t.Errorf("TextOK: got %q, %v", s, ok)
		}
		if _, ok := jot.NewString("q").Float64OK(); ok {
			t.Error("Float64OK on a string reported true")
		}
		if f, ok := jot.NewNumber(-1).Float64OK(); !ok || f != -1 {
			t.Errorf("Float64OK: got %v, %v", f, ok)
		}
		if b, ok := jot.NewBool(false).BoolOK(); !ok || b {
			t.Errorf("BoolOK: got %v, %v", b, ok)
		}
	})
}

func TestObjectEdit(t *testing.T) {
	v := jot.NewObject()
	v.Field("b").Set(1)
	v.Field("a").Set(2)

	if got, want := v.Len(), 2; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if got := v.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys: got %q, want [a b]", got)
	}
	if !v.Contains("a") || v.Contains("c") {
		t.Errorf("Contains: a=%v c=%v", v.Contains("a"), v.Contains("c"))
	}

	// Lookup without insertion.
	if got, err := v.At("b"); err != nil {
		t.Errorf("At(b): unexpected error: %v", err)
	} else if f, _ := got.Float64(); f != 1 {
		t.Errorf("At(b): got %v, want 1", f)
	}
	if _, err := v.At("missing"); !errors.Is(err, jot.ErrKeyNotFound) {
		t.Errorf("At(missing): got %v, want ErrKeyNotFound", err)
	}
	if v.Contains("missing") {
		t.Error("At inserted a key it should not have")
	}

	// Field inserts a null child for a missing key.
	if got := v.Field("c"); !got.IsNull() {
		t.Errorf("Field(c): got %v, want null", got)
	}
	if !v.Contains("c") {
		t.Error("Field did not insert the missing key")
	}

	// Last write through the editing API wins.
	v.Field("a").Set(99)
	if got, _ := v.Field("a").Float64(); got != 99 {
		t.Errorf("Field(a) after rewrite: got %v, want 99", got)
	}
}

func TestArrayEdit(t *testing.T) {
	v := jot.NewArray()
	v.Append(jot.NewNumber(1), jot.NewNumber(2), jot.NewNumber(3))

	if got, want := v.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if got, _ := v.Index(1).Float64(); got != 2 {
		t.Errorf("Index(1): got %v, want 2", got)
	}
	if got, err := v.AtIndex(2); err != nil {
		t.Errorf("AtIndex(2): unexpected error: %v", err)
	} else if f, _ := got.Float64(); f != 3 {
		t.Errorf("AtIndex(2): got %v, want 3", f)
	}
	for _, bad := range []int{-1, 3, 500} {
		if _, err := v.AtIndex(bad); !errors.Is(err, jot.ErrIndexOutOfRange) {
			t.Errorf("AtIndex(%d): got %v, want ErrIndexOutOfRange", bad, err)
		}
	}
}

func TestAutoVivify(t *testing.T) {
	var v jot.Value
	if err := v.Field("x").Field("y").Set(1); err != nil {
		t.Fatalf("Set: unexpected error: %v", err)
	}
	if got, want := v.JSON(), `{"x":{"y":1}}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	var a jot.Value
	a.Append(jot.NewBool(true))
	if got, want := a.JSON(), `[true]`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestWrongKindPanics(t *testing.T) {
	str := jot.NewString("not a container")
	mtest.MustPanic(t, func() { str.Field("x") })
	mtest.MustPanic(t, func() { str.Append(jot.NewNull()) })
	mtest.MustPanic(t, func() { str.Index(0) })
	mtest.MustPanic(t, func() { jot.NewArray().Field("x") })
	mtest.MustPanic(t, func() { jot.NewObject().Append(jot.NewNull()) })
}

func TestEqual(t *testing.T) {
	mustParse := func(s string) *jot.Value {
		t.Helper()
		v, err := jot.ParseString(s)
		if err != nil {
			t.Fatalf("Parse %#q: %v", s, err)
		}
		return v
	}
	tests := []struct {
		a, b string
		want bool
	}{
		{`null`, `null`, true},
		{`1`, `1.0`, true},
		{`1`, `2`, false},
		{`"a"`, `"a"`, true},
		{`"a"`, `"b"`, false},
		{`true`, `true`, true},
		{`true`, `false`, false},
		{`true`, `1`, false},
		{`[1,2]`, `[1,2]`, true},
		{`[1,2]`, `[2,1]`, false},
		{`[1,2]`, `[1,2,3]`, false},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`{"a":1}`, `{"a":2}`, false},
		{`{"a":1}`, `{"b":1}`, false},
		{`{}`, `[]`, false},
	}
	for _, tc := range tests {
		if got := mustParse(tc.a).Equal(mustParse(tc.b)); got != tc.want {
			t.Errorf("Equal(%#q, %#q): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	var null *jot.Value
	if !null.Equal(jot.NewNull()) {
		t.Error("nil Value is not equal to null")
	}
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		val  *jot.Value
		want string
	}{
		{jot.NewNull(), "Null"},
		{jot.NewBool(true), "Bool(true)"},
		{jot.NewNumber(1.5), "Number(1.5)"},
		{jot.NewString("s"), `String("s")`},
		{jot.NewArray(jot.NewNull()), "Array(len=1)"},
		{jot.NewObject(), "Object(len=0)"},
	}
	for _, tc := range tests {
		if got := tc.val.String(); got != tc.want {
			t.Errorf("String: got %q, want %q", got, tc.want)
		}
	}
}
