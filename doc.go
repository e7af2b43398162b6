// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jot implements a JSON text engine: a mutable tree representation
// of JSON values, a single-pass parser that builds trees from text, and a
// serializer that renders trees back to text.
//
// # Values
//
// The Value type is a tagged union over the six kinds of JSON value:
// object, array, string, number, Boolean, and null. A zero Value is null.
// Trees are edited in place through a small API:
//
//	var v jot.Value
//	v.Field("name").Set("example")
//	v.Field("tags").Append(jot.NewString("a"), jot.NewString("b"))
//
// Indexing a null value with Field converts it into an object, and
// appending to a null value converts it into an array, so a tree can be
// grown from nothing without declaring its shape up front.
//
// Object members are kept in sorted key order. This order is visible:
// iteration and serialization both follow it, so two objects with equal
// contents serialize to identical bytes no matter how they were built.
//
// # Parsing
//
// Construct a Parser from an input buffer and call its Parse method, or
// use the Parse and ParseString shorthands:
//
//	v, err := jot.Parse(data)
//
// Parsing an entire document either succeeds completely or reports an
// error of concrete type *SyntaxError; there is no partial result. The
// error carries the byte offset and line of the failure and a caret
// diagnostic locating it in the source:
//
//	Line 3: "flag": tru,
//	        --------^--- [!]
//
// Input nested beyond the parser's recursion limit (default 1000 levels)
// is rejected with ErrRecursionLimit rather than risking the process
// stack; see SetRecursionLimit.
//
// # Serializing
//
// Encode renders a tree in one of two formats: Pretty, indented four
// spaces per level, or Minimized, with no interelement whitespace. Number
// formatting is round-trip exact: parsing the serialized text of any
// finite number recovers its exact bit pattern.
//
// # Conversions
//
// ToValue and FromValue convert between trees and native Go values:
// strings, maps, slices, Booleans, nil, and numbers. A type outside that
// set participates by implementing the Valuer and FromValuer hooks.
// When a value satisfies several conversions at once, the ambiguity is
// resolved by a fixed priority: string first, then object, array, bool,
// null, and number last.
package jot
