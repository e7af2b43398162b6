// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the type of a JSON value. The zero Kind is Null, so that a zero
// Value is the null value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // the null value
	Object             // an object of key-value members
	Array              // an ordered sequence of values
	String             // a string
	Number             // a number (IEEE 754 double precision)
	Bool               // a Boolean constant, true or false
)

var kindStr = [...]string{
	Null:   "null",
	Object: "object",
	Array:  "array",
	String: "string",
	Number: "number",
	Bool:   "bool",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[v]
}

// A Value is a single JSON value of any kind. A Value holds exactly one
// alternative at a time; its children, if any, are owned exclusively by
// the Value, so a tree never shares or cycles.
//
// The zero Value is null and ready for use. Writing through Field, Append,
// or Set replaces the alternative in place, so a tree can be grown from a
// single null root.
type Value struct {
	kind Kind
	text string   // kind == String
	num  float64  // kind == Number
	flag bool     // kind == Bool
	vals []*Value // kind == Array
	mems []member // kind == Object, sorted by key
}

// A member is a single key-value entry of an object. The members slice of
// an object is kept sorted by key, which fixes both lookup and
// serialization order.
type member struct {
	key string
	val *Value
}

func compareMember(m member, key string) int { return strings.Compare(m.key, key) }

// NewNull constructs a new null value.
func NewNull() *Value { return new(Value) }

// NewString constructs a string value.
func NewString(s string) *Value { return &Value{kind: String, text: s} }

// NewNumber constructs a number value.
func NewNumber(f float64) *Value { return &Value{kind: Number, num: f} }

// NewBool constructs a Boolean value.
func NewBool(b bool) *Value { return &Value{kind: Bool, flag: b} }

// NewObject constructs an empty object value.
func NewObject() *Value { return &Value{kind: Object} }

// NewArray constructs an array value with the given elements.
func NewArray(vs ...*Value) *Value { return &Value{kind: Array, vals: vs} }

// Kind reports the kind of value v currently holds.
// A nil Value is reported as Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// Is reports whether v currently holds a value of kind k.
func (v *Value) Is(k Kind) bool { return v.Kind() == k }

// IsNull reports whether v is the null value.
func (v *Value) IsNull() bool { return v.Kind() == Null }

// IsObject reports whether v is an object.
func (v *Value) IsObject() bool { return v.Kind() == Object }

// IsArray reports whether v is an array.
func (v *Value) IsArray() bool { return v.Kind() == Array }

// IsString reports whether v is a string.
func (v *Value) IsString() bool { return v.Kind() == String }

// IsNumber reports whether v is a number.
func (v *Value) IsNumber() bool { return v.Kind() == Number }

// IsBool reports whether v is a Boolean.
func (v *Value) IsBool() bool { return v.Kind() == Bool }

// Errors reported by the checked accessors of a Value.
var (
	// ErrKeyNotFound is reported by At for a key not present in an object.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange is reported by AtIndex for an index outside the
	// bounds of an array.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// A KindError reports that an accessor was applied to a value of the
// wrong kind. It signals a defect in the caller, not in the data.
type KindError struct {
	Op   string // the operation attempted
	Want Kind   // the kind the operation requires
	Got  Kind   // the kind the value holds
}

// Error satisfies the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("%s: value is %v, not %v", e.Op, e.Got, e.Want)
}

func (v *Value) kindError(op string, want Kind) *KindError {
	return &KindError{Op: op, Want: want, Got: v.Kind()}
}

// Text returns the string payload of v, or a *KindError if v is not a
// string.
func (v *Value) Text() (string, error) {
	if v.Kind() != String {
		return "", v.kindError("Text", String)
	}
	return v.text, nil
}

// TextOK returns the string payload of v, if v is a string.
func (v *Value) TextOK() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.text, true
}

// Float64 returns the numeric payload of v, or a *KindError if v is not a
// number.
func (v *Value) Float64() (float64, error) {
	if v.Kind() != Number {
		return 0, v.kindError("Float64", Number)
	}
	return v.num, nil
}

// Float64OK returns the numeric payload of v, if v is a number.
func (v *Value) Float64OK() (float64, bool) {
	if v.Kind() != Number {
		return 0, false
	}
	return v.num, true
}

// Bool returns the Boolean payload of v, or a *KindError if v is not a
// Boolean.
func (v *Value) Bool() (bool, error) {
	if v.Kind() != Bool {
		return false, v.kindError("Bool", Bool)
	}
	return v.flag, nil
}

// BoolOK returns the Boolean payload of v, if v is a Boolean.
func (v *Value) BoolOK() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.flag, true
}

// Items returns the elements of v, or a *KindError if v is not an array.
// The slice aliases the array storage; its elements may be mutated but
// the slice itself must not be grown by the caller.
func (v *Value) Items() ([]*Value, error) {
	if v.Kind() != Array {
		return nil, v.kindError("Items", Array)
	}
	return v.vals, nil
}

// ItemsOK returns the elements of v, if v is an array.
func (v *Value) ItemsOK() ([]*Value, bool) {
	if v.Kind() != Array {
		return nil, false
	}
	return v.vals, true
}

// Len reports the number of members of an object or elements of an array.
// Values of all other kinds have length 0.
func (v *Value) Len() int {
	switch v.Kind() {
	case Object:
		return len(v.mems)
	case Array:
		return len(v.vals)
	default:
		return 0
	}
}

// Field returns the child of object v at key, inserting a null child if
// the key is absent. If v is null it is converted to an empty object
// first. Field panics with a *KindError if v holds any other kind; like an
// unchecked subscript, calling it on a non-object is a bug in the caller.
func (v *Value) Field(key string) *Value {
	if v.kind == Null {
		v.set(Value{kind: Object})
	} else if v.kind != Object {
		panic(v.kindError("Field", Object))
	}
	i, ok := slices.BinarySearchFunc(v.mems, key, compareMember)
	if !ok {
		v.mems = slices.Insert(v.mems, i, member{key: key, val: new(Value)})
	}
	return v.mems[i].val
}

// At returns the child of object v at key. Unlike Field it never inserts:
// a missing key reports ErrKeyNotFound, and a non-object v reports a
// *KindError.
func (v *Value) At(key string) (*Value, error) {
	if v.Kind() != Object {
		return nil, v.kindError("At", Object)
	}
	i, ok := slices.BinarySearchFunc(v.mems, key, compareMember)
	if !ok {
		return nil, fmt.Errorf("at %q: %w", key, ErrKeyNotFound)
	}
	return v.mems[i].val, nil
}

// Contains reports whether object v has a member with the given key.
// It is false for values of any other kind.
func (v *Value) Contains(key string) bool {
	if v.Kind() != Object {
		return false
	}
	_, ok := slices.BinarySearchFunc(v.mems, key, compareMember)
	return ok
}

// Keys returns the member keys of object v in sorted order. It is nil for
// values of any other kind.
func (v *Value) Keys() []string {
	if v.Kind() != Object {
		return nil
	}
	keys := make([]string, len(v.mems))
	for i, m := range v.mems {
		keys[i] = m.key
	}
	return keys
}

// Index returns the element of array v at position i. The position is not
// bounds-checked beyond the checks of the underlying slice. Index panics
// with a *KindError if v is not an array.
func (v *Value) Index(i int) *Value {
	if v.Kind() != Array {
		panic(v.kindError("Index", Array))
	}
	return v.vals[i]
}

// AtIndex returns the element of array v at position i, reporting
// ErrIndexOutOfRange if i is out of bounds and a *KindError if v is not
// an array.
func (v *Value) AtIndex(i int) (*Value, error) {
	if v.Kind() != Array {
		return nil, v.kindError("AtIndex", Array)
	}
	if i < 0 || i >= len(v.vals) {
		return nil, fmt.Errorf("index %d of %d: %w", i, len(v.vals), ErrIndexOutOfRange)
	}
	return v.vals[i], nil
}

// Append appends the given values as elements of array v. If v is null it
// is converted to an empty array first. Append panics with a *KindError
// if v holds any other kind.
func (v *Value) Append(vs ...*Value) {
	if v.kind == Null {
		v.set(Value{kind: Array})
	} else if v.kind != Array {
		panic(v.kindError("Append", Array))
	}
	v.vals = append(v.vals, vs...)
}

// Set replaces the contents of v with the conversion of x, as defined by
// ToValue. The kind of v may change. Set reports an error and leaves v
// unmodified if x has no JSON conversion.
func (v *Value) Set(x any) error {
	nv, err := ToValue(x)
	if err != nil {
		return err
	}
	v.set(*nv)
	return nil
}

// set replaces the whole state of v, clearing the payloads of the
// previous alternative.
func (v *Value) set(nv Value) { *v = nv }

// Equal reports whether v and w are structurally equal: the same kind,
// with equal payloads and equal children. Numbers compare by bit pattern,
// so every finite value compares exactly, NaN equals NaN, and negative
// zero is distinct from zero. A nil Value is equal to a null Value.
func (v *Value) Equal(w *Value) bool {
	if v.Kind() != w.Kind() {
		return false
	}
	switch v.Kind() {
	case Null:
		return true
	case String:
		return v.text == w.text
	case Number:
		return math.Float64bits(v.num) == math.Float64bits(w.num)
	case Bool:
		return v.flag == w.flag
	case Array:
		if len(v.vals) != len(w.vals) {
			return false
		}
		for i, e := range v.vals {
			if !e.Equal(w.vals[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.mems) != len(w.mems) {
			return false
		}
		for i, m := range v.mems {
			if m.key != w.mems[i].key || !m.val.Equal(w.mems[i].val) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a short description of v for debugging. Use JSON or
// Encode for the serialized text of the value.
func (v *Value) String() string {
	switch v.Kind() {
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(v.mems))
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(v.vals))
	case String:
		return fmt.Sprintf("String(%q)", v.text)
	case Number:
		return "Number(" + strconv.FormatFloat(v.num, 'g', -1, 64) + ")"
	case Bool:
		return "Bool(" + strconv.FormatBool(v.flag) + ")"
	default:
		return "Null"
	}
}
