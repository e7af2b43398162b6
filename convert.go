// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"fmt"
	"reflect"
)

// A Valuer is a type that can convert itself into a JSON value. Types
// outside the built-in conversions, such as reflected structs, implement
// Valuer to participate in ToValue; the implementation is responsible for
// delegating nested fields back to ToValue as needed.
type Valuer interface {
	JSONValue() (*Value, error)
}

// A FromValuer is a type that can populate itself from a JSON value. It
// is the inverse hook of Valuer, consulted first by FromValue.
type FromValuer interface {
	FromJSONValue(*Value) error
}

// ToValue converts a native Go value into a JSON value. It accepts
// strings and byte slices, maps with string keys, slices and arrays,
// Booleans, nil, all integer and floating-point types, any *Value, and
// any type implementing Valuer.
//
// Several of these capabilities can hold at once for a single type, such
// as a byte slice being both string-like and a slice. Ambiguity is
// resolved by a fixed priority order, checked explicitly:
//
//	string > object > array > bool > null > number
//
// A *Value is returned as-is, not copied. Types with no conversion, such
// as channels and funcs, report an error.
func ToValue(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		if t == nil {
			return NewNull(), nil
		}
		return t, nil
	case Valuer:
		return t.JSONValue()

	// Fast paths for the exact built-in types.
	case string:
		return NewString(t), nil
	case []byte:
		return NewString(string(t)), nil
	case bool:
		return NewBool(t), nil
	case float64:
		return NewNumber(t), nil
	case int:
		return NewNumber(float64(t)), nil
	}
	return reflectToValue(reflect.ValueOf(x))
}

// MustValue is ToValue, but panics on conversion errors. It is intended
// for static values whose convertibility is known at the call site.
func MustValue(x any) *Value {
	v, err := ToValue(x)
	if err != nil {
		panic(fmt.Sprintf("jot.MustValue: %v", err))
	}
	return v
}

// reflectToValue applies the conversion priority order to a value of any
// other type. The order of the checks is the contract.
func reflectToValue(rv reflect.Value) (*Value, error) {
	switch {
	case rv.Kind() == reflect.String:
		return NewString(rv.String()), nil

	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		// A named byte slice is string-like, taking priority over its
		// array-like reading.
		return NewString(string(rv.Bytes())), nil

	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		obj := NewObject()
		it := rv.MapRange()
		for it.Next() {
			child, err := ToValue(it.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", it.Key().String(), err)
			}
			*obj.Field(it.Key().String()) = *child
		}
		return obj, nil

	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			child, err := ToValue(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(child)
		}
		return arr, nil

	case rv.Kind() == reflect.Bool:
		return NewBool(rv.Bool()), nil

	case rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface:
		if rv.IsNil() {
			return NewNull(), nil
		}
		return ToValue(rv.Elem().Interface())

	case rv.CanInt():
		return NewNumber(float64(rv.Int())), nil
	case rv.CanUint():
		return NewNumber(float64(rv.Uint())), nil
	case rv.CanFloat():
		return NewNumber(rv.Float()), nil
	}
	return nil, fmt.Errorf("type %s has no JSON conversion", rv.Type())
}

// FromValue populates target, which must be a non-nil pointer, from the
// JSON value v. Targets implementing FromValuer are given the value
// directly; otherwise the built-in conversions apply, in the same
// priority order as ToValue. Map and slice targets are filled
// recursively, and a null value resets them to nil. A target of type *any
// receives the native Go form of the tree (map[string]any, []any, string,
// float64, bool, or nil).
func FromValue(v *Value, target any) error {
	switch t := target.(type) {
	case FromValuer:
		return t.FromJSONValue(v)
	case **Value:
		*t = v
		return nil
	case *any:
		native, err := nativeValue(v)
		if err != nil {
			return err
		}
		*t = native
		return nil

	case *string:
		s, err := v.Text()
		if err != nil {
			return err
		}
		*t = s
		return nil
	case *[]byte:
		s, err := v.Text()
		if err != nil {
			return err
		}
		*t = []byte(s)
		return nil
	case *float64:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		*t = f
		return nil
	case *bool:
		b, err := v.Bool()
		if err != nil {
			return err
		}
		*t = b
		return nil
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("target must be a non-nil pointer, not %T", target)
	}
	return reflectFromValue(v, rv.Elem())
}

func reflectFromValue(v *Value, elem reflect.Value) error {
	switch {
	case elem.Kind() == reflect.String:
		s, err := v.Text()
		if err != nil {
			return err
		}
		elem.SetString(s)
		return nil

	case elem.Kind() == reflect.Map && elem.Type().Key().Kind() == reflect.String:
		if v.IsNull() {
			elem.SetZero()
			return nil
		}
		if !v.IsObject() {
			return v.kindError("FromValue", Object)
		}
		m := reflect.MakeMapWithSize(elem.Type(), v.Len())
		for _, key := range v.Keys() {
			child, err := v.At(key)
			if err != nil {
				return err
			}
			slot := reflect.New(elem.Type().Elem())
			if err := FromValue(child, slot.Interface()); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
			m.SetMapIndex(reflect.ValueOf(key).Convert(elem.Type().Key()), slot.Elem())
		}
		elem.Set(m)
		return nil

	case elem.Kind() == reflect.Slice:
		if v.IsNull() {
			elem.SetZero()
			return nil
		}
		items, err := v.Items()
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(elem.Type(), len(items), len(items))
		for i, item := range items {
			if err := FromValue(item, out.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		elem.Set(out)
		return nil

	case elem.Kind() == reflect.Bool:
		b, err := v.Bool()
		if err != nil {
			return err
		}
		elem.SetBool(b)
		return nil

	case elem.CanInt():
		f, err := v.Float64()
		if err != nil {
			return err
		}
		elem.SetInt(int64(f))
		return nil
	case elem.CanUint():
		f, err := v.Float64()
		if err != nil {
			return err
		}
		elem.SetUint(uint64(f))
		return nil
	case elem.CanFloat():
		f, err := v.Float64()
		if err != nil {
			return err
		}
		elem.SetFloat(f)
		return nil
	}
	return fmt.Errorf("type %s has no JSON conversion", elem.Type())
}

// nativeValue converts a tree into the equivalent composition of plain Go
// values, as encoding/json would decode into an any.
func nativeValue(v *Value) (any, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case String:
		return v.text, nil
	case Number:
		return v.num, nil
	case Bool:
		return v.flag, nil
	case Array:
		out := make([]any, len(v.vals))
		for i, e := range v.vals {
			n, err := nativeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case Object:
		out := make(map[string]any, len(v.mems))
		for _, m := range v.mems {
			n, err := nativeValue(m.val)
			if err != nil {
				return nil, err
			}
			out[m.key] = n
		}
		return out, nil
	}
	return nil, fmt.Errorf("invalid value kind %v", v.Kind())
}
