package gqlquery

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// IsArgumentValue reports whether v can be used as an argument value: a
// RawObject, a scalar (bool, string, integer or float), a slice or array of
// argument values, or a map of argument values keyed by GraphQL names. nil,
// pointers, structs, funcs and channels are not argument values, and neither
// are NaN, infinities or strings that cannot be written as a GraphQL string
// literal (invalid UTF-8, control characters other than \b \f \n \r \t).
func IsArgumentValue(v interface{}) bool {
	if _, ok := v.(RawObject); ok {
		return true
	}
	return isArgumentValue(reflect.ValueOf(v))
}

func isArgumentValue(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	if rv.Type() == reflect.TypeOf(RawObject{}) {
		return true
	}
	switch rv.Kind() {
	case reflect.String:
		return isStringValue(rv.String())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !isArgumentValue(rv.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !IsName(iter.Key().String()) || !isArgumentValue(iter.Value()) {
				return false
			}
		}
		return true
	case reflect.Interface:
		return isArgumentValue(rv.Elem())
	}
	return false
}

// isStringValue reports whether s survives quoting as a GraphQL string.
func isStringValue(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch r {
		case '\b', '\f', '\n', '\r', '\t':
			continue
		}
		if !strconv.IsPrint(r) {
			return false
		}
	}
	return true
}
