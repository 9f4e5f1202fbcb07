// Package converter turns loosely typed host values into the typed values
// bindings hold, and formats them back for display.
package converter

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// NumberFromUnknown converts v to a float64. Numbers of any Go numeric type
// convert directly, numeric strings are parsed and booleans map to 0 and 1.
// Anything else, including NaN results, yields 0.
func NumberFromUnknown(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		parsed, ok := ParseNumber(x)
		if !ok {
			return 0
		}
		f = parsed
	default:
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanFloat():
			f = rv.Float()
		case rv.CanInt():
			f = float64(rv.Int())
		case rv.CanUint():
			f = float64(rv.Uint())
		default:
			return 0
		}
	}
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// IsNumber reports whether v holds a Go numeric type.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.CanFloat() || rv.CanInt() || rv.CanUint()
}

// StringFromUnknown converts v to its display text.
func StringFromUnknown(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// BoolFromUnknown reports whether v is truthy: true, a non-zero number or
// a non-empty string other than "false" and "0".
func BoolFromUnknown(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.TrimSpace(strings.ToLower(x))
		return s != "" && s != "false" && s != "0"
	}
	if IsNumber(v) {
		return NumberFromUnknown(v) != 0
	}
	return true
}

// NumberFormatter returns a formatter printing digits fraction digits.
func NumberFormatter(digits int) func(float64) string {
	if digits < 0 {
		digits = 0
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
}

// NumberToString formats v without trailing zeros.
func NumberToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber parses user-entered text as a number.
func ParseNumber(text string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ToKindOf converts f to the numeric type of like, so a binding writes
// back the same type the host stored. Integer targets get f rounded and
// clamped to the range of their type; float32 targets are clamped to the
// finite float32 range. Non-numeric like values yield f.
func ToKindOf(f float64, like any) any {
	if !IsNumber(like) {
		return f
	}
	rv := reflect.New(reflect.TypeOf(like)).Elem()
	bits := rv.Type().Bits()
	switch {
	case rv.CanInt():
		rv.SetInt(clampInt(f, bits))
	case rv.CanUint():
		rv.SetUint(clampUint(f, bits))
	default:
		if bits == 32 {
			f = min(max(f, -math.MaxFloat32), math.MaxFloat32)
		}
		rv.SetFloat(f)
	}
	return rv.Interface()
}

func clampInt(f float64, bits int) int64 {
	hi := int64(math.MaxInt64) >> (64 - bits)
	lo := -hi - 1
	r := math.Round(f)
	switch {
	case math.IsNaN(r):
		return 0
	case r <= float64(lo):
		return lo
	case r >= float64(hi):
		return hi
	}
	return int64(r)
}

func clampUint(f float64, bits int) uint64 {
	hi := uint64(math.MaxUint64) >> (64 - bits)
	r := math.Round(f)
	switch {
	case math.IsNaN(r), r <= 0:
		return 0
	case r >= float64(hi):
		return hi
	}
	return uint64(r)
}
