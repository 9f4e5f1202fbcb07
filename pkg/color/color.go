// Package color provides the color model used by color bindings.
//
// A [Color] keeps red, green and blue as 0-255 floats and alpha as 0-1,
// matching the object form {r, g, b, a} hosts commonly store. Colors parse
// from hex notations, rgb()/rgba() functions and CSS color names, and
// convert back to the notation the host used.
package color

import (
	"fmt"
	"math"
	"strings"
)

// maxByte is the maximum value of a color component.
const maxByte = 255.0

// Color is an RGB color with alpha.
type Color struct {
	R, G, B float64
	A       float64
}

// RGB constructs an opaque Color. Components are clamped to 0-255.
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA constructs a Color from 0-255 components and a 0-1 alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{
		R: clamp(r, 0, maxByte),
		G: clamp(g, 0, maxByte),
		B: clamp(b, 0, maxByte),
		A: clamp(a, 0, 1),
	}
}

// Black is the fallback for unreadable values.
var Black = RGB(0, 0, 0)

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// Equal reports whether c and o have the same components.
func (c Color) Equal(o Color) bool {
	return c == o
}

// Bytes returns the components rounded to bytes, alpha included.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(math.Round(c.R)), uint8(math.Round(c.G)), uint8(math.Round(c.B)),
		uint8(math.Round(c.A * maxByte))
}

// HexRGB formats c as #rrggbb.
func (c Color) HexRGB() string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexRGBA formats c as #rrggbbaa.
func (c Color) HexRGBA() string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Number returns c as 0xrrggbb, dropping alpha.
func (c Color) Number() int {
	r, g, b, _ := c.Bytes()
	return int(r)<<16 | int(g)<<8 | int(b)
}

// FromNumber converts 0xrrggbb to an opaque Color.
func FromNumber(n int) Color {
	return RGB(float64((n>>16)&0xff), float64((n>>8)&0xff), float64(n&0xff))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.A < 1 {
		return c.HexRGBA()
	}
	return c.HexRGB()
}

// Object returns c as {r, g, b} or, with alpha, {r, g, b, a}.
func (c Color) Object(withAlpha bool) map[string]any {
	obj := map[string]any{"r": c.R, "g": c.G, "b": c.B}
	if withAlpha {
		obj["a"] = c.A
	}
	return obj
}

var rgbKeys = []string{"r", "g", "b"}

// IsObject reports whether v is a map with numeric r, g and b entries.
func IsObject(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, k := range rgbKeys {
		if _, ok := toFloat(m[k]); !ok {
			return false
		}
	}
	return true
}

// IsRGBAObject reports whether v is a color object with an alpha entry.
func IsRGBAObject(v any) bool {
	if !IsObject(v) {
		return false
	}
	_, ok := toFloat(v.(map[string]any)["a"])
	return ok
}

// FromObject converts a color object. Missing alpha means opaque.
func FromObject(v any) (Color, bool) {
	if !IsObject(v) {
		return Color{}, false
	}
	m := v.(map[string]any)
	r, _ := toFloat(m["r"])
	g, _ := toFloat(m["g"])
	b, _ := toFloat(m["b"])
	a, ok := toFloat(m["a"])
	if !ok {
		a = 1
	}
	return RGBA(r, g, b, a), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Notation describes how a host stores a color.
type Notation int

const (
	// NotationUnknown means the value is not a color.
	NotationUnknown Notation = iota
	// NotationHexRGB is #rrggbb (also #rgb and 0xrrggbb on input).
	NotationHexRGB
	// NotationHexRGBA is #rrggbbaa.
	NotationHexRGBA
	// NotationFunc is rgb(...) or rgba(...).
	NotationFunc
	// NotationName is a CSS color name.
	NotationName
	// NotationObject is {r, g, b}.
	NotationObject
	// NotationRGBAObject is {r, g, b, a}.
	NotationRGBAObject
	// NotationNumber is 0xrrggbb as an integer.
	NotationNumber
)

// DetectNotation returns the notation of an external value.
func DetectNotation(v any) Notation {
	switch x := v.(type) {
	case string:
		_, n := parse(x)
		return n
	case int, int64, int32, uint32, float64:
		return NotationNumber
	}
	if IsRGBAObject(v) {
		return NotationRGBAObject
	}
	if IsObject(v) {
		return NotationObject
	}
	return NotationUnknown
}

// Format converts c to the given notation.
func Format(c Color, n Notation) any {
	switch n {
	case NotationHexRGBA:
		return c.HexRGBA()
	case NotationFunc:
		if c.A < 1 {
			r, g, b, _ := c.Bytes()
			return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(c.A))
		}
		r, g, b, _ := c.Bytes()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case NotationObject:
		return c.Object(false)
	case NotationRGBAObject:
		return c.Object(true)
	case NotationNumber:
		return c.Number()
	default:
		return c.HexRGB()
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FromUnknown converts any supported external value to a Color, falling
// back to Black.
func FromUnknown(v any) Color {
	switch x := v.(type) {
	case Color:
		return x
	case string:
		if c, ok := Parse(x); ok {
			return c
		}
		return Black
	case int:
		return FromNumber(x)
	case int64:
		return FromNumber(int(x))
	case int32:
		return FromNumber(int(x))
	case uint32:
		return FromNumber(int(x))
	case float64:
		return FromNumber(int(x))
	}
	if c, ok := FromObject(v); ok {
		return c
	}
	return Black
}
