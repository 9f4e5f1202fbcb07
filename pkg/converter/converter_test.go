package converter

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberFromUnknown(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{3.5, 3.5},
		{float32(1.5), 1.5},
		{42, 42},
		{int8(-3), -3},
		{uint16(7), 7},
		{"12.5", 12.5},
		{" 4 ", 4},
		{"abc", 0},
		{"NaN", 0},
		{true, 1},
		{false, 0},
		{nil, 0},
		{[]int{1}, 0},
		{time.Duration(5), 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumberFromUnknown(tt.in), "%#v", tt.in)
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber(1))
	assert.True(t, IsNumber(uint(1)))
	assert.True(t, IsNumber(1.5))
	assert.False(t, IsNumber("1"))
	assert.False(t, IsNumber(true))
	assert.False(t, IsNumber(nil))
}

func TestStringFromUnknown(t *testing.T) {
	assert.Equal(t, "abc", StringFromUnknown("abc"))
	assert.Equal(t, "", StringFromUnknown(nil))
	assert.Equal(t, "42", StringFromUnknown(42))
	assert.Equal(t, "1s", StringFromUnknown(time.Second))
}

func TestBoolFromUnknown(t *testing.T) {
	assert.True(t, BoolFromUnknown(true))
	assert.True(t, BoolFromUnknown("yes"))
	assert.True(t, BoolFromUnknown(2))
	assert.True(t, BoolFromUnknown(struct{}{}))
	assert.False(t, BoolFromUnknown("false"))
	assert.False(t, BoolFromUnknown(" 0 "))
	assert.False(t, BoolFromUnknown(""))
	assert.False(t, BoolFromUnknown(0.0))
	assert.False(t, BoolFromUnknown(nil))
}

func TestNumberFormatter(t *testing.T) {
	assert.Equal(t, "3.14", NumberFormatter(2)(3.14159))
	assert.Equal(t, "3", NumberFormatter(-1)(3.14159))
	assert.Equal(t, "0.1", NumberToString(0.1))
	assert.Equal(t, "100", NumberToString(100))
}

func TestParseNumber(t *testing.T) {
	v, ok := ParseNumber(" 1e3 ")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, v)

	_, ok = ParseNumber("twelve")
	assert.False(t, ok)
}

func TestToKindOf(t *testing.T) {
	assert.Equal(t, 3, ToKindOf(2.6, 1))
	assert.Equal(t, int64(-2), ToKindOf(-2.4, int64(0)))
	assert.Equal(t, uint8(200), ToKindOf(200, uint8(0)))
	assert.Equal(t, float32(1.5), ToKindOf(1.5, float32(0)))
	assert.Equal(t, 1.5, ToKindOf(1.5, "x"))
}

func TestToKindOfClampsToTargetRange(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		like any
		want any
	}{
		{"uint8 above", 300, uint8(10), uint8(255)},
		{"uint8 below", -1, uint8(10), uint8(0)},
		{"uint negative", -5, uint(5), uint(0)},
		{"int8 below", -1000, int8(0), int8(-128)},
		{"int8 above", 127.6, int8(0), int8(127)},
		{"int16 edge", -32768, int16(0), int16(-32768)},
		{"int64 above", 1e19, int64(0), int64(math.MaxInt64)},
		{"int64 below", -1e19, int64(0), int64(math.MinInt64)},
		{"uint64 above", 1e20, uint64(0), uint64(math.MaxUint64)},
		{"uint32 inside", 4e9, uint32(0), uint32(4000000000)},
		{"float32 above", 1e300, float32(0), float32(math.MaxFloat32)},
		{"named int", 1e6, myInt8(0), myInt8(127)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToKindOf(tt.f, tt.like))
		})
	}
}

type myInt8 int8
