package pageurl

import (
	"math"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3", 3},
		{" 42 ", 42},
		{"", 0},
		{"1.5", 1.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"-2", -2},
		{"0x10", 16},
		{"0b11", 3},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"0x10000000000000000", math.Ldexp(1, 64)},
		{"0b" + strings.Repeat("1", 70), math.Ldexp(1, 70)},
		{"\ufeff3", 3},
		{"\u2003 7\n", 7},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, coerceNumber(tt.in), tt.want)
		})
	}

	for _, bad := range []string{"abc", "3abc", "inf", "NaN", "1_000", "0x", "--1", "\u00853"} {
		assert.True(t, math.IsNaN(coerceNumber(bad)))
	}
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, encodeComponent("x y"), "x%20y")
	assert.Equal(t, encodeComponent("a+b&c=d"), "a%2Bb%26c%3Dd")
	assert.Equal(t, encodeComponent("-_.!~*'()"), "-_.!~*'()")
	assert.Equal(t, encodeComponent("é"), "%C3%A9")
}

func TestDecodeComponent(t *testing.T) {
	out, err := decodeComponent("a%20b+c")
	assert.Nil(t, err)
	assert.Equal(t, out, "a b+c")

	_, err = decodeComponent("%zz")
	assert.NotNil(t, err)

	_, err = decodeComponent("%FF")
	assert.NotNil(t, err)
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, utf16Len("abcdefghijkl"), 12)
	assert.Equal(t, utf16Len("é"), 1)
	assert.Equal(t, utf16Len("😀"), 2)
}
