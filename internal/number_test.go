package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   NumberShape
		length int
	}{
		{"0", NumberValid, 1},
		{"-0", NumberValid, 2},
		{"0.0", NumberValid, 3},
		{"0 ", NumberValid, 1},
		{"1", NumberValid, 1},
		{"-1", NumberValid, 2},
		{"123", NumberValid, 3},
		{"1.5", NumberValid, 3},
		{"-1.5e+2", NumberValid, 7},
		{"1E-10", NumberValid, 5},
		{"1e10", NumberValid, 4},
		{"123 456", NumberValid, 3},
		{"1\t", NumberValid, 1},
		{"2.5E-3 x", NumberValid, 6},
		// the literal stops before a fraction that follows an exponent
		{"1e5.5", NumberValid, 3},

		{"", NumberInvalid, 0},
		{"-", NumberInvalid, 0},
		{"+1", NumberInvalid, 0},
		{".1", NumberInvalid, 0},
		{"1.", NumberInvalid, 0},
		{"1.e5", NumberInvalid, 0},
		{"1e", NumberInvalid, 0},
		{"1e+", NumberInvalid, 0},
		{"1.2.3", NumberInvalid, 0},
		{"1e2e3", NumberInvalid, 0},
		{"1x", NumberInvalid, 0},
		{"-a", NumberInvalid, 0},
		{"0.", NumberInvalid, 0},
		{"0.x", NumberInvalid, 0},
		{"1.5e5.5", NumberInvalid, 0},

		{"01", NumberLeadingZero, 0},
		{"00", NumberLeadingZero, 0},
		{"-01", NumberLeadingZero, 0},
		{"0x0", NumberLeadingZero, 0},
		{"0e5", NumberLeadingZero, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			shape, length := ValidateNumber(tt.input)
			assert.Equal(t, tt.want, shape)
			assert.Equal(t, tt.length, length)
		})
	}
}

func TestParseFloat(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		f, n, overflow := ParseFloat("-1.5e+2")
		assert.Equal(t, -150.0, f)
		assert.Equal(t, 7, n)
		assert.False(t, overflow)
	})

	t.Run("Overflow", func(t *testing.T) {
		for _, s := range []string{"1e309", "-1e400"} {
			f, n, overflow := ParseFloat(s)
			assert.True(t, overflow, s)
			assert.Equal(t, len(s), n, s)
			assert.Equal(t, 0.0, f, s)
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		f, n, overflow := ParseFloat("1e-10000")
		assert.False(t, overflow)
		assert.Equal(t, 8, n)
		assert.Equal(t, 0.0, f)
	})

	t.Run("NoNumber", func(t *testing.T) {
		for _, s := range []string{"", "abc", "1e5.5"} {
			_, n, overflow := ParseFloat(s)
			assert.Zero(t, n, s)
			assert.False(t, overflow, s)
		}
	})
}

func TestNumberShapeString(t *testing.T) {
	assert.Equal(t, "valid", NumberValid.String())
	assert.Equal(t, "invalid", NumberInvalid.String())
	assert.Equal(t, "leading_zero", NumberLeadingZero.String())
}
