package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDecimal(t *testing.T) {
	assert.Equal(t, "12.5", NormalizeDecimal("12,5"))
	assert.Equal(t, "12.5", NormalizeDecimal(" 12.5 "))
	assert.Equal(t, "470", NormalizeDecimal("470"))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isInt   bool
		wantInt int64
		wantF   float64
		wantErr bool
	}{
		{"Integer", "470", true, 470, 470, false},
		{"CommaDecimal", "12,5", false, 0, 12.5, false},
		{"DotDecimal", "0.47", false, 0, 0.47, false},
		{"ZeroFraction", "2,0", false, 0, 2, false},
		{"Empty", "", false, 0, 0, true},
		{"Garbage", "abc", false, 0, 0, true},
		{"NaN", "NaN", false, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, f, isInt, err := ParseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isInt, isInt)
			if isInt {
				assert.Equal(t, tt.wantInt, i)
			}
			assert.InDelta(t, tt.wantF, f, 1e-9)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("5.0")
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	q, err = ParseQuantity("12.9")
	require.NoError(t, err)
	assert.Equal(t, 12, q)

	q, err = ParseQuantity("7")
	require.NoError(t, err)
	assert.Equal(t, 7, q)

	_, err = ParseQuantity("-1")
	assert.ErrorIs(t, err, ErrNegative)

	_, err = ParseQuantity("many")
	assert.Error(t, err)

	for _, s := range []string{"1e20", "99999999999999999999", "9223372036854775808.5"} {
		_, err = ParseQuantity(s)
		assert.ErrorIs(t, err, ErrOutOfRange, s)
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "2", FormatNumber(2.0))
}
