package converter

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/designml/designfmt/internal/conv"
)

func TestIntegerWidths(t *testing.T) {
	testCases := []struct {
		description string
		typ         reflect.Type
		input       string
		expect      any
		hasError    bool
	}{
		{description: "int64", typ: reflect.TypeOf(int64(0)), input: "9223372036854775807", expect: int64(9223372036854775807)},
		{description: "int64 negative", typ: reflect.TypeOf(int64(0)), input: "-42", expect: int64(-42)},
		{description: "int32", typ: reflect.TypeOf(int32(0)), input: "2147483647", expect: int32(2147483647)},
		{description: "int16", typ: reflect.TypeOf(int16(0)), input: "-32768", expect: int16(-32768)},
		{description: "int8 upper bound", typ: reflect.TypeOf(int8(0)), input: "127", expect: int8(127)},
		{description: "int8 overflow", typ: reflect.TypeOf(int8(0)), input: "128", hasError: true},
		{description: "int16 overflow", typ: reflect.TypeOf(int16(0)), input: "32768", hasError: true},
		{description: "not a number", typ: reflect.TypeOf(int64(0)), input: "abc", hasError: true},
		{description: "no decimals accepted", typ: reflect.TypeOf(int64(0)), input: "1.5", hasError: true},
	}
	for _, tc := range testCases {
		c := NewInteger(tc.typ)
		actual, err := c.Parse(tc.input, language.Und)
		if tc.hasError {
			assert.Error(t, err, tc.description)
			var convErr *ConversionError
			assert.ErrorAs(t, err, &convErr, tc.description)
			continue
		}
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.expect, actual, tc.description)
	}
}

func TestIntegerFormat(t *testing.T) {
	c := NewInteger(reflect.TypeOf(int64(0)))
	text, err := c.Format(int64(-7), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "-7", text)

	// pointer aliases format through the same instance
	text, err = c.Format(conv.Pointer(int64(12)), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "12", text)

	_, err = c.Format("12", language.Und)
	assert.Error(t, err)
}

func TestDecimalRoundTrip(t *testing.T) {
	c := Decimal{}
	testCases := []string{
		"0",
		"-1",
		"3.14",
		"2.718281828459045235360287471352662497757",
		"-0.000000000000000001",
	}
	for _, input := range testCases {
		parsed, err := c.Parse(input, language.Und)
		require.NoError(t, err, input)
		require.IsType(t, decimal.Decimal{}, parsed, input)
		text, err := c.Format(parsed, language.Und)
		require.NoError(t, err, input)
		assert.Equal(t, input, text, input)
	}

	_, err := c.Parse("12,5", language.Und)
	assert.Error(t, err)
	_, err = c.Format(3.14, language.Und)
	assert.Error(t, err)
}

func TestFloatFixedNotation(t *testing.T) {
	testCases := []struct {
		description string
		value       any
		expect      string
	}{
		{description: "rounds to three fraction digits", value: 3.14159, expect: "3.142"},
		{description: "float32 rounds the same way", value: float32(3.14159), expect: "3.142"},
		{description: "integral value drops the point", value: 12345.0, expect: "12345"},
		{description: "no grouping separators", value: 1234567.891, expect: "1234567.891"},
		{description: "trailing zeros trimmed", value: 0.5, expect: "0.5"},
		{description: "negative integral", value: -2.0, expect: "-2"},
		{description: "rounds down", value: 0.1234, expect: "0.123"},
		{description: "zero", value: 0.0, expect: "0"},
	}
	f64 := NewFloat(reflect.TypeOf(float64(0)))
	f32 := NewFloat(reflect.TypeOf(float32(0)))
	for _, tc := range testCases {
		c := f64
		if _, ok := tc.value.(float32); ok {
			c = f32
		}
		actual, err := c.Format(tc.value, language.Und)
		require.NoError(t, err, tc.description)
		assert.Equal(t, tc.expect, actual, tc.description)
	}
}

func TestFloatParse(t *testing.T) {
	f64 := NewFloat(reflect.TypeOf(float64(0)))
	parsed, err := f64.Parse("-0.25", language.Und)
	require.NoError(t, err)
	assert.Equal(t, -0.25, parsed)

	f32 := NewFloat(reflect.TypeOf(float32(0)))
	parsed, err = f32.Parse("1.5", language.Und)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), parsed)

	_, err = f64.Parse("12.5.3", language.Und)
	assert.Error(t, err)
	_, err = f64.Parse("", language.Und)
	assert.Error(t, err)
}

func TestFloatFormatIsLossy(t *testing.T) {
	c := NewFloat(reflect.TypeOf(float64(0)))
	parsed, err := c.Parse("0.123456", language.Und)
	require.NoError(t, err)
	text, err := c.Format(parsed, language.Und)
	require.NoError(t, err)
	assert.Equal(t, "0.123", text)
}
