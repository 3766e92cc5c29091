package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/designml/designfmt/internal/conv"
)

func TestBoolParseRule(t *testing.T) {
	testCases := []struct {
		input  string
		expect bool
	}{
		{"false", false},
		{"FALSE", false},
		{"FaLsE", false},
		{"true", true},
		{"", true},
		{"yes", true},
		{"0", true},
		{" false", true},
	}
	c := Bool{}
	for _, tc := range testCases {
		actual, err := c.Parse(tc.input, language.Und)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expect, actual, "input %q", tc.input)
	}
}

func TestBoolFormat(t *testing.T) {
	c := Bool{}
	text, err := c.Format(true, language.Und)
	require.NoError(t, err)
	assert.Equal(t, "true", text)

	text, err = c.Format(conv.Pointer(false), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "false", text)

	_, err = c.Format(1, language.Und)
	assert.Error(t, err)
}

func TestStringIdentity(t *testing.T) {
	c := String{}
	for _, input := range []string{"", "hello", "  padded  ", "multi\nline"} {
		parsed, err := c.Parse(input, language.Und)
		require.NoError(t, err)
		assert.Equal(t, input, parsed)
		text, err := c.Format(parsed, language.Und)
		require.NoError(t, err)
		assert.Equal(t, input, text)
	}
}

func TestCharacterFirstRune(t *testing.T) {
	testCases := []struct {
		input  string
		expect Char
	}{
		{"X", 'X'},
		{"hello", 'h'},
		{"über", 'ü'},
		{"汉字", '汉'},
	}
	c := Character{}
	for _, tc := range testCases {
		actual, err := c.Parse(tc.input, language.Und)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expect, actual, "input %q", tc.input)
	}
}

func TestCharacterEmptyInputFails(t *testing.T) {
	c := Character{}
	_, err := c.Parse("", language.Und)
	require.Error(t, err)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "", convErr.Value)
}

func TestCharacterFormat(t *testing.T) {
	c := Character{}
	text, err := c.Format(Char('Ω'), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "Ω", text)

	text, err = c.Format(conv.Pointer(Char('a')), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "a", text)

	// a plain rune is not the model type
	_, err = c.Format('x', language.Und)
	assert.Error(t, err)
}
