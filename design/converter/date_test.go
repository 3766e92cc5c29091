package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDateLayoutLadder(t *testing.T) {
	testCases := []struct {
		input  string
		expect time.Time
	}{
		{"2026-08-24 13:45:30 +0200", time.Date(2026, 8, 24, 13, 45, 30, 0, time.FixedZone("", 2*3600))},
		{"2026-08-24 13:45:30", time.Date(2026, 8, 24, 13, 45, 30, 0, time.UTC)},
		{"2026-08-24 13:45", time.Date(2026, 8, 24, 13, 45, 0, 0, time.UTC)},
		{"2026-08-24", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{"2026-08", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"2026", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	c := NewDate()
	for _, tc := range testCases {
		actual, err := c.Parse(tc.input, language.Und)
		require.NoError(t, err, tc.input)
		assert.True(t, tc.expect.Equal(actual.(time.Time)), "input %q parsed to %v", tc.input, actual)
	}

	_, err := c.Parse("24.08.2026", language.Und)
	assert.Error(t, err)
	_, err = c.Parse("", language.Und)
	assert.Error(t, err)
}

func TestDateFormatIsDateOnly(t *testing.T) {
	c := NewDate()
	text, err := c.Format(time.Date(2026, 8, 24, 13, 45, 30, 0, time.UTC), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", text)
}

func TestDateCustomLayouts(t *testing.T) {
	c := NewDateWithLayouts("02/01/2006", "02/01/2006", "2006-01-02")
	parsed, err := c.Parse("24/08/2026", language.Und)
	require.NoError(t, err)
	text, err := c.Format(parsed, language.Und)
	require.NoError(t, err)
	assert.Equal(t, "24/08/2026", text)

	// defaults apply when arguments are empty
	d := NewDateWithLayouts("")
	text, err = d.Format(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), language.Und)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", text)
}

func TestTimeZone(t *testing.T) {
	c := TimeZone{}
	parsed, err := c.Parse("UTC", language.Und)
	require.NoError(t, err)
	loc, ok := parsed.(*time.Location)
	require.True(t, ok)
	text, err := c.Format(loc, language.Und)
	require.NoError(t, err)
	assert.Equal(t, "UTC", text)

	_, err = c.Parse("Not/AZone", language.Und)
	assert.Error(t, err)
	_, err = c.Format("UTC", language.Und)
	assert.Error(t, err)
}
