package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateToken_MonthYear(t *testing.T) {
	got, ok := ParseDateToken("Apr 2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDateToken("April 2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateToken_Numeric(t *testing.T) {
	got, ok := ParseDateToken("05/2023")
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDateToken("13/2023")
	assert.False(t, ok, "month 13 is not a date")
}

func TestParseDateToken_BareYearDefaultsToJanuary(t *testing.T) {
	got, ok := ParseDateToken("2021")
	require.True(t, ok)
	assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateToken_Seasons(t *testing.T) {
	cases := map[string]time.Month{
		"Spring 2022": time.March,
		"Summer 2022": time.June,
		"Fall 2022":   time.September,
		"Winter 2022": time.December,
	}
	for token, month := range cases {
		got, ok := ParseDateToken(token)
		require.True(t, ok, token)
		assert.Equal(t, month, got.Month(), token)
		assert.Equal(t, 2022, got.Year(), token)
	}
}

func TestParseDateToken_Unrecognized(t *testing.T) {
	for _, token := range []string{"", "Present", "current", "sometime"} {
		_, ok := ParseDateToken(token)
		assert.False(t, ok, token)
	}
}

func TestParseDateRange_Separators(t *testing.T) {
	for _, text := range []string{
		"Apr 2025 - Jun 2025",
		"Apr 2025 – Jun 2025",
		"Apr 2025 — Jun 2025",
		"Apr 2025 to Jun 2025",
	} {
		r := ParseDateRange(text)
		require.NotNil(t, r.Start, text)
		require.NotNil(t, r.End, text)
		assert.Equal(t, time.April, r.Start.Month(), text)
		assert.Equal(t, time.June, r.End.Month(), text)
		assert.False(t, r.Current, text)
	}
}

func TestParseDateRange_Present(t *testing.T) {
	r := ParseDateRange("April 2025 - Present")
	require.NotNil(t, r.Start)
	assert.Nil(t, r.End)
	assert.True(t, r.Current)

	r = ParseDateRange("04/2025 - Current")
	require.NotNil(t, r.Start)
	assert.True(t, r.Current)
}

func TestParseDateRange_RangeBeatsLoneDate(t *testing.T) {
	// The lone "2019" earlier in the text must not win over the later range.
	r := ParseDateRange("Graduated 2019. Worked May 2021 - Aug 2023.")
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, 2021, r.Start.Year())
	assert.Equal(t, 2023, r.End.Year())
}

func TestParseDateRange_LoneDate(t *testing.T) {
	r := ParseDateRange("Joined March 2020 and still there")
	require.NotNil(t, r.Start)
	assert.Equal(t, time.March, r.Start.Month())
	assert.Nil(t, r.End)
	assert.False(t, r.Current)
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2025-04-01", ISODate(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
}
