package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoor-advisor/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassify_Boundaries(t *testing.T) {
	today := day(2024, time.June, 1)

	tests := []struct {
		offset int
		regime models.Regime
	}{
		{-30, models.RegimeHistorical},
		{-1, models.RegimeHistorical},
		{0, models.RegimeNearTerm},
		{3, models.RegimeNearTerm},
		{7, models.RegimeNearTerm},
		{8, models.RegimeHistorical},
		{200, models.RegimeHistorical},
	}

	for _, tt := range tests {
		c := Classify(today, today.AddDate(0, 0, tt.offset))
		assert.Equal(t, tt.regime, c.Regime, "offset %d", tt.offset)
		assert.Equal(t, tt.offset, c.DaysFromToday, "offset %d", tt.offset)
	}
}

func TestClassify_NearTermKey(t *testing.T) {
	c := Classify(day(2024, time.June, 1), day(2024, time.June, 7))

	assert.Equal(t, models.RegimeNearTerm, c.Regime)
	assert.Equal(t, "2024-06-07", c.LookupKey)
}

func TestClassify_FutureUsesLastYear(t *testing.T) {
	c := Classify(day(2024, time.June, 1), day(2024, time.June, 11))

	assert.Equal(t, models.RegimeHistorical, c.Regime)
	assert.Equal(t, 10, c.DaysFromToday)
	assert.Equal(t, "20230611", c.LookupKey)
}

func TestClassify_FutureNextYearStillUsesLastCompleteYear(t *testing.T) {
	c := Classify(day(2024, time.December, 20), day(2025, time.March, 3))

	assert.Equal(t, "20230303", c.LookupKey)
}

func TestClassify_PastKeepsOwnYear(t *testing.T) {
	c := Classify(day(2024, time.June, 1), day(2019, time.February, 14))

	assert.Equal(t, models.RegimeHistorical, c.Regime)
	assert.Equal(t, "20190214", c.LookupKey)
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("test", 2*3600)
	today := time.Date(2024, time.June, 1, 23, 59, 0, 0, loc)
	requested := time.Date(2024, time.June, 8, 0, 1, 0, 0, loc)

	c := Classify(today, requested)
	assert.Equal(t, 7, c.DaysFromToday)
	assert.Equal(t, models.RegimeNearTerm, c.Regime)
}

func TestClassify_AcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Budapest")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// Clocks go forward on 31 March 2024; that day is 23 hours long.
	today := time.Date(2024, time.March, 30, 0, 0, 0, 0, loc)
	requested := time.Date(2024, time.April, 7, 0, 0, 0, 0, loc)

	assert.Equal(t, 8, Classify(today, requested).DaysFromToday)
}

func TestBuildPowerDate_RoundTrip(t *testing.T) {
	dates := []time.Time{
		day(2023, time.January, 1),
		day(2020, time.February, 29),
		day(1999, time.December, 31),
		day(2024, time.July, 9),
	}

	for _, d := range dates {
		key := BuildPowerDate(d, 0)
		parsed, err := ParsePowerDate(key, time.UTC)
		require.NoError(t, err)

		assert.Equal(t, d.Year(), parsed.Year())
		assert.Equal(t, d.Month(), parsed.Month())
		assert.Equal(t, d.Day(), parsed.Day())
	}
}

func TestBuildPowerDate_ForcedYear(t *testing.T) {
	assert.Equal(t, "20230611", BuildPowerDate(day(2024, time.June, 11), 2023))
	assert.Equal(t, "20230228", BuildPowerDate(day(2024, time.February, 29), 2023))
	assert.Equal(t, "20200229", BuildPowerDate(day(2024, time.February, 29), 2020))
}

func TestParsePowerDate_Invalid(t *testing.T) {
	for _, key := range []string{"", "2023061", "2023-06-11", "20231301"} {
		_, err := ParsePowerDate(key, time.UTC)
		assert.Error(t, err, key)
	}
}

func TestParseInputDate(t *testing.T) {
	got, err := ParseInputDate("2024-06-11", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 11), got)

	got, err = ParseInputDate("6/11/2024", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 11), got)
}

func TestParseInputDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "tomorrow", "2024-13-01", "2023-02-29", "2024-06", "aa/bb/cccc"} {
		_, err := ParseInputDate(in, time.UTC)
		require.Error(t, err, in)

		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr, in)
		assert.Equal(t, "date", verr.Field)
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "6/1/2024", DisplayDate(day(2024, time.June, 1)))
	assert.Equal(t, "12/25/2023", DisplayDate(day(2023, time.December, 25)))
}
