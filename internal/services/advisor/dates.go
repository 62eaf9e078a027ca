package advisor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"outdoor-advisor/internal/models"
)

// nearTermDays is the last day offset served by the 3-hourly forecast.
const nearTermDays = 7

const (
	forecastKeyLayout = "2006-01-02"
	powerKeyLayout    = "20060102"
)

// Classification tells which source serves a requested date and how to
// look the date up in it.
type Classification struct {
	Regime        models.Regime
	DaysFromToday int
	LookupKey     string
}

// Classify picks the source regime for requested relative to today. Both
// are reduced to their calendar dates before subtracting, so the result
// does not depend on the time of day or on DST shifts.
func Classify(today, requested time.Time) Classification {
	days := daysBetween(today, requested)

	if days >= 0 && days <= nearTermDays {
		return Classification{
			Regime:        models.RegimeNearTerm,
			DaysFromToday: days,
			LookupKey:     ForecastKey(requested),
		}
	}

	forcedYear := 0
	if days > nearTermDays {
		// POWER has no future data: use the same day of the last complete year.
		forcedYear = today.Year() - 1
	}

	return Classification{
		Regime:        models.RegimeHistorical,
		DaysFromToday: days,
		LookupKey:     BuildPowerDate(requested, forcedYear),
	}
}

// Midnight returns the start of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// ForecastKey is the YYYY-MM-DD prefix of the forecast slots for t's day.
func ForecastKey(t time.Time) string {
	return t.Format(forecastKeyLayout)
}

// BuildPowerDate formats t as a YYYYMMDD POWER date key. A non-zero
// forceYear replaces t's year; 29 February maps to the 28th when the forced
// year is not a leap year.
func BuildPowerDate(t time.Time, forceYear int) string {
	y, m, d := t.Date()
	if forceYear == 0 {
		return fmt.Sprintf("%04d%02d%02d", y, int(m), d)
	}

	if m == time.February && d == 29 && !isLeap(forceYear) {
		d = 28
	}
	return fmt.Sprintf("%04d%02d%02d", forceYear, int(m), d)
}

// ParsePowerDate reads a YYYYMMDD key back into a date at midnight in loc.
func ParsePowerDate(key string, loc *time.Location) (time.Time, error) {
	if len(key) != len(powerKeyLayout) {
		return time.Time{}, fmt.Errorf("invalid power date %q", key)
	}
	t, err := time.ParseInLocation(powerKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid power date %q: %w", key, err)
	}
	return t, nil
}

// ParseInputDate accepts the HTML date input format (YYYY-MM-DD) and the
// US fallback (MM/DD/YYYY), returning midnight in loc.
func ParseInputDate(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, &models.ValidationError{Field: "date", Message: "please select a date first"}
	}

	var parts []string
	var y, m, d int
	var err error

	switch {
	case strings.Contains(input, "-"):
		parts = strings.Split(input, "-")
		if len(parts) == 3 {
			y, m, d, err = atoi3(parts[0], parts[1], parts[2])
		}
	case strings.Contains(input, "/"):
		parts = strings.Split(input, "/")
		if len(parts) == 3 {
			m, d, y, err = atoi3(parts[0], parts[1], parts[2])
		}
	}

	if len(parts) != 3 || err != nil {
		return time.Time{}, &models.ValidationError{Field: "date", Message: fmt.Sprintf("unrecognised date %q", input)}
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, &models.ValidationError{Field: "date", Message: fmt.Sprintf("no such calendar date %q", input)}
	}

	return t, nil
}

// DisplayDate renders t as M/D/YYYY.
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

func atoi3(a, b, c string) (int, int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, 0, err
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, 0, err
	}
	z, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
