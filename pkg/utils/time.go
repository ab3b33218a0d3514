package utils

import (
	"math"
	"time"
)

// DateLayout is the MM/DD/YYYY format used for shelter entry dates and
// birthdays. The reference layout accepts both padded and unpadded
// month/day values.
const DateLayout = "1/2/2006"

// NowUTC returns the current UTC time in RFC3339 format
func NowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseDate parses an MM/DD/YYYY date string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AgeYears derives an age in years from an MM/DD/YYYY birthday,
// rounded to one decimal place. Unparseable birthdays yield 0.
func AgeYears(birthday string) float64 {
	return ageYearsAt(birthday, time.Now())
}

func ageYearsAt(birthday string, now time.Time) float64 {
	birth, err := ParseDate(birthday)
	if err != nil {
		return 0
	}
	days := now.Sub(birth).Hours() / 24
	years := days / 365.25
	if years < 0 {
		return 0
	}
	return math.Round(years*10) / 10
}
