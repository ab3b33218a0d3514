package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("padded", func(t *testing.T) {
		d, err := ParseDate("01/15/2021")
		require.NoError(t, err)
		assert.Equal(t, 2021, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 15, d.Day())
	})

	t.Run("unpadded", func(t *testing.T) {
		d, err := ParseDate("6/3/2023")
		require.NoError(t, err)
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 3, d.Day())
	})

	t.Run("rejects ISO dates", func(t *testing.T) {
		_, err := ParseDate("2021-01-15")
		assert.Error(t, err)
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		_, err := ParseDate("13/45/2021")
		assert.Error(t, err)
	})
}

func TestAgeYears(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rounds to one decimal", func(t *testing.T) {
		// two years of 365.25 days each before now
		assert.InDelta(t, 2.0, ageYearsAt("6/1/2022", now), 0.05)
		assert.Equal(t, 0.5, ageYearsAt("12/1/2023", now))
	})

	t.Run("unparseable birthday yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ageYearsAt("soon", now))
		assert.Equal(t, 0.0, ageYearsAt("", now))
	})

	t.Run("future birthday yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ageYearsAt("6/1/2025", now))
	})
}

func TestNowUTC(t *testing.T) {
	parsed, err := ParseRFC3339(NowUTC())
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now(), parsed, 5*time.Second)
}
