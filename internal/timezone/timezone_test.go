package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallback(t *testing.T) {
	assert.Equal(t, Location(DefaultTimezone).String(), Location("Mars/Olympus").String())
	assert.False(t, IsValid(""))
}

func TestBounds(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2024, 2, 29, 22, 15, 0, 0, loc)

	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), end)

	start, end = MonthBounds(at)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), end)
}

func TestClock(t *testing.T) {
	fixed := time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC)
	c := Clock(func() time.Time { return fixed })

	now := c.In("America/Sao_Paulo")
	assert.Equal(t, 10, now.Day())
	assert.True(t, fixed.Equal(now))
}

func TestParseMonth(t *testing.T) {
	m, ok := ParseMonth("2024-05", "UTC")
	require.True(t, ok)
	assert.Equal(t, time.May, m.Month())

	_, ok = ParseMonth("05/2024", "UTC")
	assert.False(t, ok)
}
