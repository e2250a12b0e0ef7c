package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	d, err := ParseDateString("2026-07-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", d.String())

	_, err = ParseDateString("07/01/2026")
	assert.Error(t, err)

	_, err = ParseDateString("2026-02-30")
	assert.Error(t, err)
}

func TestNightsUntil(t *testing.T) {
	checkIn := DateString("2026-07-01")

	assert.Equal(t, 1, checkIn.NightsUntil("2026-07-02"))
	assert.Equal(t, 3, checkIn.NightsUntil("2026-07-04"))
	assert.Equal(t, 0, checkIn.NightsUntil("2026-07-01"))
	assert.Equal(t, 0, checkIn.NightsUntil("2026-06-30"))
}

func TestNightsUntil_AcrossDSTBoundary(t *testing.T) {
	// US spring-forward 2026 is March 8; the 23-hour day must still count
	// as one full night.
	assert.Equal(t, 2, DateString("2026-03-07").NightsUntil("2026-03-09"))
}

func TestNightsUntil_FallBackDay(t *testing.T) {
	// US fall-back 2026 is November 1: the local day lasts 25 hours. Date
	// arithmetic must not see that extra hour, or a one-night stay counts
	// as two and the check-out date itself ends up blocked.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	checkIn := DateString("2026-11-01")
	assert.Equal(t, 1, checkIn.NightsUntil("2026-11-02"))
	assert.Equal(t, 2, checkIn.NightsUntil("2026-11-03"))
	assert.Equal(t, []DateString{"2026-11-01"}, checkIn.NightsOf(checkIn.NightsUntil("2026-11-02")))
	assert.Equal(t, DateString("2026-11-02"), checkIn.AddDays(1))
}

func TestNightsOf(t *testing.T) {
	nights := DateString("2026-07-01").NightsOf(3)
	require.Len(t, nights, 3)
	assert.Equal(t, DateString("2026-07-01"), nights[0])
	assert.Equal(t, DateString("2026-07-03"), nights[2])

	assert.Empty(t, DateString("2026-07-01").NightsOf(0))
}

func TestAddDays_MonthBoundary(t *testing.T) {
	assert.Equal(t, DateString("2026-08-01"), DateString("2026-07-31").AddDays(1))
	assert.Equal(t, DateString("2026-02-28"), DateString("2026-03-01").AddDays(-1))
}

func TestBeforeAfter(t *testing.T) {
	assert.True(t, DateString("2026-07-01").Before("2026-07-02"))
	assert.False(t, DateString("2026-07-02").Before("2026-07-02"))
	assert.True(t, DateString("2026-12-01").After("2026-07-02"))
}

func TestScan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2026, 7, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2026-07-01"), d)

	require.NoError(t, d.Scan("2026-07-02"))
	assert.Equal(t, DateString("2026-07-02"), d)

	require.NoError(t, d.Scan([]byte("2026-07-03")))
	assert.Equal(t, DateString("2026-07-03"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := DateString("2026-07-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-07-01", v)

	v, err = DateString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = DateString("garbage").Value()
	assert.Error(t, err)
}
