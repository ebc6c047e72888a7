package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayCrossesUTCMidnight(t *testing.T) {
	// 19:00 UTC is already the next civil day in IST (00:30).
	instant := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)

	start := StartOfDay(instant)

	assert.True(t, start.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, IST)))
	assert.True(t, start.Equal(time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)))
}

func TestEndOfDayIsInclusive(t *testing.T) {
	instant := time.Date(2024, 6, 1, 10, 0, 0, 0, IST)

	end := EndOfDay(instant)
	nextStart := StartOfDay(instant.AddDate(0, 0, 1))

	assert.True(t, end.Before(nextStart))
	assert.True(t, end.Add(time.Nanosecond).Equal(nextStart))
}

func TestMonthBoundariesLeapYear(t *testing.T) {
	instant := time.Date(2024, 2, 15, 12, 0, 0, 0, IST)

	assert.True(t, StartOfMonth(instant).Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, IST)))
	assert.True(t, EndOfMonth(instant).
		Add(time.Nanosecond).
		Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, IST)))
}

func TestYearBoundaries(t *testing.T) {
	instant := time.Date(2024, 7, 4, 3, 0, 0, 0, IST)

	assert.True(t, StartOfYear(instant).Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, IST)))
	assert.True(t, EndOfYear(instant).
		Add(time.Nanosecond).
		Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, IST)))
}

func TestBoundariesIndependentOfInputZone(t *testing.T) {
	// The same instant expressed in different zones buckets identically.
	utc := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	pacific := utc.In(time.FixedZone("X", -7*3600))

	assert.True(t, StartOfDay(utc).Equal(StartOfDay(pacific)))
	assert.True(t, EndOfMonth(utc).Equal(EndOfMonth(pacific)))
	assert.True(t, StartOfYear(utc).Equal(StartOfYear(pacific)))
}

func TestNowIsInIST(t *testing.T) {
	_, offset := Now().Zone()
	assert.Equal(t, 5*3600+30*60, offset)
}
