package civiltime

import "time"

// IST is a fixed UTC+5:30 offset. The salon's calendar is always computed
// against this zone, never against the host's configured timezone, so the
// same instant buckets into the same day no matter where the process runs.
var IST = time.FixedZone("IST", 5*3600+30*60)

func Now() time.Time {
	return time.Now().In(IST)
}

func In(t time.Time) time.Time {
	return t.In(IST)
}

func StartOfDay(t time.Time) time.Time {
	ct := t.In(IST)
	return time.Date(ct.Year(), ct.Month(), ct.Day(), 0, 0, 0, 0, IST)
}

// EndOfDay is inclusive: the last representable instant before the next day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func StartOfMonth(t time.Time) time.Time {
	ct := t.In(IST)
	return time.Date(ct.Year(), ct.Month(), 1, 0, 0, 0, 0, IST)
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

func StartOfYear(t time.Time) time.Time {
	ct := t.In(IST)
	return time.Date(ct.Year(), time.January, 1, 0, 0, 0, 0, IST)
}

func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}
