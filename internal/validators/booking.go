package validators

import (
	"strings"
	"time"
)

// ParseBookingTime accepts ISO-8601 date-times from request payloads. The
// offset in the payload is honored; the core works in absolute instants.
func ParseBookingTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, strings.TrimSpace(s))
}

// IsSeatInRange checks a seat against the configured range 1..seatCount.
func IsSeatInRange(seat, seatCount int) bool {
	return seat >= 1 && seat <= seatCount
}

// IsMobileValid accepts 7-15 digits with an optional leading +.
func IsMobileValid(mobile string) bool {
	m := strings.TrimSpace(mobile)
	m = strings.TrimPrefix(m, "+")
	if len(m) < 7 || len(m) > 15 {
		return false
	}
	for _, r := range m {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
