package domain

import "time"

// UTCDay truncates t to midnight UTC.
func UTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameUTCDay reports whether a and b fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	return UTCDay(a).Equal(UTCDay(b))
}
