package utils

import (
	"time"
)

var marketZones = map[string]string{
	"JP": "Asia/Tokyo",
	"US": "America/New_York",
}

// MarketLocation returns the exchange time zone for a market flag, UTC when unknown.
func MarketLocation(market string) *time.Location {
	name, ok := marketZones[market]
	if !ok {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PrettyDate formats a timestamp the way news dates are shown in the report.
func PrettyDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04")
}

// WithinDays reports whether t falls inside the last n days measured from now.
func WithinDays(t, now time.Time, n int) bool {
	return !t.Before(now.Add(-time.Duration(n*24) * time.Hour))
}
