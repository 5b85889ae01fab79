// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC; the business timezone is only used to
// compute date boundaries (report date filters, display formatting).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the portal's business timezone.
const DefaultTimezone = "America/Sao_Paulo"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, auto-initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDay returns the UTC instant at which the given day begins in the
// business timezone.
func StartOfDay(t time.Time) time.Time {
	local := t.In(Location())
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
	return start.UTC()
}

// EndOfDay returns the UTC instant just before the given day ends in the
// business timezone. Used to make date-range upper bounds inclusive of the
// entire end day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// FormatDate renders a timestamp as DD/MM/YYYY in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format("02/01/2006")
}

// FormatDateTime renders a timestamp as DD/MM/YYYY HH:MM in the business
// timezone.
func FormatDateTime(t time.Time) string {
	return t.In(Location()).Format("02/01/2006 15:04")
}
