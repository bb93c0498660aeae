package schedule

import (
	"time"
	// zone names must resolve on hosts without a system zoneinfo database
	_ "time/tzdata"
)

// DefaultTimezone is used when no zone is configured or the configured name is invalid.
const DefaultTimezone = "Asia/Kolkata"

// Weekdays lists the canonical day names, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether day is one of the canonical names (case-sensitive).
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DayIndex returns the Monday-based position of day, or len(Weekdays) if unknown.
func DayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return len(Weekdays)
}

// LoadZone resolves name, falling back to DefaultTimezone and finally UTC.
func LoadZone(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// WeekdayIn returns the weekday name of t as seen in loc.
func WeekdayIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()
}

// DayClock computes "today". Nothing is cached: every call reads the clock
// and resolves the zone again.
type DayClock struct {
	Timezone string
	Now      func() time.Time
}

func (c DayClock) Today() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return WeekdayIn(now(), LoadZone(c.Timezone))
}
