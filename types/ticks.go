package types

import "time"

const (
	// TicksPerSecond number of 100ns ticks in a second
	TicksPerSecond = int64(10_000_000)
	// TicksPerMillisecond number of 100ns ticks in a millisecond
	TicksPerMillisecond = int64(10_000)
	// unixEpochTicks number of ticks between 0001-01-01 and 1970-01-01
	unixEpochTicks = int64(621_355_968_000_000_000)
)

// TicksOf returns number of 100ns ticks elapsed since 0001-01-01T00:00:00 of the t wall clock
func TicksOf(t time.Time) int64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return wall.Unix()*TicksPerSecond + int64(wall.Nanosecond()/100) + unixEpochTicks
}

// FromTicks returns time with wall clock defined by ticks in supplied location
func FromTicks(ticks int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	rel := ticks - unixEpochTicks
	sec := rel / TicksPerSecond
	rem := rel % TicksPerSecond
	if rem < 0 {
		sec--
		rem += TicksPerSecond
	}
	wall := time.Unix(sec, rem*100).UTC()
	return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)
}

// DurationTicks returns d expressed in 100ns ticks
func DurationTicks(d time.Duration) int64 {
	return int64(d / 100)
}

// DurationFromTicks returns duration for 100ns ticks
func DurationFromTicks(ticks int64) time.Duration {
	return time.Duration(ticks) * 100
}
