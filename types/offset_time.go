package types

import "time"

// OffsetTime represents an instant with a fixed UTC offset
type OffsetTime struct {
	time.Time
}

// Offset returns UTC offset
func (o OffsetTime) Offset() time.Duration {
	_, offset := o.Zone()
	return time.Duration(offset) * time.Second
}

// Equal reports whether o and other represent the same instant and offset
func (o OffsetTime) Equal(other OffsetTime) bool {
	return o.Time.Equal(other.Time) && o.Offset() == other.Offset()
}

// NewOffsetTime creates an offset instant keeping t wall clock and offset
func NewOffsetTime(t time.Time) OffsetTime {
	_, offset := t.Zone()
	return OffsetTime{Time: t.In(time.FixedZone("", offset))}
}

// OffsetTimeFromTicks creates an offset instant from wall clock ticks and offset
func OffsetTimeFromTicks(ticks int64, offset time.Duration) OffsetTime {
	return OffsetTime{Time: FromTicks(ticks, time.FixedZone("", int(offset/time.Second)))}
}
