package dictology

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/types"
)

// Temporal and version map keys
const (
	KeyYear         = "Year"
	KeyMonth        = "Month"
	KeyDay          = "Day"
	KeyHour         = "Hour"
	KeyMinute       = "Minute"
	KeySecond       = "Second"
	KeyMillisecond  = "Millisecond"
	KeyTicks        = "Ticks"
	KeyKind         = "Kind"
	KeyOffset       = "Offset"
	KeyDays         = "Days"
	KeyHours        = "Hours"
	KeyMinutes      = "Minutes"
	KeySeconds      = "Seconds"
	KeyMilliseconds = "Milliseconds"
	KeyMajor        = "Major"
	KeyMinor        = "Minor"
	KeyBuild        = "Build"
	KeyRevision     = "Revision"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	offsetTimeType = reflect.TypeOf(types.OffsetTime{})
	durationType   = reflect.TypeOf(time.Duration(0))
	calendarKeys   = []string{KeyYear, KeyMonth, KeyDay, KeyHour, KeyMinute, KeySecond, KeyMillisecond}
	durationKeys   = []string{KeyDays, KeyHours, KeyMinutes, KeySeconds, KeyMilliseconds}
)

var (
	// TimeConverter converts time.Time to and from calendar fields, raw ticks and calendar kind
	TimeConverter = NewMemberConverter[time.Time](encodeTime, decodeTime)
	// OffsetTimeConverter converts types.OffsetTime to and from calendar fields, raw ticks and offset
	OffsetTimeConverter = NewMemberConverter[types.OffsetTime](encodeOffsetTime, decodeOffsetTime)
	// DurationConverter converts time.Duration to and from duration components and raw ticks
	DurationConverter = NewMemberConverter[time.Duration](encodeDuration, decodeDuration)
)

func encodeTime(value time.Time, s *Settings) (map[string]interface{}, error) {
	result := s.calendarFields(value)
	kind := types.KindOf(value)
	if s.enumHandling == EnumAsValue {
		result[KeyKind] = int(kind)
	} else {
		result[KeyKind] = kind.String()
	}
	return result, nil
}

func decodeTime(m map[string]interface{}, s *Settings) (time.Time, error) {
	kindValue, ok := m[KeyKind]
	if !ok || kindValue == nil {
		return time.Time{}, missingKey(KeyKind, m, timeType)
	}
	var kind types.DateKind
	if err := s.coercer.Convert(kindValue, &kind); err != nil {
		return time.Time{}, conv.WithKey(err, KeyKind)
	}
	if kind < types.Unspecified || kind > types.Local {
		return time.Time{}, conv.NewError(KeyKind, kindValue, timeType, fmt.Errorf("invalid date kind"))
	}
	ticks, ok, err := s.int64Field(m, KeyTicks)
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return types.FromTicks(ticks, kind.Location()), nil
	}
	return s.calendarTime(m, timeType, kind.Location())
}

func encodeOffsetTime(value types.OffsetTime, s *Settings) (map[string]interface{}, error) {
	result := s.calendarFields(value.Time)
	offset, err := encodeDuration(value.Offset(), s)
	if err != nil {
		return nil, err
	}
	result[KeyOffset] = offset
	return result, nil
}

func decodeOffsetTime(m map[string]interface{}, s *Settings) (types.OffsetTime, error) {
	offsetValue, ok := m[KeyOffset]
	if !ok || offsetValue == nil {
		return types.OffsetTime{}, missingKey(KeyOffset, m, offsetTimeType)
	}
	decoded, err := s.DecodeValue(offsetValue, durationType)
	if err != nil {
		return types.OffsetTime{}, conv.WithKey(err, KeyOffset)
	}
	offset := decoded.Interface().(time.Duration)
	ticks, ok, err := s.int64Field(m, KeyTicks)
	if err != nil {
		return types.OffsetTime{}, err
	}
	if ok {
		return types.OffsetTimeFromTicks(ticks, offset), nil
	}
	ts, err := s.calendarTime(m, offsetTimeType, time.FixedZone("", int(offset/time.Second)))
	if err != nil {
		return types.OffsetTime{}, err
	}
	return types.OffsetTime{Time: ts}, nil
}

func encodeDuration(value time.Duration, s *Settings) (map[string]interface{}, error) {
	ticks := types.DurationTicks(value)
	if s.dateHandling == DateMinimal {
		return map[string]interface{}{KeyTicks: ticks}, nil
	}
	return map[string]interface{}{
		KeyDays:         int(value / (24 * time.Hour)),
		KeyHours:        int(value / time.Hour % 24),
		KeyMinutes:      int(value / time.Minute % 60),
		KeySeconds:      int(value / time.Second % 60),
		KeyMilliseconds: int(value / time.Millisecond % 1000),
		KeyTicks:        ticks,
	}, nil
}

func decodeDuration(m map[string]interface{}, s *Settings) (time.Duration, error) {
	ticks, ok, err := s.int64Field(m, KeyTicks)
	if err != nil {
		return 0, err
	}
	if ok {
		return types.DurationFromTicks(ticks), nil
	}
	fields, err := s.intFields(m, durationType, durationKeys)
	if err != nil {
		return 0, err
	}
	return time.Duration(fields[0])*24*time.Hour +
		time.Duration(fields[1])*time.Hour +
		time.Duration(fields[2])*time.Minute +
		time.Duration(fields[3])*time.Second +
		time.Duration(fields[4])*time.Millisecond, nil
}

func (s *Settings) calendarFields(value time.Time) map[string]interface{} {
	ticks := types.TicksOf(value)
	if s.dateHandling == DateMinimal {
		return map[string]interface{}{KeyTicks: ticks}
	}
	return map[string]interface{}{
		KeyYear:        value.Year(),
		KeyMonth:       int(value.Month()),
		KeyDay:         value.Day(),
		KeyHour:        value.Hour(),
		KeyMinute:      value.Minute(),
		KeySecond:      value.Second(),
		KeyMillisecond: value.Nanosecond() / int(time.Millisecond),
		KeyTicks:       ticks,
	}
}

func (s *Settings) calendarTime(m map[string]interface{}, target reflect.Type, loc *time.Location) (time.Time, error) {
	fields, err := s.intFields(m, target, calendarKeys)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], fields[6]*int(time.Millisecond), loc), nil
}

func (s *Settings) int64Field(m map[string]interface{}, key string) (int64, bool, error) {
	value, ok := m[key]
	if !ok || value == nil {
		return 0, false, nil
	}
	var result int64
	if err := s.coercer.Convert(value, &result); err != nil {
		return 0, false, conv.WithKey(err, key)
	}
	return result, true, nil
}

func (s *Settings) intFields(m map[string]interface{}, target reflect.Type, keys []string) ([]int, error) {
	result := make([]int, len(keys))
	for i, key := range keys {
		value, ok := m[key]
		if !ok || value == nil {
			return nil, missingKey(key, m, target)
		}
		if err := s.coercer.Convert(value, &result[i]); err != nil {
			return nil, conv.WithKey(err, key)
		}
	}
	return result, nil
}

func missingKey(key string, m map[string]interface{}, target reflect.Type) error {
	return conv.NewError(key, m, target, fmt.Errorf("missing %s", key))
}
