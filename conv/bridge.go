package conv

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viant/dictology/classify"
	"github.com/viant/dictology/types"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// bridge converts between well known special types and their text or byte forms
func (c *Coercer) bridge(src reflect.Value, srcCode classify.Code, target reflect.Type, dstCode classify.Code) (reflect.Value, bool, error) {
	switch {
	case srcCode == classify.Time && dstCode == classify.OffsetTime:
		return reflect.ValueOf(types.NewOffsetTime(src.Interface().(time.Time))), true, nil
	case srcCode == classify.OffsetTime && dstCode == classify.Time:
		return reflect.ValueOf(src.Interface().(types.OffsetTime).Time), true, nil
	case srcCode == classify.Bytes && dstCode == classify.GUID:
		id, err := uuid.FromBytes(src.Bytes())
		if err != nil {
			return reflect.Value{}, false, err
		}
		return reflect.ValueOf(id), true, nil
	case srcCode == classify.GUID && dstCode == classify.Bytes:
		id := src.Interface().(uuid.UUID)
		return bytesValue(id[:], target), true, nil
	case srcCode == classify.Bytes && dstCode == classify.Bytes:
		return bytesValue(src.Bytes(), target), true, nil
	case srcCode == classify.String:
		return c.fromText(src.String(), target, dstCode)
	case dstCode == classify.String:
		return c.toText(src, srcCode, target)
	}
	return reflect.Value{}, false, nil
}

func (c *Coercer) fromText(text string, target reflect.Type, dstCode classify.Code) (reflect.Value, bool, error) {
	var result interface{}
	var err error
	switch dstCode {
	case classify.GUID:
		result, err = types.ParseAnyGUID(text)
	case classify.URI:
		var u *url.URL
		if u, err = url.Parse(strings.TrimSpace(text)); err == nil {
			result = *u
		}
	case classify.Duration:
		result, err = types.ParseDuration(text)
	case classify.Version:
		result, err = types.ParseVersion(text)
	case classify.Bytes:
		var data []byte
		if data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(text)); err == nil {
			return bytesValue(data, target), true, nil
		}
	case classify.TypeRef:
		rType, ok := LookupType(strings.TrimSpace(text))
		if !ok {
			return reflect.Value{}, false, fmt.Errorf("unknown type: %q", text)
		}
		holder := reflect.New(target).Elem()
		holder.Set(reflect.ValueOf(rType))
		return holder, true, nil
	case classify.Time, classify.OffsetTime:
		var ts time.Time
		if ts, err = parseTime(text); err == nil {
			result = ts
			if dstCode == classify.OffsetTime {
				result = types.NewOffsetTime(ts)
			}
		}
	default:
		return reflect.Value{}, false, nil
	}
	if err != nil {
		return reflect.Value{}, false, err
	}
	return reflect.ValueOf(result), true, nil
}

func (c *Coercer) toText(src reflect.Value, srcCode classify.Code, target reflect.Type) (reflect.Value, bool, error) {
	var text string
	switch srcCode {
	case classify.GUID:
		text = src.Interface().(uuid.UUID).String()
	case classify.URI:
		u := src.Interface().(url.URL)
		text = u.String()
	case classify.Duration:
		text = time.Duration(src.Int()).String()
	case classify.Version:
		text = src.Interface().(types.Version).String()
	case classify.Bytes:
		text = base64.StdEncoding.EncodeToString(src.Bytes())
	case classify.Time:
		text = src.Interface().(time.Time).Format(time.RFC3339Nano)
	case classify.OffsetTime:
		text = src.Interface().(types.OffsetTime).Format(time.RFC3339Nano)
	default:
		return reflect.Value{}, false, nil
	}
	return textValue(text, target), true, nil
}

func parseTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	var err error
	for _, layout := range timeLayouts {
		var ts time.Time
		if ts, err = time.Parse(layout, text); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time string '%s': %w", text, err)
}

func bytesValue(data []byte, target reflect.Type) reflect.Value {
	result := reflect.New(target).Elem()
	result.SetBytes(append([]byte(nil), data...))
	return result
}
