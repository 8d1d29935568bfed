package conv

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/dictology/classify"
)

func (c *Coercer) convertPrimitive(src reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.String:
		text, err := c.toString(src)
		if err != nil {
			return reflect.Value{}, err
		}
		result.SetString(text)
	case reflect.Bool:
		b, err := c.toBool(src)
		if err != nil {
			return reflect.Value{}, err
		}
		result.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if src.Kind() == reflect.String && classify.IsEnum(target) {
			return ParseEnum(target, src.String())
		}
		i, err := c.toInt(src)
		if err != nil {
			return reflect.Value{}, err
		}
		if result.OverflowInt(i) {
			return reflect.Value{}, fmt.Errorf("value %d overflows %v", i, target)
		}
		result.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if src.Kind() == reflect.String && classify.IsEnum(target) {
			return ParseEnum(target, src.String())
		}
		u, err := c.toUint(src)
		if err != nil {
			return reflect.Value{}, err
		}
		if result.OverflowUint(u) {
			return reflect.Value{}, fmt.Errorf("value %d overflows %v", u, target)
		}
		result.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := c.toFloat(src)
		if err != nil {
			return reflect.Value{}, err
		}
		if result.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("value %v overflows %v", f, target)
		}
		result.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("cannot convert %v to %v", src.Type(), target)
	}
	return result, nil
}

func (c *Coercer) toString(srcValue reflect.Value) (string, error) {
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if name, ok := enumName(srcValue); ok {
			return name, nil
		}
		return strconv.FormatInt(srcValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if name, ok := enumName(srcValue); ok {
			return name, nil
		}
		return strconv.FormatUint(srcValue.Uint(), 10), nil
	case reflect.Float32:
		return c.culture.FormatFloat(srcValue.Float(), 32), nil
	case reflect.Float64:
		return c.culture.FormatFloat(srcValue.Float(), 64), nil
	}
	return "", fmt.Errorf("cannot convert %v to string", srcValue.Type())
}

func enumName(srcValue reflect.Value) (string, bool) {
	if !classify.IsEnum(srcValue.Type()) {
		return "", false
	}
	return EnumName(srcValue)
}

func (c *Coercer) toBool(srcValue reflect.Value) (bool, error) {
	switch srcValue.Kind() {
	case reflect.Bool:
		return srcValue.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return srcValue.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float() != 0, nil
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		result, err := strconv.ParseBool(text)
		if err != nil {
			// numeric text is accepted as truthiness
			if f, fErr := c.culture.ParseFloat(text, 64); fErr == nil {
				return f != 0, nil
			}
			return false, err
		}
		return result, nil
	}
	return false, fmt.Errorf("cannot convert %v to bool", srcValue.Type())
}

func (c *Coercer) toInt(srcValue reflect.Value) (int64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := srcValue.Uint()
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", v)
		}
		return int64(v), nil
	case reflect.Float32, reflect.Float64:
		return floatToInt(srcValue.Float())
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		result, err := c.culture.ParseInt(srcValue.String(), 64)
		if err == nil {
			return result, nil
		}
		f, fErr := c.culture.ParseFloat(srcValue.String(), 64)
		if fErr != nil || f != math.Trunc(f) {
			return 0, err
		}
		return floatToInt(f)
	}
	return 0, fmt.Errorf("cannot convert %v to int", srcValue.Type())
}

func (c *Coercer) toUint(srcValue reflect.Value) (uint64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return 0, fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		return uint64(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return srcValue.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return floatToUint(srcValue.Float())
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		result, err := c.culture.ParseUint(srcValue.String(), 64)
		if err == nil {
			return result, nil
		}
		f, fErr := c.culture.ParseFloat(srcValue.String(), 64)
		if fErr != nil || f != math.Trunc(f) {
			return 0, err
		}
		return floatToUint(f)
	}
	return 0, fmt.Errorf("cannot convert %v to uint", srcValue.Type())
}

func (c *Coercer) toFloat(srcValue reflect.Value) (float64, error) {
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(srcValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float(), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		return c.culture.ParseFloat(srcValue.String(), 64)
	}
	return 0, fmt.Errorf("cannot convert %v to float", srcValue.Type())
}

// floatToInt rounds half to even
func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to int", f)
	}
	f = math.RoundToEven(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}
	return int64(f), nil
}

func floatToUint(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to uint", f)
	}
	f = math.RoundToEven(f)
	if f < 0 {
		return 0, fmt.Errorf("cannot convert negative value %v to unsigned int", f)
	}
	if f >= math.MaxUint64 {
		return 0, fmt.Errorf("value %v overflows uint64", f)
	}
	return uint64(f), nil
}
