package conv

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/viant/dictology/classify"
)

// bridgeArbitrary converts numeric leaves to and from arbitrary precision big.Int and big.Float
func (c *Coercer) bridgeArbitrary(src reflect.Value, srcCode classify.Code, target reflect.Type, dstCode classify.Code) (reflect.Value, bool, error) {
	switch {
	case dstCode == classify.BigInt:
		b, ok, err := c.toBigInt(src, srcCode)
		if !ok || err != nil {
			return reflect.Value{}, ok, err
		}
		return reflect.ValueOf(b).Elem(), true, nil
	case dstCode == classify.Decimal:
		f, ok, err := c.toBigFloat(src, srcCode)
		if !ok || err != nil {
			return reflect.Value{}, ok, err
		}
		return reflect.ValueOf(f).Elem(), true, nil
	case srcCode == classify.BigInt:
		return fromBigInt(bigIntOf(src), target, dstCode)
	case srcCode == classify.Decimal:
		return fromBigFloat(bigFloatOf(src), target, dstCode)
	}
	return reflect.Value{}, false, nil
}

func (c *Coercer) toBigInt(src reflect.Value, srcCode classify.Code) (*big.Int, bool, error) {
	switch {
	case srcCode == classify.BigInt:
		return new(big.Int).Set(bigIntOf(src)), true, nil
	case srcCode == classify.Decimal:
		result, _ := bigFloatOf(src).Int(nil)
		return result, true, nil
	case srcCode == classify.Bytes:
		return new(big.Int).SetBytes(src.Bytes()), true, nil
	case srcCode == classify.String:
		result, ok := new(big.Int).SetString(c.culture.normalize(src.String()), 10)
		if !ok {
			return nil, false, fmt.Errorf("invalid integer: %q", src.String())
		}
		return result, true, nil
	case classify.IsFloat(srcCode):
		f := src.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false, fmt.Errorf("cannot convert %v to big.Int", f)
		}
		result, _ := big.NewFloat(f).Int(nil)
		return result, true, nil
	case classify.IsInteger(srcCode):
		switch src.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return new(big.Int).SetUint64(src.Uint()), true, nil
		}
		return big.NewInt(src.Int()), true, nil
	}
	return nil, false, nil
}

func (c *Coercer) toBigFloat(src reflect.Value, srcCode classify.Code) (*big.Float, bool, error) {
	switch {
	case srcCode == classify.Decimal:
		return new(big.Float).Copy(bigFloatOf(src)), true, nil
	case srcCode == classify.BigInt:
		return new(big.Float).SetInt(bigIntOf(src)), true, nil
	case srcCode == classify.String:
		result, ok := new(big.Float).SetString(c.culture.normalize(src.String()))
		if !ok {
			return nil, false, fmt.Errorf("invalid decimal: %q", src.String())
		}
		return result, true, nil
	case classify.IsFloat(srcCode):
		f := src.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false, fmt.Errorf("cannot convert %v to big.Float", f)
		}
		return big.NewFloat(f), true, nil
	case classify.IsInteger(srcCode):
		switch src.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return new(big.Float).SetUint64(src.Uint()), true, nil
		}
		return new(big.Float).SetInt64(src.Int()), true, nil
	}
	return nil, false, nil
}

func fromBigInt(b *big.Int, target reflect.Type, dstCode classify.Code) (reflect.Value, bool, error) {
	result := reflect.New(target).Elem()
	switch {
	case dstCode == classify.Float32 || dstCode == classify.Float64:
		f, _ := new(big.Float).SetInt(b).Float64()
		if result.OverflowFloat(f) {
			return reflect.Value{}, false, fmt.Errorf("value %v overflows %v", b, target)
		}
		result.SetFloat(f)
	case dstCode == classify.Bool:
		result.SetBool(b.Sign() != 0)
	case dstCode == classify.String:
		result.SetString(b.String())
	case classify.IsInteger(dstCode):
		switch target.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if !b.IsUint64() || result.OverflowUint(b.Uint64()) {
				return reflect.Value{}, false, fmt.Errorf("value %v overflows %v", b, target)
			}
			result.SetUint(b.Uint64())
		default:
			if !b.IsInt64() || result.OverflowInt(b.Int64()) {
				return reflect.Value{}, false, fmt.Errorf("value %v overflows %v", b, target)
			}
			result.SetInt(b.Int64())
		}
	default:
		return reflect.Value{}, false, nil
	}
	return result, true, nil
}

func fromBigFloat(f *big.Float, target reflect.Type, dstCode classify.Code) (reflect.Value, bool, error) {
	switch {
	case dstCode == classify.Float32 || dstCode == classify.Float64:
		result := reflect.New(target).Elem()
		value, _ := f.Float64()
		if result.OverflowFloat(value) {
			return reflect.Value{}, false, fmt.Errorf("value %v overflows %v", f, target)
		}
		result.SetFloat(value)
		return result, true, nil
	case dstCode == classify.String:
		return textValue(f.Text('f', -1), target), true, nil
	case dstCode == classify.Bool:
		result := reflect.New(target).Elem()
		result.SetBool(f.Sign() != 0)
		return result, true, nil
	}
	b, _ := f.Int(nil)
	return fromBigInt(b, target, dstCode)
}

func bigIntOf(src reflect.Value) *big.Int {
	if src.CanAddr() {
		return src.Addr().Interface().(*big.Int)
	}
	holder := reflect.New(src.Type())
	holder.Elem().Set(src)
	return holder.Interface().(*big.Int)
}

func bigFloatOf(src reflect.Value) *big.Float {
	if src.CanAddr() {
		return src.Addr().Interface().(*big.Float)
	}
	holder := reflect.New(src.Type())
	holder.Elem().Set(src)
	return holder.Interface().(*big.Float)
}
