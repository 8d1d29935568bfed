package conv

import (
	"math/big"
	"net/url"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/dictology/types"
)

var typeRegistry sync.Map // map[string]reflect.Type

// RegisterType registers type under name, type String() is registered too
func RegisterType(name string, t reflect.Type) {
	typeRegistry.Store(name, t)
	typeRegistry.Store(t.String(), t)
}

// LookupType returns type registered under name
func LookupType(name string) (reflect.Type, bool) {
	if v, ok := typeRegistry.Load(name); ok {
		return v.(reflect.Type), true
	}
	return nil, false
}

func init() {
	for _, value := range []interface{}{
		false, 0, int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0), "", []byte{}, map[string]interface{}{}, []interface{}{},
		time.Time{}, time.Duration(0), types.OffsetTime{}, types.Version{}, types.DateKind(0),
		uuid.UUID{}, url.URL{}, big.Int{}, big.Float{},
	} {
		t := reflect.TypeOf(value)
		RegisterType(t.String(), t)
	}
}
