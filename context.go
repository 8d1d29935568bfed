package dictology

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/segmentio/encoding/json"
)

// ToInstanceContext converts dictionary form into T after a JSON round trip of m.
// The round trip detaches the result from values referenced by m, numbers are carried as json.Number.
// Cancellation is checked before encoding, between encoding and decoding, and after decoding.
func ToInstanceContext[T any](ctx context.Context, m map[string]interface{}, s *Settings) (T, error) {
	var result T
	if m == nil {
		return result, fmt.Errorf("%w: dictionary", ErrMissingArgument)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	s = settingsOrDefault(s)
	data, err := json.Marshal(m)
	if err != nil {
		return result, fmt.Errorf("failed to encode dictionary: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return result, err
	}
	var generic map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err = decoder.Decode(&generic); err != nil {
		return result, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	s.logger.Debug("dictionary round trip", "bytes", len(data))
	value, err := ToInstanceOf(generic, reflect.TypeOf((*T)(nil)).Elem(), s)
	if err != nil {
		return result, err
	}
	if err = ctx.Err(); err != nil {
		return result, err
	}
	if value != nil {
		result = value.(T)
	}
	return result, nil
}
