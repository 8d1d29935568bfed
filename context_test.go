package dictology

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dictology/types"
)

func TestToInstanceContext(t *testing.T) {
	type event struct {
		Name    string
		Count   int64
		Ratio   float64
		Created time.Time
		Meta    map[string]interface{}
		Values  []int
	}
	source := event{
		Name:    "login",
		Count:   630823790450060001,
		Ratio:   0.25,
		Created: time.Date(2000, 1, 2, 3, 4, 5, 6_000_000, time.UTC),
		Meta:    map[string]interface{}{"region": "eu"},
		Values:  []int{4, 5},
	}
	dictionary, err := ToDictionary(source, nil)
	require.NoError(t, err)

	actual, err := ToInstanceContext[event](context.Background(), dictionary, nil)
	require.NoError(t, err)
	assert.Equal(t, source, actual)
	assert.Equal(t, types.TicksOf(source.Created), types.TicksOf(actual.Created))

	dictionary["Meta"].(map[string]interface{})["region"] = "us"
	assert.Equal(t, "eu", actual.Meta["region"])
}

func TestToInstanceContext_Errors(t *testing.T) {
	_, err := ToInstanceContext[Scenario](context.Background(), nil, nil)
	assert.True(t, errors.Is(err, ErrMissingArgument))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ToInstanceContext[Scenario](ctx, map[string]interface{}{"A": "x"}, nil)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = ToInstanceContext[Scenario](context.Background(), map[string]interface{}{"B": "many"}, nil)
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "B", convErr.Key)

	_, err = ToInstanceContext[Scenario](context.Background(), map[string]interface{}{"A": make(chan int)}, nil)
	assert.Error(t, err)
}
