package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapVisitorOf(t *testing.T) {
	var aMap = map[string]bool{
		"abc": true,
		"def": true}

	{
		visit, err := MapVisitorOf(aMap)
		require.NoError(t, err)
		cloned := make(map[string]bool)
		err = visit(func(key any, element any) (bool, error) {
			cloned[key.(string)] = element.(bool)
			return true, nil
		})
		assert.NoError(t, err)
		assert.EqualValues(t, aMap, cloned)
	}
	{
		fMap := map[float64]float64{
			1: 1,
		}
		visit, err := MapVisitorOf(&fMap)
		require.NoError(t, err)
		cloned := make(map[float64]float64)
		_ = visit(func(key any, element any) (bool, error) {
			cloned[key.(float64)] = element.(float64)
			return true, nil
		})
		assert.EqualValues(t, fMap, cloned)
	}
	{
		visit, err := MapVisitorOf(map[string]interface{}{"a": 1, "b": 2})
		require.NoError(t, err)
		boom := errors.New("boom")
		err = visit(func(key any, element any) (bool, error) {
			return false, boom
		})
		assert.Equal(t, boom, err)
	}
	_, err := MapVisitorOf([]int{1})
	assert.Error(t, err)
}
