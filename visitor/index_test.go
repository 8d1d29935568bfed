package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		expectError bool
	}{
		{description: "index map", value: map[string]interface{}{"2": "c", "0": "a", "1": "b"}, expect: []interface{}{"a", "b", "c"}},
		{description: "typed index map", value: map[string]int{"1": 20, "0": 10}, expect: []interface{}{10, 20}},
		{description: "slice", value: []interface{}{1, 2}, expect: []interface{}{1, 2}},
		{description: "empty map", value: map[string]interface{}{}, expect: []interface{}{}},
		{description: "gap", value: map[string]interface{}{"0": 1, "2": 3}, expectError: true},
		{description: "non canonical", value: map[string]interface{}{"00": 1}, expectError: true},
		{description: "non numeric", value: map[string]interface{}{"a": 1}, expectError: true},
		{description: "scalar", value: 1, expectError: true},
	}
	for _, testCase := range testCases {
		visit, size, err := IndexVisitorOf(testCase.value)
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, len(testCase.expect), size, testCase.description)
		actual := []interface{}{}
		err = visit(func(index int, element interface{}) (bool, error) {
			assert.Equal(t, len(actual), index, testCase.description)
			actual = append(actual, element)
			return true, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
