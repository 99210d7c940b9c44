package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	val, ok, err := Int(map[string]any{"num_results": float64(5)}, "num_results")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, val)

	val, ok, err = Int(map[string]any{"num_results": 7}, "num_results")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, val)

	val, ok, err = Int(map[string]any{"num_results": json.Number("3")}, "num_results")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, val)

	_, ok, err = Int(map[string]any{}, "num_results")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIntRejectsNonIntegers(t *testing.T) {
	_, _, err := Int(map[string]any{"num_results": 5.7}, "num_results")
	require.EqualError(t, err, "num_results must be an integer")

	_, _, err = Int(map[string]any{"num_results": json.Number("5.7")}, "num_results")
	require.EqualError(t, err, "num_results must be an integer")

	_, _, err = Int(map[string]any{"num_results": "5"}, "num_results")
	require.EqualError(t, err, "num_results must be an integer")
}
