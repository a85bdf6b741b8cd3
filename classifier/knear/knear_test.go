package knear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/crossval"
)

func TestClassifier(t *testing.T) {
	x := [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{10, 10}, {10, 11}, {11, 10},
	}
	y := []string{"near", "near", "near", "far", "far", "far"}

	cls := New()(crossval.Config{Neighbours: 1})
	require.NoError(t, cls.Train(x, y))

	out, err := cls.Predict([][]float64{{0.2, 0.2}, {10.5, 10.5}})
	require.NoError(t, err)
	require.Equal(t, 2, len(out))
	assert.Equal(t, "near", out[0])
	assert.Equal(t, "far", out[1])
}

func TestClassifier_Untrained(t *testing.T) {
	cls := New()(nil)
	_, err := cls.Predict([][]float64{{1, 2}})
	assert.Error(t, err)
	assert.Error(t, cls.Train(nil, nil))
}
