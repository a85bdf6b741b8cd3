package majority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier(t *testing.T) {

	type test struct {
		labels  []string
		predict string
	}

	tests := map[string]test{
		"clear-majority": {labels: []string{"a", "b", "b"}, predict: "b"},
		"single":         {labels: []string{"a"}, predict: "a"},
		"tie-first-wins": {labels: []string{"a", "b"}, predict: "a"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cls := New()(nil)
			x := make([][]float64, len(tt.labels))
			require.NoError(t, cls.Train(x, tt.labels))

			out, err := cls.Predict([][]float64{{1}, {2}})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.predict, tt.predict}, out)
		})
	}
}

func TestClassifier_Untrained(t *testing.T) {
	cls := New()(nil)
	_, err := cls.Predict([][]float64{{1}})
	assert.Error(t, err)

	// an empty training set trains nothing
	require.NoError(t, cls.Train(nil, nil))
	_, err = cls.Predict([][]float64{{1}})
	assert.Error(t, err)
}
