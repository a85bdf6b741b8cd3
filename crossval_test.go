package crossval_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/crossval"
	"github.com/drakos74/crossval/classifier/majority"
	"github.com/drakos74/crossval/split"
)

// oracle answers with the true label of every feature vector it has seen.
type oracle struct {
	lookup map[string]string
}

func (o *oracle) Train(x [][]float64, y []string) error {
	return nil
}

func (o *oracle) Predict(x [][]float64) ([]string, error) {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = o.lookup[fmt.Sprintf("%v", v)]
	}
	return out, nil
}

func perfect(x [][]float64, y []string) crossval.Constructor {
	lookup := make(map[string]string, len(x))
	for i, v := range x {
		lookup[fmt.Sprintf("%v", v)] = y[i]
	}
	return func(cfg crossval.Config) crossval.Classifier {
		return &oracle{lookup: lookup}
	}
}

func samples(n int) ([][]float64, []string) {
	x := make([][]float64, n)
	y := make([]string, n)
	for i := 0; i < n; i++ {
		x[i] = []float64{float64(i), float64(i % 3)}
		y[i] = fmt.Sprintf("label-%d", i%2)
	}
	return x, y
}

func TestLeaveOneOut_Perfect(t *testing.T) {
	x, y := samples(6)

	result, err := crossval.LeaveOneOut(perfect(x, y), x, y, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Predictions)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, []string{"label-0", "label-1"}, result.Labels)

	// only the diagonal is populated
	for i := 0; i < result.Confusion.Size(); i++ {
		for j := 0; j < result.Confusion.Size(); j++ {
			if i == j {
				assert.Equal(t, 3, result.Confusion.At(i, j))
			} else {
				assert.Equal(t, 0, result.Confusion.At(i, j))
			}
		}
	}
}

func TestLeavePOut_Predictions(t *testing.T) {
	x, y := samples(5)

	result, err := crossval.LeavePOut(perfect(x, y), x, y, nil, 2)
	require.NoError(t, err)

	assert.Equal(t, split.Count(5, 2)*2, result.Predictions)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, result.Predictions, result.Confusion.Total())
}

func TestKFoldWithSource_Perfect(t *testing.T) {
	x, y := samples(8)

	result, err := crossval.KFoldWithSource(perfect(x, y), x, y, nil, 4, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, 8, result.Predictions)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, result.Predictions, result.Confusion.Total())
}

func TestKFold_EmptyDataset(t *testing.T) {
	result, err := crossval.KFold(perfect(nil, nil), [][]float64{}, []string{}, nil, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Predictions)
	assert.True(t, math.IsNaN(result.Accuracy))
	assert.Equal(t, 0, result.Confusion.Total())
}

func TestShapeMismatch(t *testing.T) {
	x := make([][]float64, 5)
	y := make([]string, 4)

	var constructed int
	ctor := func(cfg crossval.Config) crossval.Classifier {
		constructed++
		return &oracle{}
	}

	result, err := crossval.LeaveOneOut(ctor, x, y, nil)
	assert.True(t, errors.Is(err, crossval.ErrShape))
	assert.Nil(t, result)
	assert.Equal(t, 0, constructed, "no classifier built on shape error")
}

func TestParameterError(t *testing.T) {
	x, y := samples(4)

	_, err := crossval.LeavePOut(perfect(x, y), x, y, nil, 0)
	assert.True(t, errors.Is(err, split.ErrParameter))
	_, err = crossval.LeavePOut(perfect(x, y), x, y, nil, 5)
	assert.True(t, errors.Is(err, split.ErrParameter))
}

type broken struct {
	trainErr   error
	predictErr error
	short      bool
}

func (b *broken) Train(x [][]float64, y []string) error {
	return b.trainErr
}

func (b *broken) Predict(x [][]float64) ([]string, error) {
	if b.predictErr != nil {
		return nil, b.predictErr
	}
	if b.short {
		return []string{}, nil
	}
	return make([]string, len(x)), nil
}

func TestCollaboratorFailure(t *testing.T) {

	tests := map[string]*broken{
		"train":   {trainErr: errors.New("bad model")},
		"predict": {predictErr: errors.New("bad prediction")},
		"short":   {short: true},
	}

	for name, cls := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := samples(4)
			result, err := crossval.LeaveOneOut(func(cfg crossval.Config) crossval.Classifier {
				return cls
			}, x, y, nil)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestUnknownPredictedLabel(t *testing.T) {
	x, y := samples(4)
	result, err := crossval.LeaveOneOut(func(cfg crossval.Config) crossval.Classifier {
		return &oracle{lookup: map[string]string{}}
	}, x, y, nil)
	assert.Error(t, err)
	assert.Nil(t, result)
}

// The worked example: four samples, two labels, a majority classifier.
// Every held-out sample leaves its own label in the minority, so every
// prediction lands on the opposite label.
func TestLeaveOneOut_Majority(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}, {4}}
	y := []string{"a", "a", "b", "b"}

	result, err := crossval.LeaveOneOut(majority.New(), x, y, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Predictions)
	assert.Equal(t, 0.0, result.Accuracy)
	assert.Equal(t, []string{"a", "b"}, result.Labels)

	assert.Equal(t, 0, result.Confusion.Count("a", "a"))
	assert.Equal(t, 2, result.Confusion.Count("a", "b"))
	assert.Equal(t, 2, result.Confusion.Count("b", "a"))
	assert.Equal(t, 0, result.Confusion.Count("b", "b"))
}

// row i sums to the number of test occurrences of labels[i]
func TestConfusionRowSums(t *testing.T) {
	x, y := samples(7)

	result, err := crossval.LeaveOneOut(majority.New(), x, y, nil)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, l := range y {
		counts[l]++
	}
	for i, l := range result.Labels {
		var sum int
		for _, c := range result.Confusion.Row(i) {
			sum += c
		}
		assert.Equal(t, counts[l], sum, "row sum for %s", l)
	}
	assert.Equal(t, result.Predictions, result.Confusion.Total())
}
