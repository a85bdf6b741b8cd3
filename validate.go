package crossval

import (
	"errors"
	"fmt"

	"github.com/drakos74/crossval/confusion"
	"github.com/drakos74/crossval/split"
)

// ErrShape marks a features/labels length mismatch.
var ErrShape = errors.New("shape mismatch")

func check(x [][]float64, y []string) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d features vs %d labels", ErrShape, len(x), len(y))
	}
	return nil
}

// project materializes the samples at the given indices, preserving order.
func project(x [][]float64, y []string, idx []int) ([][]float64, []string) {
	px := make([][]float64, len(idx))
	py := make([]string, len(idx))
	for i, j := range idx {
		px[i] = x[j]
		py[i] = y[j]
	}
	return px, py
}

// validate drives one classifier lifecycle for the given split and counts the
// outcomes into the shared matrix. Classifier failures propagate unmodified,
// aborting the run.
func validate(ctor Constructor, cfg Config, x [][]float64, y []string, s split.Split, matrix *confusion.Matrix) (total, correct int, err error) {
	trainX, trainY := project(x, y, s.Train)
	testX, testY := project(x, y, s.Test)

	cls := ctor(cfg)
	if err := cls.Train(trainX, trainY); err != nil {
		return 0, 0, fmt.Errorf("train: %w", err)
	}
	predicted, err := cls.Predict(testX)
	if err != nil {
		return 0, 0, fmt.Errorf("predict: %w", err)
	}
	if len(predicted) != len(testY) {
		return 0, 0, fmt.Errorf("predict: got %d labels for %d samples", len(predicted), len(testY))
	}

	for i, actual := range testY {
		if err := matrix.Add(actual, predicted[i]); err != nil {
			return 0, 0, fmt.Errorf("predict: %w", err)
		}
		if actual == predicted[i] {
			correct++
		}
	}
	return len(testY), correct, nil
}
