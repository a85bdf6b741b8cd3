// Package crossval estimates the generalization accuracy of a classifier by
// training and testing it on disjoint partitions of a labeled sample set and
// accumulating the outcomes into a confusion matrix.
package crossval

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/crossval/confusion"
	"github.com/drakos74/crossval/internal/metrics"
	"github.com/drakos74/crossval/split"
)

// Result is the aggregated outcome of one cross-validation run.
type Result struct {
	// ID identifies the run in logs and metrics.
	ID string
	// Confusion holds the true-label x predicted-label counts over all splits.
	Confusion *confusion.Matrix
	// Accuracy is correct over total predictions. NaN when Predictions is 0.
	Accuracy float64
	// Labels is the ordered distinct label set indexing the matrix.
	Labels []string
	// Predictions is the total number of predictions made.
	Predictions int
}

// LeaveOneOut holds out each sample once and trains on all the others.
func LeaveOneOut(ctor Constructor, x [][]float64, y []string, cfg Config) (*Result, error) {
	return run("leave-one-out", ctor, x, y, cfg, split.LeaveOneOut)
}

// LeavePOut holds out every subset of p samples exactly once.
func LeavePOut(ctor Constructor, x [][]float64, y []string, cfg Config, p int) (*Result, error) {
	return run("leave-p-out", ctor, x, y, cfg, func(n int) (split.Source, error) {
		return split.LeavePOut(n, p)
	})
}

// KFold cuts the samples into k random folds and holds out each fold once.
// Fold membership is randomized per call and unseeded, so repeated runs
// produce different folds.
func KFold(ctor Constructor, x [][]float64, y []string, cfg Config, k int) (*Result, error) {
	return KFoldWithSource(ctor, x, y, cfg, k, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// KFoldWithSource is KFold with an explicit randomness source,
// for reproducible fold assignment.
func KFoldWithSource(ctor Constructor, x [][]float64, y []string, cfg Config, k int, rnd *rand.Rand) (*Result, error) {
	return run("k-fold", ctor, x, y, cfg, func(n int) (split.Source, error) {
		return split.KFold(n, k, rnd)
	})
}

func run(strategy string, ctor Constructor, x [][]float64, y []string, cfg Config, source func(n int) (split.Source, error)) (*Result, error) {
	if err := check(x, y); err != nil {
		return nil, err
	}
	src, err := source(len(x))
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	labels := confusion.Distinct(y)
	matrix := confusion.NewMatrix(labels)

	var total, correct, splits int
	for {
		s, ok := src.Next()
		if !ok {
			break
		}
		t, c, err := validate(ctor, cfg, x, y, s, matrix)
		if err != nil {
			return nil, fmt.Errorf("split %d: %w", splits, err)
		}
		total += t
		correct += c
		splits++
		metrics.Observer.Split(strategy)
		metrics.Observer.Predictions(strategy, t)
	}

	accuracy := float64(correct) / float64(total)
	if total == 0 {
		log.Warn().
			Str("id", id).
			Str("strategy", strategy).
			Int("samples", len(x)).
			Msg("no predictions made")
	}
	log.Info().
		Str("id", id).
		Str("strategy", strategy).
		Int("samples", len(x)).
		Int("splits", splits).
		Int("predictions", total).
		Float64("accuracy", accuracy).
		Msg("cross-validation done")

	return &Result{
		ID:          id,
		Confusion:   matrix,
		Accuracy:    accuracy,
		Labels:      labels,
		Predictions: total,
	}, nil
}
