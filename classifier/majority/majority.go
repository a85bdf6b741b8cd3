// Package majority provides a baseline classifier that always predicts the
// most frequent label of its training set.
package majority

import (
	"fmt"

	"github.com/drakos74/crossval"
)

// New returns a constructor for the baseline classifier.
func New() crossval.Constructor {
	return func(cfg crossval.Config) crossval.Classifier {
		return &Classifier{}
	}
}

type Classifier struct {
	label   string
	trained bool
}

// Train picks the most frequent training label.
// Ties go to the label that reached the winning count first.
func (c *Classifier) Train(x [][]float64, y []string) error {
	counts := make(map[string]int, len(y))
	var best int
	for _, l := range y {
		counts[l]++
		if counts[l] > best {
			best = counts[l]
			c.label = l
			c.trained = true
		}
	}
	return nil
}

func (c *Classifier) Predict(x [][]float64) ([]string, error) {
	if !c.trained {
		return nil, fmt.Errorf("no training data")
	}
	out := make([]string, len(x))
	for i := range out {
		out[i] = c.label
	}
	return out, nil
}
