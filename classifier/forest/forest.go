// Package forest adapts the malaschitz random forest to the crossval
// classifier contract.
package forest

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"

	"github.com/drakos74/crossval"
	"github.com/drakos74/crossval/confusion"
)

// Trees is the config key for the number of trees to grow.
const Trees = "trees"

// New returns a constructor for a random forest classifier.
func New() crossval.Constructor {
	return func(cfg crossval.Config) crossval.Classifier {
		return &Classifier{trees: cfg.Int(Trees, 100)}
	}
}

type Classifier struct {
	trees  int
	labels []string
	forest *randomforest.Forest
}

func (c *Classifier) Train(x [][]float64, y []string) error {
	if len(x) == 0 {
		return fmt.Errorf("no training data")
	}
	c.labels = confusion.Distinct(y)
	index := make(map[string]int, len(c.labels))
	for i, l := range c.labels {
		index[l] = i
	}
	classes := make([]int, len(y))
	for i, l := range y {
		classes[i] = index[l]
	}

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: classes}
	forest.Train(c.trees)
	c.forest = forest
	return nil
}

func (c *Classifier) Predict(x [][]float64) ([]string, error) {
	if c.forest == nil {
		return nil, fmt.Errorf("forest not trained")
	}
	out := make([]string, len(x))
	for i, v := range x {
		votes := c.forest.Vote(v)
		if len(votes) == 0 {
			return nil, fmt.Errorf("no votes for sample %d", i)
		}
		best := 0
		for j := range votes {
			if votes[j] > votes[best] {
				best = j
			}
		}
		out[i] = c.labels[best]
	}
	return out, nil
}
