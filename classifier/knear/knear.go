// Package knear adapts the golearn k-nearest-neighbours classifier to the
// crossval classifier contract. golearn consumes instance grids parsed from
// csv, so samples take a round trip through a feature file.
package knear

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"

	"github.com/drakos74/crossval"
)

const (
	// Neighbours is the config key for the number of neighbours to vote.
	Neighbours = "neighbours"
	// Distance is the config key for the distance function,
	// one of euclidean, manhattan, cosine.
	Distance = "distance"
)

// New returns a constructor for a k-nearest-neighbours classifier.
func New() crossval.Constructor {
	return func(cfg crossval.Config) crossval.Classifier {
		return &Classifier{
			k:        cfg.Int(Neighbours, 3),
			distance: cfg.String(Distance, "euclidean"),
		}
	}
}

type Classifier struct {
	k           int
	distance    string
	cls         *knn.KNNClassifier
	placeholder string
}

func (c *Classifier) Train(x [][]float64, y []string) error {
	if len(x) == 0 {
		return fmt.Errorf("no training data")
	}
	fn, err := toFeatureFile("knear_train", x, y)
	if err != nil {
		return err
	}
	defer os.Remove(fn)

	data, err := base.ParseCSVToInstances(fn, false)
	if err != nil {
		return fmt.Errorf("could not parse training set: %w", err)
	}
	cls := knn.NewKnnClassifier(c.distance, "linear", c.k)
	if err := cls.Fit(data); err != nil {
		return fmt.Errorf("could not fit knn model: %w", err)
	}
	c.cls = cls
	// the predict file needs a parseable class column
	c.placeholder = y[0]
	return nil
}

func (c *Classifier) Predict(x [][]float64) ([]string, error) {
	if c.cls == nil {
		return nil, fmt.Errorf("knn model not trained")
	}
	yy := make([]string, len(x))
	for i := range yy {
		yy[i] = c.placeholder
	}
	fn, err := toFeatureFile("knear_predict", x, yy)
	if err != nil {
		return nil, err
	}
	defer os.Remove(fn)

	data, err := base.ParseCSVToInstances(fn, false)
	if err != nil {
		return nil, fmt.Errorf("could not parse prediction set: %w", err)
	}
	predictions, err := c.cls.Predict(data)
	if err != nil {
		return nil, fmt.Errorf("could not predict on knn model: %w", err)
	}
	out := make([]string, len(x))
	for i := range out {
		out[i] = base.GetClass(predictions, i)
	}
	return out, nil
}

// toFeatureFile writes the samples as csv rows, label in the last column.
func toFeatureFile(description string, x [][]float64, y []string) (string, error) {
	file, err := os.CreateTemp("", fmt.Sprintf("%s_*.csv", description))
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for i, vector := range x {
		lw := new(strings.Builder)
		for _, v := range vector {
			lw.WriteString(fmt.Sprintf("%f,", v))
		}
		lw.WriteString(y[i])
		_, _ = writer.WriteString(lw.String() + "\n")
	}
	return file.Name(), nil
}
