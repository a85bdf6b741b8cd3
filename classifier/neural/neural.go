// Package neural adapts a go-ex-machina feed-forward network to the crossval
// classifier contract, mapping labels to a one-hot output layer.
package neural

import (
	"fmt"
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"

	"github.com/drakos74/crossval"
	"github.com/drakos74/crossval/confusion"
)

const (
	// Hidden is the config key for the hidden layer size.
	Hidden = "hidden"
	// Epochs is the config key for the number of training passes.
	Epochs = "epochs"
	// Rate is the config key for the learning rate.
	Rate = "rate"
)

// New returns a constructor for a feed-forward network classifier.
func New() crossval.Constructor {
	return func(cfg crossval.Config) crossval.Classifier {
		return &Classifier{
			hidden: cfg.Int(Hidden, 16),
			epochs: cfg.Int(Epochs, 100),
			rate:   cfg.Float64(Rate, 0.1),
		}
	}
}

type Classifier struct {
	hidden int
	epochs int
	rate   float64
	labels []string
	net    *ff.Network
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
	in := len(x[0])
	out := len(c.labels)

	// tanh layers with a softmax head
	rate := ml.Learn(1, c.rate)
	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)
	network := ff.New(in, out).
		Add(c.hidden, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(out, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(out, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)

	for e := 0; e < c.epochs; e++ {
		for i, v := range x {
			target := make([]float64, out)
			target[index[y[i]]] = 1.0
			network.Train(xmath.Vec(len(v)).With(v...), xmath.Vec(out).With(target...))
		}
	}
	c.net = network
	return nil
}

func (c *Classifier) Predict(x [][]float64) ([]string, error) {
	if c.net == nil {
		return nil, fmt.Errorf("network not trained")
	}
	out := make([]string, len(x))
	for i, v := range x {
		p := c.net.Predict(xmath.Vec(len(v)).With(v...))
		if len(p) != len(c.labels) {
			return nil, fmt.Errorf("unexpected output size: %d for %d labels", len(p), len(c.labels))
		}
		best := 0
		for j := range p {
			if p[j] > p[best] {
				best = j
			}
		}
		out[i] = c.labels[best]
	}
	return out, nil
}
