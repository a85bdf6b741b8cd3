package split

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrParameter marks a strategy parameter outside its valid range.
var ErrParameter = errors.New("invalid parameter")

// Combinations enumerates all subsets of size p from the population {0..n-1},
// one at a time. The sequence is finite, exhaustive and deterministic,
// but the order is not part of the contract. It cannot be restarted.
type Combinations struct {
	gen *combin.CombinationGenerator
	n   int
	p   int
}

// NewCombinations creates a generator over the C(n,p) index subsets.
func NewCombinations(n, p int) (*Combinations, error) {
	if p < 1 || p > n {
		return nil, fmt.Errorf("%w: subset size must be within [1,%d]: %d", ErrParameter, n, p)
	}
	return &Combinations{
		gen: combin.NewCombinationGenerator(n, p),
		n:   n,
		p:   p,
	}, nil
}

// Next advances to the next subset. It returns false once all subsets
// have been produced.
func (c *Combinations) Next() bool {
	return c.gen.Next()
}

// Indices returns the current subset as a fresh slice of p indices.
func (c *Combinations) Indices() []int {
	return c.gen.Combination(nil)
}

// Count returns the number of subsets of size p from a population of n.
func Count(n, p int) int {
	return combin.Binomial(n, p)
}
