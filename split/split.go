package split

import (
	"fmt"
	"math/rand"
)

// Split pairs the disjoint test and train index sets for one
// training and prediction cycle.
type Split struct {
	Test  []int
	Train []int
}

// Source produces the splits of one cross-validation run one at a time.
// Sources are finite and cannot be restarted.
type Source interface {
	// Next returns the next split, or false when the sequence is exhausted.
	Next() (Split, bool)
}

// LeaveOneOut holds out each of the n indices once.
func LeaveOneOut(n int) (Source, error) {
	return LeavePOut(n, 1)
}

// LeavePOut holds out every subset of size p exactly once,
// training on the remaining indices in their original order.
func LeavePOut(n, p int) (Source, error) {
	gen, err := NewCombinations(n, p)
	if err != nil {
		return nil, err
	}
	return &pOut{n: n, gen: gen}, nil
}

type pOut struct {
	n   int
	gen *Combinations
}

func (s *pOut) Next() (Split, bool) {
	if !s.gen.Next() {
		return Split{}, false
	}
	test := s.gen.Indices()
	return Split{Test: test, Train: complement(s.n, test)}, true
}

// complement returns {0..n-1} \ test, preserving ascending index order.
func complement(n int, test []int) []int {
	hold := make(map[int]struct{}, len(test))
	for _, i := range test {
		hold[i] = struct{}{}
	}
	train := make([]int, 0, n-len(test))
	for i := 0; i < n; i++ {
		if _, ok := hold[i]; !ok {
			train = append(train, i)
		}
	}
	return train
}

// KFold shuffles the n indices with the given source and cuts them into
// folds of size n/k. At most k folds are kept; indices left over beyond
// the k-th fold take part in no split at all. Each fold serves once as
// the test set with the remaining folds, in fold order, as the train set.
func KFold(n, k int, rnd *rand.Rand) (Source, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: folds must be positive: %d", ErrParameter, k)
	}
	size := n / k
	if size == 0 {
		// fewer samples than folds, degrade to singleton folds
		size = 1
	}
	perm := rnd.Perm(n)
	ff := make([][]int, 0, k)
	for i := 0; i+size <= n && len(ff) < k; i += size {
		fold := make([]int, size)
		copy(fold, perm[i:i+size])
		ff = append(ff, fold)
	}
	return &folds{folds: ff}, nil
}

type folds struct {
	folds [][]int
	next  int
}

func (s *folds) Next() (Split, bool) {
	if s.next >= len(s.folds) {
		return Split{}, false
	}
	test := s.folds[s.next]
	train := make([]int, 0, (len(s.folds)-1)*len(test))
	for i, f := range s.folds {
		if i != s.next {
			train = append(train, f...)
		}
	}
	s.next++
	return Split{Test: test, Train: train}, true
}
