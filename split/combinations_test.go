package split

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {

	type test struct {
		n int
		p int
	}

	tests := map[string]test{
		"singletons": {n: 5, p: 1},
		"pairs":      {n: 4, p: 2},
		"triples":    {n: 6, p: 3},
		"full":       {n: 3, p: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gen, err := NewCombinations(tt.n, tt.p)
			require.NoError(t, err)

			seen := make(map[string]struct{})
			for gen.Next() {
				indices := gen.Indices()
				assert.Equal(t, tt.p, len(indices))
				for _, i := range indices {
					assert.GreaterOrEqual(t, i, 0)
					assert.Less(t, i, tt.n)
				}
				key := fmt.Sprintf("%v", indices)
				_, ok := seen[key]
				assert.False(t, ok, "subset repeated: %s", key)
				seen[key] = struct{}{}
			}
			assert.Equal(t, Count(tt.n, tt.p), len(seen))
		})
	}
}

func TestCombinations_Parameter(t *testing.T) {

	type test struct {
		n int
		p int
	}

	tests := map[string]test{
		"zero":     {n: 5, p: 0},
		"negative": {n: 5, p: -1},
		"too-big":  {n: 5, p: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewCombinations(tt.n, tt.p)
			assert.True(t, errors.Is(err, ErrParameter))
		})
	}
}
