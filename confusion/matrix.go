package confusion

import (
	"fmt"
	"strings"
)

// Distinct returns the labels deduplicated, in order of first appearance.
func Distinct(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Matrix accumulates classification outcomes as a square count table,
// rows indexed by the true label, columns by the predicted one.
// It is sized once from an ordered label set and never reset.
type Matrix struct {
	labels []string
	index  map[string]int
	cells  [][]int
}

// NewMatrix creates a zeroed matrix over the given ordered label set.
func NewMatrix(labels []string) *Matrix {
	index := make(map[string]int, len(labels))
	cells := make([][]int, len(labels))
	for i, l := range labels {
		index[l] = i
		cells[i] = make([]int, len(labels))
	}
	return &Matrix{
		labels: labels,
		index:  index,
		cells:  cells,
	}
}

// Index returns the row/column position of the label, or -1 if the label
// is not part of the label set.
func (m *Matrix) Index(label string) int {
	if i, ok := m.index[label]; ok {
		return i
	}
	return -1
}

// Add counts one outcome for the given true and predicted labels.
func (m *Matrix) Add(actual, predicted string) error {
	a := m.Index(actual)
	if a < 0 {
		return fmt.Errorf("unknown label: %s", actual)
	}
	p := m.Index(predicted)
	if p < 0 {
		return fmt.Errorf("unknown label: %s", predicted)
	}
	m.cells[a][p]++
	return nil
}

// At returns the count at row i, column j.
func (m *Matrix) At(i, j int) int {
	return m.cells[i][j]
}

// Count returns the number of samples with the given true label that were
// predicted with the given label.
func (m *Matrix) Count(actual, predicted string) int {
	a := m.Index(actual)
	p := m.Index(predicted)
	if a < 0 || p < 0 {
		return 0
	}
	return m.cells[a][p]
}

// Labels returns a copy of the ordered label set.
func (m *Matrix) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Size returns the matrix dimension.
func (m *Matrix) Size() int {
	return len(m.labels)
}

// Row returns a copy of the counts for the true label at row i.
func (m *Matrix) Row(i int) []int {
	out := make([]int, len(m.cells[i]))
	copy(out, m.cells[i])
	return out
}

// Total returns the sum over all cells.
func (m *Matrix) Total() int {
	var total int
	for _, row := range m.cells {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// Correct returns the diagonal sum.
func (m *Matrix) Correct() int {
	var correct int
	for i := range m.cells {
		correct += m.cells[i][i]
	}
	return correct
}

// Accuracy returns the ratio of correct outcomes over all outcomes.
// It is NaN when the matrix is empty.
func (m *Matrix) Accuracy() float64 {
	return float64(m.Correct()) / float64(m.Total())
}

// String renders the matrix as an aligned true-label x predicted-label table.
func (m *Matrix) String() string {
	width := 1
	for _, l := range m.labels {
		if len(l) > width {
			width = len(l)
		}
	}
	for _, row := range m.cells {
		for _, c := range row {
			if w := len(fmt.Sprintf("%d", c)); w > width {
				width = w
			}
		}
	}
	sb := new(strings.Builder)
	sb.WriteString(fmt.Sprintf("%*s", width, ""))
	for _, l := range m.labels {
		sb.WriteString(fmt.Sprintf(" %*s", width, l))
	}
	sb.WriteString("\n")
	for i, l := range m.labels {
		sb.WriteString(fmt.Sprintf("%*s", width, l))
		for _, c := range m.cells[i] {
			sb.WriteString(fmt.Sprintf(" %*d", width, c))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
