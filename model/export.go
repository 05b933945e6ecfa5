package model

import (
	"fmt"
	"sort"
	"strings"
)

// LinearForm exports the reduced model in the dense form consumed by
// hardware annealer backends: a bias vector indexed 0..N-1 by the
// ascending order of the active variables, and the reduced couplings
// re-keyed to those dense indices. Clamped variables do not appear.
func (m *Model) LinearForm() ([]float64, map[Pair]float64) {
	vars := m.Vars()
	index := make(map[int]int, len(vars))
	dense := make([]float64, len(vars))
	for i, v := range vars {
		index[v] = i
		dense[i] = m.hc[v]
	}

	couplings := make(map[Pair]float64, m.jc.Len())
	m.jc.Each(func(p Pair, value float64) {
		couplings[NormPair(index[p.I], index[p.J])] = value
	})
	return dense, couplings
}

// DataTable renders the reduced model in the line-oriented text format
// used for reporting:
//
//	<dim> <term_count>
//	<i> <i> <bias>
//	<i> <j> <coupling>
//
// Linear terms repeat the variable (i == j); values use 4-decimal fixed
// precision. Lines are emitted in ascending variable order. This format is
// an export, not a round-trip encoding — use Serialize for reconstruction.
func (m *Model) DataTable(dim int) string {
	lines := make([]string, 0, len(m.hc)+m.jc.Len())

	for _, v := range sortedBiasKeys(m.hc) {
		lines = append(lines, fmt.Sprintf("%d %d %.4f", v, v, m.hc[v]))
	}

	pairs := make([]Pair, 0, m.jc.Len())
	m.jc.Each(func(p Pair, _ float64) {
		pairs = append(pairs, p)
	})
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}
		return pairs[a].J < pairs[b].J
	})
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%d %d %.4f", p.I, p.J, m.jc.Get(p.I, p.J)))
	}

	intro := fmt.Sprintf("%d %d", dim, len(lines))
	return strings.Join(append([]string{intro}, lines...), "\n")
}

func sortedBiasKeys(biases map[int]float64) []int {
	out := make([]int, 0, len(biases))
	for v := range biases {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
