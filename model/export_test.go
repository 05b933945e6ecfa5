package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinglass/model"
)

// TestLinearForm_FillsGaps verifies that the dense bias vector covers
// variables that only appear in the coupling matrix.
func TestLinearForm_FillsGaps(t *testing.T) {
	m := newModel(t,
		map[model.Pair]float64{pair(0, 1): -4.5, pair(1, 2): 5},
		map[int]float64{0: 20.4, 1: 10, 3: -5},
	)

	dense, couplings := m.LinearForm()
	require.Equal(t, []float64{20.4, 10, 0, -5}, dense)
	require.Equal(t, map[model.Pair]float64{pair(0, 1): -4.5, pair(1, 2): 5}, couplings)
}

// TestLinearForm_ExtendsToLargestEndpoint verifies the vector reaches the
// largest coupling endpoint.
func TestLinearForm_ExtendsToLargestEndpoint(t *testing.T) {
	m := newModel(t,
		map[model.Pair]float64{pair(0, 1): -4.5, pair(1, 2): 5, pair(0, 3): 2},
		map[int]float64{0: 20.4, 1: 10, 4: -5},
	)

	dense, couplings := m.LinearForm()
	require.Equal(t, []float64{20.4, 10, 0, 0, -5}, dense)
	require.Equal(t, map[model.Pair]float64{pair(0, 1): -4.5, pair(1, 2): 5, pair(0, 3): 2}, couplings)
}

// TestLinearForm_RebasesAfterClamp verifies that clamped variables vanish
// and the remaining ones are re-keyed to dense indices.
func TestLinearForm_RebasesAfterClamp(t *testing.T) {
	m := newModel(t,
		map[model.Pair]float64{pair(0, 1): 1, pair(1, 2): 1, pair(2, 3): 1, pair(3, 0): 1},
		nil,
	)
	require.NoError(t, m.Clamp(0, model.Up))

	dense, couplings := m.LinearForm()
	// Active variables 1,2,3 map to dense indices 0,1,2.
	require.Equal(t, []float64{1, 0, 1}, dense)
	require.Equal(t, map[model.Pair]float64{pair(0, 1): 1, pair(1, 2): 1}, couplings)
}

// TestDataTable_Format verifies the line-oriented text export.
func TestDataTable_Format(t *testing.T) {
	m := newModel(t,
		map[model.Pair]float64{pair(1, 2): 2.5},
		map[int]float64{0: 1.4, 1: -0.5, 2: 1.3},
	)

	got := m.DataTable(2048)
	want := strings.Join([]string{
		"2048 4",
		"0 0 1.4000",
		"1 1 -0.5000",
		"2 2 1.3000",
		"1 2 2.5000",
	}, "\n")
	require.Equal(t, want, got)
}

// TestDataTable_Empty verifies the header-only rendering of a trivial model.
func TestDataTable_Empty(t *testing.T) {
	m := newModel(t, nil, nil)
	require.Equal(t, "2048 0", m.DataTable(2048))
}
