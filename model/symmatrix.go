package model

import "fmt"

// SymMatrix is a sparse symmetric coefficient matrix keyed by unordered
// variable pairs. Every access normalizes the key, so Get(i, j) and
// Get(j, i) address the same slot. Missing entries read as 0.0, and
// diagonal entries (i == j) are rejected on write.
type SymMatrix struct {
	terms map[Pair]float64
}

// NewSymMatrix returns an empty symmetric matrix.
func NewSymMatrix() *SymMatrix {
	return &SymMatrix{terms: make(map[Pair]float64)}
}

// SymMatrixFrom builds a symmetric matrix from the given terms, normalizing
// every key. Returns ErrDiagonalTerm if any key has equal endpoints.
func SymMatrixFrom(terms map[Pair]float64) (*SymMatrix, error) {
	sm := &SymMatrix{terms: make(map[Pair]float64, len(terms))}
	for p, v := range terms {
		if err := sm.Set(p.I, p.J, v); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// Set stores the coefficient for the unordered pair {i, j}.
// Returns ErrDiagonalTerm when i == j.
func (sm *SymMatrix) Set(i, j int, value float64) error {
	if i == j {
		return fmt.Errorf("%w: {%d,%d}", ErrDiagonalTerm, i, j)
	}
	sm.terms[NormPair(i, j)] = value
	return nil
}

// Get returns the coefficient for the unordered pair {i, j},
// or 0.0 when the pair is absent.
func (sm *SymMatrix) Get(i, j int) float64 {
	return sm.terms[NormPair(i, j)]
}

// Delete removes the entry for the unordered pair {i, j} and returns the
// value it held (0.0 when absent).
func (sm *SymMatrix) Delete(i, j int) float64 {
	p := NormPair(i, j)
	v := sm.terms[p]
	delete(sm.terms, p)
	return v
}

// Len returns the number of stored terms.
func (sm *SymMatrix) Len() int {
	return len(sm.terms)
}

// Each calls fn for every stored term. Iteration order is unspecified;
// fn must not mutate the matrix.
func (sm *SymMatrix) Each(fn func(p Pair, value float64)) {
	for p, v := range sm.terms {
		fn(p, v)
	}
}

// Terms returns a copy of the stored terms keyed by canonical pairs.
func (sm *SymMatrix) Terms() map[Pair]float64 {
	out := make(map[Pair]float64, len(sm.terms))
	for p, v := range sm.terms {
		out[p] = v
	}
	return out
}

// Vars returns the set of variables appearing as an endpoint of any term.
func (sm *SymMatrix) Vars() map[int]struct{} {
	out := make(map[int]struct{}, 2*len(sm.terms))
	for p := range sm.terms {
		out[p.I] = struct{}{}
		out[p.J] = struct{}{}
	}
	return out
}

// Clone returns an independent deep copy of the matrix.
func (sm *SymMatrix) Clone() *SymMatrix {
	return &SymMatrix{terms: sm.Terms()}
}

// touching returns the canonical keys of all terms with v as an endpoint.
func (sm *SymMatrix) touching(v int) []Pair {
	var out []Pair
	for p := range sm.terms {
		if p.Contains(v) {
			out = append(out, p)
		}
	}
	return out
}
