package model

// Spin is the value of a single ±1 variable.
type Spin int8

const (
	// Down is the -1 spin state.
	Down Spin = -1
	// Up is the +1 spin state.
	Up Spin = 1
)

// Valid reports whether s is one of the two admissible spin states.
func (s Spin) Valid() bool {
	return s == Down || s == Up
}

// Pair is an unordered pair of distinct variables, the key of one coupling
// term. Always construct pairs through NormPair (or SymMatrix methods) so
// that {i,j} and {j,i} refer to the same slot.
type Pair struct {
	I, J int
}

// NormPair returns the canonical form of the unordered pair {i, j},
// ordering endpoints ascending.
func NormPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}
	return Pair{I: i, J: j}
}

// Other returns the endpoint of p that is not v.
// The caller must ensure v is one of the endpoints.
func (p Pair) Other(v int) int {
	if p.I == v {
		return p.J
	}
	return p.I
}

// Contains reports whether v is an endpoint of p.
func (p Pair) Contains(v int) bool {
	return p.I == v || p.J == v
}
