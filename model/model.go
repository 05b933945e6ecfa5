package model

import (
	"fmt"
	"sort"
)

// Model is a pairwise spin-model energy function. It owns four views:
// the original couplings and biases exactly as given (immutable after
// construction), and a reduced pair mutated by Clamp, together with the
// clamped variable values and the accumulated energy offset.
//
// Invariant: the active variable set equals endpoints(J) ∪ keys(h) minus
// the clamped variables, and the energy of any full assignment consistent
// with the clamped values is identical whether computed against the
// original views or against (reduced J, reduced h, offset).
type Model struct {
	j *SymMatrix      // original couplings, never mutated after New
	h map[int]float64 // original biases, never mutated after New

	jc *SymMatrix      // reduced couplings, shrunk by Clamp
	hc map[int]float64 // reduced biases, adjusted by Clamp

	clamped map[int]Spin
	offset  float64

	active map[int]struct{}
}

// New builds a Model from sparse couplings and biases. Pair keys are
// normalized; a key with equal endpoints yields ErrDiagonalTerm. Missing
// entries in either view read as zero. Beyond the matrix invariants no
// validation is performed.
func New(j map[Pair]float64, h map[int]float64) (*Model, error) {
	jm, err := SymMatrixFrom(j)
	if err != nil {
		return nil, err
	}

	m := &Model{
		j:       jm,
		h:       make(map[int]float64, len(h)),
		jc:      jm.Clone(),
		hc:      make(map[int]float64, len(h)),
		clamped: make(map[int]Spin),
		active:  jm.Vars(),
	}
	for v, b := range h {
		m.h[v] = b
		m.hc[v] = b
		m.active[v] = struct{}{}
	}
	return m, nil
}

// Clamp fixes variable v to the constant spin s, eliminating it from the
// energy function: its linear term folds into the energy offset, and every
// coupling touching it folds into the other endpoint's linear term (or into
// the offset when that endpoint is itself clamped).
//
// Re-clamping to the identical value is a no-op. Errors:
//   - ErrInvalidSpin when s is outside {-1, +1},
//   - ErrClampConflict when v is already clamped to a different value,
//   - ErrUnknownVariable when v is not in the active set.
//
// Validation completes before any mutation, so on success the reduction is
// applied atomically as observed by the caller.
func (m *Model) Clamp(v int, s Spin) error {
	if !s.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidSpin, s)
	}
	if prev, ok := m.clamped[v]; ok {
		if prev != s {
			return fmt.Errorf("%w: variable %d is clamped to %d", ErrClampConflict, v, prev)
		}
		return nil
	}
	if _, ok := m.active[v]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownVariable, v)
	}

	delete(m.active, v)
	m.clamped[v] = s

	// Fold the linear term into the offset.
	if b, ok := m.hc[v]; ok {
		m.offset += b * float64(s)
		delete(m.hc, v)
	}

	// Fold every coupling touching v into the other endpoint's bias, or
	// into the offset when both endpoints are now constant.
	for _, p := range m.jc.touching(v) {
		other := p.Other(v)
		coupling := m.jc.Delete(p.I, p.J)
		if cs, ok := m.clamped[other]; ok {
			m.offset += float64(cs) * coupling * float64(s)
		} else {
			m.hc[other] += coupling * float64(s)
		}
	}
	return nil
}

// Copy returns an independent deep copy of the model, sharing no mutable
// state with the original.
func (m *Model) Copy() *Model {
	cp := &Model{
		j:       m.j.Clone(),
		h:       copyBiases(m.h),
		jc:      m.jc.Clone(),
		hc:      copyBiases(m.hc),
		clamped: make(map[int]Spin, len(m.clamped)),
		offset:  m.offset,
		active:  make(map[int]struct{}, len(m.active)),
	}
	for v, s := range m.clamped {
		cp.clamped[v] = s
	}
	for v := range m.active {
		cp.active[v] = struct{}{}
	}
	return cp
}

// Vars returns the active (free) variables in ascending order.
func (m *Model) Vars() []int {
	return sortedKeys(m.active)
}

// AllVars returns every original variable — active and clamped — in
// ascending order.
func (m *Model) AllVars() []int {
	all := make(map[int]struct{}, len(m.active)+len(m.clamped))
	for v := range m.active {
		all[v] = struct{}{}
	}
	for v := range m.clamped {
		all[v] = struct{}{}
	}
	return sortedKeys(all)
}

// NumVars returns the number of active variables.
func (m *Model) NumVars() int {
	return len(m.active)
}

// IsActive reports whether v is in the active variable set.
func (m *Model) IsActive(v int) bool {
	_, ok := m.active[v]
	return ok
}

// ClampedValue returns the clamped spin of v, if v is clamped.
func (m *Model) ClampedValue(v int) (Spin, bool) {
	s, ok := m.clamped[v]
	return s, ok
}

// Clamped returns a copy of the clamped variable values.
func (m *Model) Clamped() map[int]Spin {
	out := make(map[int]Spin, len(m.clamped))
	for v, s := range m.clamped {
		out[v] = s
	}
	return out
}

// Offset returns the accumulated energy offset due to clamped variables.
func (m *Model) Offset() float64 {
	return m.offset
}

// Couplings returns a copy of the original coupling matrix.
func (m *Model) Couplings() *SymMatrix {
	return m.j.Clone()
}

// Biases returns a copy of the original linear biases.
func (m *Model) Biases() map[int]float64 {
	return copyBiases(m.h)
}

// ReducedCouplings returns a copy of the reduced coupling matrix.
func (m *Model) ReducedCouplings() *SymMatrix {
	return m.jc.Clone()
}

// ReducedBiases returns a copy of the reduced linear biases.
func (m *Model) ReducedBiases() map[int]float64 {
	return copyBiases(m.hc)
}

// Expand merges the clamped variable values into assignment a, so that a
// covers every original variable when it already covers the active set.
func (m *Model) Expand(a map[int]Spin) {
	for v, s := range m.clamped {
		a[v] = s
	}
}

// Energy evaluates the energy of a full assignment against the reduced
// views: offset + Σ Jc[{i,j}]·aᵢ·aⱼ + Σ hc[k]·aₖ. The assignment must
// cover every active variable; clamped variables do not contribute beyond
// the offset already accumulated.
func (m *Model) Energy(a map[int]Spin) float64 {
	e := m.offset
	m.jc.Each(func(p Pair, coupling float64) {
		e += coupling * float64(a[p.I]) * float64(a[p.J])
	})
	for v, b := range m.hc {
		e += b * float64(a[v])
	}
	return e
}

func copyBiases(src map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(src))
	for v, b := range src {
		out[v] = b
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
