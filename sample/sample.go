package sample

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/spinglass/model"
)

// Sample is one full assignment of a spin model: a value per original
// variable (clamped values filled in at construction), an occurrence count
// and the cached energy. The model is shared by reference and must be
// treated as read-only. A Sample is immutable after construction except
// for its occurrence count, which only a Pool increments on merge.
type Sample struct {
	model       *model.Model
	assignment  map[int]model.Spin
	key         string
	energy      float64
	occurrences int
}

// New builds a Sample from an assignment over the model's active variables.
// The assignment is copied and expanded with the clamped values; the energy
// is computed once. Errors:
//   - ErrNonPositiveOccurrences when occurrences < 1,
//   - ErrMissingVariables when an active variable is absent,
//   - ErrUnexpectedVariables when the assignment has extra keys.
func New(m *model.Model, assignment map[int]model.Spin, occurrences int) (*Sample, error) {
	if occurrences < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveOccurrences, occurrences)
	}

	var missing []int
	for _, v := range m.Vars() {
		if _, ok := assignment[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingVariables, missing)
	}

	var extra []int
	for v := range assignment {
		if !m.IsActive(v) {
			extra = append(extra, v)
		}
	}
	if len(extra) > 0 {
		sort.Ints(extra)
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedVariables, extra)
	}

	full := make(map[int]model.Spin, len(assignment))
	for v, sp := range assignment {
		full[v] = sp
	}
	m.Expand(full)

	s := &Sample{
		model:       m,
		assignment:  full,
		key:         spinKey(m.AllVars(), full),
		energy:      m.Energy(full),
		occurrences: occurrences,
	}
	return s, nil
}

// FromSlice builds a Sample from spins aligned to the ascending order of
// the model's active variables. A short slice yields ErrMissingVariables,
// a long one ErrUnexpectedVariables.
func FromSlice(m *model.Model, spins []model.Spin, occurrences int) (*Sample, error) {
	vars := m.Vars()
	if len(spins) < len(vars) {
		return nil, fmt.Errorf("%w: got %d spins for %d variables", ErrMissingVariables, len(spins), len(vars))
	}
	if len(spins) > len(vars) {
		return nil, fmt.Errorf("%w: got %d spins for %d variables", ErrUnexpectedVariables, len(spins), len(vars))
	}
	assignment := make(map[int]model.Spin, len(vars))
	for i, v := range vars {
		assignment[v] = spins[i]
	}
	return New(m, assignment, occurrences)
}

// Model returns the model this sample belongs to.
func (s *Sample) Model() *model.Model {
	return s.model
}

// Assignment returns a copy of the expanded assignment, covering every
// original variable including clamped ones.
func (s *Sample) Assignment() map[int]model.Spin {
	out := make(map[int]model.Spin, len(s.assignment))
	for v, sp := range s.assignment {
		out[v] = sp
	}
	return out
}

// Tuple returns the expanded assignment as spins in ascending variable order.
func (s *Sample) Tuple() []model.Spin {
	vars := s.model.AllVars()
	out := make([]model.Spin, len(vars))
	for i, v := range vars {
		out[i] = s.assignment[v]
	}
	return out
}

// Key returns the canonical identity of the sample: one '+' or '-' per
// original variable in ascending order. Samples are equal iff keys are equal.
func (s *Sample) Key() string {
	return s.key
}

// Energy returns the cached energy of the assignment.
func (s *Sample) Energy() float64 {
	return s.energy
}

// Occurrences returns the aggregate observation count.
func (s *Sample) Occurrences() int {
	return s.occurrences
}

// Equal reports whether the two samples encode the same assignment.
// Occurrence count and energy are not part of identity.
func (s *Sample) Equal(other *Sample) bool {
	return s.key == other.key
}

// Compare defines the total sample order: ascending energy first, with
// ties broken by the ascending assignment key. A negative result means a
// is more favorable than b.
func Compare(a, b *Sample) int {
	switch {
	case a.energy < b.energy:
		return -1
	case a.energy > b.energy:
		return 1
	default:
		return strings.Compare(a.key, b.key)
	}
}

// String renders the sample for diagnostics.
func (s *Sample) String() string {
	parts := make([]string, 0, len(s.assignment))
	for _, sp := range s.Tuple() {
		if sp == model.Up {
			parts = append(parts, " 1")
		} else {
			parts = append(parts, "-1")
		}
	}
	return fmt.Sprintf("Sample [%s]: %d occurrences, energy %g",
		strings.Join(parts, " "), s.occurrences, s.energy)
}

// sampleJSON is the on-wire shape of a serialized Sample. The assignment
// is stored expanded, in ascending variable order.
type sampleJSON struct {
	Assignment  [][2]int `json:"assignment"`
	Occurrences int      `json:"occurrences"`
	Energy      float64  `json:"energy"`
}

// Serialize encodes the sample (expanded assignment, occurrences, energy)
// as JSON.
func (s *Sample) Serialize() ([]byte, error) {
	enc := sampleJSON{
		Occurrences: s.occurrences,
		Energy:      s.energy,
	}
	for _, v := range s.model.AllVars() {
		enc.Assignment = append(enc.Assignment, [2]int{v, int(s.assignment[v])})
	}
	return json.Marshal(enc)
}

// Deserialize reconstructs a Sample against m from the output of
// Serialize. Clamped variables in the payload must agree with the model's
// clamped values; the energy is recomputed rather than trusted.
func Deserialize(m *model.Model, data []byte) (*Sample, error) {
	var dec sampleJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	assignment := make(map[int]model.Spin, len(dec.Assignment))
	for _, entry := range dec.Assignment {
		v, sp := entry[0], model.Spin(entry[1])
		if cs, ok := m.ClampedValue(v); ok {
			if cs != sp {
				return nil, fmt.Errorf("%w: variable %d is clamped to %d", ErrUnexpectedVariables, v, cs)
			}
			continue // restored by expansion
		}
		assignment[v] = sp
	}
	return New(m, assignment, dec.Occurrences)
}

// spinKey renders the assignment as one byte per variable in ascending
// order; '+' sorts before '-' in ASCII, so key order is deterministic.
func spinKey(vars []int, assignment map[int]model.Spin) string {
	var b strings.Builder
	b.Grow(len(vars))
	for _, v := range vars {
		if assignment[v] == model.Up {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
