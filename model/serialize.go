package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// quadTerm is one serialized coupling entry.
type quadTerm struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Value float64 `json:"value"`
}

// linTerm is one serialized bias or clamped-value entry.
type linTerm struct {
	V     int     `json:"v"`
	Value float64 `json:"value"`
}

// modelJSON is the on-wire shape of a serialized Model. It carries the
// complete state — original and reduced views, active variables, clamped
// values and offset — so deserialization reconstructs an equivalent model
// without replaying clamp operations.
type modelJSON struct {
	J         []quadTerm `json:"j"`
	H         []linTerm  `json:"h"`
	JClamped  []quadTerm `json:"j_clamped"`
	HClamped  []linTerm  `json:"h_clamped"`
	Variables []int      `json:"variables"`
	Clamped   []linTerm  `json:"clamped"`
	Offset    float64    `json:"energy_offset"`
}

// Serialize encodes the full model state as JSON. Entries are emitted in
// ascending key order so equal models serialize identically.
func (m *Model) Serialize() ([]byte, error) {
	enc := modelJSON{
		J:         quadTerms(m.j),
		H:         linTerms(m.h),
		JClamped:  quadTerms(m.jc),
		HClamped:  linTerms(m.hc),
		Variables: m.Vars(),
		Clamped:   make([]linTerm, 0, len(m.clamped)),
		Offset:    m.offset,
	}
	for _, v := range sortedKeys(asSet(m.clamped)) {
		enc.Clamped = append(enc.Clamped, linTerm{V: v, Value: float64(m.clamped[v])})
	}
	return json.Marshal(enc)
}

// Deserialize reconstructs a Model from the output of Serialize. The
// reduced views, clamped values, active set and offset are restored
// verbatim. Returns ErrDecode for malformed input and ErrDiagonalTerm or
// ErrInvalidSpin for inconsistent payloads.
func Deserialize(data []byte) (*Model, error) {
	var dec modelJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	m, err := New(pairMap(dec.J), biasMap(dec.H))
	if err != nil {
		return nil, err
	}

	jc, err := SymMatrixFrom(pairMap(dec.JClamped))
	if err != nil {
		return nil, err
	}
	m.jc = jc
	m.hc = biasMap(dec.HClamped)
	m.offset = dec.Offset

	m.clamped = make(map[int]Spin, len(dec.Clamped))
	for _, t := range dec.Clamped {
		s := Spin(t.Value)
		if !s.Valid() || float64(s) != t.Value {
			return nil, fmt.Errorf("%w: clamped value %g for variable %d", ErrInvalidSpin, t.Value, t.V)
		}
		m.clamped[t.V] = s
	}

	m.active = make(map[int]struct{}, len(dec.Variables))
	for _, v := range dec.Variables {
		m.active[v] = struct{}{}
	}
	return m, nil
}

func quadTerms(sm *SymMatrix) []quadTerm {
	out := make([]quadTerm, 0, sm.Len())
	sm.Each(func(p Pair, value float64) {
		out = append(out, quadTerm{I: p.I, J: p.J, Value: value})
	})
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}

func linTerms(biases map[int]float64) []linTerm {
	out := make([]linTerm, 0, len(biases))
	for _, v := range sortedBiasKeys(biases) {
		out = append(out, linTerm{V: v, Value: biases[v]})
	}
	return out
}

func pairMap(terms []quadTerm) map[Pair]float64 {
	out := make(map[Pair]float64, len(terms))
	for _, t := range terms {
		out[Pair{I: t.I, J: t.J}] = t.Value
	}
	return out
}

func biasMap(terms []linTerm) map[int]float64 {
	out := make(map[int]float64, len(terms))
	for _, t := range terms {
		out[t.V] = t.Value
	}
	return out
}

func asSet(clamped map[int]Spin) map[int]struct{} {
	out := make(map[int]struct{}, len(clamped))
	for v := range clamped {
		out[v] = struct{}{}
	}
	return out
}
