package gibbs

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/spinglass/model"
	"github.com/katalvlaran/spinglass/sample"
)

// Sampler runs a sequential single-site Gibbs chain over a model's free
// variables. It implements sample.Sampler. Construct with New.
type Sampler struct {
	opts Options
}

// New returns a Gibbs sampler with the given options; unset fields take
// their documented defaults.
func New(opts Options) *Sampler {
	opts.normalize()
	return &Sampler{opts: opts}
}

// link is one reduced coupling as seen from one endpoint.
type link struct {
	idx      int // chain index of the other endpoint
	coupling float64
}

// Sample runs the chain until the pool's total occurrences reach
// numSamples. Sweeps before burn-in are discarded; afterwards every
// thinning-th sweep is recorded. Because recording happens once per
// thinning sweeps and a recorded assignment may merge into an existing
// pooled sample, the sweep count is bounded by
// burnIn + thinning·numSamples, not by numSamples alone.
//
// Returns sample.ErrInvalidTemperature for T ≤ 0. Cancelling ctx between
// sweeps returns the context error. numSamples ≤ 0 yields an empty pool.
func (g *Sampler) Sample(ctx context.Context, m *model.Model, numSamples int, temperature float64) (*sample.Pool, error) {
	if temperature <= 0 {
		return nil, fmt.Errorf("%w: got %g", sample.ErrInvalidTemperature, temperature)
	}

	vars := m.Vars()
	n := len(vars)
	burnIn, thinning := g.opts.chainParams(n)
	rng := rngFromSeed(g.opts.Seed)

	g.opts.Logger.Debug("gibbs chain starting",
		"free_variables", n,
		"burn_in", burnIn,
		"thinning", thinning,
		"target_occurrences", numSamples)

	// Chain state: spins indexed like vars, initialized uniformly at random.
	state := make([]model.Spin, n)
	for i := range state {
		if rng.Float64() < 0.5 {
			state[i] = model.Up
		} else {
			state[i] = model.Down
		}
	}

	bias, adjacency := localFields(m, vars)

	pool := sample.NewPool()
	for sweep := 1; pool.Size() < numSamples; sweep++ {
		// All waiting is pure computation; cancellation is an external
		// deadline checked between sweeps.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// One sweep: resample every variable in ascending order. Updates
		// are applied in place, so later variables in the same sweep see
		// them (sequential Gibbs — the required order).
		for i := 0; i < n; i++ {
			field := bias[i]
			for _, l := range adjacency[i] {
				field += l.coupling * float64(state[l.idx])
			}
			// P(+1) = exp(-field/T) / (exp(-field/T) + exp(+field/T)).
			pUp := 1.0 / (1.0 + math.Exp(2.0*field/temperature))
			if rng.Float64() < pUp {
				state[i] = model.Up
			} else {
				state[i] = model.Down
			}
		}

		if sweep < burnIn || sweep%thinning != 0 {
			continue
		}

		assignment := make(map[int]model.Spin, n)
		for i, v := range vars {
			assignment[v] = state[i]
		}
		smp, err := sample.New(m, assignment, 1)
		if err != nil {
			return nil, err
		}
		pool.Add(smp)
	}

	g.opts.Logger.Debug("gibbs chain finished",
		"distinct", pool.Distinct(),
		"occurrences", pool.Size())
	return pool, nil
}

// localFields precomputes, for each chain index, the reduced linear bias
// and the reduced couplings incident to that variable, so a conditional
// resample is O(degree) instead of a full energy evaluation.
func localFields(m *model.Model, vars []int) ([]float64, [][]link) {
	index := make(map[int]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}

	bias := make([]float64, len(vars))
	for v, b := range m.ReducedBiases() {
		bias[index[v]] = b
	}

	adjacency := make([][]link, len(vars))
	m.ReducedCouplings().Each(func(p model.Pair, coupling float64) {
		i, j := index[p.I], index[p.J]
		adjacency[i] = append(adjacency[i], link{idx: j, coupling: coupling})
		adjacency[j] = append(adjacency[j], link{idx: i, coupling: coupling})
	})
	return bias, adjacency
}
