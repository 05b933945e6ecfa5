package bruteforce

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spinglass/model"
	"github.com/katalvlaran/spinglass/sample"
)

// Sampler enumerates every assignment of a model's free variables.
// It implements sample.Sampler. The zero value is not usable; construct
// with New.
type Sampler struct {
	opts Options
}

// New returns an exhaustive sampler with the given options; unset fields
// take their documented defaults.
func New(opts Options) *Sampler {
	opts.normalize()
	return &Sampler{opts: opts}
}

// Sample evaluates all 2^k assignments of the k free variables and folds
// them into one pool. Every assignment is observed exactly once, so
// numSamples and temperature are ignored.
//
// Steps:
//  1. Refuse models beyond Options.MaxVariables (ErrModelTooLarge).
//  2. Partition the assignment space [0, 2^k) into ChunkSize ranges;
//     chunk launch is sequential and lazy (bounded by Workers).
//  3. Evaluate each chunk concurrently against the read-only model.
//  4. Fold chunk results into the pool on the collecting goroutine only.
//
// Cancelling ctx stops launching further chunks and returns the context
// error once in-flight chunks have drained.
//
// Complexity: O(2^k · (|Jc| + |hc|)) time across workers, O(ChunkSize)
// memory per in-flight chunk.
func (s *Sampler) Sample(ctx context.Context, m *model.Model, _ int, _ float64) (*sample.Pool, error) {
	vars := m.Vars()
	k := len(vars)
	if k > s.opts.MaxVariables {
		return nil, fmt.Errorf("%w: %d free variables, limit %d", ErrModelTooLarge, k, s.opts.MaxVariables)
	}
	total := uint64(1) << uint(k)
	chunk := uint64(s.opts.ChunkSize)

	s.opts.Logger.Debug("bruteforce enumeration starting",
		"free_variables", k,
		"assignments", total,
		"chunk_size", chunk,
		"workers", s.opts.Workers)

	pool := sample.NewPool()
	results := make(chan []*sample.Sample, s.opts.Workers)

	// Folding is the only serialization point: one goroutine owns the pool.
	folded := make(chan struct{})
	go func() {
		defer close(folded)
		for batch := range results {
			for _, smp := range batch {
				pool.Add(smp)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for start := uint64(0); start < total; start += chunk {
		if gctx.Err() != nil {
			break // stop launching further chunks
		}
		end := min(start+chunk, total)
		lo, hi := start, end
		g.Go(func() error {
			batch, err := evaluateChunk(gctx, m, vars, lo, hi)
			if err != nil {
				return err
			}
			select {
			case results <- batch:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	err := g.Wait()
	close(results)
	<-folded
	if err == nil {
		// Cancellation before any chunk launched leaves the group empty.
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	s.opts.Logger.Debug("bruteforce enumeration finished",
		"distinct", pool.Distinct(),
		"occurrences", pool.Size())
	return pool, nil
}

// PartitionFunction computes Z = Σ exp(-E/T) over all assignments of the
// free variables by running a full enumeration pass. For exhaustive
// enumeration every assignment has occurrence 1, so the occurrence-weighted
// sum over distinct samples equals the sum over all assignments.
// Returns sample.ErrInvalidTemperature for T ≤ 0.
func (s *Sampler) PartitionFunction(ctx context.Context, m *model.Model, temperature float64) (float64, error) {
	if temperature <= 0 {
		return 0, fmt.Errorf("%w: got %g", sample.ErrInvalidTemperature, temperature)
	}
	pool, err := s.Sample(ctx, m, 0, temperature)
	if err != nil {
		return 0, err
	}

	z := 0.0
	for _, smp := range pool.All() {
		z += float64(smp.Occurrences()) * math.Exp(-smp.Energy()/temperature)
	}
	return z, nil
}

// evaluateChunk constructs the samples for assignment codes [lo, hi).
// Bit i of a code selects the spin of vars[i]: set bit means Up.
func evaluateChunk(ctx context.Context, m *model.Model, vars []int, lo, hi uint64) ([]*sample.Sample, error) {
	batch := make([]*sample.Sample, 0, hi-lo)
	assignment := make(map[int]model.Spin, len(vars))
	for code := lo; code < hi; code++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, v := range vars {
			if code&(1<<uint(i)) != 0 {
				assignment[v] = model.Up
			} else {
				assignment[v] = model.Down
			}
		}
		smp, err := sample.New(m, assignment, 1)
		if err != nil {
			return nil, err
		}
		batch = append(batch, smp)
	}
	return batch, nil
}
