package gibbs

import (
	"io"
	"log/slog"
)

// Default coefficients for deriving chain parameters from the
// free-variable count n. Burn-in grows quadratically so larger models get
// proportionally longer to approach the stationary distribution; thinning
// grows linearly to decorrelate successive recordings.
const (
	// DefaultBurnInFactor: burn-in ≈ 0.7·n² sweeps.
	DefaultBurnInFactor = 0.7
	// DefaultThinningFactor and DefaultThinningBase: thinning ≈ 0.1·n + 3 sweeps.
	DefaultThinningFactor = 0.1
	DefaultThinningBase   = 3
)

// Options configures the Gibbs chain.
//   - BurnIn: sweeps discarded before recording begins; 0 derives
//     ⌊0.7·n²⌋ from the model's free-variable count.
//   - Thinning: record every k-th sweep after burn-in; 0 derives ⌊0.1·n⌋+3.
//   - Seed: RNG seed; 0 means the fixed default seed (deterministic by
//     default, no time-based randomness).
//   - Logger: passive diagnostics sink; nil discards.
type Options struct {
	BurnIn   int
	Thinning int
	Seed     int64
	Logger   *slog.Logger
}

// DefaultOptions returns Options deriving burn-in and thinning from the
// model size, with the default deterministic seed.
func DefaultOptions() Options {
	return Options{}
}

// chainParams resolves burn-in and thinning for a model with n free
// variables.
func (o Options) chainParams(n int) (burnIn, thinning int) {
	burnIn = o.BurnIn
	if burnIn <= 0 {
		burnIn = int(DefaultBurnInFactor * float64(n) * float64(n))
	}
	thinning = o.Thinning
	if thinning <= 0 {
		thinning = int(DefaultThinningFactor*float64(n)) + DefaultThinningBase
	}
	return burnIn, thinning
}

// normalize fills unset fields with their defaults.
func (o *Options) normalize() {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
