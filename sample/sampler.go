package sample

import (
	"context"

	"github.com/katalvlaran/spinglass/model"
)

// Sampler is the capability contract implemented by every sampling
// backend, including external hardware annealers.
//
// Implementations must honor:
//   - every sample in the returned pool is a valid assignment under m,
//     with clamped variables expanded in;
//   - the pool's total occurrences reflect actual observation counts from
//     that backend;
//   - m is treated as read-only for the duration of the call.
//
// numSamples is the target for the pool's total occurrences; temperature
// is the Boltzmann temperature where the backend uses one. Backends for
// which a parameter is meaningless (exhaustive enumeration observes every
// assignment exactly once) document that they ignore it.
type Sampler interface {
	Sample(ctx context.Context, m *model.Model, numSamples int, temperature float64) (*Pool, error)
}
