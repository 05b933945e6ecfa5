// Package model defines the pairwise spin-model energy function and its
// reductions.
//
// A Model is a quadratic energy function over binary (±1) variables:
//
//	E(a) = Σ J[{i,j}]·aᵢ·aⱼ + Σ h[k]·aₖ
//
// where J is a sparse symmetric coupling matrix (SymMatrix, keyed by
// unordered variable pairs, no diagonal terms) and h is a sparse linear
// bias vector. The Model keeps the problem as given immutably and,
// alongside it, a reduced view that reflects variable clamping: fixing a
// variable to a constant ±1 eliminates it from the energy function while
// preserving the total energy of every consistent assignment via linear-term
// and offset adjustments. That equivalence is the central correctness
// property of this package.
//
// The package also provides:
//
//   - Copy — a fully independent deep copy of a model mid-clamping.
//   - LinearForm — the dense, index-rebased export consumed by hardware
//     annealer backends.
//   - Serialize/Deserialize — a JSON round-trip of the complete model state
//     (original, reduced, clamped values and energy offset) that
//     reconstructs an equivalent model without replaying clamp operations.
//   - DataTable — the line-oriented "<i> <j> <value>" text export used for
//     reporting.
//
// A Model is not safe for concurrent mutation. Once handed to a sampler it
// must be treated as read-only; clamp before sampling starts.
package model
