// Package gibbs samples spin models with single-site Markov-chain Monte
// Carlo.
//
// The chain keeps one full assignment of the free variables, initialized
// uniformly at random. A sweep visits every free variable in ascending
// order, recomputes its conditional distribution holding the others fixed,
//
//	P(xᵢ = v) ∝ exp(-E(…, xᵢ = v, …)/T),
//
// and redraws its value in place, so updates are visible to later
// variables within the same sweep (sequential, not synchronous, Gibbs).
// Sweeps before Options.BurnIn are discarded; afterwards every
// Options.Thinning-th sweep is recorded into the pool, and the chain runs
// until the pool's total occurrences reach the requested sample count.
// Recorded assignments that collide merge into the existing pooled sample,
// which still advances the occurrence total, so termination is guaranteed
// even on degenerate state spaces.
//
// The sampler is strictly single-threaded: the chain is only reproducible
// for a fixed variable order and random stream. Randomness is seeded
// (seed 0 means the fixed default), never time-based.
package gibbs
