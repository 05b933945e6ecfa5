// Package sample provides assignments of spin models and ranked,
// deduplicated collections of them.
//
// A Sample is one full assignment over every original variable of a Model
// (clamped values are merged in before storage), together with an
// occurrence count and its energy, computed once at construction. Two
// samples are equal iff their assignments are equal; the total order is
// ascending energy with a deterministic tie-break, so "more favorable"
// sorts first.
//
// A Pool is a bounded-growth collection that deduplicates by assignment
// and aggregates occurrence counts on insert. It is backed by a binary
// heap keyed by the sample order plus a side table from assignment key to
// the pooled sample, so insert-or-merge is O(log n). On merge the heap
// needs no re-heapification: occurrence count is not part of the order
// key. The pool answers order-statistic queries (Best), energy histograms,
// the occurrence-weighted mean energy, and the empirical KL divergence
// against the Boltzmann distribution at a given temperature.
//
// The Sampler interface is the capability contract every backend —
// exhaustive search, Gibbs MCMC, or an external hardware annealer —
// implements to turn a model into a Pool.
package sample
