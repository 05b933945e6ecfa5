// Package bruteforce samples spin models by exhaustive enumeration.
//
// The sampler walks all 2^k assignments of the k free (non-clamped)
// variables — clamped variables are never enumerated, their values are
// determined by the model — and folds every evaluated sample into one
// pool. Enumeration is partitioned into bounded-size chunks; chunk
// evaluation (assignment → sample construction, including the energy
// computation) is embarrassingly parallel and touches only the read-only
// model, while folding into the pool happens on a single collecting
// goroutine to preserve the deduplication invariant. Cancelling the
// context stops launching further chunks.
//
// The exponential cost is guarded by Options.MaxVariables; models with
// more free variables fail with ErrModelTooLarge.
//
// PartitionFunction runs a full enumeration pass and sums exp(-E/T) over
// every assignment, which turns energies into Boltzmann probabilities.
package bruteforce
