// Package spinglass evaluates pairwise spin-model ("Ising") optimization
// problems and samples their low-energy assignments.
//
// 🚀 What is spinglass?
//
//	A pure-Go library for defining quadratic energy functions over ±1
//	variables and asking two questions about them: "what are the
//	low-energy / representative assignments of this model" and
//	"what is its partition function". It brings together:
//		• Energy models: sparse symmetric couplings + linear biases,
//		  variable clamping with exact energy-preserving reduction
//		• Samples & pools: deduplicated, occurrence-weighted collections
//		  with order statistics, histograms and KL divergence
//		• Exhaustive search: chunked parallel enumeration of every
//		  assignment of the free variables, plus the partition function
//		• Gibbs sampling: sequential single-site MCMC with burn-in
//		  and thinning
//
// ✨ Why choose spinglass?
//
//   - Exact semantics – clamping preserves total energy to the last bit
//   - Deterministic – seeded RNG policy, no time-based randomness
//   - Interchangeable backends – one Sampler contract for exhaustive
//     search, MCMC, and external (hardware) annealers alike
//   - Pure Go – no cgo, small dependency surface
//
// Everything is organized under four subpackages:
//
//	model/      — SymMatrix, Model, clamping, export & serialization
//	sample/     — Sample, Pool, pool statistics & the Sampler contract
//	bruteforce/ — exhaustive enumeration + partition function
//	gibbs/      — sequential Gibbs chain with burn-in and thinning
//
// Quick ASCII example, the 4-spin "checkerboard" ring:
//
//	    0───1
//	    │   │
//	    3───2
//
//	with J=+1 on every edge; its two ground states are the alternating
//	assignments (-1,+1,-1,+1) and (+1,-1,+1,-1).
//
//	go get github.com/katalvlaran/spinglass
package spinglass
