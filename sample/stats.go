package sample

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// EnergyHistogram bins the pooled samples by energy, mapping each energy
// value to the total occurrences observed at it.
func (p *Pool) EnergyHistogram() map[float64]int {
	histogram := make(map[float64]int, len(p.heap))
	for _, s := range p.heap {
		histogram[s.energy] += s.occurrences
	}
	return histogram
}

// RawEnergies returns each distinct sample's energy repeated once per
// occurrence, for downstream statistics that expect flat observations.
func (p *Pool) RawEnergies() []float64 {
	out := make([]float64, 0, p.total)
	for _, s := range p.heap {
		for i := 0; i < s.occurrences; i++ {
			out = append(out, s.energy)
		}
	}
	return out
}

// MeanEnergy returns the occurrence-weighted arithmetic mean energy.
// Returns ErrEmptyPool when the pool has zero total occurrences.
func (p *Pool) MeanEnergy() (float64, error) {
	if p.total == 0 {
		return 0, ErrEmptyPool
	}
	energies := make([]float64, len(p.heap))
	weights := make([]float64, len(p.heap))
	for i, s := range p.heap {
		energies[i] = s.energy
		weights[i] = float64(s.occurrences)
	}
	return stat.Mean(energies, weights), nil
}

// KLDivergence returns the Kullback–Leibler divergence of the pool's
// occurrence-frequency distribution from the Boltzmann distribution
// exp(-E/T)/Z. The partition function Z must already reflect the same
// temperature T. Errors: ErrEmptyPool, ErrInvalidTemperature for T ≤ 0,
// ErrInvalidPartition for Z ≤ 0.
func (p *Pool) KLDivergence(partitionFunction, temperature float64) (float64, error) {
	if p.total == 0 {
		return 0, ErrEmptyPool
	}
	if temperature <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidTemperature, temperature)
	}
	if partitionFunction <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidPartition, partitionFunction)
	}

	observed := make([]float64, len(p.heap))
	boltzmann := make([]float64, len(p.heap))
	for i, s := range p.heap {
		observed[i] = float64(s.occurrences) / float64(p.total)
		boltzmann[i] = math.Exp(-s.energy/temperature) / partitionFunction
	}
	return stat.KullbackLeibler(observed, boltzmann), nil
}
