package gibbs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spinglass/gibbs"
	"github.com/katalvlaran/spinglass/model"
	"github.com/katalvlaran/spinglass/sample"
)

func pair(i, j int) model.Pair { return model.NormPair(i, j) }

// checkerboard returns the 4-spin ring with J=+1 on every edge and the
// given biases.
func checkerboard(t require.TestingT, h map[int]float64) *model.Model {
	m, err := model.New(map[model.Pair]float64{
		pair(0, 1): 1, pair(1, 2): 1, pair(2, 3): 1, pair(3, 0): 1,
	}, h)
	require.NoError(t, err)
	return m
}

// GibbsSuite exercises the Gibbs chain. Statistical assertions use fixed
// seeds and generous margins; at T=1 the two checkerboard ground states
// carry ≈90% of the Boltzmann mass.
type GibbsSuite struct {
	suite.Suite
}

func (s *GibbsSuite) sampler(seed int64) *gibbs.Sampler {
	return gibbs.New(gibbs.Options{Seed: seed})
}

// TestCheckerboardConvergence verifies both ground states appear with
// non-trivial occurrence counts.
func (s *GibbsSuite) TestCheckerboardConvergence() {
	m := checkerboard(s.T(), nil)

	pool, err := s.sampler(7).Sample(context.Background(), m, 2000, 1)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), pool.Size(), 2000)

	keys := make(map[string]int)
	for _, smp := range pool.All() {
		keys[smp.Key()] = smp.Occurrences()
	}
	require.Greater(s.T(), keys["+-+-"], 200, "ground state (1,-1,1,-1) underrepresented")
	require.Greater(s.T(), keys["-+-+"], 200, "ground state (-1,1,-1,1) underrepresented")
}

// TestBiasedCheckerboard verifies a bias makes one ground state dominate.
func (s *GibbsSuite) TestBiasedCheckerboard() {
	m := checkerboard(s.T(), map[int]float64{0: 2})

	pool, err := s.sampler(11).Sample(context.Background(), m, 2000, 1)
	require.NoError(s.T(), err)

	best := pool.Best(1)[0]
	require.Equal(s.T(), []model.Spin{-1, 1, -1, 1}, best.Tuple())
	require.Greater(s.T(), best.Occurrences(), pool.Size()/2)
}

// TestClampedModel verifies the chain only touches free variables and
// expands clamped values into every recorded sample.
func (s *GibbsSuite) TestClampedModel() {
	m := checkerboard(s.T(), nil)
	require.NoError(s.T(), m.Clamp(0, model.Up))

	pool, err := s.sampler(3).Sample(context.Background(), m, 500, 1)
	require.NoError(s.T(), err)
	for _, smp := range pool.All() {
		require.Equal(s.T(), model.Up, smp.Assignment()[0])
	}
	require.Equal(s.T(), []model.Spin{1, -1, 1, -1}, pool.Best(1)[0].Tuple())
}

// TestDeterministicSeed verifies identical seeds reproduce identical pools.
func (s *GibbsSuite) TestDeterministicSeed() {
	run := func() map[string]int {
		m := checkerboard(s.T(), nil)
		pool, err := s.sampler(42).Sample(context.Background(), m, 300, 1)
		require.NoError(s.T(), err)
		out := make(map[string]int)
		for _, smp := range pool.All() {
			out[smp.Key()] = smp.Occurrences()
		}
		return out
	}
	require.Equal(s.T(), run(), run())
}

// TestDegenerateStateSpace verifies termination when the requested count
// exceeds the number of distinct assignments: occurrences accumulate on
// repeats.
func (s *GibbsSuite) TestDegenerateStateSpace() {
	m, err := model.New(nil, map[int]float64{0: 1})
	require.NoError(s.T(), err)

	pool, err := s.sampler(5).Sample(context.Background(), m, 50, 1)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), pool.Size(), 50)
	require.LessOrEqual(s.T(), pool.Distinct(), 2)
}

// TestAllClamped verifies the zero-free-variable edge case terminates and
// repeats the single determined assignment.
func (s *GibbsSuite) TestAllClamped() {
	m := checkerboard(s.T(), nil)
	for v, sp := range map[int]model.Spin{0: 1, 1: -1, 2: 1, 3: -1} {
		require.NoError(s.T(), m.Clamp(v, sp))
	}

	pool, err := s.sampler(1).Sample(context.Background(), m, 5, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, pool.Size())
	require.Equal(s.T(), 1, pool.Distinct())
	require.InDelta(s.T(), -4.0, pool.Best(1)[0].Energy(), 1e-9)
}

// TestNoSamplesRequested verifies a non-positive target yields an empty pool.
func (s *GibbsSuite) TestNoSamplesRequested() {
	m := checkerboard(s.T(), nil)
	pool, err := s.sampler(1).Sample(context.Background(), m, 0, 1)
	require.NoError(s.T(), err)
	require.Zero(s.T(), pool.Size())
}

// TestInvalidTemperature verifies the temperature guard.
func (s *GibbsSuite) TestInvalidTemperature() {
	m := checkerboard(s.T(), nil)
	for _, temperature := range []float64{0, -1} {
		_, err := s.sampler(1).Sample(context.Background(), m, 10, temperature)
		require.ErrorIs(s.T(), err, sample.ErrInvalidTemperature)
	}
}

// TestCancellation verifies a canceled context stops the chain between
// sweeps.
func (s *GibbsSuite) TestCancellation() {
	m := checkerboard(s.T(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.sampler(1).Sample(ctx, m, 10, 1)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestExplicitChainParams verifies explicit burn-in/thinning are honored:
// with thinning 1 and no burn-in every sweep records, so the sweep count
// equals the occurrence total.
func (s *GibbsSuite) TestExplicitChainParams() {
	m := checkerboard(s.T(), nil)
	sampler := gibbs.New(gibbs.Options{BurnIn: 1, Thinning: 1, Seed: 9})

	pool, err := sampler.Sample(context.Background(), m, 100, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 100, pool.Size())
}

func TestGibbsSuite(t *testing.T) {
	suite.Run(t, new(GibbsSuite))
}
