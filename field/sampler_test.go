package field

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

func TestNewSampler(t *testing.T) {

	prng, err := sampling.NewPRNG()
	require.NoError(t, err)

	for _, X := range []DistributionParameters{
		Uniform{},
		Binary{},
		Ternary{},
		DiscreteGaussian{Mean: 0, StdDev: 3.2},
	} {
		t.Run(X.Type(), func(t *testing.T) {

			s, err := NewSampler(prng, X)
			require.NoError(t, err)

			values := s.ReadNew(256)
			require.Len(t, values, 256)
			for _, v := range values {
				require.Less(t, uint32(v), uint32(P))
			}

			buf := make([]Fp32, 64)
			s.Read(buf)
		})
	}

	_, err = NewSampler(prng, nil)
	require.Error(t, err)
}

// keyedStream returns n draws from a sampler seeded with the given key.
func keyedStream(t *testing.T, key []byte, X DistributionParameters, n int) []Fp32 {
	prng, err := sampling.NewKeyedPRNG(key)
	require.NoError(t, err)
	s, err := NewSampler(prng, X)
	require.NoError(t, err)
	return s.ReadNew(n)
}

func TestSamplerDeterminism(t *testing.T) {

	key := []byte("sampler determinism test key")

	for _, X := range []DistributionParameters{
		Uniform{},
		Binary{},
		Ternary{},
		DiscreteGaussian{Mean: 1, StdDev: 3.2},
	} {
		t.Run(X.Type(), func(t *testing.T) {
			require.Equal(t, keyedStream(t, key, X, 128), keyedStream(t, key, X, 128))
		})
	}
}

func TestUniformSampler(t *testing.T) {

	const n = 10000

	s := testSampler(t)

	data := make([]float64, n)
	for i := range data {
		v := s.Sample()
		require.Less(t, uint32(v), uint32(P))
		data[i] = float64(v)
	}

	mean, err := stats.Mean(data)
	require.NoError(t, err)
	require.InDelta(t, float64(P)/2, mean, 0.05*P)
}

func TestBinarySampler(t *testing.T) {

	const n = 10000

	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	s := NewBinarySampler(prng)

	var ones int
	for i := 0; i < n; i++ {
		v := s.Sample()
		require.Contains(t, []Fp32{0, 1}, v)
		if v == 1 {
			ones++
		}
	}

	require.InDelta(t, 0.5, float64(ones)/n, 0.05)
}

func TestTernarySampler(t *testing.T) {

	const n = 10000

	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	s := NewTernarySampler(prng)

	counts := map[Fp32]int{}
	for i := 0; i < n; i++ {
		v := s.Sample()
		require.Contains(t, []Fp32{P - 1, 0, 1}, v)
		counts[v]++
	}

	require.InDelta(t, 0.25, float64(counts[P-1])/n, 0.05)
	require.InDelta(t, 0.50, float64(counts[0])/n, 0.05)
	require.InDelta(t, 0.25, float64(counts[1])/n, 0.05)
}

func TestGaussianSampler(t *testing.T) {

	const n = 10000
	const sigma = 3.2

	prng, err := sampling.NewPRNG()
	require.NoError(t, err)

	s, err := NewGaussianSampler(prng, DiscreteGaussian{Mean: 0, StdDev: sigma})
	require.NoError(t, err)

	// Unfold the canonical representatives back to signed values around 0.
	data := make([]float64, n)
	for i := range data {
		v := s.Sample()
		require.Less(t, uint32(v), uint32(P))
		if v > P/2 {
			data[i] = -float64(P - v)
		} else {
			data[i] = float64(v)
		}
		require.LessOrEqual(t, data[i], 10*sigma)
		require.GreaterOrEqual(t, data[i], -10*sigma)
	}

	// Truncating the folded draws shifts the mean by up to one unit.
	mean, err := stats.Mean(data)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 1)

	stdDev, err := stats.StandardDeviation(data)
	require.NoError(t, err)
	require.InDelta(t, sigma, stdDev, 0.5)
}

func TestGaussianSamplerParameters(t *testing.T) {

	prng, err := sampling.NewPRNG()
	require.NoError(t, err)

	inf := math.Inf(1)
	nan := math.NaN()

	for _, X := range []DiscreteGaussian{
		{Mean: 0, StdDev: -1},
		{Mean: 0, StdDev: inf},
		{Mean: 0, StdDev: nan},
		{Mean: inf, StdDev: 3.2},
		{Mean: nan, StdDev: 3.2},
	} {
		_, err := NewGaussianSampler(prng, X)
		require.Error(t, err)
	}

	_, err = NewGaussianSampler(prng, DiscreteGaussian{Mean: -4.5, StdDev: 0})
	require.NoError(t, err)
}
