package field

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// randSource adapts a sampling.PRNG to math/rand.Source64 so the standard
// library's normal transform can draw from the keyed stream.
type randSource struct {
	prng sampling.PRNG
	buf  [8]byte
}

func (s *randSource) Uint64() uint64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

func (s *randSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *randSource) Seed(int64) {}

// GaussianSampler draws from the normal distribution N(Mean, StdDev²) folded
// into [0, P) by repeated addition or subtraction of P, truncating the
// fractional part.
type GaussianSampler struct {
	xe   DiscreteGaussian
	rand *rand.Rand
}

// NewGaussianSampler creates a GaussianSampler reading from prng. It fails
// if the standard deviation is negative or not finite, or if the mean is not
// finite.
func NewGaussianSampler(prng sampling.PRNG, X DiscreteGaussian) (*GaussianSampler, error) {
	if math.IsNaN(X.StdDev) || math.IsInf(X.StdDev, 0) || X.StdDev < 0 {
		return nil, fmt.Errorf("field: invalid distribution: standard deviation %f must be finite and non-negative", X.StdDev)
	}
	if math.IsNaN(X.Mean) || math.IsInf(X.Mean, 0) {
		return nil, fmt.Errorf("field: invalid distribution: mean %f must be finite", X.Mean)
	}
	return &GaussianSampler{
		xe:   X,
		rand: rand.New(&randSource{prng: prng}),
	}, nil
}

// Sample returns a single draw.
func (s *GaussianSampler) Sample() Fp32 {
	value := s.xe.Mean + s.rand.NormFloat64()*s.xe.StdDev
	for value < 0 {
		value += P
	}
	for value >= P {
		value -= P
	}
	return Fp32(uint32(value))
}

// Read fills values with fresh draws.
func (s *GaussianSampler) Read(values []Fp32) {
	for i := range values {
		values[i] = s.Sample()
	}
}

// ReadNew returns n fresh draws.
func (s *GaussianSampler) ReadNew(n int) []Fp32 {
	values := make([]Fp32, n)
	s.Read(values)
	return values
}
