package field

import (
	"encoding/binary"
	"fmt"

	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// DistributionParameters describe one of the sampling distributions defined
// over the field.
type DistributionParameters interface {
	// Type returns the name of the distribution.
	Type() string
}

// Uniform samples canonical representatives uniformly in [0, P).
type Uniform struct{}

// Binary samples 0 and 1 with probability 1/2 each.
type Binary struct{}

// Ternary samples −1 and 1 with probability 1/4 each and 0 with probability
// 1/2, with −1 represented canonically as P−1.
type Ternary struct{}

// DiscreteGaussian samples a continuous normal with the given mean and
// standard deviation, folded into [0, P).
type DiscreteGaussian struct {
	Mean   float64
	StdDev float64
}

func (Uniform) Type() string          { return "Uniform" }
func (Binary) Type() string           { return "Binary" }
func (Ternary) Type() string          { return "Ternary" }
func (DiscreteGaussian) Type() string { return "DiscreteGaussian" }

// Sampler draws field elements from one of the supported distributions.
// Samplers are not safe for concurrent use.
type Sampler interface {
	// Sample returns a single draw.
	Sample() Fp32
	// Read fills values with fresh draws.
	Read(values []Fp32)
	// ReadNew returns n fresh draws.
	ReadNew(n int) []Fp32
}

// NewSampler instantiates the sampler matching the given distribution
// parameters, reading randomness from prng.
func NewSampler(prng sampling.PRNG, X DistributionParameters) (Sampler, error) {
	switch x := X.(type) {
	case Uniform:
		return NewUniformSampler(prng), nil
	case Binary:
		return NewBinarySampler(prng), nil
	case Ternary:
		return NewTernarySampler(prng), nil
	case DiscreteGaussian:
		return NewGaussianSampler(prng, x)
	default:
		return nil, fmt.Errorf("field: invalid distribution: want field.Uniform, field.Binary, field.Ternary or field.DiscreteGaussian but have %T", X)
	}
}

// bitSource dispenses fair bits from buffered 64-bit draws.
type bitSource struct {
	prng sampling.PRNG
	buf  [8]byte
	bits uint64
	left int
}

func (s *bitSource) next() uint64 {
	if s.left == 0 {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.bits = binary.LittleEndian.Uint64(s.buf[:])
		s.left = 64
	}
	b := s.bits & 1
	s.bits >>= 1
	s.left--
	return b
}
