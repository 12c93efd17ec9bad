package field

import (
	"encoding/binary"

	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// uniformMask covers the bit length of P; masked draws landing in [P, 2^27)
// are rejected.
var uniformMask = uint32(barrett.Mask())

// UniformSampler draws canonical representatives uniformly in [0, P).
type UniformSampler struct {
	prng   sampling.PRNG
	buffer []byte
	ptr    int
}

// NewUniformSampler creates a UniformSampler reading from prng.
func NewUniformSampler(prng sampling.PRNG) *UniformSampler {
	buffer := make([]byte, 1024)
	return &UniformSampler{
		prng:   prng,
		buffer: buffer,
		ptr:    len(buffer),
	}
}

// Sample returns a single draw.
func (s *UniformSampler) Sample() Fp32 {
	for {
		if s.ptr == len(s.buffer) {
			if _, err := s.prng.Read(s.buffer); err != nil {
				panic(err)
			}
			s.ptr = 0
		}
		v := binary.LittleEndian.Uint32(s.buffer[s.ptr:]) & uniformMask
		s.ptr += 4
		if v < P {
			return Fp32(v)
		}
	}
}

// Read fills values with fresh draws.
func (s *UniformSampler) Read(values []Fp32) {
	for i := range values {
		values[i] = s.Sample()
	}
}

// ReadNew returns n fresh draws.
func (s *UniformSampler) ReadNew(n int) []Fp32 {
	values := make([]Fp32, n)
	s.Read(values)
	return values
}
