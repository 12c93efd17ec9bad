package field

import "github.com/xiangxiecrypto/primus-fhe/utils/sampling"

// BinarySampler draws 0 and 1 with probability 1/2 each.
type BinarySampler struct {
	src bitSource
}

// NewBinarySampler creates a BinarySampler reading from prng.
func NewBinarySampler(prng sampling.PRNG) *BinarySampler {
	return &BinarySampler{src: bitSource{prng: prng}}
}

// Sample returns a single draw.
func (s *BinarySampler) Sample() Fp32 {
	return Fp32(s.src.next())
}

// Read fills values with fresh draws.
func (s *BinarySampler) Read(values []Fp32) {
	for i := range values {
		values[i] = s.Sample()
	}
}

// ReadNew returns n fresh draws.
func (s *BinarySampler) ReadNew(n int) []Fp32 {
	values := make([]Fp32, n)
	s.Read(values)
	return values
}
