package field

import "github.com/xiangxiecrypto/primus-fhe/utils/sampling"

// ternaryValues is indexed by the sum of two fair bits, hitting the ends
// with probability 1/4 and the middle with probability 1/2.
var ternaryValues = [3]Fp32{P - 1, 0, 1}

// TernarySampler draws P−1, 0 and 1 with probabilities 1/4, 1/2 and 1/4.
type TernarySampler struct {
	src bitSource
}

// NewTernarySampler creates a TernarySampler reading from prng.
func NewTernarySampler(prng sampling.PRNG) *TernarySampler {
	return &TernarySampler{src: bitSource{prng: prng}}
}

// Sample returns a single draw.
func (s *TernarySampler) Sample() Fp32 {
	return ternaryValues[s.src.next()+s.src.next()]
}

// Read fills values with fresh draws.
func (s *TernarySampler) Read(values []Fp32) {
	for i := range values {
		values[i] = s.Sample()
	}
}

// ReadNew returns n fresh draws.
func (s *TernarySampler) ReadNew(n int) []Fp32 {
	values := make([]Fp32, n)
	s.Read(values)
	return values
}
