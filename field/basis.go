package field

import (
	"fmt"
	"math/bits"
)

// Basis is a power-of-two gadget decomposition basis. A field element splits
// into exactly DecomposeLen little-endian digits of Bits bits each, and
// Compose reassembles them.
type Basis struct {
	value  uint32
	bits   int
	mask   uint32
	length int
}

// NewBasis creates a decomposition basis. It panics if basis is not a power
// of two greater than 1.
func NewBasis(basis uint32) Basis {
	if basis <= 1 || basis&(basis-1) != 0 {
		panic(fmt.Sprintf("field: basis must be a power of two greater than 1, got %d", basis))
	}
	b := bits.TrailingZeros32(basis)
	return Basis{
		value:  basis,
		bits:   b,
		mask:   ^uint32(0) >> (32 - b),
		length: (barrett.BitCount() + b - 1) / b,
	}
}

// Value returns the basis.
func (b Basis) Value() uint32 {
	return b.value
}

// Bits returns log2 of the basis, the width of one digit.
func (b Basis) Bits() int {
	return b.bits
}

// Mask returns basis − 1.
func (b Basis) Mask() uint32 {
	return b.mask
}

// DecomposeLen returns the number of digits a field element splits into,
// ⌈bits(P)/Bits⌉.
func (b Basis) DecomposeLen() int {
	return b.length
}

// Decompose splits x into little-endian digits of Bits bits each, zero
// padded to exactly DecomposeLen entries.
func (b Basis) Decompose(x Fp32) []Fp32 {
	digits := make([]Fp32, 0, b.length)
	temp := uint32(x)
	for temp != 0 {
		digits = append(digits, Fp32(temp&b.mask))
		temp >>= b.bits
	}
	for len(digits) < b.length {
		digits = append(digits, 0)
	}
	return digits
}

// Compose evaluates Σ digits[i]·basis^i, the inverse of Decompose.
func (b Basis) Compose(digits []Fp32) Fp32 {
	var acc Fp32
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.MulScalar(b.value).Add(digits[i])
	}
	return acc
}
