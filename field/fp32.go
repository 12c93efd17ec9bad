// Package field implements the 32-bit prime field used throughout the
// library: canonical element arithmetic, gadget decomposition, primitive
// root search and the sampling distributions for key and noise generation.
package field

import (
	"fmt"

	"github.com/xiangxiecrypto/primus-fhe/modulus"
	"github.com/xiangxiecrypto/primus-fhe/utils"
)

// P is the prime modulus of the field, 63·2^21 + 1. Its 27-bit size leaves
// headroom for lazy sums in a 32-bit word, and its 2-adicity supports
// negacyclic transforms up to size 2^20.
const P = 0x7e00001

// barrett carries the reduction constants shared by every product in the
// field.
var barrett = modulus.MustNew[Fp32](P)

// Fp32 is an element of the prime field of order P, stored as the canonical
// representative in [0, P). Arithmetic methods expect canonical operands and
// return canonical results.
type Fp32 uint32

// Additive and multiplicative identities.
const (
	Zero Fp32 = 0
	One  Fp32 = 1
)

// New wraps a raw value as a field element. The value is expected to already
// lie in [0, P); it is not reduced.
func New(value uint32) Fp32 {
	return Fp32(value)
}

// Uint32 returns the canonical representative as a raw word.
func (x Fp32) Uint32() uint32 {
	return uint32(x)
}

func (x Fp32) String() string {
	return fmt.Sprintf("[(%d)_%d]", uint32(x), P)
}

// Add returns x+y.
func (x Fp32) Add(y Fp32) Fp32 {
	r := x + y
	if r >= P {
		r -= P
	}
	return r
}

// Sub returns x−y.
func (x Fp32) Sub(y Fp32) Fp32 {
	if x >= y {
		return x - y
	}
	return P - y + x
}

// Neg returns −x.
func (x Fp32) Neg() Fp32 {
	if x == 0 {
		return 0
	}
	return P - x
}

// Mul returns x·y.
func (x Fp32) Mul(y Fp32) Fp32 {
	return barrett.MulMod(x, y)
}

// MulScalar returns x·scalar for a raw scalar word.
func (x Fp32) MulScalar(scalar uint32) Fp32 {
	return barrett.MulMod(x, Fp32(scalar))
}

// Pow returns x^exp by binary exponentiation. Pow(0, 0) is 1.
func (x Fp32) Pow(exp uint32) Fp32 {
	return barrett.PowMod(x, Fp32(exp))
}

// Inv returns the multiplicative inverse of x by Fermat exponentiation.
// Inv of zero is undefined and not checked.
func (x Fp32) Inv() Fp32 {
	return x.Pow(P - 2)
}

// Div returns x/y. Division by zero is undefined and not checked.
func (x Fp32) Div(y Fp32) Fp32 {
	return barrett.MulMod(x, y.Inv())
}

// IsPrimeField reports whether the field modulus is prime.
func IsPrimeField() bool {
	return utils.IsPrime(P)
}
