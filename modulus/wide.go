package modulus

import (
	"math/bits"
	"unsafe"
)

// Word is the set of unsigned word types the reduction machinery is defined
// over. Arithmetic on a Word wraps on overflow; every algorithm in this
// package relies on wrapping semantics, never on saturation or panics.
type Word interface {
	~uint32 | ~uint64
}

// wordBits returns the width of T in bits.
func wordBits[T Word]() int {
	return int(unsafe.Sizeof(T(0))) << 3
}

// bitLen returns the number of bits required to represent x.
func bitLen[T Word](x T) int {
	if wordBits[T]() == 32 {
		return bits.Len32(uint32(x))
	}
	return bits.Len64(uint64(x))
}

// trailingZeros returns the number of trailing zero bits in x.
func trailingZeros[T Word](x T) int {
	if wordBits[T]() == 32 {
		return bits.TrailingZeros32(uint32(x))
	}
	return bits.TrailingZeros64(uint64(x))
}

// wideMul returns the full 2W-bit product of x and y as (hi, lo).
func wideMul[T Word](x, y T) (hi, lo T) {
	if wordBits[T]() == 32 {
		h, l := bits.Mul32(uint32(x), uint32(y))
		return T(h), T(l)
	}
	h, l := bits.Mul64(uint64(x), uint64(y))
	return T(h), T(l)
}

// div2by1 returns ⌊(hi·2^W + lo)/d⌋ and the corresponding remainder.
// It requires hi < d.
func div2by1[T Word](hi, lo, d T) (quo, rem T) {
	if wordBits[T]() == 32 {
		q, r := bits.Div32(uint32(hi), uint32(lo), uint32(d))
		return T(q), T(r)
	}
	q, r := bits.Div64(uint64(hi), uint64(lo), uint64(d))
	return T(q), T(r)
}

// addCarry returns x+y and the carry out.
func addCarry[T Word](x, y T) (sum, carry T) {
	sum = x + y
	if sum < x {
		carry = 1
	}
	return
}
