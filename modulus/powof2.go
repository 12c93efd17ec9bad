package modulus

import "fmt"

// PowOf2 is a modulus of the form 2^k. Reduction is a single AND against the
// stored mask 2^k − 1, and intermediate arithmetic can wrap freely through
// the word since wrapping modulo 2^W agrees with the result modulo 2^k.
type PowOf2[T Word] struct {
	mask T
}

// NewPowOf2 creates a PowOf2 for the given value, which must be a power of
// two greater than 1.
func NewPowOf2[T Word](value T) (PowOf2[T], error) {
	if value <= 1 || value&(value-1) != 0 {
		return PowOf2[T]{}, fmt.Errorf("modulus: value must be a power of two greater than 1, got %d", value)
	}
	return PowOf2[T]{mask: value - 1}, nil
}

// MustNewPowOf2 creates a PowOf2 for the given value and panics if the value
// is invalid.
func MustNewPowOf2[T Word](value T) PowOf2[T] {
	m, err := NewPowOf2(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Mask returns value − 1.
func (m PowOf2[T]) Mask() T {
	return m.mask
}

// Value returns the modulus value.
func (m PowOf2[T]) Value() T {
	return m.mask + 1
}

// Reduce returns x mod value.
func (m PowOf2[T]) Reduce(x T) T {
	return x & m.mask
}

// AddReduce returns x+y mod value.
func (m PowOf2[T]) AddReduce(x, y T) T {
	return (x + y) & m.mask
}

// SubReduce returns x−y mod value.
func (m PowOf2[T]) SubReduce(x, y T) T {
	return (x - y) & m.mask
}

// NegReduce returns −x mod value.
func (m PowOf2[T]) NegReduce(x T) T {
	return -x & m.mask
}

// MulReduce returns x·y mod value.
func (m PowOf2[T]) MulReduce(x, y T) T {
	return (x * y) & m.mask
}

// ExpReduce returns x^exp mod value by binary exponentiation. Intermediate
// products wrap and a single mask recovers the result. ExpReduce(0, 0) is 1.
func (m PowOf2[T]) ExpReduce(x, exp T) T {

	if exp == 0 {
		return 1
	}

	power := x

	tz := trailingZeros(exp)
	for i := 0; i < tz; i++ {
		power *= power
	}
	exp >>= tz

	if exp == 1 {
		return power & m.mask
	}

	intermediate := power
	n := bitLen(exp)
	for i := 1; i < n; i++ {
		exp >>= 1
		power *= power
		if exp&1 == 1 {
			intermediate *= power
		}
	}
	return intermediate & m.mask
}

// ExpPowOf2Reduce returns x^(2^expLog) mod value by repeated squaring.
func (m PowOf2[T]) ExpPowOf2Reduce(x T, expLog int) T {
	for i := 0; i < expLog; i++ {
		x *= x
	}
	return x & m.mask
}

// DotProductReduce returns Σ lhs[i]·rhs[i] mod value. The accumulation wraps
// and a single mask recovers the result. It panics if the slices have
// different lengths.
func (m PowOf2[T]) DotProductReduce(lhs, rhs []T) T {
	if len(lhs) != len(rhs) {
		panic(fmt.Sprintf("modulus: slice lengths do not match: %d != %d", len(lhs), len(rhs)))
	}
	var acc T
	for i := range lhs {
		acc += lhs[i] * rhs[i]
	}
	return acc & m.mask
}
