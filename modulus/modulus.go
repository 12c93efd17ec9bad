// Package modulus implements modular reduction over fixed-width unsigned
// words. Arbitrary moduli go through Barrett reduction with a precomputed
// two-limb ratio, power-of-two moduli through a single mask. Factor
// additionally precomputes a per-operand quotient for repeated products
// against the same modulus.
package modulus

import "fmt"

// Modulus stores a modulus value together with the constants used by Barrett
// reduction. ratio holds the two little-endian limbs of ⌊2^(2W)/value⌋, where
// W is the bit width of T, computed once at construction by long division.
//
// A Modulus is immutable after construction and freely copyable.
type Modulus[T Word] struct {
	value    T
	ratio    [2]T
	bitCount int
}

// New creates a Modulus for the given value.
//
// The value must be greater than 1 and its bit length must be smaller than
// W-1, so that the sums formed during reduction never overflow a word.
func New[T Word](value T) (Modulus[T], error) {

	if value <= 1 {
		return Modulus[T]{}, fmt.Errorf("modulus: value must be greater than 1, got %d", value)
	}

	bitCount := bitLen(value)
	if bitCount >= wordBits[T]()-1 {
		return Modulus[T]{}, fmt.Errorf("modulus: value %d needs %d bits, at most %d are supported", value, bitCount, wordBits[T]()-2)
	}

	// ratio = ⌊2^(2W)/value⌋, limb by limb. The numerator is [0, 0, 1] in
	// little-endian limbs; the quotient limb above ratio[1] is always zero
	// since value > 1.
	hi, rem := div2by1(1, 0, value)
	lo, _ := div2by1(rem, 0, value)

	return Modulus[T]{
		value:    value,
		ratio:    [2]T{lo, hi},
		bitCount: bitCount,
	}, nil
}

// MustNew creates a Modulus for the given value and panics if the value is
// invalid.
func MustNew[T Word](value T) Modulus[T] {
	m, err := New(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Value returns the modulus value.
func (m Modulus[T]) Value() T {
	return m.value
}

// Ratio returns the two little-endian limbs of ⌊2^(2W)/value⌋.
func (m Modulus[T]) Ratio() [2]T {
	return m.ratio
}

// BitCount returns the bit length of the modulus value.
func (m Modulus[T]) BitCount() int {
	return m.bitCount
}

// Mask returns 2^BitCount − 1, the smallest power-of-two mask covering the
// modulus value.
func (m Modulus[T]) Mask() T {
	return (T(1) << m.bitCount) - 1
}

// Reduce returns x mod value.
//
// The quotient estimate q3 = ⌊x·ratio/2^(2W)⌋ is within one of ⌊x/value⌋, so
// x − q3·value lies in [0, 2·value) and a single conditional subtraction
// produces the canonical result.
func (m Modulus[T]) Reduce(x T) T {

	tmp, _ := wideMul(x, m.ratio[0])
	hi, lo := wideMul(x, m.ratio[1])
	_, carry := addCarry(lo, tmp)
	q3 := hi + carry

	r := x - q3*m.value
	if r >= m.value {
		r -= m.value
	}
	return r
}

// ReduceWide returns (hi·2^W + lo) mod value.
//
// The quotient estimate q3 = ⌊(hi·2^W + lo)·ratio/2^(2W)⌋ is assembled from
// the four cross products of (lo, hi) with the two ratio limbs. Only its low
// word is kept, since the remainder is recovered modulo 2^W.
func (m Modulus[T]) ReduceWide(lo, hi T) T {

	aHi, _ := wideMul(lo, m.ratio[0])
	bHi, bLo := wideMul(lo, m.ratio[1])
	bLo, carry := addCarry(bLo, aHi)
	bHi += carry

	cHi, cLo := wideMul(hi, m.ratio[0])
	_, carry = addCarry(bLo, cLo)
	q3 := hi*m.ratio[1] + bHi + cHi + carry

	r := lo - q3*m.value
	if r >= m.value {
		r -= m.value
	}
	return r
}

// ReduceSlice interprets values as the little-endian limbs of a multi-word
// integer and returns it mod value. The limbs fold right to left through
// ReduceWide, so no partial result ever exceeds two words. It panics on an
// empty slice.
func (m Modulus[T]) ReduceSlice(values []T) T {

	switch len(values) {
	case 0:
		panic("modulus: reduce of empty slice")
	case 1:
		return m.Reduce(values[0])
	}

	acc := values[len(values)-1]
	for i := len(values) - 2; i >= 0; i-- {
		acc = m.ReduceWide(values[i], acc)
	}
	return acc
}

// AddMod returns x+y mod value. Both operands must already be reduced.
func (m Modulus[T]) AddMod(x, y T) T {
	r := x + y
	if r >= m.value {
		r -= m.value
	}
	return r
}

// SubMod returns x−y mod value. Both operands must already be reduced.
func (m Modulus[T]) SubMod(x, y T) T {
	if x >= y {
		return x - y
	}
	return m.value - y + x
}

// NegMod returns −x mod value. The operand must already be reduced.
func (m Modulus[T]) NegMod(x T) T {
	if x == 0 {
		return 0
	}
	return m.value - x
}

// MulMod returns x·y mod value. Both operands must already be reduced.
func (m Modulus[T]) MulMod(x, y T) T {
	hi, lo := wideMul(x, y)
	return m.ReduceWide(lo, hi)
}

// PowMod returns base^exp mod value by binary exponentiation. The base must
// already be reduced. PowMod(0, 0) is 1.
func (m Modulus[T]) PowMod(base, exp T) T {

	if exp == 0 {
		return 1
	}

	power := base

	tz := trailingZeros(exp)
	for i := 0; i < tz; i++ {
		power = m.MulMod(power, power)
	}
	exp >>= tz

	if exp == 1 {
		return power
	}

	intermediate := power
	n := bitLen(exp)
	for i := 1; i < n; i++ {
		exp >>= 1
		power = m.MulMod(power, power)
		if exp&1 == 1 {
			intermediate = m.MulMod(intermediate, power)
		}
	}
	return intermediate
}
