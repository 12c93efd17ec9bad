package modulus

// Factor stores an operand together with the precomputed quotient
// ⌊value·2^W/modulus⌋, trading one division at construction for a cheap
// high-product quotient estimate on every multiplication. It pays off when
// the same operand multiplies many values, as with the twiddle factors of a
// number-theoretic transform.
//
// The quotient is bound to the modulus it was computed against: callers must
// pass that same modulus to MulLazy and Mul, and refresh the Factor through
// Set or SetModulus whenever either side changes.
type Factor[T Word] struct {
	value    T
	quotient T
}

// NewFactor creates a Factor for the given operand. The operand must already
// be reduced modulo the given modulus.
func NewFactor[T Word](value, modulus T) Factor[T] {
	quotient, _ := div2by1(value, 0, modulus)
	return Factor[T]{
		value:    value,
		quotient: quotient,
	}
}

// Value returns the operand.
func (f Factor[T]) Value() T {
	return f.value
}

// Quotient returns ⌊value·2^W/modulus⌋.
func (f Factor[T]) Quotient() T {
	return f.quotient
}

// MulLazy returns value·rhs mod modulus in the range [0, 2·modulus).
//
// The quotient estimate q = ⌊quotient·rhs/2^W⌋ is within one of the true
// quotient, so the wrapping difference value·rhs − q·modulus never exceeds
// 2·modulus. Chains of lazy products can defer the final correction to a
// single conditional subtraction.
func (f Factor[T]) MulLazy(rhs, modulus T) T {
	q, _ := wideMul(f.quotient, rhs)
	return f.value*rhs - q*modulus
}

// Mul returns value·rhs mod modulus in the range [0, modulus).
func (f Factor[T]) Mul(rhs, modulus T) T {
	r := f.MulLazy(rhs, modulus)
	if r >= modulus {
		r -= modulus
	}
	return r
}

// Set replaces the operand and recomputes the quotient against the given
// modulus.
func (f *Factor[T]) Set(value, modulus T) {
	f.value = value
	f.quotient, _ = div2by1(value, 0, modulus)
}

// SetModulus recomputes the quotient of the current operand against a new
// modulus. The operand must already be reduced modulo the new modulus.
func (f *Factor[T]) SetModulus(modulus T) {
	f.quotient, _ = div2by1(f.value, 0, modulus)
}
