package field

import (
	"errors"
	"fmt"

	"github.com/xiangxiecrypto/primus-fhe/modulus"
	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// Root is a field element in twiddle form: the element bundled with its
// precomputed multiplication quotient against P, so that transform passes
// multiplying many values by the same root skip the full reduction. Roots
// are derived from elements through ToRoot, never assembled by hand.
type Root = modulus.Factor[Fp32]

// ErrNoPrimitiveRoot is returned when no primitive root of unity exists, or
// can be found within the bounded search, for a requested degree.
var ErrNoPrimitiveRoot = errors.New("field: no primitive root of unity")

// ToRoot converts x to twiddle form.
func (x Fp32) ToRoot() Root {
	return modulus.NewFactor(x, P)
}

// FromRoot recovers the field element from its twiddle form.
func FromRoot(root Root) Fp32 {
	return root.Value()
}

// MulRoot returns x·root using the root's precomputed quotient.
func (x Fp32) MulRoot(root Root) Fp32 {
	return root.Mul(x, P)
}

// IsPrimitiveRoot reports whether root is a primitive degree-th root of
// unity, by checking that root^(degree/2) is −1. It panics unless degree is
// a power of two greater than 1.
func IsPrimitiveRoot(root Fp32, degree uint32) bool {
	if degree <= 1 || degree&(degree-1) != 0 {
		panic(fmt.Sprintf("field: degree must be a power of two greater than 1, got %d", degree))
	}
	if root == 0 {
		return false
	}
	return root.Pow(degree>>1) == P-1
}

// TryPrimitiveRoot searches for a primitive degree-th root of unity by
// raising uniform candidates to the power (P−1)/degree. The degree must
// divide P−1, otherwise no such root exists and the search fails before
// drawing any randomness. The search is capped at 100 attempts.
func TryPrimitiveRoot(prng sampling.PRNG, degree uint32) (Fp32, error) {

	quotient := (P - 1) / degree
	if quotient*degree != P-1 {
		return 0, fmt.Errorf("%w: degree %d does not divide %d", ErrNoPrimitiveRoot, degree, uint32(P-1))
	}

	sampler := NewUniformSampler(prng)

	for i := 0; i < 100; i++ {

		candidate := sampler.Sample()
		for candidate < 2 {
			candidate = sampler.Sample()
		}

		if w := candidate.Pow(quotient); IsPrimitiveRoot(w, degree) {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: search exhausted its 100 attempts for degree %d", ErrNoPrimitiveRoot, degree)
}

// TryMinimalPrimitiveRoot returns the smallest primitive degree-th root of
// unity. Successive multiplication by the square of a found root walks every
// root of the same degree, so the minimum does not depend on which candidate
// the random search lands on.
func TryMinimalPrimitiveRoot(prng sampling.PRNG, degree uint32) (Fp32, error) {

	root, err := TryPrimitiveRoot(prng, degree)
	if err != nil {
		return 0, err
	}

	rootSq := root.Mul(root)
	current := root

	for i := uint32(0); i < degree; i++ {
		if current < root {
			root = current
		}
		current = current.Mul(rootSq)
	}

	return root, nil
}
