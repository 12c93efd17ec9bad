package ntt

import (
	"fmt"

	"github.com/xiangxiecrypto/primus-fhe/field"
)

// Transform computes the in-place negacyclic transform of values, taking
// coefficients in natural order to evaluations in bit-reversed order. It
// panics if len(values) differs from the table size.
func (t *Table) Transform(values []field.Fp32) {

	if len(values) != t.n {
		panic(fmt.Sprintf("ntt: transform size mismatch: %d != %d", len(values), t.n))
	}

	if countEnabled.Load() {
		transformCount.Add(1)
	}

	gap := t.n
	for m := 1; m < t.n; m <<= 1 {
		gap >>= 1
		for i := 0; i < m; i++ {
			j1 := 2 * i * gap
			j2 := j1 + gap
			w := t.rootPowers[m+i]
			for j := j1; j < j2; j++ {
				u := values[j]
				v := values[j+gap].MulRoot(w)
				values[j] = u.Add(v)
				values[j+gap] = u.Sub(v)
			}
		}
	}
}

// InverseTransform computes the in-place inverse transform of values, taking
// evaluations in bit-reversed order back to coefficients in natural order,
// including the final scaling by 1/n. It panics if len(values) differs from
// the table size.
func (t *Table) InverseTransform(values []field.Fp32) {

	if len(values) != t.n {
		panic(fmt.Sprintf("ntt: transform size mismatch: %d != %d", len(values), t.n))
	}

	if countEnabled.Load() {
		inverseTransformCount.Add(1)
	}

	gap := 1
	idx := 1
	for m := t.n >> 1; m >= 1; m >>= 1 {
		j1 := 0
		for i := 0; i < m; i++ {
			j2 := j1 + gap
			w := t.invRootPowers[idx]
			idx++
			for j := j1; j < j2; j++ {
				u := values[j]
				v := values[j+gap]
				values[j] = u.Add(v)
				values[j+gap] = u.Sub(v).MulRoot(w)
			}
			j1 += gap << 1
		}
		gap <<= 1
	}

	for i := range values {
		values[i] = values[i].MulRoot(t.invDegree)
	}
}
