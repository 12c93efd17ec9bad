// Package ntt implements negacyclic number-theoretic transforms over the
// prime field, with precomputed bit-reversed twiddle tables and a
// concurrency-safe table cache keyed by transform size.
package ntt

import (
	"github.com/google/go-cmp/cmp"

	"github.com/xiangxiecrypto/primus-fhe/field"
	"github.com/xiangxiecrypto/primus-fhe/utils"
	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// Table holds the twiddle factors for transforms of size n = 2^logN. The
// generating root is a primitive 2n-th root of unity and rootPowers[i]
// stores root^bitreverse(i, logN) in twiddle form, so both transform
// directions walk their tables sequentially. A Table is immutable once built
// and safe for concurrent use.
type Table struct {
	root          field.Fp32
	invRoot       field.Fp32
	logN          int
	n             int
	invDegree     field.Root
	rootPowers    []field.Root
	invRootPowers []field.Root
}

// NewTable generates the twiddle tables for transforms of size 2^logN,
// drawing root-search candidates from prng. It fails when the field has no
// primitive root of order 2^(logN+1).
func NewTable(prng sampling.PRNG, logN int) (*Table, error) {

	n := 1 << logN

	root, err := field.TryMinimalPrimitiveRoot(prng, uint32(2*n))
	if err != nil {
		return nil, err
	}
	invRoot := root.Inv()

	rootFactor := root.ToRoot()
	rootPowers := make([]field.Root, n)
	rootPowers[0] = field.One.ToRoot()
	power := root
	for i := 1; i < n; i++ {
		rootPowers[utils.BitReverse64(uint64(i), uint64(logN))] = power.ToRoot()
		power = power.MulRoot(rootFactor)
	}

	// The inverse table lives shifted by one position so the inverse
	// butterfly network consumes it with a single running index.
	invRootFactor := invRoot.ToRoot()
	invRootPowers := make([]field.Root, n)
	invRootPowers[0] = field.One.ToRoot()
	power = invRoot
	for i := 1; i < n; i++ {
		invRootPowers[utils.BitReverse64(uint64(i-1), uint64(logN))+1] = power.ToRoot()
		power = power.MulRoot(invRootFactor)
	}

	invDegree := field.New(uint32(n)).Inv().ToRoot()

	return &Table{
		root:          root,
		invRoot:       invRoot,
		logN:          logN,
		n:             n,
		invDegree:     invDegree,
		rootPowers:    rootPowers,
		invRootPowers: invRootPowers,
	}, nil
}

// Root returns the primitive 2n-th root of unity the table was built from.
func (t *Table) Root() field.Fp32 {
	return t.root
}

// InvRoot returns the inverse of Root.
func (t *Table) InvRoot() field.Fp32 {
	return t.invRoot
}

// LogN returns log2 of the transform size.
func (t *Table) LogN() int {
	return t.logN
}

// N returns the transform size.
func (t *Table) N() int {
	return t.n
}

// InvDegree returns 1/n in twiddle form.
func (t *Table) InvDegree() field.Root {
	return t.invDegree
}

// RootPowers returns the forward twiddle table. Callers must not modify it.
func (t *Table) RootPowers() []field.Root {
	return t.rootPowers
}

// InvRootPowers returns the inverse twiddle table. Callers must not modify
// it.
func (t *Table) InvRootPowers() []field.Root {
	return t.invRootPowers
}

// Equal reports whether both tables hold identical contents.
func (t *Table) Equal(other *Table) bool {
	return cmp.Equal(t, other, cmp.AllowUnexported(Table{}, field.Root{}))
}
