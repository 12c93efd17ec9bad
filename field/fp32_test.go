package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

func testSampler(t *testing.T) *UniformSampler {
	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	return NewUniformSampler(prng)
}

func TestFp32(t *testing.T) {

	require.True(t, IsPrimeField())
	require.Equal(t, "[(5)_132120577]", New(5).String())
	require.Equal(t, uint32(5), New(5).Uint32())

	s := testSampler(t)

	for i := 0; i < 128; i++ {

		a, b, c := s.Sample(), s.Sample(), s.Sample()

		require.Equal(t, Fp32((uint64(a)+uint64(b))%P), a.Add(b))
		require.Equal(t, Fp32((uint64(a)+P-uint64(b))%P), a.Sub(b))
		require.Equal(t, Fp32(uint64(a)*uint64(b)%P), a.Mul(b))
		require.Equal(t, a.Mul(b), a.MulScalar(uint32(b)))
		require.Equal(t, Fp32(0), a.Add(a.Neg()))

		if b != 0 {
			require.Equal(t, Fp32(1), b.Mul(b.Inv()))
			require.Equal(t, a, a.Div(b).Mul(b))
		}

		// Field laws.
		require.Equal(t, b.Add(a), a.Add(b))
		require.Equal(t, b.Mul(a), a.Mul(b))
		require.Equal(t, a.Add(b.Add(c)), a.Add(b).Add(c))
		require.Equal(t, a.Mul(b.Mul(c)), a.Mul(b).Mul(c))
		require.Equal(t, a.Mul(c).Add(b.Mul(c)), a.Add(b).Mul(c))
		require.Equal(t, a, a.Add(Zero))
		require.Equal(t, a, a.Mul(One))
	}
}

func TestFp32Pow(t *testing.T) {

	s := testSampler(t)

	for i := 0; i < 32; i++ {

		a := s.Sample()

		require.Equal(t, Fp32(1), a.Pow(0))
		require.Equal(t, a, a.Pow(1))
		require.Equal(t, a.Mul(a), a.Pow(2))

		// Against a plain multiplication chain.
		exp := uint32(s.Sample()) & 0x3ff
		want := Fp32(1)
		for j := uint32(0); j < exp; j++ {
			want = want.Mul(a)
		}
		require.Equal(t, want, a.Pow(exp))

		// Fermat.
		if a != 0 {
			require.Equal(t, Fp32(1), a.Pow(P-1))
		}
	}
}
