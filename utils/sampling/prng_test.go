package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	Ha, err := NewKeyedPRNG(key)
	require.NoError(t, err)
	Hb, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	require.Equal(t, key, Ha.Key())

	sum0 := make([]byte, 512)
	sum1 := make([]byte, 512)

	_, err = Ha.Read(sum0)
	require.NoError(t, err)
	_, err = Hb.Read(sum1)
	require.NoError(t, err)

	require.Equal(t, sum0, sum1)

	// A reset PRNG replays its stream from the start.
	Ha.Reset()
	sum2 := make([]byte, 512)
	_, err = Ha.Read(sum2)
	require.NoError(t, err)
	require.Equal(t, sum0, sum2)
}

func TestSeededPRNG(t *testing.T) {

	Ha, err := NewSeededPRNG([]byte("domain"), []byte("party-0"))
	require.NoError(t, err)
	Hb, err := NewSeededPRNG([]byte("domain"), []byte("party-0"))
	require.NoError(t, err)

	sum0 := make([]byte, 256)
	sum1 := make([]byte, 256)

	_, err = Ha.Read(sum0)
	require.NoError(t, err)
	_, err = Hb.Read(sum1)
	require.NoError(t, err)

	require.Equal(t, sum0, sum1)

	// Distinct splits of the same concatenated material diverge.
	Hc, err := NewSeededPRNG([]byte("domainparty"), []byte("-0"))
	require.NoError(t, err)

	sum2 := make([]byte, 256)
	_, err = Hc.Read(sum2)
	require.NoError(t, err)
	require.NotEqual(t, sum0, sum2)
}
