package sampling

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

const seedKeySize = 32

// NewSeededPRNG derives a seedKeySize-byte key from the given seed material
// with blake3 and returns a KeyedPRNG keyed with it. Each part is
// length-prefixed before hashing, so distinct splits of the same bytes derive
// distinct keys. Two calls with the same material produce identical streams.
func NewSeededPRNG(material ...[]byte) (*KeyedPRNG, error) {
	hasher := blake3.New()

	var length [8]byte
	for _, part := range material {
		binary.LittleEndian.PutUint64(length[:], uint64(len(part)))
		hasher.Write(length[:])
		hasher.Write(part)
	}

	key := hasher.Sum(nil)
	return NewKeyedPRNG(key[:seedKeySize])
}
