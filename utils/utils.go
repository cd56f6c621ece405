package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// seedDomain separates coefficient streams from any other use of SHAKE256
// with the same seed.
const seedDomain = "gosss/coefficients/v1"

// NewSeededReader returns a deterministic, unbounded byte stream derived
// from seed with SHAKE256. Two readers built from the same seed produce
// identical output. It is meant for reproducible tests, not for production
// shares: a 64-bit seed is far weaker than a 256-bit field.
func NewSeededReader(seed int64) io.Reader {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))

	h := sha3.NewShake256()
	h.Write([]byte(seedDomain))
	h.Write(buf[:])
	return h
}

// GenerateSeed draws a random seed from crypto/rand, for callers that want
// a reproducible run whose seed is recorded rather than chosen.
func GenerateSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
