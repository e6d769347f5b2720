// Package digest maps checksum algorithm selectors to hash constructors.
package digest

import (
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
)

// Algo selects a checksum algorithm.
type Algo int

const (
	// XXHash64 is a fast non-cryptographic 64-bit digest.
	XXHash64 Algo = iota
	// Blake3 is a 256-bit cryptographic digest.
	Blake3
	// SHA256 is a 256-bit cryptographic digest.
	SHA256
)

func (a Algo) String() string {
	switch a {
	case XXHash64:
		return "xxhash64"
	case Blake3:
		return "blake3"
	case SHA256:
		return "sha256"
	}
	return fmt.Sprintf("algo(%d)", int(a))
}

// New returns a fresh hash for the algorithm.
func New(a Algo) (hash.Hash, error) {
	switch a {
	case XXHash64:
		return xxhash.New(), nil
	case Blake3:
		return blake3.New(), nil
	case SHA256:
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("unknown checksum algorithm %d", int(a))
}
