package bufrw

import (
	"bytes"
	"fmt"
	"io"

	"github.com/garethgeorge/bufrw/internal/digest"
	"golang.org/x/sync/errgroup"
)

// ChecksumAlgo selects the digest used by Checksum and VerifyStreams.
type ChecksumAlgo = digest.Algo

const (
	// ChecksumXXHash64 is the default: fast, 8-byte digest.
	ChecksumXXHash64 = digest.XXHash64
	// ChecksumBlake3 is a 32-byte cryptographic digest.
	ChecksumBlake3 = digest.Blake3
	// ChecksumSHA256 is a 32-byte cryptographic digest.
	ChecksumSHA256 = digest.SHA256
)

// Checksum hashes everything remaining in r with the given algorithm and
// returns the digest.
func Checksum(r io.Reader, algo ChecksumAlgo) ([]byte, error) {
	hasher, err := digest.New(algo)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(hasher, r); err != nil {
		return nil, fmt.Errorf("hash stream: %w", err)
	}
	return hasher.Sum(nil), nil
}

// VerifyStreams rewinds both streams and compares their full contents by
// checksum, hashing the two in parallel. It returns an error describing the
// digests on mismatch. On success both streams are left positioned at their
// ends.
func VerifyStreams(a, b Stream, algo ChecksumAlgo) error {
	pair := []Stream{a, b}
	sums := make([][]byte, len(pair))

	var eg errgroup.Group
	for i, s := range pair {
		i, s := i, s
		eg.Go(func() error {
			if _, err := s.Seek(0, io.SeekStart); err != nil {
				return fmt.Errorf("rewind stream %d: %w", i, err)
			}
			sum, err := Checksum(s, algo)
			if err != nil {
				return fmt.Errorf("checksum stream %d: %w", i, err)
			}
			sums[i] = sum
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("verify streams: %w", err)
	}

	if !bytes.Equal(sums[0], sums[1]) {
		return fmt.Errorf("stream contents differ: %s checksum %x != %x", algo, sums[0], sums[1])
	}
	return nil
}
