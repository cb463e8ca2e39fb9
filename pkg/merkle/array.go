// Package merkle implements the Merkle-array view type and the
// inclusion-proof verifier (spec.md §3, §4.6).
package merkle

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// digestLen is the byte width of a single Merkle node.
const digestLen = 32

// Array is a zero-copy view over a buffer whose length is a multiple
// of 32 bytes, indexed as an array of 32-byte digests.
type Array []byte

// NewArray validates that b's length is a multiple of 32 bytes.
func NewArray(b []byte) (Array, error) {
	if len(b)%digestLen != 0 {
		return nil, fmt.Errorf("merkle: buffer length %d is not a multiple of %d: %w",
			len(b), digestLen, spverrors.ErrBadMerkleProof)
	}
	return Array(b), nil
}

// Len returns the number of 32-byte digests in the array.
func (a Array) Len() int {
	return len(a) / digestLen
}

// IsEmpty reports whether the array holds zero digests.
func (a Array) IsEmpty() bool {
	return len(a) == 0
}

// At returns the i-th digest in the array.
func (a Array) At(i int) (digest.Hash256Digest, error) {
	if i < 0 || i >= a.Len() {
		return digest.Hash256Digest{}, fmt.Errorf("merkle: index %d out of range [0,%d): %w",
			i, a.Len(), spverrors.ErrReadOverrun)
	}
	var out digest.Hash256Digest
	copy(out[:], a[i*digestLen:(i+1)*digestLen])
	return out, nil
}

// Last returns the final digest in the array.
func (a Array) Last() (digest.Hash256Digest, error) {
	return a.At(a.Len() - 1)
}
