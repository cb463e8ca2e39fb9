// Package digest implements Bitcoin's two standard hash functions —
// hash160 (ripemd160(sha256(x))) and hash256 (sha256(sha256(x))) — and
// the fixed-width digest types that carry their output.
//
// Every on-wire Bitcoin hash handled by this toolkit is stored and
// compared little-endian (spec.md §3); Hash256Digest and Hash160Digest
// are opaque byte arrays precisely so callers can't silently reverse
// that convention by treating them as integers.
package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is required by the Bitcoin hash160 spec, not a choice
)

// Hash256Digest is a 32-byte double-SHA-256 digest, little-endian.
type Hash256Digest [32]byte

// Hash160Digest is a 20-byte RIPEMD-160(SHA-256(x)) digest.
type Hash160Digest [20]byte

// Hash256 computes double-SHA-256 over the concatenation of preimages,
// streaming each chunk into the hasher rather than materializing the
// concatenation first.
func Hash256(preimages ...[]byte) Hash256Digest {
	h := sha256.New()
	for _, p := range preimages {
		h.Write(p)
	}
	first := h.Sum(nil)
	second := sha256.Sum256(first)
	return Hash256Digest(second)
}

// Hash160 computes ripemd160(sha256(preimage)).
func Hash160(preimage []byte) Hash160Digest {
	sha := sha256.Sum256(preimage)
	r := ripemd160.New()
	r.Write(sha[:])
	var out Hash160Digest
	copy(out[:], r.Sum(nil))
	return out
}
