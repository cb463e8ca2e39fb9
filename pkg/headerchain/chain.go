package headerchain

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/spverrors"
	"github.com/chainlens/btcspv/pkg/u256"
)

// ValidateHeaderWork reports whether a nonzero header digest satisfies
// its target: LE-u256(digest) < target.
func ValidateHeaderWork(d digest.Hash256Digest, target u256.U256) bool {
	if d == (digest.Hash256Digest{}) {
		return false
	}
	le := u256.FromLEBytes(d[:])
	return le.Cmp(target) < 0
}

// ValidateHeaderPrevHash reports whether a header's parent field
// matches the digest of the preceding header in a chain.
func ValidateHeaderPrevHash(parent, prevDigest digest.Hash256Digest) bool {
	return parent == prevDigest
}

// ValidateHeaderChain walks an array of headers, verifying linkage,
// proof-of-work, and (optionally) constant difficulty, and returns the
// accumulated difficulty across the chain (spec.md §4.8).
func ValidateHeaderChain(headers Array, constantDifficulty bool) (u256.U256, error) {
	total := u256.U256{}
	var expectedTarget u256.U256
	var prevDigest digest.Hash256Digest

	n := headers.Len()
	for i := 0; i < n; i++ {
		h, err := headers.At(i)
		if err != nil {
			return u256.U256{}, err
		}

		target := h.Target()
		if i == 0 {
			expectedTarget = target
		}

		if constantDifficulty && target.Cmp(expectedTarget) != 0 {
			return u256.U256{}, fmt.Errorf("headerchain: header %d changed target under constant-difficulty mode: %w",
				i, spverrors.ErrUnexpectedDifficultyChange)
		}

		if i > 0 && !ValidateHeaderPrevHash(h.Parent(), prevDigest) {
			return u256.U256{}, fmt.Errorf("headerchain: header %d's parent does not match header %d's digest: %w",
				i, i-1, spverrors.ErrInvalidChain)
		}

		d := h.Digest()
		if !ValidateHeaderWork(d, target) {
			return u256.U256{}, fmt.Errorf("headerchain: header %d: %w", i, spverrors.ErrInsufficientWork)
		}

		total = total.Add(h.Difficulty())
		prevDigest = d
	}

	return total, nil
}
