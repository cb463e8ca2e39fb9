package headerchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens/btcspv/internal/testfixtures"
	"github.com/chainlens/btcspv/pkg/headerchain"
	"github.com/chainlens/btcspv/pkg/spverrors"
	"github.com/chainlens/btcspv/pkg/u256"
)

// easyBits is a target so low-difficulty that about half of all digests
// satisfy it; buildChain grinds the nonce until each header does, so
// fixture headers don't need real mining.
const easyBits = 0x207fffff

func buildChain(t *testing.T, n int) []byte {
	t.Helper()
	var chain []byte
	var parent [32]byte
	for i := 0; i < n; i++ {
		var root [32]byte
		root[0] = byte(i + 1)
		nonce := uint32(i)
		var h testfixtures.Header
		for {
			var err error
			h, err = testfixtures.BuildHeader(1, parent, root, uint32(1600000000+i*600), easyBits, nonce)
			require.NoError(t, err)
			// A top LE digest byte below 0x7f puts the digest under easyBits' target.
			if h.Digest[31] < 0x7f {
				break
			}
			nonce++
		}
		chain = append(chain, h.Raw[:]...)
		parent = h.Digest
	}
	return chain
}

func TestValidateHeaderChainAccumulatesDifficulty(t *testing.T) {
	raw := buildChain(t, 3)
	headers, err := headerchain.NewArray(raw)
	require.NoError(t, err)

	total, err := headerchain.ValidateHeaderChain(headers, false)
	require.NoError(t, err)
	assert.False(t, total.IsZero())
}

func TestValidateHeaderChainRejectsBrokenLinkage(t *testing.T) {
	raw := buildChain(t, 2)
	// Corrupt the second header's prev_hash field (bytes [4:36) of the
	// second 80-byte record).
	raw[80+4] ^= 0xff

	headers, err := headerchain.NewArray(raw)
	require.NoError(t, err)

	_, err = headerchain.ValidateHeaderChain(headers, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrInvalidChain))
}

func TestValidateHeaderChainConstantDifficultyRejectsChange(t *testing.T) {
	var parent [32]byte
	h0, err := testfixtures.BuildHeader(1, parent, [32]byte{1}, 1600000000, easyBits, 0)
	require.NoError(t, err)
	h1, err := testfixtures.BuildHeader(1, h0.Digest, [32]byte{2}, 1600000600, 0x207ffffe, 1)
	require.NoError(t, err)

	raw := append(append([]byte{}, h0.Raw[:]...), h1.Raw[:]...)
	headers, err := headerchain.NewArray(raw)
	require.NoError(t, err)

	_, err = headerchain.ValidateHeaderChain(headers, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrUnexpectedDifficultyChange))
}

func TestNewArrayRejectsPartialHeader(t *testing.T) {
	_, err := headerchain.NewArray(make([]byte, 79))
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrWrongLengthHeader))
}

func TestRetargetClampsToUpperBound(t *testing.T) {
	prev := u256.FromUint64(1000)
	// Elapsed far beyond 4x the period clamps to exactly 4x.
	got := headerchain.Retarget(prev, 0, headerchain.RetargetPeriod*10)
	want := prev.MulUint64(4)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestRetargetClampsToLowerBound(t *testing.T) {
	prev := u256.FromUint64(1000)
	got := headerchain.Retarget(prev, 0, headerchain.RetargetPeriod/100)
	want := prev.DivUint64(4)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestRetargetUnclamped(t *testing.T) {
	prev := u256.FromUint64(1000)
	got := headerchain.Retarget(prev, 0, headerchain.RetargetPeriod)
	assert.Equal(t, 0, prev.Cmp(got))
}
