package merkle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens/btcspv/internal/testfixtures"
	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/merkle"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

func TestNewArrayRejectsNonMultipleOf32(t *testing.T) {
	_, err := merkle.NewArray(make([]byte, 33))
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrBadMerkleProof))
}

func TestVerifyEmptyNodesRequiresEquality(t *testing.T) {
	txid := digest.Hash256Digest{1}
	assert.True(t, merkle.VerifyHash256Merkle(txid, txid, merkle.Array{}, 0))

	other := digest.Hash256Digest{2}
	assert.False(t, merkle.VerifyHash256Merkle(txid, other, merkle.Array{}, 0))
}

func TestVerifySingleNodeAcceptsUnconditionally(t *testing.T) {
	txid := digest.Hash256Digest{1}
	root := digest.Hash256Digest{9}
	nodes, err := merkle.NewArray(make([]byte, 32))
	require.NoError(t, err)
	assert.True(t, merkle.VerifyHash256Merkle(txid, root, nodes, 0))
}

func TestVerifyFourLeafTree(t *testing.T) {
	leaves := [][32]byte{{1}, {2}, {3}, {4}}
	var txids []digest.Hash256Digest
	for _, l := range leaves {
		txids = append(txids, digest.Hash256Digest(l))
	}

	left01 := digest.Hash256(txids[0][:], txids[1][:])
	left23 := digest.Hash256(txids[2][:], txids[3][:])
	root := digest.Hash256(left01[:], left23[:])

	wantRoot := testfixtures.ComputeMerkleRoot(leaves)
	require.Equal(t, [32]byte(root), wantRoot)

	// proof for leaf index 2: siblings are [txid3, left01]
	var nodesBuf []byte
	nodesBuf = append(nodesBuf, txids[3][:]...)
	nodesBuf = append(nodesBuf, left01[:]...)
	nodes, err := merkle.NewArray(nodesBuf)
	require.NoError(t, err)

	assert.True(t, merkle.Prove(txids[2], root, nodes, 2))
	assert.False(t, merkle.Prove(txids[2], root, nodes, 3))
}

func TestProveFastPathSelfRoot(t *testing.T) {
	txid := digest.Hash256Digest{7}
	assert.True(t, merkle.Prove(txid, txid, merkle.Array{}, 0))
}
