package proof_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens/btcspv/internal/testfixtures"
	"github.com/chainlens/btcspv/pkg/proof"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

type envelope struct {
	Version           string         `json:"version"`
	Vin               string         `json:"vin"`
	Vout              string         `json:"vout"`
	Locktime          string         `json:"locktime"`
	TxID              string         `json:"tx_id"`
	Index             uint32         `json:"index"`
	ConfirmingHeader  headerEnvelope `json:"confirming_header"`
	IntermediateNodes string         `json:"intermediate_nodes"`
}

type headerEnvelope struct {
	Hash       string `json:"hash"`
	Raw        string `json:"raw"`
	Height     uint32 `json:"height"`
	PrevHash   string `json:"prevhash"`
	MerkleRoot string `json:"merkle_root"`
}

func hx(b []byte) string { return hex.EncodeToString(b) }

// buildValidEnvelope assembles a two-leaf block (coinbase + our target
// transaction), confirms it with a synthetic header, and marshals the
// whole thing into the wire JSON shape.
func buildValidEnvelope(t *testing.T) []byte {
	t.Helper()

	coinbase, err := testfixtures.BuildTransaction(1,
		[]testfixtures.TxInSpec{{PrevTxID: [32]byte{}, PrevIndex: 0xffffffff, ScriptSig: []byte{0x01, 0x02}, Sequence: 0xffffffff}},
		[]testfixtures.TxOutSpec{{Value: 5000000000, ScriptPubkey: []byte{0x6a, 0x00}}},
		0,
	)
	require.NoError(t, err)

	target, err := testfixtures.BuildTransaction(1,
		[]testfixtures.TxInSpec{{PrevTxID: [32]byte{9}, PrevIndex: 0, ScriptSig: []byte{0xab}, Sequence: 0xffffffff}},
		[]testfixtures.TxOutSpec{{Value: 1000, ScriptPubkey: []byte{0x6a, 0x02, 0xca, 0xfe}}},
		0,
	)
	require.NoError(t, err)

	root := testfixtures.ComputeMerkleRoot([][32]byte{coinbase.TxID, target.TxID})

	var parent [32]byte
	h, err := testfixtures.BuildHeader(1, parent, root, 1600000000, 0x207fffff, 0)
	require.NoError(t, err)

	env := envelope{
		Version:  hx(target.Version[:]),
		Vin:      hx(target.Vin),
		Vout:     hx(target.Vout),
		Locktime: hx(target.Locktime[:]),
		TxID:     hx(target.TxID[:]),
		Index:    1,
		ConfirmingHeader: headerEnvelope{
			Hash:       hx(h.Digest[:]),
			Raw:        hx(h.Raw[:]),
			Height:     100,
			PrevHash:   hx(parent[:]),
			MerkleRoot: hx(root[:]),
		},
		IntermediateNodes: hx(coinbase.TxID[:]),
	}

	data, err := json.Marshal(env)
	require.NoError(t, err)
	return data
}

func TestDecodeAndValidateHappyPath(t *testing.T) {
	data := buildValidEnvelope(t)

	p, err := proof.Decode(data)
	require.NoError(t, err)

	require.NoError(t, p.Validate())
}

func TestValidateRejectsTamperedTxID(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal(buildValidEnvelope(t), &env))

	badTxID := make([]byte, 32)
	env.TxID = hx(badTxID)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	p, err := proof.Decode(data)
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrWrongTxID))
}

func TestValidateRejectsTamperedMerkleRoot(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal(buildValidEnvelope(t), &env))

	// Corrupt the raw header bytes at the merkle_root offset [36:68) so
	// the header's own tx-root no longer matches what's declared.
	rawBytes, err := hex.DecodeString(env.ConfirmingHeader.Raw)
	require.NoError(t, err)
	rawBytes[36] ^= 0xff
	env.ConfirmingHeader.Raw = hx(rawBytes)
	env.ConfirmingHeader.Hash = hx(recomputeDigest(rawBytes))

	data, err := json.Marshal(env)
	require.NoError(t, err)

	p, err := proof.Decode(data)
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrWrongMerkleRoot))
}

func TestDecodeRejectsWrongLengthField(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal(buildValidEnvelope(t), &env))
	env.TxID = hx([]byte{0x01, 0x02})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = proof.Decode(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 32 bytes, got 2 bytes")
}

func TestDecodeStrips0xPrefix(t *testing.T) {
	var env envelope
	require.NoError(t, json.Unmarshal(buildValidEnvelope(t), &env))
	env.TxID = "0x" + env.TxID

	data, err := json.Marshal(env)
	require.NoError(t, err)

	p, err := proof.Decode(data)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func recomputeDigest(raw []byte) []byte {
	first := sha256.Sum256(raw)
	second := sha256.Sum256(first[:])
	return second[:]
}
