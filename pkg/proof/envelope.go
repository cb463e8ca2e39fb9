// Package proof implements the JSON SPVProof envelope (spec.md §6) and
// the composite proof validator that drives the whole verification
// pipeline (§4.10): it is the one place the lower layers (compactint,
// txview, header, merkle, txid) are all exercised together.
package proof

import (
	"encoding/json"
	"fmt"

	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/header"
	"github.com/chainlens/btcspv/pkg/merkle"
	"github.com/chainlens/btcspv/pkg/txview"
)

// headerJSON is the wire shape of BitcoinHeader from spec.md §6.
type headerJSON struct {
	Hash       string `json:"hash"`
	Raw        string `json:"raw"`
	Height     uint32 `json:"height"`
	PrevHash   string `json:"prevhash"`
	MerkleRoot string `json:"merkle_root"`
}

// envelopeJSON is the wire shape of SPVProof from spec.md §6.
type envelopeJSON struct {
	Version           string     `json:"version"`
	Vin               string     `json:"vin"`
	Vout              string     `json:"vout"`
	Locktime          string     `json:"locktime"`
	TxID              string     `json:"tx_id"`
	Index             uint32     `json:"index"`
	ConfirmingHeader  headerJSON `json:"confirming_header"`
	IntermediateNodes string     `json:"intermediate_nodes"`
}

// BitcoinHeader is the decoded form of the JSON BitcoinHeader envelope:
// the confirming header's declared fields alongside its raw 80 bytes.
type BitcoinHeader struct {
	Hash       digest.Hash256Digest
	Raw        header.RawHeader
	Height     uint32
	PrevHash   digest.Hash256Digest
	MerkleRoot digest.Hash256Digest
}

// SPVProof is the decoded, structurally-validated form of the JSON
// SPVProof envelope: a transaction (as validated Vin/Vout views), its
// declared txid, the confirming header, and the Merkle path connecting
// them.
type SPVProof struct {
	Version           [4]byte
	Vin               txview.Vin
	Vout              txview.Vout
	Locktime          [4]byte
	TxID              digest.Hash256Digest
	Index             uint32
	ConfirmingHeader  BitcoinHeader
	IntermediateNodes merkle.Array
}

// Decode parses and structurally validates a JSON SPVProof envelope.
// Hex fields are decoded (an optional 0x prefix is stripped), fixed-
// width fields are length-checked, and vin/vout are run through their
// view-type constructors — so a successfully decoded SPVProof is
// already guaranteed well-formed at the wire level; only the
// cross-field checks of Validate remain.
func Decode(data []byte) (*SPVProof, error) {
	var wire envelopeJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("proof: invalid json: %w", err)
	}
	return decodeWire(wire)
}

func decodeWire(wire envelopeJSON) (*SPVProof, error) {
	version, err := decodeHexExact(wire.Version, 4)
	if err != nil {
		return nil, fmt.Errorf("proof: version: %w", err)
	}

	vinBytes, err := decodeHex(wire.Vin)
	if err != nil {
		return nil, fmt.Errorf("proof: vin: %w", err)
	}
	vin, err := txview.NewVin(vinBytes)
	if err != nil {
		return nil, fmt.Errorf("proof: vin: %w", err)
	}

	voutBytes, err := decodeHex(wire.Vout)
	if err != nil {
		return nil, fmt.Errorf("proof: vout: %w", err)
	}
	vout, err := txview.NewVout(voutBytes)
	if err != nil {
		return nil, fmt.Errorf("proof: vout: %w", err)
	}

	locktime, err := decodeHexExact(wire.Locktime, 4)
	if err != nil {
		return nil, fmt.Errorf("proof: locktime: %w", err)
	}

	txIDBytes, err := decodeHexExact(wire.TxID, 32)
	if err != nil {
		return nil, fmt.Errorf("proof: tx_id: %w", err)
	}

	confirmingHeader, err := decodeHeaderWire(wire.ConfirmingHeader)
	if err != nil {
		return nil, fmt.Errorf("proof: confirming_header: %w", err)
	}

	nodesBytes, err := decodeHex(wire.IntermediateNodes)
	if err != nil {
		return nil, fmt.Errorf("proof: intermediate_nodes: %w", err)
	}
	nodes, err := merkle.NewArray(nodesBytes)
	if err != nil {
		return nil, fmt.Errorf("proof: intermediate_nodes: %w", err)
	}

	p := &SPVProof{
		Vin:               vin,
		Vout:              vout,
		Index:             wire.Index,
		ConfirmingHeader:  confirmingHeader,
		IntermediateNodes: nodes,
	}
	copy(p.Version[:], version)
	copy(p.Locktime[:], locktime)
	copy(p.TxID[:], txIDBytes)
	return p, nil
}

func decodeHeaderWire(w headerJSON) (BitcoinHeader, error) {
	hashBytes, err := decodeHexExact(w.Hash, 32)
	if err != nil {
		return BitcoinHeader{}, fmt.Errorf("hash: %w", err)
	}
	rawBytes, err := decodeHexExact(w.Raw, header.RawHeaderLen)
	if err != nil {
		return BitcoinHeader{}, fmt.Errorf("raw: %w", err)
	}
	raw, err := header.New(rawBytes)
	if err != nil {
		return BitcoinHeader{}, err
	}
	prevHashBytes, err := decodeHexExact(w.PrevHash, 32)
	if err != nil {
		return BitcoinHeader{}, fmt.Errorf("prevhash: %w", err)
	}
	merkleRootBytes, err := decodeHexExact(w.MerkleRoot, 32)
	if err != nil {
		return BitcoinHeader{}, fmt.Errorf("merkle_root: %w", err)
	}

	var h BitcoinHeader
	copy(h.Hash[:], hashBytes)
	h.Raw = raw
	h.Height = w.Height
	copy(h.PrevHash[:], prevHashBytes)
	copy(h.MerkleRoot[:], merkleRootBytes)
	return h, nil
}
