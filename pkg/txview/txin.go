package txview

import (
	"encoding/binary"
	"fmt"

	"github.com/chainlens/btcspv/pkg/compactint"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// TxIn is a zero-copy view over a single transaction input: a 36-byte
// outpoint, a CompactInt-prefixed scriptSig, and a 4-byte sequence.
// A legacy input carries a non-empty scriptSig; a witness input has a
// single zero length byte at offset 36.
type TxIn []byte

// IsLegacyInput reports whether t is a legacy (non-witness) input: the
// byte at offset 36 (the scriptSig CompactInt's first byte) is nonzero.
// t must be at least 37 bytes long.
func IsLegacyInput(t TxIn) bool {
	return t[36] != 0
}

// ExtractScriptSigLen parses the CompactInt scriptSig length at offset
// 36. Returns 0 for a witness input.
func ExtractScriptSigLen(t TxIn) (compactint.CompactInt, error) {
	if len(t) < 37 {
		return compactint.CompactInt{}, fmt.Errorf("txin: need 37 bytes to read scriptSig length, have %d: %w",
			len(t), spverrors.ErrReadOverrun)
	}
	return compactint.Parse(t[36:])
}

// DetermineInputLength returns the total byte length of the input
// starting at the front of t: 40 (outpoint + sequence) plus the
// scriptSig's CompactInt length prefix plus its declared byte count.
func DetermineInputLength(t []byte) (int, error) {
	scriptSigLen, err := ExtractScriptSigLen(TxIn(t))
	if err != nil {
		return 0, err
	}
	return 40 + scriptSigLen.Length + int(scriptSigLen.Value), nil
}

// ExtractOutpoint returns the input's leading 36-byte outpoint.
func ExtractOutpoint(t TxIn) Outpoint {
	return Outpoint(t[0:36])
}

// ExtractInputTxIDLE returns the 32-byte little-endian prevout txid
// from an outpoint.
func ExtractInputTxIDLE(o Outpoint) []byte {
	return o.TxID()
}

// ExtractTxIndex returns the 4-byte little-endian output index from an
// outpoint, as a uint32.
func ExtractTxIndex(o Outpoint) uint32 {
	return o.Index()
}

// ExtractScriptSig returns the CompactInt-prefixed scriptSig carried by
// a legacy input.
func ExtractScriptSig(t TxIn) (ScriptSig, error) {
	scriptSigLen, err := ExtractScriptSigLen(t)
	if err != nil {
		return nil, err
	}
	end := 36 + scriptSigLen.Length + int(scriptSigLen.Value)
	if end > len(t) {
		return nil, fmt.Errorf("txin: scriptSig extends past input buffer: %w", spverrors.ErrReadOverrun)
	}
	return ScriptSig(t[36:end]), nil
}

// ExtractSequenceLELegacy returns the 4 little-endian sequence bytes
// following a legacy input's scriptSig.
func ExtractSequenceLELegacy(t TxIn) ([4]byte, error) {
	scriptSigLen, err := ExtractScriptSigLen(t)
	if err != nil {
		return [4]byte{}, err
	}
	offset := 36 + scriptSigLen.Length + int(scriptSigLen.Value)
	if offset+4 > len(t) {
		return [4]byte{}, fmt.Errorf("txin: sequence extends past input buffer: %w", spverrors.ErrReadOverrun)
	}
	var seq [4]byte
	copy(seq[:], t[offset:offset+4])
	return seq, nil
}

// ExtractSequenceLegacy returns the legacy input's sequence number as a
// little-endian uint32.
func ExtractSequenceLegacy(t TxIn) (uint32, error) {
	seq, err := ExtractSequenceLELegacy(t)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(seq[:]), nil
}

// ExtractSequenceLEWitness returns the 4 little-endian sequence bytes
// of a witness input, which sit at the fixed offset 37..41 (outpoint 36
// + the single zero-length scriptSig byte).
func ExtractSequenceLEWitness(t TxIn) ([4]byte, error) {
	if len(t) < 41 {
		return [4]byte{}, fmt.Errorf("txin: need 41 bytes to read witness sequence, have %d: %w",
			len(t), spverrors.ErrReadOverrun)
	}
	var seq [4]byte
	copy(seq[:], t[37:41])
	return seq, nil
}

// ExtractSequenceWitness returns a witness input's sequence number as a
// little-endian uint32.
func ExtractSequenceWitness(t TxIn) (uint32, error) {
	seq, err := ExtractSequenceLEWitness(t)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(seq[:]), nil
}
