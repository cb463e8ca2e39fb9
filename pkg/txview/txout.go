package txview

import (
	"encoding/binary"
	"fmt"

	"github.com/chainlens/btcspv/pkg/compactint"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// TxOut is a zero-copy view over a single transaction output: an
// 8-byte little-endian value followed by a CompactInt-prefixed
// scriptPubkey.
type TxOut []byte

// DetermineOutputLength returns the total byte length of the output
// starting at the front of t: 8 (value) plus the scriptPubkey's
// CompactInt length prefix plus its declared byte count.
func DetermineOutputLength(t []byte) (int, error) {
	if len(t) < 9 {
		return 0, fmt.Errorf("txout: need at least 9 bytes, have %d: %w", len(t), spverrors.ErrReadOverrun)
	}
	scriptLen, err := compactint.Parse(t[8:])
	if err != nil {
		return 0, err
	}
	return 8 + scriptLen.Length + int(scriptLen.Value), nil
}

// ExtractValueLE returns the output's 8-byte little-endian value.
func ExtractValueLE(t TxOut) [8]byte {
	var out [8]byte
	copy(out[:], t[0:8])
	return out
}

// ExtractValue returns the output's value in satoshis.
func ExtractValue(t TxOut) uint64 {
	return binary.LittleEndian.Uint64(t[0:8])
}

// ExtractScriptPubkey returns the CompactInt-prefixed scriptPubkey
// carried by the output.
func ExtractScriptPubkey(t TxOut) ScriptPubkey {
	return ScriptPubkey(t[8:])
}
