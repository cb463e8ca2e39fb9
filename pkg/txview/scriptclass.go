package txview

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/spverrors"
)

// OutputKind discriminates the four scriptPubkey shapes extract_hash
// recognizes.
type OutputKind int

const (
	// KindUnknown is the zero value; never returned by a successful
	// ExtractHash call.
	KindUnknown OutputKind = iota
	KindPKH
	KindSH
	KindWPKH
	KindWSH
)

func (k OutputKind) String() string {
	switch k {
	case KindPKH:
		return "PKH"
	case KindSH:
		return "SH"
	case KindWPKH:
		return "WPKH"
	case KindWSH:
		return "WSH"
	default:
		return "unknown"
	}
}

// ExtractedHash is the tagged result of classifying a scriptPubkey:
// which of the four shapes it matched, and the hash payload it carries.
type ExtractedHash struct {
	Kind OutputKind
	Hash []byte
}

// ExtractHash classifies a scriptPubkey (including its CompactInt
// length prefix) into one of P2PKH / P2SH / P2WPKH / P2WSH and returns
// its embedded hash. The scriptPubkey's own declared length (first byte
// + 1) must equal its buffer length before any shape is considered,
// matching the extract_hash spec (§4.4): a length mismatch is reported
// as OutputLengthMismatch, not folded into the per-shape errors.
func ExtractHash(spk ScriptPubkey) (ExtractedHash, error) {
	if len(spk) == 0 {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: empty: %w", spverrors.ErrOutputLengthMismatch)
	}

	declaredLen := int(spk[0]) + 1
	if declaredLen != len(spk) {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: declared length %d != buffer length %d: %w",
			declaredLen, len(spk), spverrors.ErrOutputLengthMismatch)
	}

	if len(spk) < 2 {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: too short to classify: %w", spverrors.ErrMalformattedOutput)
	}

	switch {
	case spk[1] == 0x00:
		return extractWitnessHash(spk)
	case len(spk) == 26 && spk[1] == 0x76 && spk[2] == 0xa9:
		return extractP2PKHHash(spk)
	case len(spk) == 24 && spk[1] == 0xa9:
		return extractP2SHHash(spk)
	default:
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: no recognized shape: %w", spverrors.ErrMalformattedOutput)
	}
}

func extractWitnessHash(spk ScriptPubkey) (ExtractedHash, error) {
	scriptLen := int(spk[0])
	if scriptLen < 2 {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: witness script too short: %w", spverrors.ErrMalformattedWitnessOutput)
	}
	payloadLen := int(spk[2])
	if payloadLen+2 != scriptLen {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: witness payload length %d inconsistent with script length %d: %w",
			payloadLen, scriptLen, spverrors.ErrMalformattedWitnessOutput)
	}

	switch payloadLen {
	case 0x14:
		return ExtractedHash{Kind: KindWPKH, Hash: spk[3 : 3+payloadLen]}, nil
	case 0x20:
		return ExtractedHash{Kind: KindWSH, Hash: spk[3 : 3+payloadLen]}, nil
	default:
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: witness payload length %d is neither 20 nor 32: %w",
			payloadLen, spverrors.ErrMalformattedWitnessOutput)
	}
}

func extractP2PKHHash(spk ScriptPubkey) (ExtractedHash, error) {
	if spk[3] != 0x14 || spk[24] != 0x88 || spk[25] != 0xac {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: malformed p2pkh: %w", spverrors.ErrMalformattedP2PKHOutput)
	}
	return ExtractedHash{Kind: KindPKH, Hash: spk[4:24]}, nil
}

func extractP2SHHash(spk ScriptPubkey) (ExtractedHash, error) {
	if spk[2] != 0x14 || spk[23] != 0x87 {
		return ExtractedHash{}, fmt.Errorf("scriptpubkey: malformed p2sh: %w", spverrors.ErrMalformattedP2SHOutput)
	}
	return ExtractedHash{Kind: KindSH, Hash: spk[3:23]}, nil
}

// ExtractOpReturnData returns the data payload of an OP_RETURN
// scriptPubkey: the second byte must be OP_RETURN (0x6a), and the
// third byte is a single-byte data length.
func ExtractOpReturnData(spk ScriptPubkey) ([]byte, error) {
	if len(spk) < 3 || spk[1] != 0x6a {
		return nil, fmt.Errorf("scriptpubkey: not an op_return script: %w", spverrors.ErrMalformattedOpReturnOutput)
	}
	dataLen := int(spk[2])
	if dataLen+3 > len(spk) {
		return nil, fmt.Errorf("scriptpubkey: op_return data length %d exceeds buffer: %w",
			dataLen, spverrors.ErrMalformattedOpReturnOutput)
	}
	return spk[3 : 3+dataLen], nil
}
