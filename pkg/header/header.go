// Package header implements the 80-byte Bitcoin block header view type
// and its field extractors (spec.md §3, §4.5): version, parent hash,
// merkle root, timestamp, target/difficulty (nBits), nonce, and the
// header's own digest.
package header

import (
	"encoding/binary"
	"fmt"

	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/spverrors"
	"github.com/chainlens/btcspv/pkg/u256"
)

// RawHeaderLen is the fixed wire length of a Bitcoin block header.
const RawHeaderLen = 80

// diff1Mantissa and diff1Exponent encode DIFF1_TARGET = 0xFFFF << 208
// bits, the difficulty-1 target every other target is measured against.
const (
	diff1Mantissa = 0xffff
	diff1Exponent = 26 // 208 bits / 8
)

// RawHeader is a zero-copy typed window over an 80-byte Bitcoin block
// header. It never owns or mutates the underlying bytes.
type RawHeader []byte

// New validates that b is exactly 80 bytes and returns it as a
// RawHeader.
func New(b []byte) (RawHeader, error) {
	if len(b) != RawHeaderLen {
		return nil, fmt.Errorf("header: got %d bytes, want %d: %w",
			len(b), RawHeaderLen, spverrors.ErrWrongLengthHeader)
	}
	return RawHeader(b), nil
}

// Version returns the header's version field, bytes [0..4), LE.
func (h RawHeader) Version() int32 {
	return int32(binary.LittleEndian.Uint32(h[0:4]))
}

// Parent returns the header's prev_hash field, bytes [4..36), the
// little-endian digest of the parent block.
func (h RawHeader) Parent() digest.Hash256Digest {
	var out digest.Hash256Digest
	copy(out[:], h[4:36])
	return out
}

// TxRoot returns the header's merkle_root field, bytes [36..68).
func (h RawHeader) TxRoot() digest.Hash256Digest {
	var out digest.Hash256Digest
	copy(out[:], h[36:68])
	return out
}

// Timestamp returns the header's timestamp field, bytes [68..72), LE.
func (h RawHeader) Timestamp() uint32 {
	return binary.LittleEndian.Uint32(h[68:72])
}

// Nonce returns the header's nonce field, bytes [76..80), LE.
func (h RawHeader) Nonce() uint32 {
	return binary.LittleEndian.Uint32(h[76:80])
}

// NBits returns the header's raw 4-byte compact target encoding,
// bytes [72..76).
func (h RawHeader) NBits() [4]byte {
	var out [4]byte
	copy(out[:], h[72:76])
	return out
}

// Target decodes the header's nBits field into a full 256-bit target:
// a 3-byte little-endian mantissa and a saturating-subtract-3 exponent,
// mantissa * 256^exponent. An exponent byte of 0, 1, or 2 saturates to
// exponent 0, producing a target equal to the bare mantissa rather than
// an underflow.
func (h RawHeader) Target() u256.U256 {
	mantissa := uint64(h[72]) | uint64(h[73])<<8 | uint64(h[74])<<16
	rawExponent := h[75]

	var exponent uint
	if rawExponent > 3 {
		exponent = uint(rawExponent) - 3
	}

	return u256.PowSaturating256(mantissa, exponent)
}

// Difficulty returns floor(DIFF1_TARGET / target(h)).
func (h RawHeader) Difficulty() u256.U256 {
	diff1 := u256.PowSaturating256(diff1Mantissa, diff1Exponent)
	target := h.Target()
	return diff1.Div(target)
}

// Digest returns double-SHA-256 over the raw 80 bytes, little-endian.
func (h RawHeader) Digest() digest.Hash256Digest {
	return digest.Hash256(h)
}
