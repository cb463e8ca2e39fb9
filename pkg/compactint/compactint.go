// Package compactint implements Bitcoin's CompactInt ("varint") wire
// encoding: a self-delimiting integer used to prefix scripts and the
// input/output counts of a transaction.
package compactint

import (
	"encoding/binary"
	"fmt"

	"github.com/chainlens/btcspv/pkg/spverrors"
)

// CompactInt is a parsed Bitcoin varint: the numeric value it encodes
// plus the total number of bytes its encoding occupies (prefix included).
type CompactInt struct {
	Value  uint64
	Length int
}

// DataLength returns the number of trailing data bytes a CompactInt
// prefix byte declares: 0 for a single-byte value, or 2/4/8 for the
// 0xFD/0xFE/0xFF prefixes.
func DataLength(firstByte byte) int {
	switch firstByte {
	case 0xfd:
		return 2
	case 0xfe:
		return 4
	case 0xff:
		return 8
	default:
		return 0
	}
}

// SerializedLength returns the canonical encoded length, in bytes, of
// a value: the smallest CompactInt prefix that can represent it.
func SerializedLength(value uint64) int {
	switch {
	case value <= 0xfc:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// Parse reads a CompactInt from the front of buf. buf must be
// non-empty; an empty buffer is the caller's responsibility to reject
// before calling Parse.
func Parse(buf []byte) (CompactInt, error) {
	first := buf[0]
	length := DataLength(first)

	if length == 0 {
		return CompactInt{Value: uint64(first), Length: 1}, nil
	}
	if len(buf) < 1+length {
		return CompactInt{}, fmt.Errorf("compactint: need %d trailing bytes, have %d: %w",
			length, len(buf)-1, spverrors.ErrBadCompactInt)
	}

	var raw [8]byte
	copy(raw[:length], buf[1:1+length])
	value := binary.LittleEndian.Uint64(raw[:])

	return CompactInt{Value: value, Length: 1 + length}, nil
}

// Encode renders value in its canonical CompactInt encoding.
func Encode(value uint64) []byte {
	switch {
	case value <= 0xfc:
		return []byte{byte(value)}
	case value <= 0xffff:
		buf := make([]byte, 3)
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(value))
		return buf
	case value <= 0xffffffff:
		buf := make([]byte, 5)
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(value))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], value)
		return buf
	}
}
