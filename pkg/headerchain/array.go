// Package headerchain implements the header-array view type and the
// compound header-chain validator (spec.md §4.8) plus the retarget
// algorithm (§4.9).
package headerchain

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/header"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// Array is a zero-copy view over a buffer whose length is a multiple
// of 80 bytes, indexed as an array of RawHeaders.
type Array []byte

// NewArray validates that b's length is a multiple of 80 bytes.
func NewArray(b []byte) (Array, error) {
	if len(b)%header.RawHeaderLen != 0 {
		return nil, fmt.Errorf("headerchain: buffer length %d is not a multiple of %d: %w",
			len(b), header.RawHeaderLen, spverrors.ErrWrongLengthHeader)
	}
	return Array(b), nil
}

// Len returns the number of 80-byte headers in the array.
func (a Array) Len() int {
	return len(a) / header.RawHeaderLen
}

// At returns the i-th header in the array.
func (a Array) At(i int) (header.RawHeader, error) {
	if i < 0 || i >= a.Len() {
		return nil, fmt.Errorf("headerchain: index %d out of range [0,%d): %w",
			i, a.Len(), spverrors.ErrReadOverrun)
	}
	start := i * header.RawHeaderLen
	return header.RawHeader(a[start : start+header.RawHeaderLen]), nil
}
