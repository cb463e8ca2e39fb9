package txview

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/compactint"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// Vout is a zero-copy view over a transaction's output vector: a
// CompactInt count n followed by n concatenated TxOuts.
type Vout []byte

// NewVout validates b as a Vout: walking its elements with
// DetermineOutputLength must consume exactly len(b), and the declared
// count must be at least 1.
func NewVout(b []byte) (Vout, error) {
	if err := validateVout(b); err != nil {
		return nil, err
	}
	return Vout(b), nil
}

func validateVout(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("vout: empty buffer: %w", spverrors.ErrInvalidVout)
	}

	n, err := compactint.Parse(b)
	if err != nil {
		return fmt.Errorf("vout: count prefix: %w", spverrors.ErrInvalidVout)
	}
	if n.Value < 1 {
		return fmt.Errorf("vout: declared count is zero: %w", spverrors.ErrInvalidVout)
	}

	offset := n.Length
	for i := uint64(0); i < n.Value; i++ {
		if offset >= len(b) {
			return fmt.Errorf("vout: output %d starts past end of buffer: %w", i, spverrors.ErrInvalidVout)
		}
		length, err := DetermineOutputLength(b[offset:])
		if err != nil {
			return fmt.Errorf("vout: output %d: %w", i, spverrors.ErrInvalidVout)
		}
		offset += length
		if offset > len(b) {
			return fmt.Errorf("vout: output %d overruns buffer: %w", i, spverrors.ErrInvalidVout)
		}
	}

	if offset != len(b) {
		return fmt.Errorf("vout: %d trailing bytes after walking %d outputs: %w",
			len(b)-offset, n.Value, spverrors.ErrInvalidVout)
	}
	return nil
}

// Len returns the declared output count n.
func (v Vout) Len() uint64 {
	n, _ := compactint.Parse(v)
	return n.Value
}

// IsEmpty reports whether v has zero declared outputs. A validated Vout
// always has Len() >= 1, so this is only meaningful on raw input.
func (v Vout) IsEmpty() bool {
	return v.Len() == 0
}

// Last returns the final output in v.
func (v Vout) Last() (TxOut, error) {
	n := v.Len()
	if n == 0 {
		return nil, fmt.Errorf("vout: empty: %w", spverrors.ErrReadOverrun)
	}
	return ExtractOutputAtIndex(v, n-1)
}

// ExtractOutputAtIndex returns the index-th output (0-indexed) from
// vout.
func ExtractOutputAtIndex(vout Vout, index uint64) (TxOut, error) {
	n, err := compactint.Parse(vout)
	if err != nil {
		return nil, fmt.Errorf("vout: count prefix: %w", spverrors.ErrReadOverrun)
	}
	if index >= n.Value {
		return nil, fmt.Errorf("vout: index %d >= count %d: %w", index, n.Value, spverrors.ErrReadOverrun)
	}

	offset := n.Length
	length := 0
	for i := uint64(0); i <= index; i++ {
		length, err = DetermineOutputLength(vout[offset:])
		if err != nil {
			return nil, fmt.Errorf("vout: walking output %d: %w", i, spverrors.ErrReadOverrun)
		}
		if i != index {
			offset += length
		}
	}

	if offset+length > len(vout) {
		return nil, fmt.Errorf("vout: output %d extends past buffer: %w", index, spverrors.ErrReadOverrun)
	}
	return TxOut(vout[offset : offset+length]), nil
}
