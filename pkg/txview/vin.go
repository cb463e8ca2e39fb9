package txview

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/compactint"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

// Vin is a zero-copy view over a transaction's input vector: a
// CompactInt count n followed by n concatenated TxIns.
type Vin []byte

// NewVin validates b as a Vin: walking its elements with
// DetermineInputLength must consume exactly len(b), and the declared
// count must be at least 1.
func NewVin(b []byte) (Vin, error) {
	if err := validateVin(b); err != nil {
		return nil, err
	}
	return Vin(b), nil
}

func validateVin(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("vin: empty buffer: %w", spverrors.ErrInvalidVin)
	}

	n, err := compactint.Parse(b)
	if err != nil {
		return fmt.Errorf("vin: count prefix: %w", spverrors.ErrInvalidVin)
	}
	if n.Value < 1 {
		return fmt.Errorf("vin: declared count is zero: %w", spverrors.ErrInvalidVin)
	}

	offset := n.Length
	for i := uint64(0); i < n.Value; i++ {
		if offset >= len(b) {
			return fmt.Errorf("vin: input %d starts past end of buffer: %w", i, spverrors.ErrInvalidVin)
		}
		length, err := DetermineInputLength(b[offset:])
		if err != nil {
			return fmt.Errorf("vin: input %d: %w", i, spverrors.ErrInvalidVin)
		}
		offset += length
		if offset > len(b) {
			return fmt.Errorf("vin: input %d overruns buffer: %w", i, spverrors.ErrInvalidVin)
		}
	}

	if offset != len(b) {
		return fmt.Errorf("vin: %d trailing bytes after walking %d inputs: %w",
			len(b)-offset, n.Value, spverrors.ErrInvalidVin)
	}
	return nil
}

// Len returns the declared input count n.
func (v Vin) Len() uint64 {
	n, _ := compactint.Parse(v)
	return n.Value
}

// IsEmpty reports whether v has zero declared inputs. A validated Vin
// always has Len() >= 1, so this is only meaningful on raw input.
func (v Vin) IsEmpty() bool {
	return v.Len() == 0
}

// Last returns the final input in v.
func (v Vin) Last() (TxIn, error) {
	n := v.Len()
	if n == 0 {
		return nil, fmt.Errorf("vin: empty: %w", spverrors.ErrReadOverrun)
	}
	return ExtractInputAtIndex(v, n-1)
}

// ExtractInputAtIndex returns the index-th input (0-indexed) from vin.
func ExtractInputAtIndex(vin Vin, index uint64) (TxIn, error) {
	n, err := compactint.Parse(vin)
	if err != nil {
		return nil, fmt.Errorf("vin: count prefix: %w", spverrors.ErrReadOverrun)
	}
	if index >= n.Value {
		return nil, fmt.Errorf("vin: index %d >= count %d: %w", index, n.Value, spverrors.ErrReadOverrun)
	}

	offset := n.Length
	length := 0
	for i := uint64(0); i <= index; i++ {
		length, err = DetermineInputLength(vin[offset:])
		if err != nil {
			return nil, fmt.Errorf("vin: walking input %d: %w", i, spverrors.ErrReadOverrun)
		}
		if i != index {
			offset += length
		}
	}

	if offset+length > len(vin) {
		return nil, fmt.Errorf("vin: input %d extends past buffer: %w", index, spverrors.ErrReadOverrun)
	}
	return TxIn(vin[offset : offset+length]), nil
}
