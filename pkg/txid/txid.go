// Package txid computes a transaction's id from its already-validated
// wire fields (spec.md §4.7).
package txid

import (
	"github.com/chainlens/btcspv/pkg/digest"
	"github.com/chainlens/btcspv/pkg/txview"
)

// Calculate returns double-SHA-256 over version || vin || vout ||
// locktime, little-endian. Callers must supply Vin/Vout views that have
// already passed validation, so the concatenation is guaranteed
// canonical.
func Calculate(version [4]byte, vin txview.Vin, vout txview.Vout, locktime [4]byte) digest.Hash256Digest {
	return digest.Hash256(version[:], vin, vout, locktime[:])
}
