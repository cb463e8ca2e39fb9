// Package txview implements the zero-copy view types over transaction
// input/output byte ranges (spec.md §3, §4.2–§4.4): Outpoint, TxIn,
// ScriptSig, Vin, TxOut, ScriptPubkey, Vout, and their field extractors.
//
// Every view type here is a typed slice alias: construction never
// copies, accessors never mutate, and the view's lifetime is bounded by
// the lifetime of the buffer the caller handed in.
package txview

import "encoding/binary"

// OutpointLen is the fixed wire length of an Outpoint.
const OutpointLen = 36

// Outpoint is a 36-byte reference to a prior UTXO: a 32-byte
// little-endian prevout txid followed by a 4-byte little-endian index.
type Outpoint []byte

// TxID returns the 32-byte little-endian prevout txid.
func (o Outpoint) TxID() []byte {
	return o[0:32]
}

// Index returns the 4-byte little-endian output index as a uint32.
func (o Outpoint) Index() uint32 {
	return binary.LittleEndian.Uint32(o[32:36])
}
