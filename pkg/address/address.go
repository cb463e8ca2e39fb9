// Package address renders a classified scriptPubkey hash (spec.md
// §4.4's extract_hash result) as a human-readable Bitcoin address
// string. It is presentation sugar over the core verification
// pipeline, grounded on the teacher's analyzer/address.go — never
// consulted by pkg/proof.Validate, which only ever compares raw
// hashes and digests.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/chainlens/btcspv/pkg/txview"
)

// Network selects which chaincfg parameters an address is encoded
// under.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

func (n Network) params() *chaincfg.Params {
	if n == Mainnet {
		return &chaincfg.MainNetParams
	}
	return &chaincfg.TestNet3Params
}

// FromHash renders an extracted hash as a network address string.
func FromHash(h txview.ExtractedHash, network Network) (string, error) {
	params := network.params()

	var addr btcutil.Address
	var err error

	switch h.Kind {
	case txview.KindPKH:
		addr, err = btcutil.NewAddressPubKeyHash(h.Hash, params)
	case txview.KindSH:
		addr, err = btcutil.NewAddressScriptHash(h.Hash, params)
	case txview.KindWPKH:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(h.Hash, params)
	case txview.KindWSH:
		addr, err = btcutil.NewAddressWitnessScriptHash(h.Hash, params)
	default:
		return "", fmt.Errorf("address: unsupported output kind %v", h.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("address: %w", err)
	}

	return addr.EncodeAddress(), nil
}
