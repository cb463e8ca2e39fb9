package address_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens/btcspv/pkg/address"
	"github.com/chainlens/btcspv/pkg/txview"
)

func TestFromHashPKH(t *testing.T) {
	var hash [20]byte
	hash[0] = 0xde

	got, err := address.FromHash(txview.ExtractedHash{Kind: txview.KindPKH, Hash: hash[:]}, address.Mainnet)
	require.NoError(t, err)

	want, err := btcutil.NewAddressPubKeyHash(hash[:], &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, want.EncodeAddress(), got)
}

func TestFromHashWPKHTestnet(t *testing.T) {
	var hash [20]byte
	hash[0] = 0xad

	got, err := address.FromHash(txview.ExtractedHash{Kind: txview.KindWPKH, Hash: hash[:]}, address.Testnet)
	require.NoError(t, err)

	want, err := btcutil.NewAddressWitnessPubKeyHash(hash[:], &chaincfg.TestNet3Params)
	require.NoError(t, err)
	assert.Equal(t, want.EncodeAddress(), got)
}

func TestFromHashUnknownKind(t *testing.T) {
	_, err := address.FromHash(txview.ExtractedHash{Kind: txview.KindUnknown}, address.Mainnet)
	require.Error(t, err)
}
