package digest_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck

	"github.com/chainlens/btcspv/pkg/digest"
)

func TestHash256MatchesDoubleSHA256(t *testing.T) {
	preimage := []byte("bitcoin")
	first := sha256.Sum256(preimage)
	want := sha256.Sum256(first[:])

	got := digest.Hash256(preimage)
	assert.Equal(t, digest.Hash256Digest(want), got)
}

func TestHash256StreamsMultiplePreimages(t *testing.T) {
	a := []byte("foo")
	b := []byte("bar")
	streamed := digest.Hash256(a, b)
	concatenated := digest.Hash256(append(append([]byte{}, a...), b...))
	assert.Equal(t, concatenated, streamed)
}

func TestHash160MatchesRipemdOverSha256(t *testing.T) {
	preimage := []byte("bitcoin")
	sha := sha256.Sum256(preimage)
	r := ripemd160.New()
	r.Write(sha[:])
	want := r.Sum(nil)

	got := digest.Hash160(preimage)
	assert.Equal(t, want, got[:])
}
