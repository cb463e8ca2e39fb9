package compactint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens/btcspv/pkg/compactint"
	"github.com/chainlens/btcspv/pkg/spverrors"
)

func TestParseSingleByte(t *testing.T) {
	n, err := compactint.Parse([]byte{0xfc})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xfc), n.Value)
	assert.Equal(t, 1, n.Length)
}

func TestParseFD(t *testing.T) {
	n, err := compactint.Parse([]byte{0xfd, 0x26, 0x02})
	require.NoError(t, err)
	assert.Equal(t, uint64(550), n.Value)
	assert.Equal(t, 3, n.Length)
}

func TestParseTruncatedFD(t *testing.T) {
	_, err := compactint.Parse([]byte{0xfd, 0x26})
	require.Error(t, err)
	assert.True(t, errors.Is(err, spverrors.ErrBadCompactInt))
}

func TestParseFE(t *testing.T) {
	n, err := compactint.Parse([]byte{0xfe, 0x01, 0x02, 0x03, 0x04})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x04030201), n.Value)
	assert.Equal(t, 5, n.Length)
}

func TestParseFF(t *testing.T) {
	n, err := compactint.Parse([]byte{0xff, 1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0807060504030201), n.Value)
	assert.Equal(t, 9, n.Length)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, 0xffffffffffffffff}
	for _, v := range values {
		encoded := compactint.Encode(v)
		assert.Equal(t, compactint.SerializedLength(v), len(encoded))

		n, err := compactint.Parse(encoded)
		require.NoError(t, err)
		assert.Equal(t, v, n.Value)
		assert.Equal(t, len(encoded), n.Length)
	}
}

func TestDataLength(t *testing.T) {
	assert.Equal(t, 0, compactint.DataLength(0x00))
	assert.Equal(t, 0, compactint.DataLength(0xfc))
	assert.Equal(t, 2, compactint.DataLength(0xfd))
	assert.Equal(t, 4, compactint.DataLength(0xfe))
	assert.Equal(t, 8, compactint.DataLength(0xff))
}
