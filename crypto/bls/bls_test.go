package bls_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
)

func TestPublicKeyFromBytes(t *testing.T) {
	valid := bytes.Repeat([]byte{0xab}, 48)
	pk, err := bls.PublicKeyFromBytes(valid)
	require.NoError(t, err)
	require.Equal(t, valid, pk.Marshal())
	require.False(t, pk.IsZero())

	for _, n := range []int{0, 1, 47, 49, 96} {
		_, err := bls.PublicKeyFromBytes(make([]byte, n))
		require.ErrorIs(t, err, bls.ErrInvalidPublicKeyLength, "length %d", n)
	}
}

func TestSignatureFromBytes(t *testing.T) {
	valid := bytes.Repeat([]byte{0xcd}, 96)
	sig, err := bls.SignatureFromBytes(valid)
	require.NoError(t, err)
	require.Equal(t, valid, sig.Marshal())

	_, err = bls.SignatureFromBytes(make([]byte, 95))
	require.ErrorIs(t, err, bls.ErrInvalidSignatureLength)
	require.Contains(t, err.Error(), "expected 96 bytes, got 95")
}

func TestPublicKeyZeroValue(t *testing.T) {
	var pk bls.PublicKey
	require.True(t, pk.IsZero())

	// The zero signature is syntactically valid wire input even though it
	// never verifies; decoding must accept it.
	sig, err := bls.SignatureFromBytes(make([]byte, 96))
	require.NoError(t, err)
	require.Len(t, sig.Marshal(), 96)
}
