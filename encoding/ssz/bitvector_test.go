package ssz

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitvectorRoundTrip(t *testing.T) {
	v := NewBitvector(512)
	v.SetBitAt(0, true)
	v.SetBitAt(7, true)
	v.SetBitAt(511, true)

	got, err := BitvectorFromBytes(v.Bytes(), 512)
	require.NoError(t, err)
	assert.Equal(t, uint64(512), got.Len())
	assert.Equal(t, uint64(3), got.Count())
	assert.True(t, got.BitAt(0))
	assert.True(t, got.BitAt(7))
	assert.True(t, got.BitAt(511))
	assert.False(t, got.BitAt(8))
	assert.True(t, v.Equal(got))
}

func TestBitvectorFromBytesWrongLength(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		bitLen uint64
	}{
		{name: "too short", data: make([]byte, 63), bitLen: 512},
		{name: "too long", data: make([]byte, 65), bitLen: 512},
		{name: "empty for 32 bits", data: nil, bitLen: 32},
		{name: "one byte for 512 bits", data: []byte{0xff}, bitLen: 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BitvectorFromBytes(tt.data, tt.bitLen)
			var sizeErr *BitvectorSizeError
			require.ErrorAs(t, err, &sizeErr)
			assert.Equal(t, tt.bitLen, sizeErr.Bits)
			assert.Equal(t, len(tt.data), len(sizeErr.Bytes))
		})
	}
}

func TestBitvectorPaddingBits(t *testing.T) {
	// 10 bits occupy two bytes; the upper six bits of the second byte are
	// padding and must be clear.
	_, err := BitvectorFromBytes([]byte{0xff, 0x03}, 10)
	require.NoError(t, err)

	_, err = BitvectorFromBytes([]byte{0xff, 0x04}, 10)
	var sizeErr *BitvectorSizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestBitvectorSetBitAtOutOfRange(t *testing.T) {
	v := NewBitvector(8)
	v.SetBitAt(8, true)
	assert.Equal(t, uint64(0), v.Count())
	assert.False(t, v.BitAt(8))
}

func TestBitvectorMatchesBitfieldLayout(t *testing.T) {
	// The serialized form must be interchangeable with the fixed-size
	// vectors the consensus libraries use.
	ref := bitfield.NewBitvector512()
	ref.SetBitAt(3, true)
	ref.SetBitAt(200, true)

	v, err := BitvectorFromBytes(ref.Bytes(), 512)
	require.NoError(t, err)
	assert.True(t, v.BitAt(3))
	assert.True(t, v.BitAt(200))
	assert.Equal(t, ref.Count(), v.Count())
	assert.Equal(t, []byte(ref.Bytes()), v.Bytes())

	small := bitfield.NewBitvector32()
	small.SetBitAt(31, true)
	w, err := BitvectorFromBytes(small.Bytes(), 32)
	require.NoError(t, err)
	assert.True(t, w.BitAt(31))
	assert.Equal(t, uint64(1), w.Count())
}

func TestBitvectorZeroValue(t *testing.T) {
	var v Bitvector
	assert.Equal(t, uint64(0), v.Len())
	assert.Equal(t, uint64(0), v.Count())
	assert.False(t, v.BitAt(0))
	assert.Empty(t, v.Bytes())
}
