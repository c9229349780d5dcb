package beacon

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ssz "github.com/ferranbt/fastssz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeaconBlockHeaderMarshalSSZ(t *testing.T) {
	hdr := &BeaconBlockHeader{
		Slot:          64,
		ProposerIndex: 11,
		ParentRoot:    common.HexToHash("0x0101010101010101010101010101010101010101010101010101010101010101"),
		StateRoot:     common.HexToHash("0x0202020202020202020202020202020202020202020202020202020202020202"),
		BodyRoot:      common.HexToHash("0x0303030303030303030303030303030303030303030303030303030303030303"),
	}

	b, err := hdr.MarshalSSZ()
	require.NoError(t, err)
	require.Len(t, b, 112)
	assert.Equal(t, 112, hdr.SizeSSZ())
	assert.Equal(t, uint64(64), binary.LittleEndian.Uint64(b[0:8]))
	assert.Equal(t, uint64(11), binary.LittleEndian.Uint64(b[8:16]))
	assert.Equal(t, hdr.ParentRoot[:], b[16:48])
	assert.Equal(t, hdr.StateRoot[:], b[48:80])
	assert.Equal(t, hdr.BodyRoot[:], b[80:112])

	var got BeaconBlockHeader
	require.NoError(t, got.UnmarshalSSZ(b))
	assert.Equal(t, *hdr, got)
}

func TestBeaconBlockHeaderUnmarshalSSZWrongSize(t *testing.T) {
	var hdr BeaconBlockHeader
	require.ErrorIs(t, hdr.UnmarshalSSZ(make([]byte, 111)), ssz.ErrSize)
	require.ErrorIs(t, hdr.UnmarshalSSZ(make([]byte, 113)), ssz.ErrSize)
	require.ErrorIs(t, hdr.UnmarshalSSZ(nil), ssz.ErrSize)
}

func TestBeaconBlockHeaderHashTreeRoot(t *testing.T) {
	hdr := &BeaconBlockHeader{
		Slot:          12345,
		ProposerIndex: 42,
		ParentRoot:    common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111"),
		StateRoot:     common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222"),
		BodyRoot:      common.HexToHash("0x3333333333333333333333333333333333333333333333333333333333333333"),
	}

	root, err := hdr.HashTreeRoot()
	require.NoError(t, err)

	// Recompute by hand: five 32-byte chunks padded to eight leaves.
	var chunks [8][32]byte
	binary.LittleEndian.PutUint64(chunks[0][:8], uint64(hdr.Slot))
	binary.LittleEndian.PutUint64(chunks[1][:8], uint64(hdr.ProposerIndex))
	copy(chunks[2][:], hdr.ParentRoot[:])
	copy(chunks[3][:], hdr.StateRoot[:])
	copy(chunks[4][:], hdr.BodyRoot[:])

	hashPair := func(a, b [32]byte) [32]byte {
		return sha256.Sum256(append(a[:], b[:]...))
	}
	l01 := hashPair(chunks[0], chunks[1])
	l23 := hashPair(chunks[2], chunks[3])
	l45 := hashPair(chunks[4], chunks[5])
	l67 := hashPair(chunks[6], chunks[7])
	want := hashPair(hashPair(l01, l23), hashPair(l45, l67))

	assert.Equal(t, want, root)
}

func TestBeaconBlockHeaderHashTreeRootSensitivity(t *testing.T) {
	a := &BeaconBlockHeader{Slot: 1}
	b := &BeaconBlockHeader{Slot: 2}

	ra, err := a.HashTreeRoot()
	require.NoError(t, err)
	rb, err := b.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, ra, rb)

	ra2, err := a.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, ra, ra2)
}
