package lightclient

import (
	"bytes"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

func testConsensusStateProto() *ethpb.ConsensusState {
	return &ethpb.ConsensusState{
		Slot:                 64,
		StorageRoot:          testRoot(0x11),
		Timestamp:            time.Unix(1700000000, 0).UTC(),
		CurrentSyncCommittee: bytes.Repeat([]byte{0xaa}, 48),
		NextSyncCommittee:    bytes.Repeat([]byte{0xbb}, 48),
	}
}

func TestConsensusStateFromProtoRoundTrip(t *testing.T) {
	in := testConsensusStateProto()
	cs, err := ConsensusStateFromProto(in)
	require.NoError(t, err)

	assert.Equal(t, beacon.Slot(64), cs.Slot)
	assert.Equal(t, common.BytesToHash(testRoot(0x11)), cs.StorageRoot)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), cs.Timestamp)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 48), cs.CurrentSyncCommittee.Marshal())
	assert.False(t, cs.NextSyncCommittee.IsZero())
	require.NoError(t, cs.Validate())

	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, cs.Proto()))
}

func TestConsensusStateFromProtoEmptyNextCommittee(t *testing.T) {
	in := testConsensusStateProto()
	in.NextSyncCommittee = nil

	cs, err := ConsensusStateFromProto(in)
	require.NoError(t, err)
	assert.True(t, cs.NextSyncCommittee.IsZero())
	require.NoError(t, cs.Validate())

	out := cs.Proto()
	assert.Empty(t, out.NextSyncCommittee)
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))
}

func TestConsensusStateFromProtoErrors(t *testing.T) {
	_, err := ConsensusStateFromProto(nil)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "consensus_state", missing.Field)

	in := testConsensusStateProto()
	in.StorageRoot = in.StorageRoot[:31]
	_, err = ConsensusStateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "storage_root")

	in = testConsensusStateProto()
	in.CurrentSyncCommittee = in.CurrentSyncCommittee[:47]
	_, err = ConsensusStateFromProto(in)
	require.ErrorIs(t, err, bls.ErrInvalidPublicKeyLength)
	assert.ErrorContains(t, err, "current_sync_committee")

	in = testConsensusStateProto()
	in.NextSyncCommittee = in.NextSyncCommittee[:47]
	_, err = ConsensusStateFromProto(in)
	require.ErrorIs(t, err, bls.ErrInvalidPublicKeyLength)
	assert.ErrorContains(t, err, "next_sync_committee")
}

func TestConsensusStateValidate(t *testing.T) {
	valid := func() *ConsensusState {
		cs, err := ConsensusStateFromProto(testConsensusStateProto())
		require.NoError(t, err)
		return cs
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*ConsensusState)
		wantErr string
	}{
		{
			name:    "zero slot",
			mutate:  func(cs *ConsensusState) { cs.Slot = 0 },
			wantErr: "slot",
		},
		{
			name:    "zero storage root",
			mutate:  func(cs *ConsensusState) { cs.StorageRoot = common.Hash{} },
			wantErr: "storage root",
		},
		{
			name:    "zero timestamp",
			mutate:  func(cs *ConsensusState) { cs.Timestamp = time.Time{} },
			wantErr: "timestamp",
		},
		{
			name:    "zero current committee",
			mutate:  func(cs *ConsensusState) { cs.CurrentSyncCommittee = bls.PublicKey{} },
			wantErr: "current sync committee",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := valid()
			tt.mutate(cs)
			err := cs.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
