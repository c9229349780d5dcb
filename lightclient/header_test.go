package lightclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

func testHeaderProto() *ethpb.Header {
	return &ethpb.Header{
		TrustedSyncCommittee: testTrustedSyncCommitteeProto(4),
		ConsensusUpdate:      testConsensusUpdateProto(4),
		ExecutionUpdate: &ethpb.ExecutionUpdate{
			StateRoot:         testRoot(0x50),
			StateRootBranch:   testBranch(3, 0x51),
			BlockNumber:       17_000_000,
			BlockNumberBranch: testBranch(3, 0x60),
		},
		AccountUpdate: testAccountUpdateProto(),
		Timestamp:     time.Unix(1700000000, 0).UTC(),
	}
}

func TestHeaderFromProtoRoundTrip(t *testing.T) {
	in := testHeaderProto()
	h, err := HeaderFromProto(in, 4)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), h.TrustedSyncCommittee().Height().RevisionHeight())
	assert.Equal(t, beacon.Slot(99), h.ConsensusUpdate().FinalizedBeaconHeader().Slot)
	assert.Equal(t, uint64(17_000_000), h.ExecutionUpdate().BlockNumber())
	assert.Len(t, h.AccountUpdate().AccountProof(), 2)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), h.Timestamp())
	require.NoError(t, h.Validate())

	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, h.Proto()))
}

// The same assembly must survive a trip through the wire encoding, not
// just the struct form.
func TestHeaderWireRoundTrip(t *testing.T) {
	in := testHeaderProto()
	bz, err := in.Marshal()
	require.NoError(t, err)

	var decoded ethpb.Header
	require.NoError(t, decoded.Unmarshal(bz))

	h, err := HeaderFromProto(&decoded, 4)
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), h.Timestamp())

	out, err := h.Proto().Marshal()
	require.NoError(t, err)
	assert.Equal(t, bz, out)
}

func TestHeaderFromProtoMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ethpb.Header)
		field  string
	}{
		{
			name: "trusted sync committee",
			mutate: func(pb *ethpb.Header) {
				pb.TrustedSyncCommittee = nil
			},
			field: "trusted_sync_committee",
		},
		{
			name: "consensus update",
			mutate: func(pb *ethpb.Header) {
				pb.ConsensusUpdate = nil
			},
			field: "consensus_update",
		},
		{
			name: "execution update",
			mutate: func(pb *ethpb.Header) {
				pb.ExecutionUpdate = nil
			},
			field: "execution_update",
		},
		{
			name: "account update",
			mutate: func(pb *ethpb.Header) {
				pb.AccountUpdate = nil
			},
			field: "account_update",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testHeaderProto()
			tt.mutate(in)
			_, err := HeaderFromProto(in, 4)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}

	_, err := HeaderFromProto(nil, 4)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "header", missing.Field)
}

func TestHeaderValidate(t *testing.T) {
	decode := func(mutate func(*ethpb.Header)) *Header {
		in := testHeaderProto()
		mutate(in)
		h, err := HeaderFromProto(in, 4)
		require.NoError(t, err)
		return h
	}

	require.NoError(t, decode(func(*ethpb.Header) {}).Validate())

	h := decode(func(pb *ethpb.Header) {
		pb.TrustedSyncCommittee.TrustedHeight.RevisionNumber = 7
	})
	err := h.Validate()
	var revErr *UnexpectedHeightRevisionNumberError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, uint64(7), revErr.Got)

	h = decode(func(pb *ethpb.Header) {
		pb.Timestamp = time.Time{}
	})
	require.ErrorContains(t, h.Validate(), "timestamp")
}

func TestNewHeader(t *testing.T) {
	trusted, err := TrustedSyncCommitteeFromProto(testTrustedSyncCommitteeProto(4), 4)
	require.NoError(t, err)
	consensus, err := ConsensusUpdateFromProto(testConsensusUpdateProto(4), 4)
	require.NoError(t, err)
	execution, err := ExecutionUpdateFromProto(&ethpb.ExecutionUpdate{
		StateRoot:         testRoot(0x50),
		StateRootBranch:   testBranch(3, 0x51),
		BlockNumber:       17_000_000,
		BlockNumberBranch: testBranch(3, 0x60),
	})
	require.NoError(t, err)
	account, err := AccountUpdateFromProto(testAccountUpdateProto())
	require.NoError(t, err)

	ts := time.Unix(1700000000, 0).UTC()
	h := NewHeader(trusted, consensus, execution, account, ts)
	require.NoError(t, h.Validate())

	assert.Equal(t, mustMarshal(t, testHeaderProto()), mustMarshal(t, h.Proto()))
}
