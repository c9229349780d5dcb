package lightclient

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

func testFinalizedHeaderMisbehaviourProto() *ethpb.FinalizedHeaderMisbehaviour {
	update2 := testConsensusUpdateProto(4)
	update2.FinalizedHeader.BodyRoot = testRoot(0xa4)
	return &ethpb.FinalizedHeaderMisbehaviour{
		ClientId:             "ethereum-0",
		TrustedSyncCommittee: testTrustedSyncCommitteeProto(4),
		ConsensusUpdate_1:    testConsensusUpdateProto(4),
		ConsensusUpdate_2:    update2,
	}
}

func testNextSyncCommitteeMisbehaviourProto() *ethpb.NextSyncCommitteeMisbehaviour {
	update2 := testConsensusUpdateProto(4)
	update2.NextSyncCommittee.Pubkeys[0] = bytes.Repeat([]byte{0x99}, 48)
	return &ethpb.NextSyncCommitteeMisbehaviour{
		ClientId:             "ethereum-0",
		TrustedSyncCommittee: testTrustedSyncCommitteeProto(4),
		ConsensusUpdate_1:    testConsensusUpdateProto(4),
		ConsensusUpdate_2:    update2,
	}
}

func TestFinalizedHeaderMisbehaviourFromProtoRoundTrip(t *testing.T) {
	in := testFinalizedHeaderMisbehaviourProto()
	m, err := FinalizedHeaderMisbehaviourFromProto(in, 4)
	require.NoError(t, err)

	assert.Equal(t, "ethereum-0", m.ClientID())
	assert.Equal(t, uint64(42), m.TrustedSyncCommittee().Height().RevisionHeight())
	assert.NotEqual(t, m.ConsensusUpdate1().FinalizedBeaconHeader(), m.ConsensusUpdate2().FinalizedBeaconHeader())
	require.NoError(t, m.Validate())

	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, m.Proto()))
}

func TestFinalizedHeaderMisbehaviourFromProtoMissingFields(t *testing.T) {
	var missing *MissingFieldError

	_, err := FinalizedHeaderMisbehaviourFromProto(nil, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "finalized_header_misbehaviour", missing.Field)

	in := testFinalizedHeaderMisbehaviourProto()
	in.ConsensusUpdate_1 = nil
	_, err = FinalizedHeaderMisbehaviourFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "consensus_update_1", missing.Field)

	in = testFinalizedHeaderMisbehaviourProto()
	in.ConsensusUpdate_2 = nil
	_, err = FinalizedHeaderMisbehaviourFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "consensus_update_2", missing.Field)

	in = testFinalizedHeaderMisbehaviourProto()
	in.TrustedSyncCommittee = nil
	_, err = FinalizedHeaderMisbehaviourFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trusted_sync_committee", missing.Field)
}

func TestFinalizedHeaderMisbehaviourValidate(t *testing.T) {
	decode := func(mutate func(*ethpb.FinalizedHeaderMisbehaviour)) *FinalizedHeaderMisbehaviour {
		in := testFinalizedHeaderMisbehaviourProto()
		mutate(in)
		m, err := FinalizedHeaderMisbehaviourFromProto(in, 4)
		require.NoError(t, err)
		return m
	}

	require.NoError(t, decode(func(*ethpb.FinalizedHeaderMisbehaviour) {}).Validate())

	m := decode(func(pb *ethpb.FinalizedHeaderMisbehaviour) {
		pb.ClientId = ""
	})
	require.ErrorContains(t, m.Validate(), "client id")

	m = decode(func(pb *ethpb.FinalizedHeaderMisbehaviour) {
		pb.ConsensusUpdate_2.FinalizedHeader.Slot = 98
	})
	require.ErrorContains(t, m.Validate(), "different slots")

	m = decode(func(pb *ethpb.FinalizedHeaderMisbehaviour) {
		pb.ConsensusUpdate_2 = testConsensusUpdateProto(4)
	})
	require.ErrorContains(t, m.Validate(), "identical")

	m = decode(func(pb *ethpb.FinalizedHeaderMisbehaviour) {
		pb.TrustedSyncCommittee.TrustedHeight.RevisionNumber = 3
	})
	var revErr *UnexpectedHeightRevisionNumberError
	require.ErrorAs(t, m.Validate(), &revErr)
}

func TestNextSyncCommitteeMisbehaviourFromProtoRoundTrip(t *testing.T) {
	in := testNextSyncCommitteeMisbehaviourProto()
	m, err := NextSyncCommitteeMisbehaviourFromProto(in, 4)
	require.NoError(t, err)

	assert.Equal(t, "ethereum-0", m.ClientID())
	require.NotNil(t, m.ConsensusUpdate1().NextSyncCommittee())
	require.NotNil(t, m.ConsensusUpdate2().NextSyncCommittee())
	require.NoError(t, m.Validate())

	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, m.Proto()))
}

func TestNextSyncCommitteeMisbehaviourValidate(t *testing.T) {
	decode := func(mutate func(*ethpb.NextSyncCommitteeMisbehaviour)) *NextSyncCommitteeMisbehaviour {
		in := testNextSyncCommitteeMisbehaviourProto()
		mutate(in)
		m, err := NextSyncCommitteeMisbehaviourFromProto(in, 4)
		require.NoError(t, err)
		return m
	}

	require.NoError(t, decode(func(*ethpb.NextSyncCommitteeMisbehaviour) {}).Validate())

	m := decode(func(pb *ethpb.NextSyncCommitteeMisbehaviour) {
		pb.ClientId = ""
	})
	require.ErrorContains(t, m.Validate(), "client id")

	// An update without a rotation decodes fine but cannot prove this
	// kind of conflict.
	m = decode(func(pb *ethpb.NextSyncCommitteeMisbehaviour) {
		pb.ConsensusUpdate_2.NextSyncCommitteeBranch = nil
	})
	require.ErrorContains(t, m.Validate(), "next sync committee")

	m = decode(func(pb *ethpb.NextSyncCommitteeMisbehaviour) {
		pb.ConsensusUpdate_2.AttestedHeader.Slot = 101
	})
	require.ErrorContains(t, m.Validate(), "different slots")

	m = decode(func(pb *ethpb.NextSyncCommitteeMisbehaviour) {
		pb.ConsensusUpdate_2 = testConsensusUpdateProto(4)
		pb.ConsensusUpdate_2.FinalizedHeader.BodyRoot = testRoot(0xa4)
	})
	require.ErrorContains(t, m.Validate(), "identical")
}

func TestNextSyncCommitteeMisbehaviourFromProtoMissingFields(t *testing.T) {
	var missing *MissingFieldError

	_, err := NextSyncCommitteeMisbehaviourFromProto(nil, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "next_sync_committee_misbehaviour", missing.Field)

	in := testNextSyncCommitteeMisbehaviourProto()
	in.ConsensusUpdate_1 = nil
	_, err = NextSyncCommitteeMisbehaviourFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "consensus_update_1", missing.Field)
}
