package lightclient

import (
	"github.com/pkg/errors"

	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// FinalizedHeaderMisbehaviourFromProto decodes finalized-header conflict
// evidence against the given committee size. Both updates are mandatory.
func FinalizedHeaderMisbehaviourFromProto(pb *ethpb.FinalizedHeaderMisbehaviour, syncCommitteeSize uint64) (*FinalizedHeaderMisbehaviour, error) {
	if pb == nil {
		return nil, errProtoMissing("finalized_header_misbehaviour")
	}
	trusted, update1, update2, err := misbehaviourPartsFromProto(pb.TrustedSyncCommittee, pb.ConsensusUpdate_1, pb.ConsensusUpdate_2, syncCommitteeSize)
	if err != nil {
		return nil, err
	}
	return &FinalizedHeaderMisbehaviour{
		clientID:             pb.ClientId,
		trustedSyncCommittee: *trusted,
		consensusUpdate1:     update1,
		consensusUpdate2:     update2,
	}, nil
}

// NextSyncCommitteeMisbehaviourFromProto decodes next-committee conflict
// evidence against the given committee size. Both updates are mandatory.
func NextSyncCommitteeMisbehaviourFromProto(pb *ethpb.NextSyncCommitteeMisbehaviour, syncCommitteeSize uint64) (*NextSyncCommitteeMisbehaviour, error) {
	if pb == nil {
		return nil, errProtoMissing("next_sync_committee_misbehaviour")
	}
	trusted, update1, update2, err := misbehaviourPartsFromProto(pb.TrustedSyncCommittee, pb.ConsensusUpdate_1, pb.ConsensusUpdate_2, syncCommitteeSize)
	if err != nil {
		return nil, err
	}
	return &NextSyncCommitteeMisbehaviour{
		clientID:             pb.ClientId,
		trustedSyncCommittee: *trusted,
		consensusUpdate1:     update1,
		consensusUpdate2:     update2,
	}, nil
}

func misbehaviourPartsFromProto(
	trustedPb *ethpb.TrustedSyncCommittee,
	update1Pb, update2Pb *ethpb.ConsensusUpdate,
	syncCommitteeSize uint64,
) (*TrustedSyncCommittee, *ConsensusUpdateInfo, *ConsensusUpdateInfo, error) {
	trusted, err := TrustedSyncCommitteeFromProto(trustedPb, syncCommitteeSize)
	if err != nil {
		return nil, nil, nil, err
	}
	if update1Pb == nil {
		return nil, nil, nil, errProtoMissing("consensus_update_1")
	}
	update1, err := ConsensusUpdateFromProto(update1Pb, syncCommitteeSize)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "consensus_update_1")
	}
	if update2Pb == nil {
		return nil, nil, nil, errProtoMissing("consensus_update_2")
	}
	update2, err := ConsensusUpdateFromProto(update2Pb, syncCommitteeSize)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "consensus_update_2")
	}
	return trusted, update1, update2, nil
}

// Proto encodes the evidence.
func (m *FinalizedHeaderMisbehaviour) Proto() *ethpb.FinalizedHeaderMisbehaviour {
	return &ethpb.FinalizedHeaderMisbehaviour{
		ClientId:             m.clientID,
		TrustedSyncCommittee: m.trustedSyncCommittee.Proto(),
		ConsensusUpdate_1:    m.consensusUpdate1.Proto(),
		ConsensusUpdate_2:    m.consensusUpdate2.Proto(),
	}
}

// Proto encodes the evidence.
func (m *NextSyncCommitteeMisbehaviour) Proto() *ethpb.NextSyncCommitteeMisbehaviour {
	return &ethpb.NextSyncCommitteeMisbehaviour{
		ClientId:             m.clientID,
		TrustedSyncCommittee: m.trustedSyncCommittee.Proto(),
		ConsensusUpdate_1:    m.consensusUpdate1.Proto(),
		ConsensusUpdate_2:    m.consensusUpdate2.Proto(),
	}
}

// ClientID returns the client the evidence accuses.
func (m *FinalizedHeaderMisbehaviour) ClientID() string {
	return m.clientID
}

// TrustedSyncCommittee returns the committee both updates claim trust from.
func (m *FinalizedHeaderMisbehaviour) TrustedSyncCommittee() *TrustedSyncCommittee {
	return &m.trustedSyncCommittee
}

// ConsensusUpdate1 returns the first conflicting update.
func (m *FinalizedHeaderMisbehaviour) ConsensusUpdate1() *ConsensusUpdateInfo {
	return m.consensusUpdate1
}

// ConsensusUpdate2 returns the second conflicting update.
func (m *FinalizedHeaderMisbehaviour) ConsensusUpdate2() *ConsensusUpdateInfo {
	return m.consensusUpdate2
}

// ClientID returns the client the evidence accuses.
func (m *NextSyncCommitteeMisbehaviour) ClientID() string {
	return m.clientID
}

// TrustedSyncCommittee returns the committee both updates claim trust from.
func (m *NextSyncCommitteeMisbehaviour) TrustedSyncCommittee() *TrustedSyncCommittee {
	return &m.trustedSyncCommittee
}

// ConsensusUpdate1 returns the first conflicting update.
func (m *NextSyncCommitteeMisbehaviour) ConsensusUpdate1() *ConsensusUpdateInfo {
	return m.consensusUpdate1
}

// ConsensusUpdate2 returns the second conflicting update.
func (m *NextSyncCommitteeMisbehaviour) ConsensusUpdate2() *ConsensusUpdateInfo {
	return m.consensusUpdate2
}

// Validate checks the evidence has conflict shape: both updates finalize
// the same slot with different headers. Whether either update verifies is
// the verifier's business.
func (m *FinalizedHeaderMisbehaviour) Validate() error {
	if m.clientID == "" {
		return errors.New("client id cannot be empty")
	}
	if err := m.trustedSyncCommittee.Validate(); err != nil {
		return err
	}
	header1 := m.consensusUpdate1.FinalizedBeaconHeader()
	header2 := m.consensusUpdate2.FinalizedBeaconHeader()
	if header1.Slot != header2.Slot {
		return errors.Errorf("finalized headers are at different slots: %d != %d", header1.Slot, header2.Slot)
	}
	if header1 == header2 {
		return errors.New("finalized headers are identical")
	}
	return nil
}

// Validate checks the evidence has conflict shape: both updates prove a
// next committee for the same attested slot and the committees differ.
func (m *NextSyncCommitteeMisbehaviour) Validate() error {
	if m.clientID == "" {
		return errors.New("client id cannot be empty")
	}
	if err := m.trustedSyncCommittee.Validate(); err != nil {
		return err
	}
	committee1 := m.consensusUpdate1.NextSyncCommittee()
	committee2 := m.consensusUpdate2.NextSyncCommittee()
	if committee1 == nil || committee2 == nil {
		return errors.New("both updates must carry a next sync committee")
	}
	slot1 := m.consensusUpdate1.AttestedBeaconHeader().Slot
	slot2 := m.consensusUpdate2.AttestedBeaconHeader().Slot
	if slot1 != slot2 {
		return errors.Errorf("attested headers are at different slots: %d != %d", slot1, slot2)
	}
	if committee1.Equal(committee2) {
		return errors.New("next sync committees are identical")
	}
	return nil
}
