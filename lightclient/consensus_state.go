package lightclient

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// ConsensusState is the per-height snapshot the host chain stores: the slot
// it was taken at, the IBC contract's storage root at that slot, the block
// timestamp, and the aggregate keys of the committees trusted from there.
type ConsensusState struct {
	Slot        beacon.Slot
	StorageRoot common.Hash
	Timestamp   time.Time

	// CurrentSyncCommittee and NextSyncCommittee are the aggregate pubkeys
	// of the committees for the stored period. The next committee is zero
	// until an update inside the period proves it.
	CurrentSyncCommittee bls.PublicKey
	NextSyncCommittee    bls.PublicKey
}

// Validate checks the snapshot is structurally usable. The next committee
// key may be zero.
func (cs *ConsensusState) Validate() error {
	if cs.Slot == 0 {
		return errors.New("slot cannot be zero")
	}
	if cs.StorageRoot == (common.Hash{}) {
		return errors.New("storage root cannot be zero")
	}
	if cs.Timestamp.IsZero() {
		return errors.New("timestamp cannot be zero")
	}
	if cs.CurrentSyncCommittee.IsZero() {
		return errors.New("current sync committee cannot be zero")
	}
	return nil
}

// ConsensusStateFromProto decodes a wire consensus state. An empty next
// committee key decodes as the zero key.
func ConsensusStateFromProto(pb *ethpb.ConsensusState) (*ConsensusState, error) {
	if pb == nil {
		return nil, errProtoMissing("consensus_state")
	}
	storageRoot, err := toHash(pb.StorageRoot)
	if err != nil {
		return nil, errors.Wrap(err, "storage_root")
	}
	current, err := bls.PublicKeyFromBytes(pb.CurrentSyncCommittee)
	if err != nil {
		return nil, errors.Wrap(err, "current_sync_committee")
	}
	var next bls.PublicKey
	if len(pb.NextSyncCommittee) != 0 {
		if next, err = bls.PublicKeyFromBytes(pb.NextSyncCommittee); err != nil {
			return nil, errors.Wrap(err, "next_sync_committee")
		}
	}
	return &ConsensusState{
		Slot:                 beacon.Slot(pb.Slot),
		StorageRoot:          storageRoot,
		Timestamp:            pb.Timestamp,
		CurrentSyncCommittee: current,
		NextSyncCommittee:    next,
	}, nil
}

// Proto encodes the snapshot. A zero next committee key is emitted as empty
// bytes.
func (cs *ConsensusState) Proto() *ethpb.ConsensusState {
	pb := &ethpb.ConsensusState{
		Slot:                 uint64(cs.Slot),
		StorageRoot:          cs.StorageRoot.Bytes(),
		Timestamp:            cs.Timestamp,
		CurrentSyncCommittee: cs.CurrentSyncCommittee.Marshal(),
	}
	if !cs.NextSyncCommittee.IsZero() {
		pb.NextSyncCommittee = cs.NextSyncCommittee.Marshal()
	}
	return pb
}
