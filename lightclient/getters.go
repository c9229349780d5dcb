package lightclient

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
	"github.com/yoshidan/ethereum-ibc-go/updates"
)

var (
	_ updates.ConsensusUpdate = (*ConsensusUpdateInfo)(nil)
	_ updates.ExecutionUpdate = (*ExecutionUpdateInfo)(nil)
)

// AttestedBeaconHeader returns the header the sync committee signed over.
func (u *ConsensusUpdateInfo) AttestedBeaconHeader() beacon.BeaconBlockHeader {
	return u.attestedHeader
}

// NextSyncCommittee returns the candidate next committee, or nil when the
// update carries no rotation.
func (u *ConsensusUpdateInfo) NextSyncCommittee() *beacon.SyncCommittee {
	if u.nextSyncCommittee == nil {
		return nil
	}
	return &u.nextSyncCommittee.committee
}

// NextSyncCommitteeBranch returns the branch proving the next committee, or
// nil when the update carries no rotation.
func (u *ConsensusUpdateInfo) NextSyncCommitteeBranch() []common.Hash {
	if u.nextSyncCommittee == nil {
		return nil
	}
	return u.nextSyncCommittee.branch
}

// FinalizedBeaconHeader returns the header the update finalizes.
func (u *ConsensusUpdateInfo) FinalizedBeaconHeader() beacon.BeaconBlockHeader {
	return u.finalizedHeader
}

// FinalizedBeaconHeaderBranch returns the branch proving the finalized
// header under the attested state root.
func (u *ConsensusUpdateInfo) FinalizedBeaconHeaderBranch() []common.Hash {
	return u.finalizedHeaderBranch
}

// FinalizedExecutionRoot returns the execution payload root of the
// finalized block.
func (u *ConsensusUpdateInfo) FinalizedExecutionRoot() common.Hash {
	return u.finalizedExecutionRoot
}

// FinalizedExecutionBranch returns the branch proving the execution payload
// under the finalized block body.
func (u *ConsensusUpdateInfo) FinalizedExecutionBranch() []common.Hash {
	return u.finalizedExecutionBranch
}

// SyncAggregate returns the committee signature over the attested header.
func (u *ConsensusUpdateInfo) SyncAggregate() *beacon.SyncAggregate {
	return &u.syncAggregate
}

// SignatureSlot returns the slot the aggregate claims to be signed at. It
// is untrusted until the signature verifies.
func (u *ConsensusUpdateInfo) SignatureSlot() beacon.Slot {
	return u.signatureSlot
}

// StateRoot returns the execution payload's state root.
func (u *ExecutionUpdateInfo) StateRoot() common.Hash {
	return u.stateRoot
}

// StateRootBranch returns the branch proving the state root under the
// payload root.
func (u *ExecutionUpdateInfo) StateRootBranch() []common.Hash {
	return u.stateRootBranch
}

// BlockNumber returns the execution payload's block number.
func (u *ExecutionUpdateInfo) BlockNumber() uint64 {
	return u.blockNumber
}

// BlockNumberBranch returns the branch proving the block number under the
// payload root.
func (u *ExecutionUpdateInfo) BlockNumberBranch() []common.Hash {
	return u.blockNumberBranch
}

// Height returns the height of the consensus state the committee is
// claimed to be stored at.
func (tsc *TrustedSyncCommittee) Height() clienttypes.Height {
	return tsc.height
}

// SyncCommittee returns the committee itself.
func (tsc *TrustedSyncCommittee) SyncCommittee() *beacon.SyncCommittee {
	return &tsc.syncCommittee
}

// IsNext reports whether the committee is the consensus state's next
// committee rather than its current one.
func (tsc *TrustedSyncCommittee) IsNext() bool {
	return tsc.isNext
}

// AccountProof returns the trie nodes proving the IBC contract account,
// each node verbatim.
func (u *AccountUpdateInfo) AccountProof() [][]byte {
	return u.accountProof
}

// AccountStorageRoot returns the storage root the proof commits to.
func (u *AccountUpdateInfo) AccountStorageRoot() common.Hash {
	return u.accountStorageRoot
}
