// Package updates declares the read-only views the verification engine
// consumes. The light client produces values satisfying these contracts;
// signature and Merkle-proof checking happen behind them.
package updates

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
)

// ConsensusUpdate is a beacon chain finality update as the verifier sees
// it. NextSyncCommittee and NextSyncCommitteeBranch return nil when the
// update carries no committee rotation; they are always nil or non-nil
// together.
type ConsensusUpdate interface {
	AttestedBeaconHeader() beacon.BeaconBlockHeader
	NextSyncCommittee() *beacon.SyncCommittee
	NextSyncCommitteeBranch() []common.Hash
	FinalizedBeaconHeader() beacon.BeaconBlockHeader
	FinalizedBeaconHeaderBranch() []common.Hash
	FinalizedExecutionRoot() common.Hash
	FinalizedExecutionBranch() []common.Hash
	SyncAggregate() *beacon.SyncAggregate
	SignatureSlot() beacon.Slot
}

// ExecutionUpdate is an execution payload summary as the verifier sees
// it: the payload's state root and block number, each with the branch
// proving it under the payload root.
type ExecutionUpdate interface {
	StateRoot() common.Hash
	StateRootBranch() []common.Hash
	BlockNumber() uint64
	BlockNumberBranch() []common.Hash
}
