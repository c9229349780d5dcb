// Package lightclient bridges the wire representation of an ethereum beacon
// light client and the domain records the verification engine consumes.
// Records decode from the proto messages with every structural check applied
// up front, so a constructed record is always internally consistent; from
// there only read accessors and the inverse encoding are offered. Nothing in
// this package recomputes Merkle roots or checks signatures.
package lightclient

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
)

// ClientRevisionNumber is the revision number every height handled by the
// ethereum light client carries. Ethereum has no revision concept of its
// own, so the client pins the number instead of tracking hard forks with it.
const ClientRevisionNumber uint64 = 0

// ConsensusUpdateInfo is a decoded finality update: a header attested by the
// sync committee, the finalized header it proves, and optionally the next
// sync committee when the update crosses a period boundary.
type ConsensusUpdateInfo struct {
	attestedHeader           beacon.BeaconBlockHeader
	nextSyncCommittee        *nextSyncCommitteeUpdate
	finalizedHeader          beacon.BeaconBlockHeader
	finalizedHeaderBranch    []common.Hash
	finalizedExecutionRoot   common.Hash
	finalizedExecutionBranch []common.Hash
	syncAggregate            beacon.SyncAggregate
	signatureSlot            beacon.Slot
}

// nextSyncCommitteeUpdate pairs a candidate next committee with the branch
// proving it under the attested header's state root. The pairing is a single
// value so the committee and its branch can only be present together.
type nextSyncCommitteeUpdate struct {
	committee beacon.SyncCommittee
	branch    []common.Hash
}

// ExecutionUpdateInfo is a decoded execution payload summary: the payload's
// state root and block number, each with the branch proving it under the
// payload root.
type ExecutionUpdateInfo struct {
	stateRoot         common.Hash
	stateRootBranch   []common.Hash
	blockNumber       uint64
	blockNumberBranch []common.Hash
}

// TrustedSyncCommittee names the committee the relayer claims the client
// already trusts: the height of the consensus state holding it and whether
// it is that state's current or next committee.
type TrustedSyncCommittee struct {
	height        clienttypes.Height
	syncCommittee beacon.SyncCommittee
	isNext        bool
}

// Validate checks that the height carries the ethereum client revision
// number and that the committee itself is usable. It stops at the first
// failure.
func (tsc *TrustedSyncCommittee) Validate() error {
	if rn := tsc.height.RevisionNumber(); rn != ClientRevisionNumber {
		return &UnexpectedHeightRevisionNumberError{Expected: ClientRevisionNumber, Got: rn}
	}
	return tsc.syncCommittee.Validate()
}

// AccountUpdateInfo is a decoded account update: the Merkle Patricia proof
// of the IBC contract account and the storage root it commits to. The root
// is not re-derived from the proof here; that is the verifier's job.
type AccountUpdateInfo struct {
	accountProof       [][]byte
	accountStorageRoot common.Hash
}

// Header is the relay artifact submitted to update the client: the trusted
// committee anchoring verification, the consensus and execution updates to
// verify against it, the account update for the IBC contract, and the
// timestamp of the finalized execution block.
type Header struct {
	trustedSyncCommittee TrustedSyncCommittee
	consensusUpdate      *ConsensusUpdateInfo
	executionUpdate      *ExecutionUpdateInfo
	accountUpdate        *AccountUpdateInfo
	timestamp            time.Time
}

// FinalizedHeaderMisbehaviour is evidence of two updates finalizing
// different headers for the same slot.
type FinalizedHeaderMisbehaviour struct {
	clientID             string
	trustedSyncCommittee TrustedSyncCommittee
	consensusUpdate1     *ConsensusUpdateInfo
	consensusUpdate2     *ConsensusUpdateInfo
}

// NextSyncCommitteeMisbehaviour is evidence of two updates proving different
// next committees under attested headers at the same slot.
type NextSyncCommitteeMisbehaviour struct {
	clientID             string
	trustedSyncCommittee TrustedSyncCommittee
	consensusUpdate1     *ConsensusUpdateInfo
	consensusUpdate2     *ConsensusUpdateInfo
}
