package lightclient

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	"github.com/yoshidan/ethereum-ibc-go/encoding/ssz"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// toHash maps a wire byte string to a 32-byte hash. Only the exact width is
// accepted.
func toHash(bz []byte) (common.Hash, error) {
	if len(bz) != fieldparams.RootLength {
		return common.Hash{}, errors.Wrapf(ErrInvalidHashLength, "expected %d bytes, got %d", fieldparams.RootLength, len(bz))
	}
	return common.BytesToHash(bz), nil
}

// branchFromProto maps each wire byte string of a Merkle branch to a hash.
// The branch length is not checked here; the verifier owns depth checks.
func branchFromProto(bz [][]byte) ([]common.Hash, error) {
	branch := make([]common.Hash, 0, len(bz))
	for i, b := range bz {
		h, err := toHash(b)
		if err != nil {
			return nil, errors.Wrapf(err, "branch[%d]", i)
		}
		branch = append(branch, h)
	}
	return branch, nil
}

func branchToProto(branch []common.Hash) [][]byte {
	bz := make([][]byte, 0, len(branch))
	for _, h := range branch {
		bz = append(bz, h.Bytes())
	}
	return bz
}

func headerFromProto(h *ethpb.BeaconBlockHeader) (beacon.BeaconBlockHeader, error) {
	parentRoot, err := toHash(h.ParentRoot)
	if err != nil {
		return beacon.BeaconBlockHeader{}, errors.Wrap(err, "parent_root")
	}
	stateRoot, err := toHash(h.StateRoot)
	if err != nil {
		return beacon.BeaconBlockHeader{}, errors.Wrap(err, "state_root")
	}
	bodyRoot, err := toHash(h.BodyRoot)
	if err != nil {
		return beacon.BeaconBlockHeader{}, errors.Wrap(err, "body_root")
	}
	return beacon.BeaconBlockHeader{
		Slot:          beacon.Slot(h.Slot),
		ProposerIndex: beacon.ValidatorIndex(h.ProposerIndex),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

func headerToProto(h beacon.BeaconBlockHeader) *ethpb.BeaconBlockHeader {
	return &ethpb.BeaconBlockHeader{
		Slot:          uint64(h.Slot),
		ProposerIndex: uint64(h.ProposerIndex),
		ParentRoot:    h.ParentRoot.Bytes(),
		StateRoot:     h.StateRoot.Bytes(),
		BodyRoot:      h.BodyRoot.Bytes(),
	}
}

// syncCommitteeFromProto decodes a wire committee against an expected size.
// The pubkey count must equal syncCommitteeSize and every key must be a
// compressed G1 width; the first offending key fails the decode.
func syncCommitteeFromProto(sc *ethpb.SyncCommittee, syncCommitteeSize uint64) (beacon.SyncCommittee, error) {
	if got := uint64(len(sc.Pubkeys)); got != syncCommitteeSize {
		return beacon.SyncCommittee{}, &UnexpectedSyncCommitteeSizeError{Expected: syncCommitteeSize, Got: got}
	}
	pubkeys := make([]bls.PublicKey, 0, len(sc.Pubkeys))
	for i, bz := range sc.Pubkeys {
		pk, err := bls.PublicKeyFromBytes(bz)
		if err != nil {
			return beacon.SyncCommittee{}, errors.Wrapf(err, "pubkeys[%d]", i)
		}
		pubkeys = append(pubkeys, pk)
	}
	aggregate, err := bls.PublicKeyFromBytes(sc.AggregatePubkey)
	if err != nil {
		return beacon.SyncCommittee{}, errors.Wrap(err, "aggregate_pubkey")
	}
	return beacon.SyncCommittee{Pubkeys: pubkeys, AggregatePubkey: aggregate}, nil
}

func syncCommitteeToProto(sc *beacon.SyncCommittee) *ethpb.SyncCommittee {
	pubkeys := make([][]byte, 0, len(sc.Pubkeys))
	for _, pk := range sc.Pubkeys {
		pubkeys = append(pubkeys, pk.Marshal())
	}
	return &ethpb.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: sc.AggregatePubkey.Marshal(),
	}
}

// syncAggregateFromProto decodes a wire aggregate against an expected
// committee size. The bit vector must be exactly syncCommitteeSize bits and
// the signature a compressed G2 width.
func syncAggregateFromProto(sa *ethpb.SyncAggregate, syncCommitteeSize uint64) (beacon.SyncAggregate, error) {
	bits, err := ssz.BitvectorFromBytes(sa.SyncCommitteeBits, syncCommitteeSize)
	if err != nil {
		return beacon.SyncAggregate{}, errors.Wrap(err, "sync_committee_bits")
	}
	sig, err := bls.SignatureFromBytes(sa.SyncCommitteeSignature)
	if err != nil {
		return beacon.SyncAggregate{}, errors.Wrap(err, "sync_committee_signature")
	}
	return beacon.SyncAggregate{SyncCommitteeBits: bits, SyncCommitteeSignature: sig}, nil
}

// syncAggregateToProto is the inverse. An aggregate built for an empty
// committee serializes its bits to nothing, so callers keep the committee
// size above zero.
func syncAggregateToProto(sa *beacon.SyncAggregate) *ethpb.SyncAggregate {
	return &ethpb.SyncAggregate{
		SyncCommitteeBits:      sa.SyncCommitteeBits.Bytes(),
		SyncCommitteeSignature: sa.SyncCommitteeSignature.Marshal(),
	}
}

// hasNextSyncCommittee is the presence rule for the optional committee
// rotation in a wire consensus update: the committee message, its pubkey
// list and its branch must all be non-empty. Every other combination means
// the update carries no rotation.
func hasNextSyncCommittee(pb *ethpb.ConsensusUpdate) bool {
	return pb.NextSyncCommittee != nil &&
		len(pb.NextSyncCommittee.Pubkeys) != 0 &&
		len(pb.NextSyncCommitteeBranch) != 0
}

// ConsensusUpdateFromProto decodes a wire consensus update against the given
// committee size. The attested header, finalized header and sync aggregate
// are mandatory; the next committee collapses to absent per
// hasNextSyncCommittee.
func ConsensusUpdateFromProto(pb *ethpb.ConsensusUpdate, syncCommitteeSize uint64) (*ConsensusUpdateInfo, error) {
	if pb == nil {
		return nil, errProtoMissing("consensus_update")
	}
	if pb.AttestedHeader == nil {
		return nil, errProtoMissing("attested_header")
	}
	attestedHeader, err := headerFromProto(pb.AttestedHeader)
	if err != nil {
		return nil, errors.Wrap(err, "attested_header")
	}
	if pb.FinalizedHeader == nil {
		return nil, errProtoMissing("finalized_header")
	}
	finalizedHeader, err := headerFromProto(pb.FinalizedHeader)
	if err != nil {
		return nil, errors.Wrap(err, "finalized_header")
	}
	update := &ConsensusUpdateInfo{
		attestedHeader:  attestedHeader,
		finalizedHeader: finalizedHeader,
		signatureSlot:   beacon.Slot(pb.SignatureSlot),
	}
	if hasNextSyncCommittee(pb) {
		committee, err := syncCommitteeFromProto(pb.NextSyncCommittee, syncCommitteeSize)
		if err != nil {
			return nil, errors.Wrap(err, "next_sync_committee")
		}
		branch, err := branchFromProto(pb.NextSyncCommitteeBranch)
		if err != nil {
			return nil, errors.Wrap(err, "next_sync_committee_branch")
		}
		update.nextSyncCommittee = &nextSyncCommitteeUpdate{committee: committee, branch: branch}
	}
	if update.finalizedHeaderBranch, err = branchFromProto(pb.FinalizedHeaderBranch); err != nil {
		return nil, errors.Wrap(err, "finalized_header_branch")
	}
	if update.finalizedExecutionRoot, err = toHash(pb.FinalizedExecutionRoot); err != nil {
		return nil, errors.Wrap(err, "finalized_execution_root")
	}
	if update.finalizedExecutionBranch, err = branchFromProto(pb.FinalizedExecutionBranch); err != nil {
		return nil, errors.Wrap(err, "finalized_execution_branch")
	}
	if pb.SyncAggregate == nil {
		return nil, errProtoMissing("sync_aggregate")
	}
	if update.syncAggregate, err = syncAggregateFromProto(pb.SyncAggregate, syncCommitteeSize); err != nil {
		return nil, errors.Wrap(err, "sync_aggregate")
	}
	return update, nil
}

// Proto encodes the update. The optional rotation is emitted exactly as
// carried: a present rotation whose committee or branch is empty is written
// out as is even though decoding it again would collapse it to absent.
func (u *ConsensusUpdateInfo) Proto() *ethpb.ConsensusUpdate {
	pb := &ethpb.ConsensusUpdate{
		AttestedHeader:           headerToProto(u.attestedHeader),
		FinalizedHeader:          headerToProto(u.finalizedHeader),
		FinalizedHeaderBranch:    branchToProto(u.finalizedHeaderBranch),
		FinalizedExecutionRoot:   u.finalizedExecutionRoot.Bytes(),
		FinalizedExecutionBranch: branchToProto(u.finalizedExecutionBranch),
		SyncAggregate:            syncAggregateToProto(&u.syncAggregate),
		SignatureSlot:            uint64(u.signatureSlot),
	}
	if u.nextSyncCommittee != nil {
		pb.NextSyncCommittee = syncCommitteeToProto(&u.nextSyncCommittee.committee)
		pb.NextSyncCommitteeBranch = branchToProto(u.nextSyncCommittee.branch)
	}
	return pb
}

// ExecutionUpdateFromProto decodes a wire execution update.
func ExecutionUpdateFromProto(pb *ethpb.ExecutionUpdate) (*ExecutionUpdateInfo, error) {
	if pb == nil {
		return nil, errProtoMissing("execution_update")
	}
	stateRoot, err := toHash(pb.StateRoot)
	if err != nil {
		return nil, errors.Wrap(err, "state_root")
	}
	stateRootBranch, err := branchFromProto(pb.StateRootBranch)
	if err != nil {
		return nil, errors.Wrap(err, "state_root_branch")
	}
	blockNumberBranch, err := branchFromProto(pb.BlockNumberBranch)
	if err != nil {
		return nil, errors.Wrap(err, "block_number_branch")
	}
	return &ExecutionUpdateInfo{
		stateRoot:         stateRoot,
		stateRootBranch:   stateRootBranch,
		blockNumber:       pb.BlockNumber,
		blockNumberBranch: blockNumberBranch,
	}, nil
}

// Proto encodes the update.
func (u *ExecutionUpdateInfo) Proto() *ethpb.ExecutionUpdate {
	return &ethpb.ExecutionUpdate{
		StateRoot:         u.stateRoot.Bytes(),
		StateRootBranch:   branchToProto(u.stateRootBranch),
		BlockNumber:       u.blockNumber,
		BlockNumberBranch: branchToProto(u.blockNumberBranch),
	}
}

// TrustedSyncCommitteeFromProto decodes a wire trusted committee against the
// given committee size. The height and committee sub-messages are mandatory.
func TrustedSyncCommitteeFromProto(pb *ethpb.TrustedSyncCommittee, syncCommitteeSize uint64) (*TrustedSyncCommittee, error) {
	if pb == nil {
		return nil, errProtoMissing("trusted_sync_committee")
	}
	if pb.TrustedHeight == nil {
		return nil, errProtoMissing("trusted_height")
	}
	height, err := clienttypes.NewHeight(pb.TrustedHeight.RevisionNumber, pb.TrustedHeight.RevisionHeight)
	if err != nil {
		return nil, errors.Wrap(err, "trusted_height")
	}
	if pb.SyncCommittee == nil {
		return nil, errProtoMissing("sync_committee")
	}
	committee, err := syncCommitteeFromProto(pb.SyncCommittee, syncCommitteeSize)
	if err != nil {
		return nil, errors.Wrap(err, "sync_committee")
	}
	return &TrustedSyncCommittee{
		height:        height,
		syncCommittee: committee,
		isNext:        pb.IsNext,
	}, nil
}

// Proto encodes the trusted committee.
func (tsc *TrustedSyncCommittee) Proto() *ethpb.TrustedSyncCommittee {
	return &ethpb.TrustedSyncCommittee{
		TrustedHeight: &ethpb.Height{
			RevisionNumber: tsc.height.RevisionNumber(),
			RevisionHeight: tsc.height.RevisionHeight(),
		},
		SyncCommittee: syncCommitteeToProto(&tsc.syncCommittee),
		IsNext:        tsc.isNext,
	}
}

// AccountUpdateFromProto decodes a wire account update.
func AccountUpdateFromProto(pb *ethpb.AccountUpdate) (*AccountUpdateInfo, error) {
	if pb == nil {
		return nil, errProtoMissing("account_update")
	}
	proof, err := DecodeAccountProof(pb.AccountProof)
	if err != nil {
		return nil, errors.Wrap(err, "account_proof")
	}
	storageRoot, err := toHash(pb.AccountStorageRoot)
	if err != nil {
		return nil, errors.Wrap(err, "account_storage_root")
	}
	return &AccountUpdateInfo{
		accountProof:       proof,
		accountStorageRoot: storageRoot,
	}, nil
}

// Proto encodes the account update.
func (u *AccountUpdateInfo) Proto() *ethpb.AccountUpdate {
	return &ethpb.AccountUpdate{
		AccountProof:       EncodeAccountProof(u.accountProof),
		AccountStorageRoot: u.accountStorageRoot.Bytes(),
	}
}
