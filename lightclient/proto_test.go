package lightclient

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
	"github.com/yoshidan/ethereum-ibc-go/crypto/bls"
	"github.com/yoshidan/ethereum-ibc-go/encoding/ssz"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

func testRoot(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, 32)
}

func testBranch(depth int, fill byte) [][]byte {
	branch := make([][]byte, 0, depth)
	for i := 0; i < depth; i++ {
		branch = append(branch, testRoot(fill+byte(i)))
	}
	return branch
}

func testBeaconHeaderProto(slot uint64) *ethpb.BeaconBlockHeader {
	return &ethpb.BeaconBlockHeader{
		Slot:          slot,
		ProposerIndex: 7,
		ParentRoot:    testRoot(0xa1),
		StateRoot:     testRoot(0xa2),
		BodyRoot:      testRoot(0xa3),
	}
}

func testCommitteeProto(size int) *ethpb.SyncCommittee {
	pubkeys := make([][]byte, 0, size)
	for i := 0; i < size; i++ {
		pubkeys = append(pubkeys, bytes.Repeat([]byte{byte(i + 1)}, 48))
	}
	return &ethpb.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: bytes.Repeat([]byte{0xee}, 48),
	}
}

func testAggregateProto(size uint64) *ethpb.SyncAggregate {
	bits := make([]byte, (size+7)/8)
	bits[0] = 0x03
	return &ethpb.SyncAggregate{
		SyncCommitteeBits:      bits,
		SyncCommitteeSignature: bytes.Repeat([]byte{0x5a}, 96),
	}
}

func testConsensusUpdateProto(size uint64) *ethpb.ConsensusUpdate {
	return &ethpb.ConsensusUpdate{
		AttestedHeader:           testBeaconHeaderProto(100),
		NextSyncCommittee:        testCommitteeProto(int(size)),
		NextSyncCommitteeBranch:  testBranch(5, 0x10),
		FinalizedHeader:          testBeaconHeaderProto(99),
		FinalizedHeaderBranch:    testBranch(6, 0x20),
		FinalizedExecutionRoot:   testRoot(0x30),
		FinalizedExecutionBranch: testBranch(4, 0x40),
		SyncAggregate:            testAggregateProto(size),
		SignatureSlot:            101,
	}
}

func testTrustedSyncCommitteeProto(size int) *ethpb.TrustedSyncCommittee {
	return &ethpb.TrustedSyncCommittee{
		TrustedHeight: &ethpb.Height{RevisionHeight: 42},
		SyncCommittee: testCommitteeProto(size),
		IsNext:        true,
	}
}

// testProofNodes returns two hand-assembled RLP items: a one-element list
// holding "hi" and the string "dog".
func testProofNodes() [][]byte {
	return [][]byte{
		{0xc3, 0x82, 0x68, 0x69},
		{0x83, 0x64, 0x6f, 0x67},
	}
}

func testAccountUpdateProto() *ethpb.AccountUpdate {
	nodes := testProofNodes()
	proof := []byte{0xc8}
	proof = append(proof, nodes[0]...)
	proof = append(proof, nodes[1]...)
	return &ethpb.AccountUpdate{
		AccountProof:       proof,
		AccountStorageRoot: testRoot(0x77),
	}
}

func mustMarshal(t *testing.T, m interface{ Marshal() ([]byte, error) }) []byte {
	t.Helper()
	bz, err := m.Marshal()
	require.NoError(t, err)
	return bz
}

func TestConsensusUpdateFromProtoRoundTrip(t *testing.T) {
	in := testConsensusUpdateProto(4)
	update, err := ConsensusUpdateFromProto(in, 4)
	require.NoError(t, err)

	assert.Equal(t, beacon.Slot(100), update.AttestedBeaconHeader().Slot)
	assert.Equal(t, beacon.ValidatorIndex(7), update.AttestedBeaconHeader().ProposerIndex)
	assert.Equal(t, common.BytesToHash(testRoot(0xa2)), update.AttestedBeaconHeader().StateRoot)
	assert.Equal(t, beacon.Slot(99), update.FinalizedBeaconHeader().Slot)
	assert.Equal(t, beacon.Slot(101), update.SignatureSlot())

	require.NotNil(t, update.NextSyncCommittee())
	assert.Equal(t, uint64(4), update.NextSyncCommittee().Size())
	assert.Len(t, update.NextSyncCommitteeBranch(), 5)
	assert.Equal(t, common.BytesToHash(testRoot(0x10)), update.NextSyncCommitteeBranch()[0])

	assert.Len(t, update.FinalizedBeaconHeaderBranch(), 6)
	assert.Equal(t, common.BytesToHash(testRoot(0x30)), update.FinalizedExecutionRoot())
	assert.Len(t, update.FinalizedExecutionBranch(), 4)

	assert.Equal(t, uint64(4), update.SyncAggregate().CommitteeSize())
	assert.Equal(t, uint64(2), update.SyncAggregate().Participation())

	out := update.Proto()
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))

	again, err := ConsensusUpdateFromProto(out, 4)
	require.NoError(t, err)
	assert.Equal(t, update, again)
}

func TestConsensusUpdateFromProtoCollapsesPartialRotation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ethpb.ConsensusUpdate)
		wantPresent bool
	}{
		{
			name:        "committee and branch present",
			mutate:      func(*ethpb.ConsensusUpdate) {},
			wantPresent: true,
		},
		{
			name: "committee absent",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.NextSyncCommittee = nil
			},
		},
		{
			name: "committee has no pubkeys",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.NextSyncCommittee.Pubkeys = nil
			},
		},
		{
			name: "branch empty",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.NextSyncCommitteeBranch = nil
			},
		},
		{
			name: "committee and branch absent",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.NextSyncCommittee = nil
				pb.NextSyncCommitteeBranch = nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testConsensusUpdateProto(4)
			tt.mutate(in)
			update, err := ConsensusUpdateFromProto(in, 4)
			require.NoError(t, err)
			if tt.wantPresent {
				assert.NotNil(t, update.NextSyncCommittee())
				assert.NotEmpty(t, update.NextSyncCommitteeBranch())
			} else {
				assert.Nil(t, update.NextSyncCommittee())
				assert.Nil(t, update.NextSyncCommitteeBranch())
			}
		})
	}
}

func TestConsensusUpdateFromProtoMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ethpb.ConsensusUpdate)
		field  string
	}{
		{
			name: "attested header",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.AttestedHeader = nil
			},
			field: "attested_header",
		},
		{
			name: "finalized header",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.FinalizedHeader = nil
			},
			field: "finalized_header",
		},
		{
			name: "sync aggregate",
			mutate: func(pb *ethpb.ConsensusUpdate) {
				pb.SyncAggregate = nil
			},
			field: "sync_aggregate",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testConsensusUpdateProto(4)
			tt.mutate(in)
			_, err := ConsensusUpdateFromProto(in, 4)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}

	_, err := ConsensusUpdateFromProto(nil, 4)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "consensus_update", missing.Field)
}

func TestConsensusUpdateFromProtoCommitteeSizeMismatch(t *testing.T) {
	in := testConsensusUpdateProto(4)
	in.NextSyncCommittee = testCommitteeProto(3)
	_, err := ConsensusUpdateFromProto(in, 4)
	var sizeErr *UnexpectedSyncCommitteeSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, uint64(4), sizeErr.Expected)
	assert.Equal(t, uint64(3), sizeErr.Got)
	assert.ErrorContains(t, err, "next_sync_committee")
}

func TestConsensusUpdateFromProtoBadCommitteeKey(t *testing.T) {
	in := testConsensusUpdateProto(4)
	in.NextSyncCommittee.Pubkeys[2] = bytes.Repeat([]byte{0x01}, 47)
	_, err := ConsensusUpdateFromProto(in, 4)
	require.ErrorIs(t, err, bls.ErrInvalidPublicKeyLength)
	assert.ErrorContains(t, err, "pubkeys[2]")
}

func TestConsensusUpdateFromProtoBadAggregate(t *testing.T) {
	t.Run("bits length mismatch", func(t *testing.T) {
		in := testConsensusUpdateProto(512)
		in.SyncAggregate.SyncCommitteeBits = make([]byte, 63)
		_, err := ConsensusUpdateFromProto(in, 512)
		var sizeErr *ssz.BitvectorSizeError
		require.ErrorAs(t, err, &sizeErr)
		assert.Equal(t, uint64(512), sizeErr.Bits)
		assert.ErrorContains(t, err, "sync_committee_bits")
	})
	t.Run("padding bits set", func(t *testing.T) {
		in := testConsensusUpdateProto(4)
		in.SyncAggregate.SyncCommitteeBits = []byte{0x13}
		_, err := ConsensusUpdateFromProto(in, 4)
		var sizeErr *ssz.BitvectorSizeError
		require.ErrorAs(t, err, &sizeErr)
	})
	t.Run("signature length mismatch", func(t *testing.T) {
		in := testConsensusUpdateProto(4)
		in.SyncAggregate.SyncCommitteeSignature = bytes.Repeat([]byte{0x5a}, 95)
		_, err := ConsensusUpdateFromProto(in, 4)
		require.ErrorIs(t, err, bls.ErrInvalidSignatureLength)
		assert.ErrorContains(t, err, "sync_committee_signature")
	})
}

func TestConsensusUpdateFromProtoBadBranchElement(t *testing.T) {
	in := testConsensusUpdateProto(4)
	in.FinalizedHeaderBranch[2] = bytes.Repeat([]byte{0x20}, 31)
	_, err := ConsensusUpdateFromProto(in, 4)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "finalized_header_branch")
	assert.ErrorContains(t, err, "branch[2]")
}

func TestConsensusUpdateFromProtoMainnetCommitteeSize(t *testing.T) {
	in := &ethpb.ConsensusUpdate{
		AttestedHeader:           testBeaconHeaderProto(100),
		FinalizedHeader:          testBeaconHeaderProto(99),
		FinalizedHeaderBranch:    testBranch(6, 0x20),
		FinalizedExecutionRoot:   testRoot(0x30),
		FinalizedExecutionBranch: testBranch(4, 0x40),
		SyncAggregate: &ethpb.SyncAggregate{
			SyncCommitteeBits:      make([]byte, 64),
			SyncCommitteeSignature: make([]byte, 96),
		},
		SignatureSlot: 101,
	}
	update, err := ConsensusUpdateFromProto(in, 512)
	require.NoError(t, err)
	assert.Nil(t, update.NextSyncCommittee())
	assert.Nil(t, update.NextSyncCommitteeBranch())
	assert.Equal(t, uint64(512), update.SyncAggregate().CommitteeSize())
	assert.Zero(t, update.SyncAggregate().Participation())
	assert.Equal(t, beacon.Slot(100), update.AttestedBeaconHeader().Slot)
	assert.Equal(t, beacon.Slot(99), update.FinalizedBeaconHeader().Slot)
}

// A rotation whose branch was dropped after construction is still emitted
// verbatim; only decoding applies the collapse rule.
func TestConsensusUpdateProtoKeepsInconsistentRotation(t *testing.T) {
	update, err := ConsensusUpdateFromProto(testConsensusUpdateProto(4), 4)
	require.NoError(t, err)
	update.nextSyncCommittee.branch = nil

	out := update.Proto()
	require.NotNil(t, out.NextSyncCommittee)
	assert.Len(t, out.NextSyncCommittee.Pubkeys, 4)
	assert.Empty(t, out.NextSyncCommitteeBranch)

	again, err := ConsensusUpdateFromProto(out, 4)
	require.NoError(t, err)
	assert.Nil(t, again.NextSyncCommittee())
}

func TestExecutionUpdateFromProtoRoundTrip(t *testing.T) {
	in := &ethpb.ExecutionUpdate{
		StateRoot:         testRoot(0x50),
		StateRootBranch:   testBranch(3, 0x51),
		BlockNumber:       17_000_000,
		BlockNumberBranch: testBranch(3, 0x60),
	}
	update, err := ExecutionUpdateFromProto(in)
	require.NoError(t, err)

	assert.Equal(t, common.BytesToHash(testRoot(0x50)), update.StateRoot())
	assert.Len(t, update.StateRootBranch(), 3)
	assert.Equal(t, uint64(17_000_000), update.BlockNumber())
	assert.Len(t, update.BlockNumberBranch(), 3)

	out := update.Proto()
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))

	again, err := ExecutionUpdateFromProto(out)
	require.NoError(t, err)
	assert.Equal(t, update, again)
}

func TestExecutionUpdateFromProtoErrors(t *testing.T) {
	_, err := ExecutionUpdateFromProto(nil)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "execution_update", missing.Field)

	in := &ethpb.ExecutionUpdate{
		StateRoot:         testRoot(0x50),
		StateRootBranch:   testBranch(3, 0x51),
		BlockNumber:       1,
		BlockNumberBranch: testBranch(3, 0x60),
	}
	in.StateRootBranch[1] = bytes.Repeat([]byte{0x51}, 31)
	_, err = ExecutionUpdateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "state_root_branch")
	assert.ErrorContains(t, err, "branch[1]")

	in = &ethpb.ExecutionUpdate{
		StateRoot:         testRoot(0x50)[:31],
		StateRootBranch:   testBranch(3, 0x51),
		BlockNumber:       1,
		BlockNumberBranch: testBranch(3, 0x60),
	}
	_, err = ExecutionUpdateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "state_root")
}

func TestTrustedSyncCommitteeFromProtoRoundTrip(t *testing.T) {
	in := testTrustedSyncCommitteeProto(4)
	trusted, err := TrustedSyncCommitteeFromProto(in, 4)
	require.NoError(t, err)

	assert.Equal(t, uint64(0), trusted.Height().RevisionNumber())
	assert.Equal(t, uint64(42), trusted.Height().RevisionHeight())
	assert.True(t, trusted.IsNext())
	assert.Equal(t, uint64(4), trusted.SyncCommittee().Size())
	require.NoError(t, trusted.Validate())

	out := trusted.Proto()
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))
}

func TestTrustedSyncCommitteeFromProtoErrors(t *testing.T) {
	var missing *MissingFieldError

	_, err := TrustedSyncCommitteeFromProto(nil, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trusted_sync_committee", missing.Field)

	in := testTrustedSyncCommitteeProto(4)
	in.TrustedHeight = nil
	_, err = TrustedSyncCommitteeFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trusted_height", missing.Field)

	in = testTrustedSyncCommitteeProto(4)
	in.TrustedHeight = &ethpb.Height{}
	_, err = TrustedSyncCommitteeFromProto(in, 4)
	require.ErrorIs(t, err, clienttypes.ErrInvalidHeight)
	assert.ErrorContains(t, err, "trusted_height")

	in = testTrustedSyncCommitteeProto(4)
	in.SyncCommittee = nil
	_, err = TrustedSyncCommitteeFromProto(in, 4)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "sync_committee", missing.Field)

	in = testTrustedSyncCommitteeProto(4)
	_, err = TrustedSyncCommitteeFromProto(in, 8)
	var sizeErr *UnexpectedSyncCommitteeSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, uint64(8), sizeErr.Expected)
	assert.Equal(t, uint64(4), sizeErr.Got)
}

func TestTrustedSyncCommitteeValidateRejectsWrongRevision(t *testing.T) {
	in := testTrustedSyncCommitteeProto(4)
	in.TrustedHeight.RevisionNumber = 1
	trusted, err := TrustedSyncCommitteeFromProto(in, 4)
	require.NoError(t, err)

	err = trusted.Validate()
	var revErr *UnexpectedHeightRevisionNumberError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, uint64(0), revErr.Expected)
	assert.Equal(t, uint64(1), revErr.Got)
}

func TestAccountUpdateFromProtoRoundTrip(t *testing.T) {
	in := testAccountUpdateProto()
	update, err := AccountUpdateFromProto(in)
	require.NoError(t, err)

	assert.Equal(t, testProofNodes(), update.AccountProof())
	assert.Equal(t, common.BytesToHash(testRoot(0x77)), update.AccountStorageRoot())

	out := update.Proto()
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))
}

func TestAccountUpdateFromProtoErrors(t *testing.T) {
	_, err := AccountUpdateFromProto(nil)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "account_update", missing.Field)

	in := testAccountUpdateProto()
	in.AccountProof = []byte{0x01, 0x02}
	_, err = AccountUpdateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidAccountProof)
	assert.ErrorContains(t, err, "account_proof")

	in = testAccountUpdateProto()
	in.AccountStorageRoot = in.AccountStorageRoot[:31]
	_, err = AccountUpdateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "account_storage_root")
}
