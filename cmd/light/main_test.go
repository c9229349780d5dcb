package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func testCommitteeProto() *ethpb.SyncCommittee {
	pubkeys := make([][]byte, 0, 4)
	for i := 0; i < 4; i++ {
		pubkeys = append(pubkeys, bytes.Repeat([]byte{byte(i + 1)}, 48))
	}
	return &ethpb.SyncCommittee{
		Pubkeys:         pubkeys,
		AggregatePubkey: bytes.Repeat([]byte{0xee}, 48),
	}
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

func testWireHeader(t *testing.T) []byte {
	t.Helper()
	pb := &ethpb.Header{
		TrustedSyncCommittee: &ethpb.TrustedSyncCommittee{
			TrustedHeight: &ethpb.Height{RevisionHeight: 42},
			SyncCommittee: testCommitteeProto(),
		},
		ConsensusUpdate: &ethpb.ConsensusUpdate{
			AttestedHeader:           testBeaconHeaderProto(100),
			FinalizedHeader:          testBeaconHeaderProto(99),
			FinalizedHeaderBranch:    testBranch(6, 0x20),
			FinalizedExecutionRoot:   testRoot(0x30),
			FinalizedExecutionBranch: testBranch(4, 0x40),
			SyncAggregate: &ethpb.SyncAggregate{
				SyncCommitteeBits:      []byte{0x0f},
				SyncCommitteeSignature: bytes.Repeat([]byte{0x5a}, 96),
			},
			SignatureSlot: 101,
		},
		ExecutionUpdate: &ethpb.ExecutionUpdate{
			StateRoot:         testRoot(0x50),
			StateRootBranch:   testBranch(3, 0x51),
			BlockNumber:       17_000_000,
			BlockNumberBranch: testBranch(3, 0x60),
		},
		AccountUpdate: &ethpb.AccountUpdate{
			AccountProof:       []byte{0xc4, 0x83, 0x64, 0x6f, 0x67},
			AccountStorageRoot: testRoot(0x77),
		},
		Timestamp: time.Unix(1700000000, 0).UTC(),
	}
	bz, err := pb.Marshal()
	require.NoError(t, err)
	return bz
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, []byte{0xde, 0xad}, normalizeInput([]byte("dead")))
	assert.Equal(t, []byte{0xde, 0xad}, normalizeInput([]byte("0xdead\n")))

	// A wire header starts with a field tag byte that is not hex text, so
	// raw proto bytes pass through untouched.
	raw := []byte{0x0a, 0x02, 0x08, 0x01}
	assert.Equal(t, raw, normalizeInput(raw))
}

func TestInspect(t *testing.T) {
	bz := testWireHeader(t)

	binPath := filepath.Join(t.TempDir(), "header.bin")
	require.NoError(t, os.WriteFile(binPath, bz, 0o644))
	require.NoError(t, newApp().Run([]string{"light", "--input", binPath, "--committee-size", "4"}))

	hexPath := filepath.Join(t.TempDir(), "header.hex")
	require.NoError(t, os.WriteFile(hexPath, []byte("0x"+hex.EncodeToString(bz)+"\n"), 0o644))
	require.NoError(t, newApp().Run([]string{"light", "--input", hexPath, "--committee-size", "4"}))
}

func TestInspectErrors(t *testing.T) {
	bz := testWireHeader(t)
	binPath := filepath.Join(t.TempDir(), "header.bin")
	require.NoError(t, os.WriteFile(binPath, bz, 0o644))

	// Wrong committee size preset.
	err := newApp().Run([]string{"light", "--input", binPath, "--committee-size", "8"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not decode header")

	// Unreadable input.
	err = newApp().Run([]string{"light", "--input", filepath.Join(t.TempDir(), "missing.bin")})
	require.Error(t, err)

	// The input flag is required.
	require.Error(t, newApp().Run([]string{"light"}))

	// Garbage bytes.
	garbagePath := filepath.Join(t.TempDir(), "garbage.bin")
	require.NoError(t, os.WriteFile(garbagePath, []byte{0xff, 0xff, 0xff, 0xff}, 0o644))
	err = newApp().Run([]string{"light", "--input", garbagePath, "--committee-size", "4"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not unmarshal header")
}
