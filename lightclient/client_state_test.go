package lightclient

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
	"github.com/yoshidan/ethereum-ibc-go/config/params"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

func testClientStateProto() *ethpb.ClientState {
	cfg := params.MainnetConfig()
	return &ethpb.ClientState{
		GenesisValidatorsRoot:        testRoot(0x01),
		MinSyncCommitteeParticipants: cfg.MinSyncCommitteeParticipants,
		GenesisTime:                  1606824023,
		ForkParameters: &ethpb.ForkParameters{
			GenesisForkVersion: cfg.GenesisForkVersion,
			GenesisSlot:        uint64(cfg.GenesisSlot),
			Altair:             &ethpb.ForkSpec{Epoch: cfg.AltairForkEpoch, Version: cfg.AltairForkVersion},
			Bellatrix:          &ethpb.ForkSpec{Epoch: cfg.BellatrixForkEpoch, Version: cfg.BellatrixForkVersion},
			Capella:            &ethpb.ForkSpec{Epoch: cfg.CapellaForkEpoch, Version: cfg.CapellaForkVersion},
		},
		SecondsPerSlot:               cfg.SecondsPerSlot,
		SlotsPerEpoch:                cfg.SlotsPerEpoch,
		EpochsPerSyncCommitteePeriod: cfg.EpochsPerSyncCommitteePeriod,
		IbcAddress:                   common.HexToAddress("0xaE9b5c271a9b0aEa9ff917bcbdAf0fb44c602aBa").Bytes(),
		IbcCommitmentsSlot:           testRoot(0x02),
		TrustLevel:                   &ethpb.Fraction{Numerator: 2, Denominator: 3},
		TrustingPeriod:               24 * time.Hour,
		MaxClockDrift:                10 * time.Second,
		LatestExecutionBlockNumber:   17_000_000,
	}
}

func TestClientStateFromProtoRoundTrip(t *testing.T) {
	in := testClientStateProto()

	cs, err := ClientStateFromProto(in)
	require.NoError(t, err)

	assert.Equal(t, common.BytesToHash(testRoot(0x01)), cs.GenesisValidatorsRoot)
	assert.Equal(t, uint64(1606824023), cs.GenesisTime)
	require.NotNil(t, cs.ForkParameters)
	assert.Equal(t, beacon.Slot(0), cs.ForkParameters.GenesisSlot)
	assert.Equal(t, uint64(74240), cs.ForkParameters.Altair.Epoch)
	assert.Equal(t, []byte{2, 0, 0, 0}, cs.ForkParameters.Bellatrix.Version)
	assert.Equal(t, common.HexToAddress("0xaE9b5c271a9b0aEa9ff917bcbdAf0fb44c602aBa"), cs.IBCAddress)
	assert.Equal(t, Fraction{Numerator: 2, Denominator: 3}, cs.TrustLevel)
	assert.Equal(t, 24*time.Hour, cs.TrustingPeriod)
	assert.True(t, cs.FrozenHeight.IsZero())
	assert.False(t, cs.IsFrozen())
	require.NoError(t, cs.Validate())

	out := cs.Proto()
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, out))
}

func TestClientStateFromProtoFrozenHeight(t *testing.T) {
	in := testClientStateProto()
	in.FrozenHeight = &ethpb.Height{RevisionHeight: 99}

	cs, err := ClientStateFromProto(in)
	require.NoError(t, err)
	assert.True(t, cs.IsFrozen())
	assert.Equal(t, uint64(99), cs.FrozenHeight.RevisionHeight())
	assert.Equal(t, mustMarshal(t, in), mustMarshal(t, cs.Proto()))

	// A present but all-zero frozen height normalizes to absent.
	in.FrozenHeight = &ethpb.Height{}
	cs, err = ClientStateFromProto(in)
	require.NoError(t, err)
	assert.False(t, cs.IsFrozen())
	assert.Nil(t, cs.Proto().FrozenHeight)

	// A frozen height with a revision but no height is malformed.
	in.FrozenHeight = &ethpb.Height{RevisionNumber: 1}
	_, err = ClientStateFromProto(in)
	require.ErrorIs(t, err, clienttypes.ErrInvalidHeight)
	assert.ErrorContains(t, err, "frozen_height")
}

func TestClientStateFromProtoErrors(t *testing.T) {
	var missing *MissingFieldError

	_, err := ClientStateFromProto(nil)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "client_state", missing.Field)

	in := testClientStateProto()
	in.ForkParameters = nil
	_, err = ClientStateFromProto(in)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "fork_parameters", missing.Field)

	in = testClientStateProto()
	in.ForkParameters.Bellatrix = nil
	_, err = ClientStateFromProto(in)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "bellatrix", missing.Field)

	in = testClientStateProto()
	in.TrustLevel = nil
	_, err = ClientStateFromProto(in)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "trust_level", missing.Field)

	in = testClientStateProto()
	in.GenesisValidatorsRoot = testRoot(0x01)[:30]
	_, err = ClientStateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "genesis_validators_root")

	in = testClientStateProto()
	in.IbcAddress = in.IbcAddress[:19]
	_, err = ClientStateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidAddressLength)
	assert.ErrorContains(t, err, "ibc_address")

	in = testClientStateProto()
	in.IbcCommitmentsSlot = in.IbcCommitmentsSlot[:31]
	_, err = ClientStateFromProto(in)
	require.ErrorIs(t, err, ErrInvalidHashLength)
	assert.ErrorContains(t, err, "ibc_commitments_slot")
}

func TestClientStateValidate(t *testing.T) {
	valid := func() *ClientState {
		in := testClientStateProto()
		cs, err := ClientStateFromProto(in)
		require.NoError(t, err)
		return cs
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*ClientState)
		wantErr string
	}{
		{
			name:    "zero genesis validators root",
			mutate:  func(cs *ClientState) { cs.GenesisValidatorsRoot = common.Hash{} },
			wantErr: "genesis validators root",
		},
		{
			name:    "nil fork parameters",
			mutate:  func(cs *ClientState) { cs.ForkParameters = nil },
			wantErr: "fork parameters",
		},
		{
			name:    "short fork version",
			mutate:  func(cs *ClientState) { cs.ForkParameters.Capella.Version = []byte{3} },
			wantErr: "capella fork version",
		},
		{
			name:    "short genesis fork version",
			mutate:  func(cs *ClientState) { cs.ForkParameters.GenesisForkVersion = nil },
			wantErr: "genesis fork version",
		},
		{
			name:    "zero seconds per slot",
			mutate:  func(cs *ClientState) { cs.SecondsPerSlot = 0 },
			wantErr: "seconds per slot",
		},
		{
			name:    "zero slots per epoch",
			mutate:  func(cs *ClientState) { cs.SlotsPerEpoch = 0 },
			wantErr: "slots per epoch",
		},
		{
			name:    "zero epochs per period",
			mutate:  func(cs *ClientState) { cs.EpochsPerSyncCommitteePeriod = 0 },
			wantErr: "epochs per sync committee period",
		},
		{
			name:    "zero ibc address",
			mutate:  func(cs *ClientState) { cs.IBCAddress = common.Address{} },
			wantErr: "ibc contract address",
		},
		{
			name:    "zero trust level denominator",
			mutate:  func(cs *ClientState) { cs.TrustLevel.Denominator = 0 },
			wantErr: "denominator",
		},
		{
			name:    "trust level above one",
			mutate:  func(cs *ClientState) { cs.TrustLevel = Fraction{Numerator: 4, Denominator: 3} },
			wantErr: "trust level must be within",
		},
		{
			name:    "zero trusting period",
			mutate:  func(cs *ClientState) { cs.TrustingPeriod = 0 },
			wantErr: "trusting period",
		},
		{
			name:    "zero max clock drift",
			mutate:  func(cs *ClientState) { cs.MaxClockDrift = 0 },
			wantErr: "max clock drift",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := valid()
			tt.mutate(cs)
			err := cs.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFractionValidate(t *testing.T) {
	require.NoError(t, Fraction{Numerator: 1, Denominator: 1}.Validate())
	require.NoError(t, Fraction{Numerator: 2, Denominator: 3}.Validate())
	require.Error(t, Fraction{Numerator: 1, Denominator: 0}.Validate())
	require.Error(t, Fraction{Numerator: 0, Denominator: 3}.Validate())
	require.Error(t, Fraction{Numerator: 4, Denominator: 3}.Validate())
}
