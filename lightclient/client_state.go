package lightclient

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/yoshidan/ethereum-ibc-go/beacon"
	"github.com/yoshidan/ethereum-ibc-go/clienttypes"
	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
	ethpb "github.com/yoshidan/ethereum-ibc-go/proto/ethereum/v1"
)

// Fraction is a signature participation threshold as a rational number in
// (0, 1].
type Fraction struct {
	Numerator   uint64
	Denominator uint64
}

// Validate checks the fraction lies in (0, 1].
func (f Fraction) Validate() error {
	if f.Denominator == 0 {
		return errors.New("trust level denominator cannot be zero")
	}
	if f.Numerator == 0 || f.Numerator > f.Denominator {
		return errors.Errorf("trust level must be within (0, 1]: %d/%d", f.Numerator, f.Denominator)
	}
	return nil
}

// ForkSpec pairs a fork's activation epoch with its version number.
type ForkSpec struct {
	Epoch   uint64
	Version []byte
}

// ForkParameters is the chain's fork schedule as far as the light client
// needs it to compute signing domains.
type ForkParameters struct {
	GenesisForkVersion []byte
	GenesisSlot        beacon.Slot
	Altair             ForkSpec
	Bellatrix          ForkSpec
	Capella            ForkSpec
}

// Validate checks every fork version has the fixed width.
func (fp *ForkParameters) Validate() error {
	if len(fp.GenesisForkVersion) != fieldparams.VersionLength {
		return errors.Errorf("genesis fork version must be %d bytes, got %d", fieldparams.VersionLength, len(fp.GenesisForkVersion))
	}
	for _, fork := range []struct {
		name string
		spec ForkSpec
	}{
		{"altair", fp.Altair},
		{"bellatrix", fp.Bellatrix},
		{"capella", fp.Capella},
	} {
		if len(fork.spec.Version) != fieldparams.VersionLength {
			return errors.Errorf("%s fork version must be %d bytes, got %d", fork.name, fieldparams.VersionLength, len(fork.spec.Version))
		}
	}
	return nil
}

// ClientState carries everything the host chain stores about the tracked
// ethereum chain that is not per-height: chain parameters, the IBC contract
// location, and trust settings.
type ClientState struct {
	GenesisValidatorsRoot        common.Hash
	MinSyncCommitteeParticipants uint64
	GenesisTime                  uint64
	ForkParameters               *ForkParameters
	SecondsPerSlot               uint64
	SlotsPerEpoch                uint64
	EpochsPerSyncCommitteePeriod uint64

	// IBCAddress and IBCCommitmentsSlot locate the commitment mapping of
	// the IBC contract inside the execution state.
	IBCAddress         common.Address
	IBCCommitmentsSlot common.Hash

	TrustLevel     Fraction
	TrustingPeriod time.Duration
	MaxClockDrift  time.Duration

	LatestExecutionBlockNumber uint64
	// FrozenHeight is zero unless the client was frozen for misbehaviour.
	FrozenHeight clienttypes.Height
}

// Validate checks the client state is structurally usable. It does not
// verify anything against the chain.
func (cs *ClientState) Validate() error {
	if cs.GenesisValidatorsRoot == (common.Hash{}) {
		return errors.New("genesis validators root cannot be zero")
	}
	if cs.ForkParameters == nil {
		return errors.New("fork parameters cannot be nil")
	}
	if err := cs.ForkParameters.Validate(); err != nil {
		return err
	}
	if cs.SecondsPerSlot == 0 {
		return errors.New("seconds per slot cannot be zero")
	}
	if cs.SlotsPerEpoch == 0 {
		return errors.New("slots per epoch cannot be zero")
	}
	if cs.EpochsPerSyncCommitteePeriod == 0 {
		return errors.New("epochs per sync committee period cannot be zero")
	}
	if cs.IBCAddress == (common.Address{}) {
		return errors.New("ibc contract address cannot be zero")
	}
	if err := cs.TrustLevel.Validate(); err != nil {
		return err
	}
	if cs.TrustingPeriod <= 0 {
		return errors.New("trusting period must be positive")
	}
	if cs.MaxClockDrift <= 0 {
		return errors.New("max clock drift must be positive")
	}
	return nil
}

// IsFrozen reports whether the client was frozen for misbehaviour.
func (cs *ClientState) IsFrozen() bool {
	return !cs.FrozenHeight.IsZero()
}

func forkSpecFromProto(pb *ethpb.ForkSpec, name string) (ForkSpec, error) {
	if pb == nil {
		return ForkSpec{}, errProtoMissing(name)
	}
	return ForkSpec{Epoch: pb.Epoch, Version: pb.Version}, nil
}

func forkSpecToProto(fs ForkSpec) *ethpb.ForkSpec {
	return &ethpb.ForkSpec{Epoch: fs.Epoch, Version: fs.Version}
}

// ClientStateFromProto decodes a wire client state. Fork parameters and the
// trust level are mandatory sub-messages; a missing frozen height decodes as
// not frozen.
func ClientStateFromProto(pb *ethpb.ClientState) (*ClientState, error) {
	if pb == nil {
		return nil, errProtoMissing("client_state")
	}
	genesisValidatorsRoot, err := toHash(pb.GenesisValidatorsRoot)
	if err != nil {
		return nil, errors.Wrap(err, "genesis_validators_root")
	}
	if pb.ForkParameters == nil {
		return nil, errProtoMissing("fork_parameters")
	}
	altair, err := forkSpecFromProto(pb.ForkParameters.Altair, "altair")
	if err != nil {
		return nil, err
	}
	bellatrix, err := forkSpecFromProto(pb.ForkParameters.Bellatrix, "bellatrix")
	if err != nil {
		return nil, err
	}
	capella, err := forkSpecFromProto(pb.ForkParameters.Capella, "capella")
	if err != nil {
		return nil, err
	}
	if len(pb.IbcAddress) != common.AddressLength {
		return nil, errors.Wrapf(ErrInvalidAddressLength, "ibc_address: expected %d bytes, got %d", common.AddressLength, len(pb.IbcAddress))
	}
	ibcCommitmentsSlot, err := toHash(pb.IbcCommitmentsSlot)
	if err != nil {
		return nil, errors.Wrap(err, "ibc_commitments_slot")
	}
	if pb.TrustLevel == nil {
		return nil, errProtoMissing("trust_level")
	}
	frozenHeight := clienttypes.ZeroHeight()
	if fh := pb.FrozenHeight; fh != nil && (fh.RevisionNumber != 0 || fh.RevisionHeight != 0) {
		if frozenHeight, err = clienttypes.NewHeight(fh.RevisionNumber, fh.RevisionHeight); err != nil {
			return nil, errors.Wrap(err, "frozen_height")
		}
	}
	return &ClientState{
		GenesisValidatorsRoot:        genesisValidatorsRoot,
		MinSyncCommitteeParticipants: pb.MinSyncCommitteeParticipants,
		GenesisTime:                  pb.GenesisTime,
		ForkParameters: &ForkParameters{
			GenesisForkVersion: pb.ForkParameters.GenesisForkVersion,
			GenesisSlot:        beacon.Slot(pb.ForkParameters.GenesisSlot),
			Altair:             altair,
			Bellatrix:          bellatrix,
			Capella:            capella,
		},
		SecondsPerSlot:               pb.SecondsPerSlot,
		SlotsPerEpoch:                pb.SlotsPerEpoch,
		EpochsPerSyncCommitteePeriod: pb.EpochsPerSyncCommitteePeriod,
		IBCAddress:                   common.BytesToAddress(pb.IbcAddress),
		IBCCommitmentsSlot:           ibcCommitmentsSlot,
		TrustLevel:                   Fraction{Numerator: pb.TrustLevel.Numerator, Denominator: pb.TrustLevel.Denominator},
		TrustingPeriod:               pb.TrustingPeriod,
		MaxClockDrift:                pb.MaxClockDrift,
		LatestExecutionBlockNumber:   pb.LatestExecutionBlockNumber,
		FrozenHeight:                 frozenHeight,
	}, nil
}

// Proto encodes the client state. A zero frozen height is emitted as an
// absent sub-message.
func (cs *ClientState) Proto() *ethpb.ClientState {
	pb := &ethpb.ClientState{
		GenesisValidatorsRoot:        cs.GenesisValidatorsRoot.Bytes(),
		MinSyncCommitteeParticipants: cs.MinSyncCommitteeParticipants,
		GenesisTime:                  cs.GenesisTime,
		SecondsPerSlot:               cs.SecondsPerSlot,
		SlotsPerEpoch:                cs.SlotsPerEpoch,
		EpochsPerSyncCommitteePeriod: cs.EpochsPerSyncCommitteePeriod,
		IbcAddress:                   cs.IBCAddress.Bytes(),
		IbcCommitmentsSlot:           cs.IBCCommitmentsSlot.Bytes(),
		TrustLevel:                   &ethpb.Fraction{Numerator: cs.TrustLevel.Numerator, Denominator: cs.TrustLevel.Denominator},
		TrustingPeriod:               cs.TrustingPeriod,
		MaxClockDrift:                cs.MaxClockDrift,
		LatestExecutionBlockNumber:   cs.LatestExecutionBlockNumber,
	}
	if fp := cs.ForkParameters; fp != nil {
		pb.ForkParameters = &ethpb.ForkParameters{
			GenesisForkVersion: fp.GenesisForkVersion,
			GenesisSlot:        uint64(fp.GenesisSlot),
			Altair:             forkSpecToProto(fp.Altair),
			Bellatrix:          forkSpecToProto(fp.Bellatrix),
			Capella:            forkSpecToProto(fp.Capella),
		}
	}
	if !cs.FrozenHeight.IsZero() {
		pb.FrozenHeight = &ethpb.Height{
			RevisionNumber: cs.FrozenHeight.RevisionNumber(),
			RevisionHeight: cs.FrozenHeight.RevisionHeight(),
		}
	}
	return pb
}
