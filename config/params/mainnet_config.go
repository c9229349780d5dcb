package params

import (
	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
)

// MainnetConfig returns the mainnet preset.
func MainnetConfig() *Config {
	return mainnetConfig.Copy()
}

var mainnetConfig = &Config{
	SyncCommitteeSize:            fieldparams.SyncCommitteeSize,
	MinSyncCommitteeParticipants: 1,

	SecondsPerSlot:               12,
	SlotsPerEpoch:                32,
	EpochsPerSyncCommitteePeriod: 256,

	GenesisSlot:          0,
	GenesisForkVersion:   []byte{0, 0, 0, 0},
	AltairForkEpoch:      74240,
	AltairForkVersion:    []byte{1, 0, 0, 0},
	BellatrixForkEpoch:   144896,
	BellatrixForkVersion: []byte{2, 0, 0, 0},
	CapellaForkEpoch:     194048,
	CapellaForkVersion:   []byte{3, 0, 0, 0},
}
