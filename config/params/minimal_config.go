package params

import (
	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
)

// MinimalSpecConfig returns the minimal test preset, the sizing most
// interop and local testnets run with.
func MinimalSpecConfig() *Config {
	minimal := mainnetConfig.Copy()
	minimal.SyncCommitteeSize = fieldparams.MinimalSyncCommitteeSize
	minimal.SecondsPerSlot = 6
	minimal.SlotsPerEpoch = 8
	minimal.EpochsPerSyncCommitteePeriod = 8
	minimal.GenesisForkVersion = []byte{0, 0, 0, 1}
	minimal.AltairForkVersion = []byte{1, 0, 0, 1}
	minimal.BellatrixForkVersion = []byte{2, 0, 0, 1}
	minimal.CapellaForkVersion = []byte{3, 0, 0, 1}
	return minimal
}
