// Package params holds the consensus-layer presets for the networks the
// light client is commonly pointed at. Values mirror the protocol specs;
// nothing here is fetched at runtime.
package params

import (
	"github.com/yoshidan/ethereum-ibc-go/beacon"
)

// Config groups the protocol presets a client state is built from.
type Config struct {
	// Preset sizing.
	SyncCommitteeSize            uint64 // SyncCommitteeSize is the number of validators in a sync committee.
	MinSyncCommitteeParticipants uint64 // MinSyncCommitteeParticipants is the lowest accepted participant count in an update.

	// Timing.
	SecondsPerSlot               uint64 // SecondsPerSlot is the slot duration in seconds.
	SlotsPerEpoch                uint64 // SlotsPerEpoch is the number of slots per epoch.
	EpochsPerSyncCommitteePeriod uint64 // EpochsPerSyncCommitteePeriod is the committee rotation interval in epochs.

	// Fork schedule.
	GenesisSlot          beacon.Slot // GenesisSlot is the slot of the chain's genesis block.
	GenesisForkVersion   []byte      // GenesisForkVersion is the fork version at genesis.
	AltairForkEpoch      uint64      // AltairForkEpoch is the epoch the altair fork activates.
	AltairForkVersion    []byte      // AltairForkVersion is the fork version for altair.
	BellatrixForkEpoch   uint64      // BellatrixForkEpoch is the epoch the bellatrix fork activates.
	BellatrixForkVersion []byte      // BellatrixForkVersion is the fork version for bellatrix.
	CapellaForkEpoch     uint64      // CapellaForkEpoch is the epoch the capella fork activates.
	CapellaForkVersion   []byte      // CapellaForkVersion is the fork version for capella.
}

// Copy returns a copy of the config detached from the preset, safe for a
// caller to mutate.
func (c *Config) Copy() *Config {
	cfg := *c
	cfg.GenesisForkVersion = append([]byte{}, c.GenesisForkVersion...)
	cfg.AltairForkVersion = append([]byte{}, c.AltairForkVersion...)
	cfg.BellatrixForkVersion = append([]byte{}, c.BellatrixForkVersion...)
	cfg.CapellaForkVersion = append([]byte{}, c.CapellaForkVersion...)
	return &cfg
}
