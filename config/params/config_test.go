package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fieldparams "github.com/yoshidan/ethereum-ibc-go/config/fieldparams"
)

func TestMainnetConfig(t *testing.T) {
	cfg := MainnetConfig()
	assert.Equal(t, uint64(fieldparams.SyncCommitteeSize), cfg.SyncCommitteeSize)
	assert.Equal(t, uint64(12), cfg.SecondsPerSlot)
	assert.Equal(t, uint64(32), cfg.SlotsPerEpoch)
	assert.Equal(t, uint64(256), cfg.EpochsPerSyncCommitteePeriod)
	require.Len(t, cfg.CapellaForkVersion, fieldparams.VersionLength)
	assert.Equal(t, []byte{3, 0, 0, 0}, cfg.CapellaForkVersion)
	assert.Less(t, cfg.AltairForkEpoch, cfg.BellatrixForkEpoch)
	assert.Less(t, cfg.BellatrixForkEpoch, cfg.CapellaForkEpoch)
}

func TestMinimalSpecConfig(t *testing.T) {
	cfg := MinimalSpecConfig()
	assert.Equal(t, uint64(fieldparams.MinimalSyncCommitteeSize), cfg.SyncCommitteeSize)
	assert.Equal(t, uint64(8), cfg.SlotsPerEpoch)
	assert.Equal(t, []byte{0, 0, 0, 1}, cfg.GenesisForkVersion)
	// The minimal preset keeps the mainnet fork schedule epochs.
	assert.Equal(t, MainnetConfig().AltairForkEpoch, cfg.AltairForkEpoch)
}

func TestConfigCopyDetaches(t *testing.T) {
	a := MainnetConfig()
	b := a.Copy()
	b.GenesisForkVersion[0] = 0xff
	b.SlotsPerEpoch = 1
	assert.Equal(t, []byte{0, 0, 0, 0}, a.GenesisForkVersion)
	assert.Equal(t, uint64(32), a.SlotsPerEpoch)
}
