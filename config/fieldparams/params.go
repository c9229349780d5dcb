// Package field_params collects the byte widths and tree depths fixed by the
// Ethereum consensus protocol that the light client wire format depends on.
// The sync committee size is a protocol preset, not a constant of this
// module: every codec takes it as an explicit argument and these values are
// only the presets callers are expected to pass.
package field_params

const (
	SyncCommitteeSize        = 512 // SYNC_COMMITTEE_SIZE (mainnet preset)
	MinimalSyncCommitteeSize = 32  // SYNC_COMMITTEE_SIZE (minimal preset)

	RootLength         = 32 // RootLength defines the byte length of a Merkle root.
	BLSPubkeyLength    = 48 // BLSPubkeyLength defines the byte length of a compressed BLS12-381 G1 point.
	BLSSignatureLength = 96 // BLSSignatureLength defines the byte length of a compressed BLS12-381 G2 point.
	VersionLength      = 4  // VersionLength defines the byte length of a fork version number.

	NextSyncCommitteeBranchDepth = 5 // floorlog2(NEXT_SYNC_COMMITTEE_GINDEX)
	FinalizedRootBranchDepth     = 6 // floorlog2(FINALIZED_ROOT_GINDEX)
	ExecutionPayloadBranchDepth  = 4 // floorlog2(EXECUTION_PAYLOAD_GINDEX)
	ExecutionStateRootDepth      = 5 // depth of state_root within the execution payload tree
	ExecutionBlockNumberDepth    = 5 // depth of block_number within the execution payload tree
)
