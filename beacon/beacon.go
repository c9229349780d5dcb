// Package beacon holds the consensus-layer values the light client hands
// to its verifier: beacon block headers and the sync committee structures
// that attest to them.
package beacon

import (
	"github.com/ethereum/go-ethereum/common"
)

// Slot is a unit of time on the beacon chain, the interval in which one
// block may be proposed.
type Slot uint64

// ValidatorIndex identifies a validator within the beacon state registry.
type ValidatorIndex uint64

// BeaconBlockHeader is the fixed-size summary of a beacon block. Its SSZ
// hash tree root is the block root the sync committee signs over.
type BeaconBlockHeader struct {
	Slot          Slot
	ProposerIndex ValidatorIndex
	ParentRoot    common.Hash
	StateRoot     common.Hash
	BodyRoot      common.Hash
}
