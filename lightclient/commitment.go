package lightclient

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// DecodeAccountProof parses the single RLP list wrapping an EIP-1184 account
// proof and returns each trie node verbatim. The nodes themselves are opaque
// here and are not descended into.
func DecodeAccountProof(bz []byte) ([][]byte, error) {
	var nodes []rlp.RawValue
	if err := rlp.DecodeBytes(bz, &nodes); err != nil {
		return nil, errors.Wrapf(ErrInvalidAccountProof, "rlp decode: %v", err)
	}
	proof := make([][]byte, 0, len(nodes))
	for _, node := range nodes {
		proof = append(proof, []byte(node))
	}
	return proof, nil
}

// EncodeAccountProof wraps already RLP-encoded trie nodes into the single
// list form of EIP-1184. Each node is appended raw; re-encoding a node would
// wrap it in a second header and corrupt the proof.
func EncodeAccountProof(proof [][]byte) []byte {
	nodes := make([]rlp.RawValue, 0, len(proof))
	for _, node := range proof {
		nodes = append(nodes, rlp.RawValue(node))
	}
	// A slice of raw values always encodes.
	bz, _ := rlp.EncodeToBytes(nodes)
	return bz
}

// IBCCommitmentStorageKey derives the storage slot holding the commitment
// for an IBC path in the contract's commitment mapping, following the
// solidity mapping layout keccak256(keccak256(path) ++ slot).
func IBCCommitmentStorageKey(commitmentsSlot common.Hash, path []byte) common.Hash {
	return crypto.Keccak256Hash(crypto.Keccak256(path), commitmentsSlot.Bytes())
}
