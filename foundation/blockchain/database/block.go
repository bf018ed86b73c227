// Package database maintains the block and header types and the rules for
// constructing and identifying them.
package database

import (
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
	"github.com/ardanlabs/chain/foundation/blockchain/merkle"
)

// BlockHeader represents common information required for each block. A
// header never carries the state itself, only commitments to the body and
// to the post state.
type BlockHeader struct {
	ParentHash     string `json:"parent_hash"`     // Hash of the parent block header, zero hash for genesis.
	Height         uint64 `json:"height"`          // Distance from genesis, parent height plus one.
	ExtrinsicsRoot string `json:"extrinsics_root"` // Merkle root over the block body.
	StateRoot      string `json:"state_root"`      // Hash of the state that results from executing this block.
	Nonce          uint64 `json:"nonce"`           // Consensus digest, solves the proof of work puzzle.
}

// Hash returns the unique hash for the header. This hash is the identity
// of the block.
func (h BlockHeader) Hash() string {

	// CORE NOTE: Hashing the block header and not the whole block means the
	// chain can be cryptographically checked with headers alone. The body is
	// bound in through the extrinsics root, the state through the state root.

	return digest.Hash(h)
}

// =============================================================================

// Block represents a group of extrinsics batched together under a header.
// Two blocks with identical headers are the same block, a claimed body is
// only believed when it matches the committed extrinsics root.
type Block[E merkle.Hashable[E]] struct {
	Header BlockHeader `json:"header"`
	Body   []E         `json:"body"`
}

// Hash returns the unique hash for the block.
func (b Block[E]) Hash() string {
	return b.Header.Hash()
}

// Genesis constructs the unique root block for a chain whose starting
// state hashes to the specified root. By convention the genesis block has
// no extrinsics and carries a zero consensus digest.
func Genesis[E merkle.Hashable[E]](genesisStateRoot string) Block[E] {
	return Block[E]{
		Header: BlockHeader{
			ParentHash:     digest.ZeroHash,
			Height:         0,
			ExtrinsicsRoot: digest.ZeroHash,
			StateRoot:      genesisStateRoot,
			Nonce:          0,
		},
	}
}

// NewBlock constructs a candidate child block for the specified parent
// header. The consensus digest is left unsolved, mining happens after
// construction.
func NewBlock[E merkle.Hashable[E]](parent BlockHeader, extrinsics []E, stateRoot string) (Block[E], error) {
	extrinsicsRoot, err := ExtrinsicsRoot(extrinsics)
	if err != nil {
		return Block[E]{}, err
	}

	nb := Block[E]{
		Header: BlockHeader{
			ParentHash:     parent.Hash(),
			Height:         parent.Height + 1,
			ExtrinsicsRoot: extrinsicsRoot,
			StateRoot:      stateRoot,
			Nonce:          0,
		},
		Body: extrinsics,
	}

	return nb, nil
}

// ExtrinsicsRoot computes the merkle commitment over an ordered set of
// extrinsics. An empty body commits to the zero hash.
func ExtrinsicsRoot[E merkle.Hashable[E]](extrinsics []E) (string, error) {
	if len(extrinsics) == 0 {
		return digest.ZeroHash, nil
	}

	tree, err := merkle.NewTree(extrinsics)
	if err != nil {
		return "", err
	}

	return tree.RootHex(), nil
}
