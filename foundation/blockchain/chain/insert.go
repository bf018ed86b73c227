package chain

import (
	"fmt"
	"math/big"

	"github.com/ardanlabs/chain/foundation/blockchain/consensus"
	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
	"github.com/ardanlabs/chain/foundation/blockchain/machine"
)

// Insert validates the candidate block and on success records it in the
// tree and records its resulting state in the state store. The two are
// extended together under the same lock, a rejected candidate leaves no
// trace in either. Re-inserting an already admitted block is a no-op
// success.
func (c *Chain[S, E]) Insert(block database.Block[E]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	blockID := block.Hash()

	c.evHandler("chain: insert: candidate: blk[%s] height[%d] extrinsics[%d]", blockID, block.Header.Height, len(block.Body))

	if _, exists := c.nodes[blockID]; exists {
		c.evHandler("chain: insert: blk[%s] already admitted", blockID)
		return nil
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: parent is a member of the tree", blockID)

	parent, exists := c.nodes[block.Header.ParentHash]
	if !exists {
		return fmt.Errorf("%w: parent[%s]", ErrUnknownParent, block.Header.ParentHash)
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: height is the parent height plus one", blockID)

	if block.Header.Height != parent.block.Header.Height+1 {
		return fmt.Errorf("%w: got %d, exp %d", ErrBadHeight, block.Header.Height, parent.block.Header.Height+1)
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: extrinsics root matches the body", blockID)

	extrinsicsRoot, err := database.ExtrinsicsRoot(block.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBodyMismatch, err)
	}
	if extrinsicsRoot != block.Header.ExtrinsicsRoot {
		return fmt.Errorf("%w: got %s, exp %s", ErrBodyMismatch, extrinsicsRoot, block.Header.ExtrinsicsRoot)
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: consensus digest is solved", blockID)

	if err := consensus.Verify(block.Header, c.difficulty); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConsensus, err)
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: extrinsics execute against the parent state", blockID)

	parentState, exists := c.store.Get(block.Header.ParentHash)
	if !exists {
		return fmt.Errorf("%w: no state recorded for parent[%s]", ErrUnknownParent, block.Header.ParentHash)
	}

	state, failed, err := machine.Fold(c.machine, parentState, block.Body)
	if err != nil {
		return fmt.Errorf("%w: extrinsic[%d]: %w", ErrInvalidTransition, failed, err)
	}

	c.evHandler("chain: insert: validate: blk[%s]: check: resulting state matches the state root", blockID)

	if stateRoot := digest.Hash(state); stateRoot != block.Header.StateRoot {
		return fmt.Errorf("%w: got %s, exp %s", ErrStateRootMismatch, stateRoot, block.Header.StateRoot)
	}

	// The candidate passed every rule. Record the block in the tree and
	// its resulting state in the store.
	c.nodes[blockID] = node[E]{
		block:    block,
		parentID: block.Header.ParentHash,
		work:     new(big.Int).Add(parent.work, consensus.Work(c.difficulty)),
	}
	c.children[block.Header.ParentHash] = append(c.children[block.Header.ParentHash], blockID)
	c.store.Save(blockID, state)

	c.evHandler("chain: insert: admitted: blk[%s] height[%d]", blockID, block.Header.Height)

	return nil
}
