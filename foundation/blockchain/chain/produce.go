package chain

import (
	"context"
	"fmt"

	"github.com/ardanlabs/chain/foundation/blockchain/consensus"
	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
	"github.com/ardanlabs/chain/foundation/blockchain/machine"
)

// Produce constructs and mines a candidate child of the current canonical
// head carrying the specified extrinsics. The chain itself is not touched,
// submit the returned block with Insert. Mining runs until the context is
// cancelled or a solution is found.
func (c *Chain[S, E]) Produce(ctx context.Context, extrinsics []E) (database.Block[E], error) {

	// Snapshot the head and its state. Everything after this runs against
	// the snapshot so mining never holds the lock.
	c.mu.RLock()
	head, err := c.bestHead()
	if err != nil {
		c.mu.RUnlock()
		return database.Block[E]{}, err
	}
	parent := c.nodes[head.ID].block.Header
	parentState, _ := c.store.Get(head.ID)
	c.mu.RUnlock()

	c.evHandler("chain: produce: parent[%s] height[%d] extrinsics[%d]", head.ID, parent.Height, len(extrinsics))

	// Reject a bad batch before spending any mining work on it.
	state, failed, err := machine.Fold(c.machine, parentState, extrinsics)
	if err != nil {
		return database.Block[E]{}, fmt.Errorf("%w: extrinsic[%d]: %w", ErrInvalidTransition, failed, err)
	}

	nb, err := database.NewBlock(parent, extrinsics, digest.Hash(state))
	if err != nil {
		return database.Block[E]{}, err
	}

	header, err := consensus.Mine(ctx, nb.Header, c.difficulty, c.evHandler)
	if err != nil {
		return database.Block[E]{}, err
	}
	nb.Header = header

	return nb, nil
}
