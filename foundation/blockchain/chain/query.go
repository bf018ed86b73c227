package chain

import (
	"fmt"
	"sort"

	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/fork"
)

// BestHead returns the identity of the canonical head selected by the
// configured fork choice rule. The result is a pure function of the
// tree's current contents.
func (c *Chain[S, E]) BestHead() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	head, err := c.bestHead()
	if err != nil {
		return "", err
	}

	return head.ID, nil
}

// bestHead runs the fork choice rule over the current leaves. The caller
// must hold at least a read lock.
func (c *Chain[S, E]) bestHead() (fork.Head, error) {
	leaves := c.leaves()

	heads := make([]fork.Head, 0, len(leaves))
	for _, id := range leaves {
		n := c.nodes[id]
		heads = append(heads, fork.Head{
			ID:     id,
			Height: n.block.Header.Height,
			Work:   n.work,
		})
	}

	return c.forkChoice(heads)
}

// Leaves returns the identities of all blocks with no recorded children.
// The result is sorted so callers see a deterministic order.
func (c *Chain[S, E]) Leaves() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.leaves()
}

// leaves enumerates the childless blocks. The caller must hold at least a
// read lock.
func (c *Chain[S, E]) leaves() []string {
	var leaves []string
	for id := range c.nodes {
		if len(c.children[id]) == 0 {
			leaves = append(leaves, id)
		}
	}

	sort.Strings(leaves)
	return leaves
}

// Ancestors returns the headers from the specified block back to genesis,
// the block's own header first.
func (c *Chain[S, E]) Ancestors(blockID string) ([]database.BlockHeader, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var headers []database.BlockHeader

	id := blockID
	for {
		n, exists := c.nodes[id]
		if !exists {
			return nil, fmt.Errorf("%w: blk[%s]", ErrNotFound, blockID)
		}

		headers = append(headers, n.block.Header)
		if id == c.genesisID {
			break
		}
		id = n.parentID
	}

	return headers, nil
}

// Height returns the height of the specified block.
func (c *Chain[S, E]) Height(blockID string) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, exists := c.nodes[blockID]
	if !exists {
		return 0, fmt.Errorf("%w: blk[%s]", ErrNotFound, blockID)
	}

	return n.block.Header.Height, nil
}

// GetBlock returns the specified block.
func (c *Chain[S, E]) GetBlock(blockID string) (database.Block[E], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n, exists := c.nodes[blockID]
	if !exists {
		return database.Block[E]{}, fmt.Errorf("%w: blk[%s]", ErrNotFound, blockID)
	}

	return n.block, nil
}

// StateAt returns the state that results from executing the specified
// block.
func (c *Chain[S, E]) StateAt(blockID string) (S, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, exists := c.store.Get(blockID)
	if !exists {
		var zero S
		return zero, fmt.Errorf("%w: blk[%s]", ErrNotFound, blockID)
	}

	return state, nil
}

// HeadState returns the canonical head's identity together with the state
// as of that head.
func (c *Chain[S, E]) HeadState() (string, S, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	head, err := c.bestHead()
	if err != nil {
		var zero S
		return "", zero, err
	}

	state, _ := c.store.Get(head.ID)
	return head.ID, state, nil
}

// KnownBlocks returns the number of blocks admitted to the tree, genesis
// included.
func (c *Chain[S, E]) KnownBlocks() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.nodes)
}
