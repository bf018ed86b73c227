// Package chain is the core API for the block tree and implements all the
// admission rules and processing. It combines the consensus engine, the
// state transition machine, and the state store behind a single insert
// operation and a set of read-only queries.
package chain

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
	"github.com/ardanlabs/chain/foundation/blockchain/fork"
	"github.com/ardanlabs/chain/foundation/blockchain/machine"
	"github.com/ardanlabs/chain/foundation/blockchain/merkle"
	"github.com/ardanlabs/chain/foundation/blockchain/storage"
)

// EventHandler defines a function that is called when events occur in the
// processing of blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct a chain. The
// genesis state and difficulty are fixed at construction time so multiple
// independent chains can coexist in one process.
type Config[S any, E merkle.Hashable[E]] struct {
	GenesisState   S
	Difficulty     uint64
	Machine        machine.Machine[S, E]
	SelectStrategy string
	EvHandler      EventHandler
}

// node records the tree membership information for one admitted block. An
// entry references its parent by identity only, never by pointer. The
// derived children index supports leaf enumeration and ancestor walks.
type node[E merkle.Hashable[E]] struct {
	block    database.Block[E]
	parentID string
	work     *big.Int // Cumulative consensus work from genesis.
}

// Chain manages the tree of admitted blocks and the state each of them
// results in. Insert is the only mutating operation and runs serialized,
// reads observe a consistent snapshot relative to any in-flight insert.
type Chain[S any, E merkle.Hashable[E]] struct {
	mu         sync.RWMutex
	difficulty uint64
	machine    machine.Machine[S, E]
	forkChoice fork.Func
	evHandler  EventHandler

	genesisID string
	nodes     map[string]node[E]
	children  map[string][]string
	store     *storage.Store[S]
}

// New constructs a chain rooted at a genesis block committing to the
// specified genesis state. The genesis block is admitted immediately.
func New[S any, E merkle.Hashable[E]](cfg Config[S, E]) (*Chain[S, E], error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.Machine == nil {
		return nil, fmt.Errorf("no state machine provided")
	}

	if cfg.Difficulty < 1 {
		return nil, fmt.Errorf("difficulty must be at least 1, got %d", cfg.Difficulty)
	}

	strategy := cfg.SelectStrategy
	if strategy == "" {
		strategy = fork.StrategyHeaviest
	}
	forkChoice, err := fork.Retrieve(strategy)
	if err != nil {
		return nil, err
	}

	genesis := database.Genesis[E](digest.Hash(cfg.GenesisState))
	genesisID := genesis.Hash()

	c := Chain[S, E]{
		difficulty: cfg.Difficulty,
		machine:    cfg.Machine,
		forkChoice: forkChoice,
		evHandler:  ev,
		genesisID:  genesisID,
		nodes:      make(map[string]node[E]),
		children:   make(map[string][]string),
		store:      storage.New[S](),
	}

	// Genesis is not mined so it contributes no work.
	c.nodes[genesisID] = node[E]{block: genesis, work: big.NewInt(0)}
	c.store.Save(genesisID, cfg.GenesisState)

	ev("chain: new: genesis[%s] difficulty[%d] strategy[%s]", genesisID, cfg.Difficulty, strategy)

	return &c, nil
}

// Genesis returns the genesis block the chain is rooted at.
func (c *Chain[S, E]) Genesis() database.Block[E] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.nodes[c.genesisID].block
}

// Difficulty returns the chain's constant difficulty parameter.
func (c *Chain[S, E]) Difficulty() uint64 {
	return c.difficulty
}
