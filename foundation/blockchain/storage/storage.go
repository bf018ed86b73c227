// Package storage maintains the mapping of block identity to the state
// that results from executing that block's extrinsics. The store is seeded
// with the genesis state and only ever grows, states are never mutated
// once recorded.
package storage

import (
	"sync"
)

// Store manages the states keyed by block identity for one chain.
type Store[S any] struct {
	mu     sync.RWMutex
	states map[string]S
}

// New constructs an empty state store.
func New[S any]() *Store[S] {
	return &Store[S]{
		states: make(map[string]S),
	}
}

// Save records the state that results from executing the specified block.
func (st *Store[S]) Save(blockID string, state S) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.states[blockID] = state
}

// Get returns the recorded state for the specified block.
func (st *Store[S]) Get(blockID string) (S, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	state, exists := st.states[blockID]
	return state, exists
}

// Count returns the number of states recorded.
func (st *Store[S]) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.states)
}
