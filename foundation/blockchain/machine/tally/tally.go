// Package tally implements a small state machine that tracks the running
// sum and product of every value applied to it. It exists to exercise the
// chain engine with a state machine that never rejects an extrinsic.
package tally

import (
	"crypto/sha256"
	"encoding/json"
)

// Value represents a single extrinsic applied to the tally.
type Value uint64

// Hash returns the unique hash for the value so it can be committed to a
// block body.
func (v Value) Hash() ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)
	return hash[:], nil
}

// Equals tests two values for equality.
func (v Value) Equals(other Value) bool {
	return v == other
}

// =============================================================================

// State represents the complete state of the tally machine.
type State struct {
	Sum     uint64 `json:"sum"`
	Product uint64 `json:"product"`
}

// Machine implements the chain engine's state transition contract.
type Machine struct{}

// New constructs a tally machine.
func New() Machine {
	return Machine{}
}

// Transition folds a single value into the tally. It never fails.
func (Machine) Transition(state State, v Value) (State, error) {
	state.Sum += uint64(v)
	state.Product *= uint64(v)

	return state, nil
}
