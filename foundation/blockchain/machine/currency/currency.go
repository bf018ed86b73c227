// Package currency implements an accounted currency state machine. The
// state is a set of account balances and the extrinsics mint, burn, and
// transfer funds between accounts.
package currency

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
)

// Set of transaction kinds an extrinsic can carry.
const (
	TxMint     = "mint"
	TxBurn     = "burn"
	TxTransfer = "transfer"
)

// Set of errors a transition can fail with.
var (
	ErrUnknownKind       = errors.New("unknown transaction kind")
	ErrZeroValue         = errors.New("transaction value must be greater than zero")
	ErrSelfTransfer      = errors.New("transfer to the sending account")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// =============================================================================

// AccountID represents an account in the balances map.
type AccountID string

// Balances represents the complete state of the currency machine. An
// account is removed from the map when its balance reaches zero.
type Balances map[AccountID]uint64

// Clone makes a deep copy of the balances.
func (b Balances) Clone() Balances {
	balances := make(Balances, len(b))
	for accountID, balance := range b {
		balances[accountID] = balance
	}
	return balances
}

// =============================================================================

// Tx represents a single extrinsic applied to the currency machine.
type Tx struct {
	Kind  string    `json:"kind"`
	From  AccountID `json:"from,omitempty"`
	To    AccountID `json:"to,omitempty"`
	Value uint64    `json:"value"`
}

// Hash returns the unique hash for the transaction so it can be committed
// to a block body.
func (tx Tx) Hash() ([]byte, error) {
	data, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)
	return hash[:], nil
}

// Equals tests two transactions for equality.
func (tx Tx) Equals(other Tx) bool {
	return tx == other
}

// =============================================================================

// Machine implements the chain engine's state transition contract.
type Machine struct{}

// New constructs a currency machine.
func New() Machine {
	return Machine{}
}

// Transition applies a single transaction to the balances. The input state
// is never mutated, a failed transaction leaves it untouched.
func (Machine) Transition(state Balances, tx Tx) (Balances, error) {
	if tx.Value == 0 {
		return nil, ErrZeroValue
	}

	balances := state.Clone()

	switch tx.Kind {
	case TxMint:
		balances[tx.To] += tx.Value

	case TxBurn:

		// Burning more than the account holds removes the account along
		// with its entire balance.
		balance := balances[tx.From]
		if tx.Value >= balance {
			delete(balances, tx.From)
			break
		}
		balances[tx.From] = balance - tx.Value

	case TxTransfer:
		if tx.From == tx.To {
			return nil, ErrSelfTransfer
		}

		balance := balances[tx.From]
		if balance < tx.Value {
			return nil, fmt.Errorf("%w: account %s holds %d, needs %d", ErrInsufficientFunds, tx.From, balance, tx.Value)
		}

		balances[tx.From] = balance - tx.Value
		balances[tx.To] += tx.Value

		// Maintain the existential deposit. A drained account is removed
		// from the state entirely.
		if balances[tx.From] == 0 {
			delete(balances, tx.From)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, tx.Kind)
	}

	return balances, nil
}
