package chain

import "errors"

// Set of error variables for block admission. Every rejection wraps one of
// these so callers can classify the failure with errors.Is. Rejection is
// always recovered locally, nothing in block admission is fatal.
var (
	// ErrUnknownParent is returned when a candidate's parent is not a
	// member of the tree. Orphans are rejected, not parked.
	ErrUnknownParent = errors.New("parent block is not a member of the tree")

	// ErrBadHeight is returned when a candidate's height is not the parent
	// height plus one.
	ErrBadHeight = errors.New("block height is not the parent height plus one")

	// ErrBodyMismatch is returned when the recomputed extrinsics root does
	// not match the root committed in the header.
	ErrBodyMismatch = errors.New("block body does not match the committed extrinsics root")

	// ErrInvalidConsensus is returned when the consensus digest fails
	// verification at the chain's difficulty.
	ErrInvalidConsensus = errors.New("consensus digest is invalid")

	// ErrInvalidTransition is returned when the state machine rejects an
	// extrinsic in the body. The block is rejected as a whole, no partial
	// application is recorded.
	ErrInvalidTransition = errors.New("extrinsic rejected by the state machine")

	// ErrStateRootMismatch is returned when the state that results from
	// executing the body does not hash to the committed state root.
	ErrStateRootMismatch = errors.New("resulting state does not match the committed state root")

	// ErrNotFound is returned from queries naming a block the tree does
	// not contain.
	ErrNotFound = errors.New("block is not a member of the tree")
)
