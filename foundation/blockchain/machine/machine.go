// Package machine defines the state transition contract the chain engine
// uses to execute block bodies. Any state machine providing this behavior
// can back a chain, the engine never inspects states or extrinsics itself.
package machine

// Machine describes a deterministic state transition function over some
// state type S and extrinsic type E. Given the same state and extrinsic it
// must always produce the same outcome. On error the returned state is
// ignored, the engine treats the input state as unchanged.
//
// States must serialize to a deterministic JSON form since the engine
// commits to them by hashing that serialization.
type Machine[S any, E any] interface {
	Transition(state S, extrinsic E) (S, error)
}

// Fold applies the ordered set of extrinsics to the starting state. The
// first failing extrinsic aborts the fold, reporting its position.
func Fold[S any, E any](m Machine[S, E], state S, extrinsics []E) (S, int, error) {
	for i, extrinsic := range extrinsics {
		next, err := m.Transition(state, extrinsic)
		if err != nil {
			return state, i, err
		}
		state = next
	}

	return state, -1, nil
}
