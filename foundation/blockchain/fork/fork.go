// Package fork provides the different fork choice rules used to select the
// canonical head among the leaves of the block tree.
package fork

import (
	"fmt"
	"math/big"
)

// List of different fork choice strategies.
const (
	StrategyHeaviest = "heaviest"
	StrategyLongest  = "longest"
)

// Map of different fork choice strategies with functions.
var strategies = map[string]Func{
	StrategyHeaviest: heaviestChain,
	StrategyLongest:  longestChain,
}

// Head describes one leaf of the block tree as seen by a fork choice rule.
type Head struct {
	ID     string   // Block identity of the leaf.
	Height uint64   // Distance of the leaf from genesis.
	Work   *big.Int // Cumulative consensus work from genesis to the leaf.
}

// Func defines a function that selects exactly one of the candidate heads
// as canonical. Implementations MUST be pure functions of the candidates,
// calling one twice with the same candidates must yield the same head.
type Func func(heads []Head) (Head, error)

// Retrieve returns the specified fork choice strategy function.
func Retrieve(strategy string) (Func, error) {
	fn, exists := strategies[strategy]
	if !exists {
		return nil, fmt.Errorf("strategy %q does not exist", strategy)
	}
	return fn, nil
}

// =============================================================================

// heaviestChain selects the head with the greatest cumulative work. Ties
// are broken by the lexicographically smaller block identity, an arbitrary
// but consistent rule since determinism matters more than the choice.
func heaviestChain(heads []Head) (Head, error) {
	if len(heads) == 0 {
		return Head{}, fmt.Errorf("no candidate heads")
	}

	best := heads[0]
	for _, head := range heads[1:] {
		switch head.Work.Cmp(best.Work) {
		case 1:
			best = head
		case 0:
			if head.ID < best.ID {
				best = head
			}
		}
	}

	return best, nil
}

// longestChain selects the head farthest from genesis with the same
// lexicographic tie-break as the heaviest rule.
func longestChain(heads []Head) (Head, error) {
	if len(heads) == 0 {
		return Head{}, fmt.Errorf("no candidate heads")
	}

	best := heads[0]
	for _, head := range heads[1:] {
		if head.Height > best.Height || (head.Height == best.Height && head.ID < best.ID) {
			best = head
		}
	}

	return best, nil
}
