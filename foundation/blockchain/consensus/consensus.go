// Package consensus implements the proof of work engine. Mining searches
// for a nonce that brings a header's hash under the difficulty target and
// verification re-checks that property in constant time.
package consensus

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
)

// ErrDigestInvalid is returned from Verify when a header's hash does not
// satisfy the difficulty target. This is a validation failure that leads
// to block rejection, never a crash.
var ErrDigestInvalid = errors.New("consensus digest does not satisfy the difficulty target")

// maxTarget is the largest value a 256 bit block hash can take. Difficulty
// one accepts every hash.
var maxTarget = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// =============================================================================

// Target returns the largest hash value accepted at the specified
// difficulty. The target shrinks as difficulty grows so higher difficulty
// means more expected mining work.
func Target(difficulty uint64) *big.Int {
	if difficulty < 1 {
		difficulty = 1
	}

	return new(big.Int).Div(maxTarget, new(big.Int).SetUint64(difficulty))
}

// Work returns the expected number of hash attempts a single block mined
// at the specified difficulty represents. Chains accumulate this per block
// when competing under the fork choice rule.
func Work(difficulty uint64) *big.Int {
	if difficulty < 1 {
		difficulty = 1
	}

	return new(big.Int).SetUint64(difficulty)
}

// Verify recomputes the hash of the header, consensus digest included, and
// checks it against the difficulty target.
func Verify(header database.BlockHeader, difficulty uint64) error {
	hash := header.Hash()

	if digest.ToBig(hash).Cmp(Target(difficulty)) > 0 {
		return fmt.Errorf("%w: hash[%s] difficulty[%d]", ErrDigestInvalid, hash, difficulty)
	}

	return nil
}

// Mine searches over nonce values until the header's hash satisfies the
// difficulty target. This is the one intentionally unbounded operation in
// the system. Cancel the context to abandon the search, there is no
// partial state to roll back.
func Mine(ctx context.Context, header database.BlockHeader, difficulty uint64, ev func(v string, args ...any)) (database.BlockHeader, error) {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	ev("consensus: mine: started: parent[%s] height[%d]", header.ParentHash, header.Height)
	defer ev("consensus: mine: completed")

	// Choose a random starting point for the nonce. After this, the nonce
	// is incremented by 1 until a solution is found.
	nBig, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return database.BlockHeader{}, err
	}
	header.Nonce = nBig.Uint64()

	target := Target(difficulty)

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("consensus: mine: attempts[%d]", attempts)
		}

		// Did the caller abandon the search.
		if ctx.Err() != nil {
			ev("consensus: mine: CANCELLED")
			return database.BlockHeader{}, ctx.Err()
		}

		hash := header.Hash()
		if digest.ToBig(hash).Cmp(target) > 0 {
			header.Nonce++
			continue
		}

		ev("consensus: mine: SOLVED: hash[%s] attempts[%d]", hash, attempts)

		return header, nil
	}
}
