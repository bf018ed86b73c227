// Package merkle provides a merkle tree over an ordered set of values so a
// block header can carry a single commitment to its full body.
package merkle

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Hashable represents the behavior concrete data must exhibit to be used
// as a leaf in the merkle tree.
type Hashable[T any] interface {
	Hash() ([]byte, error)
	Equals(other T) bool
}

// =============================================================================

// Tree represents a merkle tree over data of some type T that exhibits the
// behavior defined by the Hashable constraint. The tree is rebuilt from
// scratch for each set of values, there is no incremental update.
type Tree[T Hashable[T]] struct {
	values []T
	levels [][][]byte
}

// NewTree constructs a merkle tree over the ordered set of values. Order is
// significant, reordering the values produces a different root.
func NewTree[T Hashable[T]](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, errors.New("cannot construct a tree with no values")
	}

	leaves := make([][]byte, len(values))
	for i, value := range values {
		hash, err := value.Hash()
		if err != nil {
			return nil, fmt.Errorf("hashing leaf %d: %w", i, err)
		}
		leaves[i] = hash
	}

	// Build each level by pairing the hashes of the level below. An odd
	// hash at the end of a level is paired with itself.
	levels := [][][]byte{leaves}
	for level := leaves; len(level) > 1; {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, hashPair(level[i], right))
		}
		levels = append(levels, next)
		level = next
	}

	t := Tree[T]{
		values: values,
		levels: levels,
	}

	return &t, nil
}

// Root returns the root hash of the tree.
func (t *Tree[T]) Root() []byte {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// RootHex returns the root hash of the tree in hex encoded form.
func (t *Tree[T]) RootHex() string {
	return hexutil.Encode(t.Root())
}

// Values returns a copy of the ordered set of values in the tree.
func (t *Tree[T]) Values() []T {
	values := make([]T, len(t.values))
	copy(values, t.values)
	return values
}

// Proof returns the sibling hashes needed to prove the specified value is
// a member of the tree. The booleans report whether the matching sibling
// sits to the left of the running hash.
func (t *Tree[T]) Proof(value T) ([][]byte, []bool, error) {
	index := -1
	for i, v := range t.values {
		if v.Equals(value) {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil, errors.New("value not found in tree")
	}

	var siblings [][]byte
	var onLeft []bool

	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling >= len(level) {
			sibling = index
		}
		siblings = append(siblings, level[sibling])
		onLeft = append(onLeft, sibling < index)
		index /= 2
	}

	return siblings, onLeft, nil
}

// VerifyProof checks a proof produced by the Proof method against the
// specified root.
func VerifyProof[T Hashable[T]](value T, root []byte, siblings [][]byte, onLeft []bool) (bool, error) {
	if len(siblings) != len(onLeft) {
		return false, errors.New("malformed proof")
	}

	hash, err := value.Hash()
	if err != nil {
		return false, err
	}

	for i, sibling := range siblings {
		if onLeft[i] {
			hash = hashPair(sibling, hash)
			continue
		}
		hash = hashPair(hash, sibling)
	}

	return bytes.Equal(hash, root), nil
}

// hashPair produces the parent hash for two child hashes.
func hashPair(left []byte, right []byte) []byte {
	hash := sha256.New()
	hash.Write(left)
	hash.Write(right)
	return hash.Sum(nil)
}
