package merkle_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/ardanlabs/chain/foundation/blockchain/merkle"
)

// Data uses the sha256 hashing algorithm for the merkle tree.
type Data struct {
	x string
}

// Hash hashes the values using sha256.
func (d Data) Hash() ([]byte, error) {
	h := sha256.New()
	if _, err := h.Write([]byte(d.x)); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}

// Equals tests for equality of two pieces of data.
func (d Data) Equals(other Data) bool {
	return d.x == other.x
}

// =============================================================================

var table = []struct {
	name string
	data []Data
}{
	{name: "single", data: []Data{{x: "Hello"}}},
	{name: "pair", data: []Data{{x: "Hello"}, {x: "Hi"}}},
	{name: "odd", data: []Data{{x: "Hello"}, {x: "Hi"}, {x: "Hey"}}},
	{name: "even", data: []Data{{x: "Hello"}, {x: "Hi"}, {x: "Hey"}, {x: "Hola"}}},
	{name: "larger odd", data: []Data{{x: "Hello"}, {x: "Hi"}, {x: "Hey"}, {x: "Greetings"}, {x: "Hola"}}},
}

func Test_NewTree(t *testing.T) {
	for _, tst := range table {
		t.Run(tst.name, func(t *testing.T) {
			tree, err := merkle.NewTree(tst.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tree.Root()) != sha256.Size {
				t.Errorf("expected a %d byte root, got %d bytes", sha256.Size, len(tree.Root()))
			}

			again, err := merkle.NewTree(tst.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(tree.Root(), again.Root()) {
				t.Error("expected the same values to produce the same root")
			}
		})
	}
}

func Test_NewTreeNoValues(t *testing.T) {
	if _, err := merkle.NewTree([]Data{}); err == nil {
		t.Fatal("expected an error constructing a tree with no values")
	}
}

func Test_OrderSignificant(t *testing.T) {
	t1, err := merkle.NewTree([]Data{{x: "Hello"}, {x: "Hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t2, err := merkle.NewTree([]Data{{x: "Hi"}, {x: "Hello"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bytes.Equal(t1.Root(), t2.Root()) {
		t.Error("expected reordered values to produce a different root")
	}
}

func Test_VerifyProof(t *testing.T) {
	for _, tst := range table {
		t.Run(tst.name, func(t *testing.T) {
			tree, err := merkle.NewTree(tst.data)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, value := range tst.data {
				siblings, onLeft, err := tree.Proof(value)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				ok, err := merkle.VerifyProof(value, tree.Root(), siblings, onLeft)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !ok {
					t.Errorf("expected proof for %q to verify", value.x)
				}

				ok, err = merkle.VerifyProof(Data{x: "Imposter"}, tree.Root(), siblings, onLeft)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ok {
					t.Error("expected proof for a foreign value to fail")
				}
			}
		})
	}
}

func Test_ProofUnknownValue(t *testing.T) {
	tree, err := merkle.NewTree([]Data{{x: "Hello"}, {x: "Hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := tree.Proof(Data{x: "Missing"}); err == nil {
		t.Fatal("expected an error proving a value the tree does not contain")
	}
}
