package database_test

import (
	"testing"

	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/digest"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Genesis(t *testing.T) {
	t.Log("Given the need to construct a genesis block.")
	{
		t.Logf("\tTest 0:\tWhen constructing genesis for a starting state.")
		{
			stateRoot := digest.Hash(currency.Balances{"alice": 100})
			genesis := database.Genesis[currency.Tx](stateRoot)

			if genesis.Header.ParentHash != digest.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould reference the zero hash as parent: %s", failed, genesis.Header.ParentHash)
			}
			t.Logf("\t%s\tTest 0:\tShould reference the zero hash as parent.", success)

			if genesis.Header.Height != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould sit at height zero: %d", failed, genesis.Header.Height)
			}
			t.Logf("\t%s\tTest 0:\tShould sit at height zero.", success)

			if genesis.Header.ExtrinsicsRoot != digest.ZeroHash || len(genesis.Body) != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould carry an empty body committed as the zero hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry an empty body committed as the zero hash.", success)

			if genesis.Header.StateRoot != stateRoot {
				t.Fatalf("\t%s\tTest 0:\tShould commit to the starting state root.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould commit to the starting state root.", success)

			if genesis.Header.Nonce != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould carry a zero consensus digest.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould carry a zero consensus digest.", success)
		}

		t.Logf("\tTest 1:\tWhen constructing genesis twice for different states.")
		{
			g1 := database.Genesis[currency.Tx](digest.Hash(currency.Balances{"alice": 100}))
			g2 := database.Genesis[currency.Tx](digest.Hash(currency.Balances{"alice": 200}))

			if g1.Hash() == g2.Hash() {
				t.Fatalf("\t%s\tTest 1:\tShould produce different identities for different states.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould produce different identities for different states.", success)
		}
	}
}

func Test_NewBlock(t *testing.T) {
	t.Log("Given the need to construct a child block.")
	{
		t.Logf("\tTest 0:\tWhen building a child of genesis.")
		{
			genesis := database.Genesis[currency.Tx](digest.Hash(currency.Balances{"alice": 100}))
			txs := []currency.Tx{
				{Kind: currency.TxTransfer, From: "alice", To: "bob", Value: 25},
				{Kind: currency.TxMint, To: "alice", Value: 10},
			}

			block, err := database.NewBlock(genesis.Header, txs, digest.Hash(currency.Balances{"alice": 85, "bob": 25}))
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct the block.", success)

			if block.Header.ParentHash != genesis.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould reference the parent by its hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reference the parent by its hash.", success)

			if block.Header.Height != genesis.Header.Height+1 {
				t.Fatalf("\t%s\tTest 0:\tShould sit one above the parent height.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould sit one above the parent height.", success)

			root, err := database.ExtrinsicsRoot(txs)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to compute the extrinsics root: %v", failed, err)
			}
			if block.Header.ExtrinsicsRoot != root {
				t.Fatalf("\t%s\tTest 0:\tShould commit to the extrinsics root of the body.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould commit to the extrinsics root of the body.", success)
		}

		t.Logf("\tTest 1:\tWhen any header field changes.")
		{
			genesis := database.Genesis[currency.Tx](digest.Hash(currency.Balances{"alice": 100}))
			block, err := database.NewBlock[currency.Tx](genesis.Header, nil, digest.Hash(currency.Balances{"alice": 100}))
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to construct the block: %v", failed, err)
			}

			tampered := block
			tampered.Header.Nonce++

			if tampered.Hash() == block.Hash() {
				t.Fatalf("\t%s\tTest 1:\tShould change the block identity.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould change the block identity.", success)
		}
	}
}

func Test_ExtrinsicsRoot(t *testing.T) {
	t.Log("Given the need to commit to a block body.")
	{
		t.Logf("\tTest 0:\tWhen the body is empty.")
		{
			root, err := database.ExtrinsicsRoot[currency.Tx](nil)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to compute the root: %v", failed, err)
			}
			if root != digest.ZeroHash {
				t.Fatalf("\t%s\tTest 0:\tShould commit an empty body as the zero hash: %s", failed, root)
			}
			t.Logf("\t%s\tTest 0:\tShould commit an empty body as the zero hash.", success)
		}

		t.Logf("\tTest 1:\tWhen the body order changes.")
		{
			txs := []currency.Tx{
				{Kind: currency.TxMint, To: "alice", Value: 1},
				{Kind: currency.TxMint, To: "bob", Value: 2},
			}
			reordered := []currency.Tx{txs[1], txs[0]}

			r1, err := database.ExtrinsicsRoot(txs)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to compute the root: %v", failed, err)
			}
			r2, err := database.ExtrinsicsRoot(reordered)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to compute the root: %v", failed, err)
			}

			if r1 == r2 {
				t.Fatalf("\t%s\tTest 1:\tShould produce a different root.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould produce a different root.", success)
		}
	}
}
