package currency_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_Transition(t *testing.T) {
	type table struct {
		name  string
		start currency.Balances
		tx    currency.Tx
		final currency.Balances
		err   error
	}

	tt := []table{
		{
			name:  "mint",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: currency.TxMint, To: "bob", Value: 50},
			final: currency.Balances{"alice": 100, "bob": 50},
		},
		{
			name:  "burn partial",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: currency.TxBurn, From: "alice", Value: 40},
			final: currency.Balances{"alice": 60},
		},
		{
			name:  "burn exceeding removes account",
			start: currency.Balances{"alice": 100, "bob": 5},
			tx:    currency.Tx{Kind: currency.TxBurn, From: "bob", Value: 50},
			final: currency.Balances{"alice": 100},
		},
		{
			name:  "transfer",
			start: currency.Balances{"alice": 100, "bob": 10},
			tx:    currency.Tx{Kind: currency.TxTransfer, From: "alice", To: "bob", Value: 30},
			final: currency.Balances{"alice": 70, "bob": 40},
		},
		{
			name:  "transfer drains sender",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: currency.TxTransfer, From: "alice", To: "bob", Value: 100},
			final: currency.Balances{"bob": 100},
		},
		{
			name:  "transfer insufficient funds",
			start: currency.Balances{"alice": 10},
			tx:    currency.Tx{Kind: currency.TxTransfer, From: "alice", To: "bob", Value: 30},
			err:   currency.ErrInsufficientFunds,
		},
		{
			name:  "transfer to self",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: currency.TxTransfer, From: "alice", To: "alice", Value: 10},
			err:   currency.ErrSelfTransfer,
		},
		{
			name:  "zero value",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: currency.TxMint, To: "alice", Value: 0},
			err:   currency.ErrZeroValue,
		},
		{
			name:  "unknown kind",
			start: currency.Balances{"alice": 100},
			tx:    currency.Tx{Kind: "stake", From: "alice", Value: 10},
			err:   currency.ErrUnknownKind,
		},
	}

	t.Log("Given the need to apply transactions to account balances.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s transaction.", testID, tst.name)
			{
				f := func(t *testing.T) {
					before := tst.start.Clone()

					final, err := currency.New().Transition(tst.start, tst.tx)

					if tst.err != nil {
						if !errors.Is(err, tst.err) {
							t.Fatalf("\t%s\tTest %d:\tShould reject the transaction with the right error: got %v, exp %v", failed, testID, err, tst.err)
						}
						t.Logf("\t%s\tTest %d:\tShould reject the transaction with the right error.", success, testID)
					} else {
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould be able to apply the transaction: %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to apply the transaction.", success, testID)

						if !reflect.DeepEqual(final, tst.final) {
							t.Fatalf("\t%s\tTest %d:\tShould produce the expected balances: got %v, exp %v", failed, testID, final, tst.final)
						}
						t.Logf("\t%s\tTest %d:\tShould produce the expected balances.", success, testID)
					}

					if !reflect.DeepEqual(tst.start, before) {
						t.Fatalf("\t%s\tTest %d:\tShould never mutate the input state.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould never mutate the input state.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
