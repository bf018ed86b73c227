package public

import (
	"sort"

	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
)

// head represents the canonical head in the api response.
type head struct {
	BlockID string               `json:"block_id"`
	Header  database.BlockHeader `json:"header"`
}

// leaves represents the set of current leaves in the api response.
type leaves struct {
	Leaves []string `json:"leaves"`
}

// balance represents one account balance in the api response.
type balance struct {
	Account currency.AccountID `json:"account"`
	Balance uint64             `json:"balance"`
}

// balances represents the balances at a block in the api response.
type balances struct {
	BlockID  string    `json:"block_id"`
	Balances []balance `json:"balances"`
}

// toBalances converts the chain state into the api response form. When an
// account is specified the result is filtered down to that account.
func toBalances(blockID string, state currency.Balances, account string) balances {
	bals := make([]balance, 0, len(state))
	for accountID, value := range state {
		if account != "" && account != string(accountID) {
			continue
		}
		bals = append(bals, balance{Account: accountID, Balance: value})
	}

	sort.Slice(bals, func(i, j int) bool { return bals[i].Account < bals[j].Account })

	return balances{
		BlockID:  blockID,
		Balances: bals,
	}
}
