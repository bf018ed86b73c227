package cmd

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ardanlabs/chain/foundation/blockchain/genesis"
	"github.com/spf13/cobra"
)

var (
	genPath       string
	genChainID    uint16
	genDifficulty uint64
	genBalances   []string
)

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Write a genesis file for a new chain.",
	Run:   genesisRun,
}

func init() {
	rootCmd.AddCommand(genesisCmd)
	genesisCmd.Flags().StringVarP(&genPath, "path", "p", "zblock/genesis.json", "Path to write the genesis file.")
	genesisCmd.Flags().Uint16VarP(&genChainID, "chain-id", "c", 1, "Unique id for the chain.")
	genesisCmd.Flags().Uint64VarP(&genDifficulty, "difficulty", "d", 1_000_000, "Difficulty demanded from every block.")
	genesisCmd.Flags().StringSliceVarP(&genBalances, "balance", "b", nil, "Starting balance as account=value, repeatable.")
}

func genesisRun(cmd *cobra.Command, args []string) {
	balances := make(map[string]uint64, len(genBalances))
	for _, entry := range genBalances {
		account, value, found := strings.Cut(entry, "=")
		if !found {
			log.Fatalf("balance %q is not in account=value form", entry)
		}

		amount, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			log.Fatalf("balance %q: %v", entry, err)
		}
		balances[account] = amount
	}

	gen := genesis.Genesis{
		Date:       time.Now().UTC(),
		ChainID:    genChainID,
		Difficulty: genDifficulty,
		Balances:   balances,
	}

	if err := genesis.Save(genPath, gen); err != nil {
		log.Fatal(err)
	}
	display(gen)
}
