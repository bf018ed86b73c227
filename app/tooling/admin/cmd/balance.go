package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type balance struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

type balances struct {
	BlockID  string    `json:"block_id"`
	Balances []balance `json:"balances"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance [account]",
	Short: "Print the balances at the canonical head, optionally for one account.",
	Args:  cobra.MaximumNArgs(1),
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) {
	path := "/v1/balances/list"
	if len(args) == 1 {
		path = fmt.Sprintf("/v1/balances/list/%s", args[0])
	}

	var resp balances
	get(path, &resp)
	display(resp)
}
