package cmd

import (
	"github.com/spf13/cobra"
)

var headCmd = &cobra.Command{
	Use:   "head",
	Short: "Print the canonical head of the node.",
	Run:   headRun,
}

func init() {
	rootCmd.AddCommand(headCmd)
}

func headRun(cmd *cobra.Command, args []string) {
	var resp struct {
		BlockID string `json:"block_id"`
		Header  struct {
			ParentHash     string `json:"parent_hash"`
			Height         uint64 `json:"height"`
			ExtrinsicsRoot string `json:"extrinsics_root"`
			StateRoot      string `json:"state_root"`
			Nonce          uint64 `json:"nonce"`
		} `json:"header"`
	}
	get("/v1/head", &resp)
	display(resp)
}
