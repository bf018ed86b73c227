package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ancestorsCmd = &cobra.Command{
	Use:   "ancestors <block>",
	Short: "Print the chain of headers from the specified block back to genesis.",
	Args:  cobra.ExactArgs(1),
	Run:   ancestorsRun,
}

func init() {
	rootCmd.AddCommand(ancestorsCmd)
}

func ancestorsRun(cmd *cobra.Command, args []string) {
	var resp []struct {
		ParentHash     string `json:"parent_hash"`
		Height         uint64 `json:"height"`
		ExtrinsicsRoot string `json:"extrinsics_root"`
		StateRoot      string `json:"state_root"`
		Nonce          uint64 `json:"nonce"`
	}
	get(fmt.Sprintf("/v1/ancestors/list/%s", args[0]), &resp)
	display(resp)
}
