package cmd

import (
	"github.com/spf13/cobra"
)

var leavesCmd = &cobra.Command{
	Use:   "leaves",
	Short: "Print the current leaf blocks of the node.",
	Run:   leavesRun,
}

func init() {
	rootCmd.AddCommand(leavesCmd)
}

func leavesRun(cmd *cobra.Command, args []string) {
	var resp struct {
		Leaves []string `json:"leaves"`
	}
	get("/v1/leaves/list", &resp)
	display(resp)
}
