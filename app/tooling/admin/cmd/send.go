package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	txKind  string
	txFrom  string
	txTo    string
	txValue uint64
)

type tx struct {
	Kind  string `json:"kind"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Value uint64 `json:"value"`
}

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to be mined into the next block.",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&txKind, "kind", "k", "transfer", "Kind of transaction: mint, burn or transfer.")
	sendCmd.Flags().StringVarP(&txFrom, "from", "f", "", "Account to debit.")
	sendCmd.Flags().StringVarP(&txTo, "to", "t", "", "Account to credit.")
	sendCmd.Flags().Uint64VarP(&txValue, "value", "v", 0, "Value to move.")
}

func sendRun(cmd *cobra.Command, args []string) {
	batch := struct {
		Txs []tx `json:"txs"`
	}{
		Txs: []tx{{Kind: txKind, From: txFrom, To: txTo, Value: txValue}},
	}

	data, err := json.Marshal(batch)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/node/tx/add", privateURL), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result struct {
		Status string `json:"status"`
		Txs    int    `json:"txs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}
	display(result)
}
