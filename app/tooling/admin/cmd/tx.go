package cmd

import (
	"fmt"
	"log"

	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:   "tx [hash]",
	Short: "Print a transaction, or the most recent transactions when no argument is given.",
	Run:   txRun,
}

func init() {
	rootCmd.AddCommand(txCmd)
}

func txRun(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		var txs []chain.Transaction
		get("/v1/chain/tx/recent", &txs)
		print(txs)
		return
	}

	if len(args) > 1 {
		log.Fatal("expected at most one transaction hash")
	}

	var tx chain.Transaction
	get(fmt.Sprintf("/v1/chain/tx/%s", args[0]), &tx)
	print(tx)
}
