package cmd

import (
	"fmt"
	"log"

	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block [number|hash]",
	Short: "Print a block, or the most recent blocks when no argument is given.",
	Run:   blockRun,
}

func init() {
	rootCmd.AddCommand(blockCmd)
}

func blockRun(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		var blocks []chain.Block
		get("/v1/chain/blocks/recent", &blocks)
		print(blocks)
		return
	}

	if len(args) > 1 {
		log.Fatal("expected at most one block number or hash")
	}

	var block chain.Block
	get(fmt.Sprintf("/v1/chain/blocks/%s", args[0]), &block)
	print(block)
}
