package cmd

import (
	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the knowledge graph statistics.",
	Run:   statsRun,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func statsRun(cmd *cobra.Command, args []string) {
	var stats knowledge.GraphStats
	get("/v1/knowledge/stats", &stats)
	print(stats)
}
