package cmd

import (
	"fmt"

	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [path]",
	Short: "List the topics in the catalog, or print one topic's detail.",
	Run:   topicsRun,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func topicsRun(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		var topics []knowledge.FlatTopic
		get("/v1/knowledge/topics", &topics)
		print(topics)
		return
	}

	var detail knowledge.TopicDetail
	get(fmt.Sprintf("/v1/knowledge/topics/%s", args[0]), &detail)
	print(detail)
}
