package cmd

import (
	"fmt"

	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/spf13/cobra"
)

var graphTopic string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the knowledge graph, or the subgraph around a topic.",
	Run:   graphRun,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringVarP(&graphTopic, "topic", "t", "", "Topic path to slice the graph around.")
}

func graphRun(cmd *cobra.Command, args []string) {
	path := "/v1/knowledge/graph"
	if graphTopic != "" {
		path = fmt.Sprintf("/v1/knowledge/graph/topic/%s", graphTopic)
	}

	var data knowledge.GraphData
	get(path, &data)
	print(data)
}
