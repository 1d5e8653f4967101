package knowledge_test

import (
	"testing"

	"github.com/ainlabs/explorer/business/core/knowledge"
)

// sliceGraph is a small materialized graph with two topic clusters joined by
// one explicit edge, used to probe the slicing boundaries.
func sliceGraph() knowledge.GraphData {
	return knowledge.GraphData{
		Nodes: []knowledge.GraphNode{
			{ID: "topic:blockchain", Label: knowledge.LabelTopic},
			{ID: "topic:blockchain/consensus", Label: knowledge.LabelTopic},
			{ID: "topic:ml", Label: knowledge.LabelTopic},
			{ID: "0xAlice_blockchain_consensus_e1", Label: knowledge.LabelExploration, Properties: map[string]any{"topic_path": "blockchain|consensus"}},
			{ID: "0xBob_ml_e1", Label: knowledge.LabelExploration, Properties: map[string]any{"topic_path": "ml"}},
			{ID: "user:0xCarol", Label: knowledge.LabelUser},
		},
		Edges: []knowledge.GraphEdge{
			{ID: "e1", From: "topic:blockchain", To: "topic:blockchain/consensus", Type: knowledge.EdgeTypeSubtopic},
			{ID: "e2", From: "0xAlice_blockchain_consensus_e1", To: "topic:blockchain/consensus", Type: knowledge.EdgeTypeInTopic},
			{ID: "e3", From: "0xBob_ml_e1", To: "topic:ml", Type: knowledge.EdgeTypeInTopic},
			{ID: "e4", From: "0xAlice_blockchain_consensus_e1", To: "0xBob_ml_e1", Type: knowledge.EdgeTypeExtends},
			{ID: "e5", From: "user:0xCarol", To: "topic:ml", Type: knowledge.EdgeTypeExplored},
		},
	}
}

func nodeIDs(graph knowledge.GraphData) map[string]struct{} {
	ids := make(map[string]struct{}, len(graph.Nodes))
	for _, node := range graph.Nodes {
		ids[node.ID] = struct{}{}
	}
	return ids
}

func edgeIDs(graph knowledge.GraphData) map[string]struct{} {
	ids := make(map[string]struct{}, len(graph.Edges))
	for _, edge := range graph.Edges {
		ids[edge.ID] = struct{}{}
	}
	return ids
}

func Test_SubgraphForTopic(t *testing.T) {
	t.Log("Given the need to slice the subgraph around a topic.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen slicing around the blockchain topic.", testID)
		{
			sub := knowledge.SubgraphForTopic(sliceGraph(), "blockchain")

			nodes := nodeIDs(sub)
			for _, id := range []string{"topic:blockchain", "topic:blockchain/consensus", "0xAlice_blockchain_consensus_e1", "0xBob_ml_e1"} {
				if _, ok := nodes[id]; !ok {
					t.Errorf("\t%s\tTest %d:\tShould contain node %q.", failed, testID, id)
				} else {
					t.Logf("\t%s\tTest %d:\tShould contain node %q.", success, testID, id)
				}
			}

			// The bob node comes in as the far endpoint of the extends
			// edge; its own cluster must not follow it in.
			for _, id := range []string{"topic:ml", "user:0xCarol"} {
				if _, ok := nodes[id]; ok {
					t.Errorf("\t%s\tTest %d:\tShould not cascade to node %q.", failed, testID, id)
				} else {
					t.Logf("\t%s\tTest %d:\tShould not cascade to node %q.", success, testID, id)
				}
			}

			edges := edgeIDs(sub)
			if _, ok := edges["e3"]; ok {
				t.Errorf("\t%s\tTest %d:\tShould not include edges outside the seed set.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould not include edges outside the seed set.", success, testID)
			}

			if len(sub.Edges) != 3 {
				t.Errorf("\t%s\tTest %d:\tShould keep 3 edges, got %d.", failed, testID, len(sub.Edges))
			} else {
				t.Logf("\t%s\tTest %d:\tShould keep 3 edges.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen slicing around an unknown topic.", testID)
		{
			sub := knowledge.SubgraphForTopic(sliceGraph(), "does/not/exist")

			if sub.Nodes == nil || sub.Edges == nil {
				t.Errorf("\t%s\tTest %d:\tShould carry empty slices rather than nils.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould carry empty slices rather than nils.", success, testID)
			}

			if len(sub.Nodes) != 0 || len(sub.Edges) != 0 {
				t.Errorf("\t%s\tTest %d:\tShould be empty, got %d/%d.", failed, testID, len(sub.Nodes), len(sub.Edges))
			} else {
				t.Logf("\t%s\tTest %d:\tShould be empty.", success, testID)
			}
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen explorations reference the topic by key only.", testID)
		{
			sub := knowledge.SubgraphForTopic(sliceGraph(), "ml")

			nodes := nodeIDs(sub)
			if _, ok := nodes["0xBob_ml_e1"]; !ok {
				t.Errorf("\t%s\tTest %d:\tShould match the exploration by its topic_path property.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould match the exploration by its topic_path property.", success, testID)
			}

			if _, ok := nodes["user:0xCarol"]; !ok {
				t.Errorf("\t%s\tTest %d:\tShould pull in the exploring user one hop out.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould pull in the exploring user one hop out.", success, testID)
			}
		}
	}
}

func Test_NeighborsOf(t *testing.T) {
	t.Log("Given the need to slice the 1-hop neighborhood of a node.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling a connected node.", testID)
		{
			sub := knowledge.NeighborsOf(sliceGraph(), "topic:ml")

			if len(sub.Nodes) != 3 || len(sub.Edges) != 2 {
				t.Errorf("\t%s\tTest %d:\tShould have 3 nodes and 2 edges, got %d/%d.", failed, testID, len(sub.Nodes), len(sub.Edges))
			} else {
				t.Logf("\t%s\tTest %d:\tShould have 3 nodes and 2 edges.", success, testID)
			}

			nodes := nodeIDs(sub)
			for _, id := range []string{"topic:ml", "0xBob_ml_e1", "user:0xCarol"} {
				if _, ok := nodes[id]; !ok {
					t.Errorf("\t%s\tTest %d:\tShould contain node %q.", failed, testID, id)
				} else {
					t.Logf("\t%s\tTest %d:\tShould contain node %q.", success, testID, id)
				}
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen handling an unknown node.", testID)
		{
			sub := knowledge.NeighborsOf(sliceGraph(), "topic:nowhere")

			if len(sub.Nodes) != 0 || len(sub.Edges) != 0 {
				t.Errorf("\t%s\tTest %d:\tShould be empty, got %d/%d.", failed, testID, len(sub.Nodes), len(sub.Edges))
			} else {
				t.Logf("\t%s\tTest %d:\tShould be empty.", success, testID)
			}
		}
	}
}
