package knowledge

import "strings"

// SubgraphForTopic computes the induced subgraph relevant to one topic path:
// the topic's own node, every descendant topic, every exploration recorded
// under the topic, and anything edge-connected to those. The computation is
// pure; it never touches the raw snapshots.
//
// Different producers encode an exploration's topic in different forms, so
// membership is tried three ways: exact path equality on the topic_path
// property, equality against the separator-encoded key, and a substring
// match of the underscore-encoded key against the node id.
func SubgraphForTopic(graph GraphData, topicPath string) GraphData {
	topicID := TopicNodeID(topicPath)
	encodedKey := EncodeTopicKey(topicPath)
	underscoredKey := strings.ReplaceAll(encodedKey, topicKeySeparator, "_")

	relevant := make(map[string]struct{})
	for _, node := range graph.Nodes {
		switch {
		case node.ID == topicID:
			relevant[node.ID] = struct{}{}

		case strings.HasPrefix(node.ID, topicID+"/"):
			relevant[node.ID] = struct{}{}

		default:
			tp, _ := node.Properties["topic_path"].(string)
			if tp == topicPath || tp == encodedKey || strings.Contains(node.ID, underscoredKey) {
				relevant[node.ID] = struct{}{}
			}
		}
	}

	// Keep every edge touching the seed set, then pull in the far endpoint
	// of each kept edge so connected neighbors one hop out are included.
	// Edges are tested against the seed set only; the expansion happens
	// after, so membership never cascades past one hop.
	edges := []GraphEdge{}
	for _, edge := range graph.Edges {
		_, fromIn := relevant[edge.From]
		_, toIn := relevant[edge.To]
		if fromIn || toIn {
			edges = append(edges, edge)
		}
	}

	for _, edge := range edges {
		relevant[edge.From] = struct{}{}
		relevant[edge.To] = struct{}{}
	}

	nodes := []GraphNode{}
	for _, node := range graph.Nodes {
		if _, ok := relevant[node.ID]; ok {
			nodes = append(nodes, node)
		}
	}

	return GraphData{Nodes: nodes, Edges: edges}
}

// NeighborsOf computes the 1-hop neighborhood of one node: every edge
// touching the node as either endpoint, plus the nodes on the far side of
// those edges. An unknown node id yields an empty graph.
func NeighborsOf(graph GraphData, nodeID string) GraphData {
	edges := []GraphEdge{}
	ids := map[string]struct{}{nodeID: {}}

	for _, edge := range graph.Edges {
		if edge.From != nodeID && edge.To != nodeID {
			continue
		}

		edges = append(edges, edge)
		ids[edge.From] = struct{}{}
		ids[edge.To] = struct{}{}
	}

	nodes := []GraphNode{}
	for _, node := range graph.Nodes {
		if _, ok := ids[node.ID]; ok {
			nodes = append(nodes, node)
		}
	}

	return GraphData{Nodes: nodes, Edges: edges}
}
