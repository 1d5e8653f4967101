package knowledge

import (
	"encoding/json"
	"strings"
)

// builder accumulates nodes and edges keyed by id. Insertion order is
// preserved so two materializations of the same snapshots produce identical
// output. A node, once inserted, is never overwritten.
type builder struct {
	nodeIndex map[string]int
	nodes     []GraphNode
	edgeIndex map[string]struct{}
	edges     []GraphEdge
	pairs     map[string]struct{}
}

func newBuilder() *builder {
	return &builder{
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]struct{}),
		pairs:     make(map[string]struct{}),
	}
}

// addNode inserts a node unless one with the same id already exists.
func (b *builder) addNode(node GraphNode) {
	if _, exists := b.nodeIndex[node.ID]; exists {
		return
	}
	b.nodeIndex[node.ID] = len(b.nodes)
	b.nodes = append(b.nodes, node)
}

// addEdge inserts an edge unless one with the same id already exists.
func (b *builder) addEdge(edge GraphEdge) {
	if _, exists := b.edgeIndex[edge.ID]; exists {
		return
	}
	b.edgeIndex[edge.ID] = struct{}{}
	b.edges = append(b.edges, edge)
}

// hasNode reports whether a node with the specified id has been inserted.
func (b *builder) hasNode(id string) bool {
	_, exists := b.nodeIndex[id]
	return exists
}

// graph returns the accumulated graph. The slices are always non-nil so the
// JSON form carries empty arrays rather than nulls.
func (b *builder) graph() GraphData {
	nodes := b.nodes
	if nodes == nil {
		nodes = []GraphNode{}
	}
	edges := b.edges
	if edges == nil {
		edges = []GraphEdge{}
	}
	return GraphData{Nodes: nodes, Edges: edges}
}

// build combines the four raw sections into one deduplicated, typed property
// graph. The steps run in a fixed order and are purely additive.
func (c *Core) build(snaps snapshots) GraphData {
	b := newBuilder()

	c.addTopicNodes(b, snaps.Topics)
	c.addExplorationNodes(b, snaps.Nodes)
	c.addExplicitEdges(b, snaps.Edges)
	c.addUsers(b, snaps.Explorations)

	return b.graph()
}

// addTopicNodes inserts one Topic node per level of the topic tree. Pure
// namespace levels get a minimal node carrying the path as its title, the
// same shape the synthesized topics use, so the topic spine stays connected
// when only the deepest level carries metadata. Every parent/child pair then
// yields a subtopic edge.
func (c *Core) addTopicNodes(b *builder, tree TopicTree) {
	levels := tree.levels()

	for _, level := range levels {
		id := TopicNodeID(level.Path)

		if level.Info == nil {
			b.addNode(GraphNode{
				ID:    id,
				Label: LabelTopic,
				Properties: map[string]any{
					"id":    id,
					"path":  level.Path,
					"title": level.Path,
				},
			})
			continue
		}

		b.addNode(GraphNode{
			ID:    id,
			Label: LabelTopic,
			Properties: map[string]any{
				"id":          id,
				"path":        level.Path,
				"title":       level.Info.Title,
				"description": level.Info.Description,
				"created_by":  level.Info.CreatedBy,
				"created_at":  level.Info.CreatedAt,
			},
		})
	}

	// Every level's parent is itself a level, so the parent node always
	// exists by the time the edge is inferred.
	for _, level := range levels {
		idx := strings.LastIndex(level.Path, "/")
		if idx < 0 {
			continue
		}

		parentID := TopicNodeID(level.Path[:idx])
		childID := TopicNodeID(level.Path)

		b.addEdge(GraphEdge{
			ID:   parentID + "->subtopic->" + childID,
			From: parentID,
			To:   childID,
			Type: EdgeTypeSubtopic,
		})
	}
}

// addExplorationNodes inserts an Exploration node for every explicit graph
// node record, synthesizing a minimal Topic node for any declared topic path
// that the tree did not produce, and infers the in_topic edge.
func (c *Core) addExplorationNodes(b *builder, records map[string]NodeRecord) {
	for _, nodeID := range sortedKeys(records) {
		record := records[nodeID]

		properties := make(map[string]any, len(record)+1)
		for k, v := range record {
			properties[k] = v
		}
		properties["id"] = nodeID

		b.addNode(GraphNode{
			ID:         nodeID,
			Label:      LabelExploration,
			Properties: properties,
		})

		topicPath, _ := record["topic_path"].(string)
		if topicPath == "" {
			continue
		}
		topicPath = DecodeTopicKey(topicPath)

		topicID := TopicNodeID(topicPath)
		if !b.hasNode(topicID) {
			b.addNode(GraphNode{
				ID:    topicID,
				Label: LabelTopic,
				Properties: map[string]any{
					"id":    topicID,
					"path":  topicPath,
					"title": topicPath,
				},
			})
		}

		b.addEdge(GraphEdge{
			ID:   nodeID + "->in_topic->" + topicID,
			From: nodeID,
			To:   topicID,
			Type: EdgeTypeInTopic,
		})
	}
}

// addExplicitEdges inserts the explicitly recorded edges, deduplicated by
// unordered endpoint pair. The first occurrence wins and keeps its declared
// direction; an unspecified type defaults to related.
func (c *Core) addExplicitEdges(b *builder, records map[string]map[string]EdgeRecord) {
	for _, fromID := range sortedKeys(records) {
		targets := records[fromID]

		for _, toID := range sortedKeys(targets) {
			record := targets[toID]

			pair := pairKey(fromID, toID)
			if _, seen := b.pairs[pair]; seen {
				continue
			}
			b.pairs[pair] = struct{}{}

			edgeType, _ := record["type"].(string)
			if edgeType == "" {
				edgeType = EdgeTypeRelated
			}

			b.addEdge(GraphEdge{
				ID:         fromID + "->" + toID,
				From:       fromID,
				To:         toID,
				Type:       edgeType,
				Properties: record,
			})
		}
	}
}

// addUsers inserts one User node per address that authored at least one
// exploration entry, and one explored edge per distinct topic under that
// address. Repeated entries under the same topic collapse to one edge.
func (c *Core) addUsers(b *builder, store map[string]map[string]map[string]json.RawMessage) {
	for _, address := range sortedKeys(store) {
		byTopic := store[address]

		for _, topicKey := range sortedKeys(byTopic) {
			if countEntries(byTopic[topicKey]) == 0 {
				continue
			}

			userID := UserNodeID(address)
			if !b.hasNode(userID) {
				b.addNode(GraphNode{
					ID:    userID,
					Label: LabelUser,
					Properties: map[string]any{
						"id":      userID,
						"address": address,
						"name":    c.ns.Lookup(address),
					},
				})
			}

			topicID := TopicNodeID(DecodeTopicKey(topicKey))
			b.addEdge(GraphEdge{
				ID:   userID + "->explored->" + topicID,
				From: userID,
				To:   topicID,
				Type: EdgeTypeExplored,
			})
		}
	}
}

// countEntries counts the entry keys under one topic, skipping the reserved
// metadata keys.
func countEntries(entries map[string]json.RawMessage) int {
	count := 0
	for key := range entries {
		if strings.HasPrefix(key, ".") {
			continue
		}
		count++
	}
	return count
}

// pairKey produces the canonical key for an unordered endpoint pair.
func pairKey(a string, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
