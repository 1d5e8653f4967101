package knowledge

import (
	"context"
	"encoding/json"
	"sync"
)

// NodeRecord represents an explicit graph-node record stored on chain. All
// fields are carried into the materialized node's properties as-is.
type NodeRecord map[string]any

// EdgeRecord represents an explicit graph-edge record stored on chain.
type EdgeRecord map[string]any

// snapshots holds the four raw sections a materialization consumes. Any
// section can be absent; absent sections contribute nothing to the graph.
type snapshots struct {
	Nodes        map[string]NodeRecord
	Edges        map[string]map[string]EdgeRecord
	Topics       TopicTree
	Explorations map[string]map[string]map[string]json.RawMessage
}

// fetchSnapshots issues the four section reads concurrently. A failure or a
// malformed document in one section degrades that section to absent without
// affecting the others; a malformed entry inside a section drops only that
// entry.
func (c *Core) fetchSnapshots(ctx context.Context) snapshots {
	var snaps snapshots
	var wg sync.WaitGroup
	wg.Add(4)

	fetch := func(path string, section string, decode func(json.RawMessage)) {
		defer wg.Done()

		result, err := c.client.GetValue(ctx, path)
		if err != nil {
			c.log.Infow("knowledge section unavailable", "section", section, "ERROR", err)
			return
		}

		decode(result)
	}

	go fetch(nodesPath, "nodes", func(result json.RawMessage) {
		snaps.Nodes = decodeNodes(result)
	})

	go fetch(edgesPath, "edges", func(result json.RawMessage) {
		snaps.Edges = decodeEdges(result)
	})

	go fetch(topicsPath, "topics", func(result json.RawMessage) {
		json.Unmarshal(result, &snaps.Topics)
	})

	go fetch(explorationsPath, "explorations", func(result json.RawMessage) {
		snaps.Explorations = decodeExplorations(result)
	})

	wg.Wait()

	return snaps
}

// decodeMap decodes one object level, yielding nil for anything that is not
// a mapping.
func decodeMap(data json.RawMessage) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

func decodeNodes(data json.RawMessage) map[string]NodeRecord {
	raw := decodeMap(data)
	if raw == nil {
		return nil
	}

	nodes := make(map[string]NodeRecord, len(raw))
	for nodeID, value := range raw {
		var record NodeRecord
		if err := json.Unmarshal(value, &record); err != nil || record == nil {
			continue
		}
		nodes[nodeID] = record
	}

	return nodes
}

func decodeEdges(data json.RawMessage) map[string]map[string]EdgeRecord {
	raw := decodeMap(data)
	if raw == nil {
		return nil
	}

	edges := make(map[string]map[string]EdgeRecord, len(raw))
	for fromID, value := range raw {
		targets := decodeMap(value)
		if targets == nil {
			continue
		}

		m := make(map[string]EdgeRecord, len(targets))
		for toID, edgeValue := range targets {
			var record EdgeRecord
			if err := json.Unmarshal(edgeValue, &record); err != nil || record == nil {
				continue
			}
			m[toID] = record
		}

		edges[fromID] = m
	}

	return edges
}

func decodeExplorations(data json.RawMessage) map[string]map[string]map[string]json.RawMessage {
	raw := decodeMap(data)
	if raw == nil {
		return nil
	}

	store := make(map[string]map[string]map[string]json.RawMessage, len(raw))
	for address, value := range raw {

		// The address is counted as a user even when its nested content
		// turns out to be empty or malformed.
		store[address] = nil

		topics := decodeMap(value)
		if topics == nil {
			continue
		}

		byTopic := make(map[string]map[string]json.RawMessage, len(topics))
		for topicKey, entriesValue := range topics {
			entries := decodeMap(entriesValue)
			if entries == nil {
				continue
			}
			byTopic[topicKey] = entries
		}

		store[address] = byTopic
	}

	return store
}
