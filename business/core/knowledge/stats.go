package knowledge

import "context"

// Stats computes the dashboard summary counts. The topic, exploration and
// user counts come straight from the raw snapshots; only the edge count
// requires a full materialization. The topic count is the tree-walk count of
// metadata-bearing levels, which deliberately excludes namespace levels and
// topics synthesized from exploration references, so it can run below the
// Topic node count of the full graph.
func (c *Core) Stats(ctx context.Context) (GraphStats, error) {
	snaps := c.fetchSnapshots(ctx)

	stats := GraphStats{
		TopicCount: snaps.Topics.Count(),
		UserCount:  len(snaps.Explorations),
		EdgeCount:  len(c.build(snaps).Edges),
	}

	for _, byTopic := range snaps.Explorations {
		for _, entries := range byTopic {
			stats.ExplorationCount += countEntries(entries)
		}
	}

	return stats, nil
}
