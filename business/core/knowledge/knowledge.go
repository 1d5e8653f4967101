// Package knowledge materializes the on-chain knowledge graph from raw
// key/value snapshots and answers graph, subgraph, neighborhood and stats
// queries against it.
package knowledge

import (
	"context"
	"encoding/json"

	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/nameservice"
	"go.uber.org/zap"
)

// Storer abstracts the graph backend so callers stay backend-agnostic. The
// key/value materializer in this package and the graph database backend in
// the graphdb package both satisfy it.
type Storer interface {
	Graph(ctx context.Context) (GraphData, error)
	TopicSubgraph(ctx context.Context, topicPath string) (GraphData, error)
	Neighbors(ctx context.Context, nodeID string) (GraphData, error)
	Stats(ctx context.Context) (GraphStats, error)
}

// Set of logical paths into the on-chain key/value store.
const (
	basePath         = "/apps/knowledge"
	topicsPath       = basePath + "/topics"
	nodesPath        = basePath + "/graph/nodes"
	edgesPath        = basePath + "/graph/edges"
	explorationsPath = basePath + "/explorations"
)

// Core manages the set of APIs for knowledge graph access backed by the raw
// key/value snapshots on the chain. The graph is rebuilt from scratch on
// every call; no state is held between requests.
type Core struct {
	log    *zap.SugaredLogger
	client *ainrpc.Client
	ns     *nameservice.NameService
}

// NewCore constructs a core for knowledge graph api access.
func NewCore(log *zap.SugaredLogger, client *ainrpc.Client, ns *nameservice.NameService) *Core {
	return &Core{
		log:    log,
		client: client,
		ns:     ns,
	}
}

// Graph fetches the four raw snapshots and materializes the full graph.
// Sections that fail to fetch or parse contribute nothing; the worst outcome
// is a partial graph.
func (c *Core) Graph(ctx context.Context) (GraphData, error) {
	snaps := c.fetchSnapshots(ctx)
	return c.build(snaps), nil
}

// TopicSubgraph materializes the full graph and slices out the induced
// subgraph for the specified topic path. An unknown path yields an empty
// slice, never an error.
func (c *Core) TopicSubgraph(ctx context.Context, topicPath string) (GraphData, error) {
	graph, err := c.Graph(ctx)
	if err != nil {
		return GraphData{}, err
	}
	return SubgraphForTopic(graph, topicPath), nil
}

// Neighbors materializes the full graph and slices out the 1-hop
// neighborhood of the specified node id.
func (c *Core) Neighbors(ctx context.Context, nodeID string) (GraphData, error) {
	graph, err := c.Graph(ctx)
	if err != nil {
		return GraphData{}, err
	}
	return NeighborsOf(graph, nodeID), nil
}

// Topics returns the flattened list of topics for table display.
func (c *Core) Topics(ctx context.Context) ([]FlatTopic, error) {
	result, err := c.client.GetValue(ctx, topicsPath)
	if err != nil {
		return nil, err
	}

	// Decode tolerates malformed documents by producing an empty tree.
	var tree TopicTree
	json.Unmarshal(result, &tree)

	topics := tree.Flatten()
	if topics == nil {
		topics = []FlatTopic{}
	}

	return topics, nil
}
