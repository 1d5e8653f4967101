// Package graphdb answers the same graph queries as the knowledge package by
// asking a graph database directly instead of materializing the graph from
// raw key/value snapshots. Callers select the backend by configuration; the
// contract surface is identical.
package graphdb

import (
	"context"
	"fmt"

	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds the graph database connection configuration.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Core answers knowledge graph queries using a Neo4j database.
type Core struct {
	driver   neo4j.DriverWithContext
	database string
}

// New constructs a core and verifies connectivity to the database.
func New(ctx context.Context, cfg Config) (*Core, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	database := cfg.Database
	if database == "" {
		database = "neo4j"
	}

	return &Core{driver: driver, database: database}, nil
}

// Close shuts down the underlying driver.
func (c *Core) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Graph returns every Topic, Exploration and User node together with the
// relationships between them.
func (c *Core) Graph(ctx context.Context) (knowledge.GraphData, error) {
	const query = `
		MATCH (n)
		WHERE n:Topic OR n:Exploration OR n:User
		OPTIONAL MATCH (n)-[r]->(m)
		WHERE m:Topic OR m:Exploration OR m:User
		RETURN n, r, m`

	return c.queryGraph(ctx, query, nil)
}

// TopicSubgraph returns the explorations recorded under one topic and the
// relationships among them.
func (c *Core) TopicSubgraph(ctx context.Context, topicPath string) (knowledge.GraphData, error) {
	const query = `
		MATCH (t:Topic {id: $topicPath})
		OPTIONAL MATCH (e:Exploration)-[it:IN_TOPIC]->(t)
		OPTIONAL MATCH (e)-[r]->(e2:Exploration)
		RETURN t, e, it, r, e2`

	return c.queryGraph(ctx, query, map[string]any{"topicPath": topicPath})
}

// Neighbors returns the 1-hop neighborhood of one node.
func (c *Core) Neighbors(ctx context.Context, nodeID string) (knowledge.GraphData, error) {
	const query = `
		MATCH (n {id: $nodeID})
		OPTIONAL MATCH (n)-[r]-(m)
		RETURN n, r, m`

	return c.queryGraph(ctx, query, map[string]any{"nodeID": nodeID})
}

// Stats returns the summary counts for the dashboard.
func (c *Core) Stats(ctx context.Context) (knowledge.GraphStats, error) {
	const query = `
		OPTIONAL MATCH (t:Topic) WITH count(t) AS topicCount
		OPTIONAL MATCH (e:Exploration) WITH topicCount, count(e) AS explorationCount
		OPTIONAL MATCH (u:User) WITH topicCount, explorationCount, count(u) AS userCount
		OPTIONAL MATCH ()-[r]->() WITH topicCount, explorationCount, userCount, count(r) AS edgeCount
		RETURN topicCount, explorationCount, userCount, edgeCount`

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}

		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}

		return knowledge.GraphStats{
			TopicCount:       recordInt(record, "topicCount"),
			ExplorationCount: recordInt(record, "explorationCount"),
			EdgeCount:        recordInt(record, "edgeCount"),
			UserCount:        recordInt(record, "userCount"),
		}, nil
	})
	if err != nil {
		return knowledge.GraphStats{}, fmt.Errorf("stats query: %w", err)
	}

	return result.(knowledge.GraphStats), nil
}

// queryGraph runs a cypher query and converts every node and relationship in
// the result set into the shared graph model, deduplicated by id.
func (c *Core) queryGraph(ctx context.Context, query string, params map[string]any) (knowledge.GraphData, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: c.database})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		graph := knowledge.GraphData{
			Nodes: []knowledge.GraphNode{},
			Edges: []knowledge.GraphEdge{},
		}
		seenNodes := make(map[string]struct{})
		seenEdges := make(map[string]struct{})

		for res.Next(ctx) {
			for _, value := range res.Record().Values {
				switch v := value.(type) {
				case neo4j.Node:
					node := toGraphNode(v)
					if _, ok := seenNodes[node.ID]; ok {
						continue
					}
					seenNodes[node.ID] = struct{}{}
					graph.Nodes = append(graph.Nodes, node)

				case neo4j.Relationship:
					edge := toGraphEdge(v)
					if _, ok := seenEdges[edge.ID]; ok {
						continue
					}
					seenEdges[edge.ID] = struct{}{}
					graph.Edges = append(graph.Edges, edge)
				}
			}
		}

		if err := res.Err(); err != nil {
			return nil, err
		}

		return graph, nil
	})
	if err != nil {
		return knowledge.GraphData{}, fmt.Errorf("graph query: %w", err)
	}

	return result.(knowledge.GraphData), nil
}

func toGraphNode(node neo4j.Node) knowledge.GraphNode {
	id := node.ElementId
	if v, ok := node.Props["id"].(string); ok && v != "" {
		id = v
	}

	label := "Unknown"
	if len(node.Labels) > 0 {
		label = node.Labels[0]
	}

	return knowledge.GraphNode{
		ID:         id,
		Label:      label,
		Properties: node.Props,
	}
}

func toGraphEdge(rel neo4j.Relationship) knowledge.GraphEdge {
	return knowledge.GraphEdge{
		ID:         rel.ElementId,
		From:       rel.StartElementId,
		To:         rel.EndElementId,
		Type:       rel.Type,
		Properties: rel.Props,
	}
}

func recordInt(record *neo4j.Record, key string) int {
	value, ok := record.Get(key)
	if !ok {
		return 0
	}

	switch v := value.(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}

	return 0
}
