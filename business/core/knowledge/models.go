package knowledge

import "encoding/json"

// Set of labels a graph node can carry.
const (
	LabelTopic       = "Topic"
	LabelExploration = "Exploration"
	LabelUser        = "User"
)

// Set of edge types. The extends, related and prerequisite types come from
// explicit on-chain edge records. The subtopic, in_topic and explored types
// are inferred from structural facts and recomputed on every materialization.
const (
	EdgeTypeSubtopic     = "subtopic"
	EdgeTypeInTopic      = "in_topic"
	EdgeTypeExplored     = "explored"
	EdgeTypeExtends      = "extends"
	EdgeTypeRelated      = "related"
	EdgeTypePrerequisite = "prerequisite"
)

// GraphNode represents a single node in the materialized graph.
type GraphNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties"`
}

// GraphEdge represents a directed, typed edge in the materialized graph.
type GraphEdge struct {
	ID         string         `json:"id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// GraphData represents a materialized graph or a slice of one.
type GraphData struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphStats represents the summary counts shown on the dashboard.
type GraphStats struct {
	TopicCount       int `json:"topicCount"`
	ExplorationCount int `json:"explorationCount"`
	EdgeCount        int `json:"edgeCount"`
	UserCount        int `json:"userCount"`
}

// TopicInfo represents the metadata stored at a topic's .info key.
type TopicInfo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

// FlatTopic pairs a topic's forward-slash path with its metadata.
type FlatTopic struct {
	Path string    `json:"path"`
	Info TopicInfo `json:"info"`
}

// Exploration represents a single exploration entry written by a user under
// a topic. Content is nullable; a present price implies the content is
// payment-gated behind the gateway url.
type Exploration struct {
	Title       string          `json:"title"`
	Content     *string         `json:"content,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	Depth       int             `json:"depth,omitempty"`
	Tags        string          `json:"tags,omitempty"`
	Price       json.RawMessage `json:"price,omitempty"`
	GatewayURL  string          `json:"gateway_url,omitempty"`
	ContentHash string          `json:"content_hash,omitempty"`
	CreatedAt   int64           `json:"created_at,omitempty"`
	UpdatedAt   int64           `json:"updated_at,omitempty"`
}

// TopicExploration represents one exploration entry together with its
// composite identity within the store.
type TopicExploration struct {
	Address string      `json:"address"`
	EntryID string      `json:"entry_id"`
	NodeID  string      `json:"node_id"`
	Data    Exploration `json:"data"`
}

// TopicDetail represents a topic's metadata together with the aggregates a
// topic page displays.
type TopicDetail struct {
	Path          string             `json:"path"`
	Info          *TopicInfo         `json:"info,omitempty"`
	Explorations  []TopicExploration `json:"explorations"`
	ExplorerCount int                `json:"explorerCount"`
	MaxDepth      int                `json:"maxDepth"`
	AvgDepth      float64            `json:"avgDepth"`
}
