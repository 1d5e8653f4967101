package knowledge

import (
	"fmt"
	"strings"
)

// topicKeySeparator is the character the exploration store substitutes for
// the forward slashes in a topic path when the path is used as a map key.
const topicKeySeparator = "|"

// TopicNodeID returns the graph node id for a topic path.
func TopicNodeID(path string) string {
	return "topic:" + path
}

// UserNodeID returns the graph node id for an account address.
func UserNodeID(address string) string {
	return "user:" + address
}

// EncodeTopicKey converts a forward-slash topic path into the key form used
// by the exploration store.
func EncodeTopicKey(path string) string {
	return strings.ReplaceAll(path, "/", topicKeySeparator)
}

// DecodeTopicKey reverses EncodeTopicKey, restoring the forward-slash path.
func DecodeTopicKey(key string) string {
	return strings.ReplaceAll(key, topicKeySeparator, "/")
}

// ExplorationID is the composite identity of an exploration entry. Its
// encoded form is {address}_{topicKey}_{entryID} where the topic key has the
// path slashes replaced by underscores. Because the underscore also serves
// as the field separator, the encoding only round-trips for topic paths
// whose segments contain no underscores.
type ExplorationID struct {
	Address   string
	TopicPath string
	EntryID   string
}

// Encode produces the string form used as a graph node id.
func (eid ExplorationID) Encode() string {
	topicKey := strings.ReplaceAll(eid.TopicPath, "/", "_")
	return eid.Address + "_" + topicKey + "_" + eid.EntryID
}

// ParseExplorationID decodes the string form of an exploration id. The first
// field is the address, the last is the entry id, and everything between is
// the topic key.
func ParseExplorationID(nodeID string) (ExplorationID, error) {
	parts := strings.Split(nodeID, "_")
	if len(parts) < 3 {
		return ExplorationID{}, fmt.Errorf("invalid exploration id %q", nodeID)
	}

	eid := ExplorationID{
		Address:   parts[0],
		TopicPath: strings.Join(parts[1:len(parts)-1], "/"),
		EntryID:   parts[len(parts)-1],
	}

	return eid, nil
}
