package knowledge

import (
	"encoding/json"
	"sort"
)

// infoKey is the reserved key that holds a level's topic metadata inside the
// raw topic namespace.
const infoKey = ".info"

// TopicTree represents the recursively nested topic namespace. A level can be
// a pure namespace with no metadata of its own and still contain deeper
// topics.
type TopicTree struct {
	Info     *TopicInfo
	Children map[string]TopicTree
}

// UnmarshalJSON decodes a raw topic namespace document in one pass. Anything
// that is not a well formed mapping decodes to an empty tree.
func (tt *TopicTree) UnmarshalJSON(data []byte) error {
	*tt = TopicTree{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	for key, value := range raw {
		if key == infoKey {
			var info TopicInfo
			if err := json.Unmarshal(value, &info); err == nil {
				tt.Info = &info
			}
			continue
		}

		var child TopicTree
		if err := json.Unmarshal(value, &child); err != nil {
			continue
		}

		if tt.Children == nil {
			tt.Children = make(map[string]TopicTree)
		}
		tt.Children[key] = child
	}

	return nil
}

// Flatten walks the tree and produces one entry per metadata-bearing level,
// with the path as the slash-joined segments from the root. Levels without
// metadata are still descended into.
func (tt TopicTree) Flatten() []FlatTopic {
	var topics []FlatTopic
	tt.flatten(nil, &topics)
	return topics
}

func (tt TopicTree) flatten(prefix []string, topics *[]FlatTopic) {
	for _, key := range sortedKeys(tt.Children) {
		child := tt.Children[key]
		path := append(prefix, key)

		if child.Info != nil {
			*topics = append(*topics, FlatTopic{
				Path: joinPath(path),
				Info: *child.Info,
			})
		}

		child.flatten(path, topics)
	}
}

// topicLevel pairs one tree level's path with its metadata, which pure
// namespace levels do not have.
type topicLevel struct {
	Path string
	Info *TopicInfo
}

// levels walks the tree and produces one entry per level, namespace levels
// included, so the materializer can build the complete topic spine even when
// only the deepest level carries metadata.
func (tt TopicTree) levels() []topicLevel {
	var out []topicLevel
	tt.walkLevels(nil, &out)
	return out
}

func (tt TopicTree) walkLevels(prefix []string, out *[]topicLevel) {
	for _, key := range sortedKeys(tt.Children) {
		child := tt.Children[key]
		path := append(prefix, key)

		*out = append(*out, topicLevel{Path: joinPath(path), Info: child.Info})

		child.walkLevels(path, out)
	}
}

// Count returns the number of metadata-bearing levels in the tree. It walks
// the same shape as Flatten but counts rather than collects, and includes the
// root's own metadata when present.
func (tt TopicTree) Count() int {
	count := 0
	if tt.Info != nil {
		count++
	}
	for _, child := range tt.Children {
		count += child.Count()
	}
	return count
}

func joinPath(segments []string) string {
	path := segments[0]
	for _, s := range segments[1:] {
		path += "/" + s
	}
	return path
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
