package knowledge

import (
	"context"
	"encoding/json"
	"math"
	"strings"
)

// TopicDetail returns one topic's metadata together with its exploration
// entries and the aggregates the topic page displays. A path with no on-chain
// metadata still returns the explorations recorded under it.
func (c *Core) TopicDetail(ctx context.Context, topicPath string) (TopicDetail, error) {
	detail := TopicDetail{
		Path:         topicPath,
		Explorations: []TopicExploration{},
	}

	if result, err := c.client.GetValue(ctx, topicsPath+"/"+topicPath+"/"+infoKey); err == nil {
		var info TopicInfo
		if err := json.Unmarshal(result, &info); err == nil && info.Title != "" {
			detail.Info = &info
		}
	}

	result, err := c.client.GetValue(ctx, explorationsPath)
	if err != nil {
		return detail, nil
	}
	store := decodeExplorations(result)

	// The store has been seen keyed both by the underscore and by the
	// separator form of the topic path; accept either.
	underscoredKey := strings.ReplaceAll(topicPath, "/", "_")
	encodedKey := EncodeTopicKey(topicPath)

	explorers := 0
	var depths []int

	for _, address := range sortedKeys(store) {
		entries := store[address][underscoredKey]
		if entries == nil {
			entries = store[address][encodedKey]
		}
		if countEntries(entries) == 0 {
			continue
		}
		explorers++

		for _, entryID := range sortedKeys(entries) {
			if strings.HasPrefix(entryID, ".") {
				continue
			}

			var data Exploration
			if err := json.Unmarshal(entries[entryID], &data); err != nil || data.Title == "" {
				continue
			}

			eid := ExplorationID{Address: address, TopicPath: topicPath, EntryID: entryID}
			detail.Explorations = append(detail.Explorations, TopicExploration{
				Address: address,
				EntryID: entryID,
				NodeID:  eid.Encode(),
				Data:    data,
			})

			if data.Depth > 0 {
				depths = append(depths, data.Depth)
			}
		}
	}

	detail.ExplorerCount = explorers

	if len(depths) > 0 {
		sum := 0
		for _, d := range depths {
			if d > detail.MaxDepth {
				detail.MaxDepth = d
			}
			sum += d
		}
		detail.AvgDepth = math.Round(float64(sum)/float64(len(depths))*10) / 10
	}

	return detail, nil
}

// Exploration returns the record behind one exploration node id, or nil when
// the store has no entry for it. A malformed id is treated as not found.
func (c *Core) Exploration(ctx context.Context, nodeID string) (ExplorationID, *Exploration, error) {
	eid, err := ParseExplorationID(nodeID)
	if err != nil {
		return ExplorationID{}, nil, nil
	}

	topicKey := strings.ReplaceAll(eid.TopicPath, "/", "_")
	ref := explorationsPath + "/" + eid.Address + "/" + topicKey + "/" + eid.EntryID

	result, err := c.client.GetValue(ctx, ref)
	if err != nil {
		return eid, nil, err
	}

	var data Exploration
	if err := json.Unmarshal(result, &data); err != nil || data.Title == "" {
		return eid, nil, nil
	}

	return eid, &data, nil
}
