package ainrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// rest executes a GET against one of the node's REST convenience endpoints
// and unwraps the standard result envelope.
func (c *Client) rest(ctx context.Context, path string) (json.RawMessage, error) {
	url := c.restBase + path

	if result, ok := c.cache.lookup(url); ok {
		return result, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	var doc struct {
		Result json.RawMessage `json:"result"`
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &doc); err == nil && doc.Result != nil {
		raw = doc.Result
	}

	c.cache.store(url, raw)

	return raw, nil
}

// RecentBlocksWithTransactions returns the most recent blocks that carry at
// least one transaction.
func (c *Client) RecentBlocksWithTransactions(ctx context.Context, count int) ([]json.RawMessage, error) {
	result, err := c.rest(ctx, fmt.Sprintf("/recent_blocks_with_transactions?count=%d", count))
	if err != nil {
		return nil, err
	}

	var blocks []json.RawMessage
	if err := json.Unmarshal(result, &blocks); err != nil {
		return nil, nil
	}

	return blocks, nil
}

// RecentTransactions returns the most recently committed transactions.
func (c *Client) RecentTransactions(ctx context.Context, count int) ([]json.RawMessage, error) {
	result, err := c.rest(ctx, fmt.Sprintf("/recent_transactions?count=%d", count))
	if err != nil {
		return nil, err
	}

	var txs []json.RawMessage
	if err := json.Unmarshal(result, &txs); err != nil {
		return nil, nil
	}

	return txs, nil
}
