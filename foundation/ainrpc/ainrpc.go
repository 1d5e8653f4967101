// Package ainrpc implements a client for the JSON-RPC and REST interfaces
// exposed by an AIN blockchain node.
package ainrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// protoVer is the protocol version sent with every method call.
const protoVer = "1.0.0"

// Client provides support for making method calls against a node. Responses
// are reused within a short window so a burst of page requests does not hammer
// the node with identical reads.
type Client struct {
	rpcURL   string
	restBase string
	http     *http.Client
	seq      uint64
	cache    *cache
}

// Config represents the settings required to construct a client.
type Config struct {
	URL         string
	Timeout     time.Duration
	ReuseWindow time.Duration
}

// New constructs a client for issuing calls against the configured node.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		rpcURL:   cfg.URL,
		restBase: strings.TrimSuffix(cfg.URL, "/json-rpc"),
		http:     &http.Client{Timeout: timeout},
		cache:    newCache(cfg.ReuseWindow),
	}
}

type request struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      uint64         `json:"id"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *responseError  `json:"error"`
}

// resultWrapper represents the envelope some node builds wrap around the
// actual result. A non-zero code with a null result is a node-reported error.
type resultWrapper struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Call executes the specified method against the node and returns the raw
// result document. The protoVer field is injected into the params.
func (c *Client) Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	p := map[string]any{"protoVer": protoVer}
	for k, v := range params {
		p[k] = v
	}

	req := request{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.seq, 1),
		Method:  method,
		Params:  p,
	}

	cacheKey, err := cacheKey(method, p)
	if err != nil {
		return nil, err
	}
	if result, ok := c.cache.lookup(cacheKey); ok {
		return result, nil
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	defer httpResp.Body.Close()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response for %s: %w", method, err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("call %s: %s", method, resp.Error.Message)
	}

	result, err := unwrap(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	c.cache.store(cacheKey, result)

	return result, nil
}

// unwrap peels the node's result envelope when one is present. A wrapper
// carrying a non-zero code and no inner result is a node-reported failure.
func unwrap(result json.RawMessage) (json.RawMessage, error) {
	var wrapper resultWrapper
	if err := json.Unmarshal(result, &wrapper); err != nil {
		return result, nil
	}

	if wrapper.Code == nil {
		return result, nil
	}

	if *wrapper.Code != 0 && wrapper.Result == nil {
		if wrapper.Message != "" {
			return nil, fmt.Errorf("node error: %s", wrapper.Message)
		}
		return nil, fmt.Errorf("node error code %d", *wrapper.Code)
	}

	if wrapper.Result != nil {
		return wrapper.Result, nil
	}

	return result, nil
}

// callInt executes the specified method and decodes an integer result.
func (c *Client) callInt(ctx context.Context, method string, params map[string]any) (int64, error) {
	result, err := c.Call(ctx, method, params)
	if err != nil {
		return 0, err
	}

	var v int64
	if err := json.Unmarshal(result, &v); err != nil {
		return 0, fmt.Errorf("decode %s result: %w", method, err)
	}

	return v, nil
}

// callFloat executes the specified method and decodes a numeric result.
func (c *Client) callFloat(ctx context.Context, method string, params map[string]any) (float64, error) {
	result, err := c.Call(ctx, method, params)
	if err != nil {
		return 0, err
	}

	var v float64
	if err := json.Unmarshal(result, &v); err != nil {
		return 0, fmt.Errorf("decode %s result: %w", method, err)
	}

	return v, nil
}
