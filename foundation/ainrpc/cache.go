package ainrpc

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// cache provides a short, time-boxed reuse window for responses. It carries
// no correctness weight; every entry expires on its own within seconds.
type cache struct {
	window  time.Duration
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result  json.RawMessage
	expires time.Time
}

func newCache(window time.Duration) *cache {
	return &cache{
		window:  window,
		entries: make(map[string]cacheEntry),
	}
}

func (c *cache) lookup(key string) (json.RawMessage, bool) {
	if c.window == 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if time.Now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.result, true
}

func (c *cache) store(key string, result json.RawMessage) {
	if c.window == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Sweep anything stale so the map doesn't grow without bound.
	now := time.Now()
	for k, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{
		result:  result,
		expires: now.Add(c.window),
	}
}

// cacheKey produces a stable key for a method call and its parameters.
func cacheKey(method string, params map[string]any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}
	return method + ":" + string(data), nil
}
