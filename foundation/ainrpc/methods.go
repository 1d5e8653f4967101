package ainrpc

import (
	"context"
	"encoding/json"
)

// RefType represents the kind of data stored at a database path.
type RefType string

// Set of database reference types supported by the node.
const (
	RefTypeValue    RefType = "GET_VALUE"
	RefTypeRule     RefType = "GET_RULE"
	RefTypeFunction RefType = "GET_FUNCTION"
	RefTypeOwner    RefType = "GET_OWNER"
)

// LastBlockNumber returns the number of the latest finalized block.
func (c *Client) LastBlockNumber(ctx context.Context) (int64, error) {
	return c.callInt(ctx, "ain_getLastBlockNumber", nil)
}

// LastBlock returns the latest finalized block.
func (c *Client) LastBlock(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getLastBlock", nil)
}

// BlockByNumber returns the block with the specified number.
func (c *Client) BlockByNumber(ctx context.Context, number int64, fullTransactions bool) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getBlockByNumber", map[string]any{
		"number":              number,
		"getFullTransactions": fullTransactions,
	})
}

// BlockByHash returns the block with the specified hash.
func (c *Client) BlockByHash(ctx context.Context, hash string, fullTransactions bool) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getBlockByHash", map[string]any{
		"hash":                hash,
		"getFullTransactions": fullTransactions,
	})
}

// BlockList returns the blocks in the range [from, to).
func (c *Client) BlockList(ctx context.Context, from int64, to int64) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getBlockList", map[string]any{"from": from, "to": to})
}

// BlockHeadersList returns the block headers in the range [from, to).
func (c *Client) BlockHeadersList(ctx context.Context, from int64, to int64) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getBlockHeadersList", map[string]any{"from": from, "to": to})
}

// BlockTransactionCountByNumber returns the number of transactions in a block.
func (c *Client) BlockTransactionCountByNumber(ctx context.Context, number int64) (int64, error) {
	return c.callInt(ctx, "ain_getBlockTransactionCountByNumber", map[string]any{"number": number})
}

// TransactionByHash returns the transaction with the specified hash.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getTransactionByHash", map[string]any{"hash": hash})
}

// TransactionByBlockNumberAndIndex returns the transaction at the specified
// position within a block.
func (c *Client) TransactionByBlockNumberAndIndex(ctx context.Context, blockNumber int64, index int64) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getTransactionByBlockNumberAndIndex", map[string]any{
		"block_number": blockNumber,
		"tx_index":     index,
	})
}

// Balance returns the balance for the specified account address.
func (c *Client) Balance(ctx context.Context, address string) (float64, error) {
	return c.callFloat(ctx, "ain_getBalance", map[string]any{"address": address})
}

// Nonce returns the nonce for the specified account address.
func (c *Client) Nonce(ctx context.Context, address string) (int64, error) {
	return c.callInt(ctx, "ain_getNonce", map[string]any{"address": address})
}

// ValidatorsByNumber returns the validator set for the specified block.
func (c *Client) ValidatorsByNumber(ctx context.Context, number int64) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getValidatorsByNumber", map[string]any{"number": number})
}

// ValidatorInfo returns the validator details for the specified address.
func (c *Client) ValidatorInfo(ctx context.Context, address string) (json.RawMessage, error) {
	return c.Call(ctx, "ain_getValidatorInfo", map[string]any{"address": address})
}

// ConsensusStatus returns the current consensus state of the node.
func (c *Client) ConsensusStatus(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "net_consensusStatus", nil)
}

// PeerCount returns the number of peers the node is connected to.
func (c *Client) PeerCount(ctx context.Context) (int64, error) {
	return c.callInt(ctx, "net_peerCount", nil)
}

// NetworkID returns the id of the network the node belongs to.
func (c *Client) NetworkID(ctx context.Context) (int64, error) {
	return c.callInt(ctx, "net_getNetworkId", nil)
}

// GetValue returns the value stored at the specified database path.
func (c *Client) GetValue(ctx context.Context, ref string) (json.RawMessage, error) {
	return c.GetRef(ctx, RefTypeValue, ref)
}

// GetRef returns the value, rule, function or owner document stored at the
// specified database path.
func (c *Client) GetRef(ctx context.Context, refType RefType, ref string) (json.RawMessage, error) {
	return c.Call(ctx, "ain_get", map[string]any{
		"type": string(refType),
		"ref":  ref,
	})
}
