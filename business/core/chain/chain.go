// Package chain provides the read models the explorer shows for blocks,
// transactions, accounts and validators. Everything is fetched from the node
// per request; no copy is kept.
package chain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/nameservice"
	"go.uber.org/zap"
)

// Core manages the set of APIs for chain data access.
type Core struct {
	log    *zap.SugaredLogger
	client *ainrpc.Client
	ns     *nameservice.NameService
}

// NewCore constructs a core for chain data api access.
func NewCore(log *zap.SugaredLogger, client *ainrpc.Client, ns *nameservice.NameService) *Core {
	return &Core{
		log:    log,
		client: client,
		ns:     ns,
	}
}

// Status returns the headline network numbers. Each number is fetched
// independently; a failed fetch leaves its field at the zero value rather
// than failing the whole status.
func (c *Core) Status(ctx context.Context) Status {
	var status Status

	if number, err := c.client.LastBlockNumber(ctx); err == nil {
		status.BlockNumber = number
	} else {
		c.log.Infow("status", "section", "blockNumber", "ERROR", err)
	}

	if peers, err := c.client.PeerCount(ctx); err == nil {
		status.PeerCount = peers
	}

	if id, err := c.client.NetworkID(ctx); err == nil {
		status.NetworkID = id
	}

	if result, err := c.client.ConsensusStatus(ctx); err == nil {
		var doc struct {
			State string `json:"state"`
		}
		if err := json.Unmarshal(result, &doc); err == nil {
			status.ConsensusState = doc.State
		}
	}

	return status
}

// Block returns one block by number, with full transactions.
func (c *Core) Block(ctx context.Context, number int64) (Block, error) {
	result, err := c.client.BlockByNumber(ctx, number, true)
	if err != nil {
		return Block{}, fmt.Errorf("block %d: %w", number, err)
	}

	return c.decodeBlock(result)
}

// BlockByHash returns one block by hash, with full transactions.
func (c *Core) BlockByHash(ctx context.Context, hash string) (Block, error) {
	result, err := c.client.BlockByHash(ctx, hash, true)
	if err != nil {
		return Block{}, fmt.Errorf("block %s: %w", hash, err)
	}

	return c.decodeBlock(result)
}

// BlockRange returns the block headers in the range [from, to).
func (c *Core) BlockRange(ctx context.Context, from int64, to int64) ([]BlockHeader, error) {
	result, err := c.client.BlockHeadersList(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("block headers [%d,%d): %w", from, to, err)
	}

	var headers []BlockHeader
	if err := json.Unmarshal(result, &headers); err != nil {
		return nil, fmt.Errorf("decode block headers: %w", err)
	}

	return headers, nil
}

// RecentBlocks returns the most recent blocks that carry transactions.
func (c *Core) RecentBlocks(ctx context.Context, count int) ([]Block, error) {
	raw, err := c.client.RecentBlocksWithTransactions(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("recent blocks: %w", err)
	}

	blocks := make([]Block, 0, len(raw))
	for _, doc := range raw {
		block, err := c.decodeBlock(doc)
		if err != nil {
			continue
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// RecentTransactions returns the most recently committed transactions.
func (c *Core) RecentTransactions(ctx context.Context, count int) ([]Transaction, error) {
	raw, err := c.client.RecentTransactions(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}

	txs := make([]Transaction, 0, len(raw))
	for _, doc := range raw {
		var tx Transaction
		if err := json.Unmarshal(doc, &tx); err != nil {
			continue
		}
		tx.AddressName = c.ns.Lookup(tx.Address)
		txs = append(txs, tx)
	}

	return txs, nil
}

// Transaction returns one transaction by hash.
func (c *Core) Transaction(ctx context.Context, hash string) (Transaction, error) {
	result, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %s: %w", hash, err)
	}

	var tx Transaction
	if err := json.Unmarshal(result, &tx); err != nil {
		return Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	tx.AddressName = c.ns.Lookup(tx.Address)

	return tx, nil
}

// Account returns the balance and nonce for one address. Balance and nonce
// are fetched independently with the same per-section tolerance the rest of
// the explorer applies.
func (c *Core) Account(ctx context.Context, address string) Account {
	account := Account{
		Address: address,
		Name:    c.ns.Lookup(address),
	}

	if balance, err := c.client.Balance(ctx, address); err == nil {
		account.Balance = balance
	}

	if nonce, err := c.client.Nonce(ctx, address); err == nil {
		account.Nonce = nonce
	}

	return account
}

// Validators returns the validator set for the specified block number.
func (c *Core) Validators(ctx context.Context, number int64) (json.RawMessage, error) {
	result, err := c.client.ValidatorsByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("validators at %d: %w", number, err)
	}
	return result, nil
}

// ValidatorInfo returns the validator details for one address.
func (c *Core) ValidatorInfo(ctx context.Context, address string) (json.RawMessage, error) {
	result, err := c.client.ValidatorInfo(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("validator info %s: %w", address, err)
	}
	return result, nil
}

// Database returns the document stored at one path of the raw key/value
// tree. The refType selects values, rules, functions or owners.
func (c *Core) Database(ctx context.Context, refType ainrpc.RefType, ref string) (DatabaseRef, error) {
	result, err := c.client.GetRef(ctx, refType, ref)
	if err != nil {
		return DatabaseRef{}, fmt.Errorf("database %s %s: %w", refType, ref, err)
	}

	return DatabaseRef{
		Ref:   ref,
		Type:  string(refType),
		Value: result,
	}, nil
}

func (c *Core) decodeBlock(doc json.RawMessage) (Block, error) {
	var block Block
	if err := json.Unmarshal(doc, &block); err != nil {
		return Block{}, fmt.Errorf("decode block: %w", err)
	}
	block.ProposerName = c.ns.Lookup(block.Proposer)
	return block, nil
}
