// Package chaingrp maintains the group of handlers for chain data access.
package chaingrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/ainlabs/explorer/business/web/errs"
	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/web"
	"go.uber.org/zap"
)

// maxRangeSize bounds how many block headers one request can ask for.
const maxRangeSize = 100

// Handlers manages the set of chain data endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	Chain *chain.Core
}

// Status returns the headline network numbers.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	status := h.Chain.Status(ctx)
	return web.Respond(ctx, w, status, http.StatusOK)
}

// RecentBlocks returns the most recent blocks carrying transactions.
func (h Handlers) RecentBlocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	count := queryCount(r, 10)

	blocks, err := h.Chain.RecentBlocks(ctx, count)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// Block returns one block by number or hash.
func (h Handlers) Block(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := web.Param(r, "id")

	if strings.HasPrefix(id, "0x") {
		block, err := h.Chain.BlockByHash(ctx, id)
		if err != nil {
			return errs.NewTrusted(err, http.StatusNotFound)
		}
		return web.Respond(ctx, w, block, http.StatusOK)
	}

	number, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return errs.NewTrusted(fmt.Errorf("invalid block id %q", id), http.StatusBadRequest)
	}

	block, err := h.Chain.Block(ctx, number)
	if err != nil {
		return errs.NewTrusted(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, block, http.StatusOK)
}

// BlockRange returns the block headers in the range [from, to).
func (h Handlers) BlockRange(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	from, err := strconv.ParseInt(web.Param(r, "from"), 10, 64)
	if err != nil {
		return errs.NewTrusted(errors.New("invalid from block number"), http.StatusBadRequest)
	}

	to, err := strconv.ParseInt(web.Param(r, "to"), 10, 64)
	if err != nil {
		return errs.NewTrusted(errors.New("invalid to block number"), http.StatusBadRequest)
	}

	if to < from || to-from > maxRangeSize {
		return errs.NewTrusted(fmt.Errorf("range must cover between 0 and %d blocks", maxRangeSize), http.StatusBadRequest)
	}

	headers, err := h.Chain.BlockRange(ctx, from, to)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, headers, http.StatusOK)
}

// RecentTransactions returns the most recently committed transactions.
func (h Handlers) RecentTransactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	count := queryCount(r, 50)

	txs, err := h.Chain.RecentTransactions(ctx, count)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, txs, http.StatusOK)
}

// Transaction returns one transaction by hash.
func (h Handlers) Transaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	hash := web.Param(r, "hash")

	tx, err := h.Chain.Transaction(ctx, hash)
	if err != nil {
		return errs.NewTrusted(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, tx, http.StatusOK)
}

// Account returns the balance and nonce for one address.
func (h Handlers) Account(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	account := h.Chain.Account(ctx, address)

	return web.Respond(ctx, w, account, http.StatusOK)
}

// Validators returns the validator set at one block number.
func (h Handlers) Validators(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	number, err := strconv.ParseInt(web.Param(r, "number"), 10, 64)
	if err != nil {
		return errs.NewTrusted(errors.New("invalid block number"), http.StatusBadRequest)
	}

	validators, err := h.Chain.Validators(ctx, number)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, validators, http.StatusOK)
}

// ValidatorInfo returns the validator details for one address.
func (h Handlers) ValidatorInfo(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	info, err := h.Chain.ValidatorInfo(ctx, address)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, info, http.StatusOK)
}

// Database returns the raw key/value document at one path of the tree.
func (h Handlers) Database(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	ref := "/" + strings.Trim(web.Param(r, "ref"), "/")

	refType := ainrpc.RefTypeValue
	switch r.URL.Query().Get("type") {
	case "", "value":
	case "rule":
		refType = ainrpc.RefTypeRule
	case "function":
		refType = ainrpc.RefTypeFunction
	case "owner":
		refType = ainrpc.RefTypeOwner
	default:
		return errs.NewTrusted(errors.New("type must be value, rule, function or owner"), http.StatusBadRequest)
	}

	doc, err := h.Chain.Database(ctx, refType, ref)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	return web.Respond(ctx, w, doc, http.StatusOK)
}

// Search classifies a free-form query string.
func (h Handlers) Search(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	query := web.Param(r, "query")

	result := chain.ClassifySearch(query)

	return web.Respond(ctx, w, result, http.StatusOK)
}

func queryCount(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return fallback
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 || count > maxRangeSize {
		return fallback
	}

	return count
}
