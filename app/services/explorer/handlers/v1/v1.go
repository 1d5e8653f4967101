// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ainlabs/explorer/app/services/explorer/handlers/v1/chaingrp"
	"github.com/ainlabs/explorer/app/services/explorer/handlers/v1/knowledgegrp"
	"github.com/ainlabs/explorer/app/services/explorer/handlers/v1/rpcgrp"
	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/ainlabs/explorer/business/core/gateway"
	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log       *zap.SugaredLogger
	Client    *ainrpc.Client
	Chain     *chain.Core
	Graph     knowledge.Storer
	Knowledge *knowledge.Core
	Gateway   *gateway.Core
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	kgh := knowledgegrp.Handlers{
		Log:     cfg.Log,
		Graph:   cfg.Graph,
		KV:      cfg.Knowledge,
		Gateway: cfg.Gateway,
	}

	app.Handle(http.MethodGet, version, "/knowledge/graph", kgh.FullGraph)
	app.Handle(http.MethodGet, version, "/knowledge/graph/topic/*path", kgh.TopicSubgraph)
	app.Handle(http.MethodGet, version, "/knowledge/graph/node/:id", kgh.Neighbors)
	app.Handle(http.MethodGet, version, "/knowledge/stats", kgh.Stats)
	app.Handle(http.MethodGet, version, "/knowledge/topics", kgh.Topics)
	app.Handle(http.MethodGet, version, "/knowledge/topics/*path", kgh.TopicDetail)
	app.Handle(http.MethodGet, version, "/knowledge/exploration/:id", kgh.Exploration)
	app.Handle(http.MethodPost, version, "/knowledge/x402", kgh.X402)

	cgh := chaingrp.Handlers{
		Log:   cfg.Log,
		Chain: cfg.Chain,
	}

	app.Handle(http.MethodGet, version, "/chain/status", cgh.Status)
	app.Handle(http.MethodGet, version, "/chain/blocks/recent", cgh.RecentBlocks)
	app.Handle(http.MethodGet, version, "/chain/blocks/list/:from/:to", cgh.BlockRange)
	app.Handle(http.MethodGet, version, "/chain/blocks/:id", cgh.Block)
	app.Handle(http.MethodGet, version, "/chain/tx/recent", cgh.RecentTransactions)
	app.Handle(http.MethodGet, version, "/chain/tx/:hash", cgh.Transaction)
	app.Handle(http.MethodGet, version, "/chain/accounts/:address", cgh.Account)
	app.Handle(http.MethodGet, version, "/chain/validators/info/:address", cgh.ValidatorInfo)
	app.Handle(http.MethodGet, version, "/chain/validators/:number", cgh.Validators)
	app.Handle(http.MethodGet, version, "/chain/db/*ref", cgh.Database)
	app.Handle(http.MethodGet, version, "/search/:query", cgh.Search)

	rgh := rpcgrp.Handlers{
		Log:    cfg.Log,
		Client: cfg.Client,
	}

	app.Handle(http.MethodPost, version, "/rpc", rgh.Proxy)
}
