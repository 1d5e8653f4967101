// Package knowledgegrp maintains the group of handlers for knowledge graph
// access.
package knowledgegrp

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ainlabs/explorer/business/core/gateway"
	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/ainlabs/explorer/business/web/errs"
	"github.com/ainlabs/explorer/foundation/validate"
	"github.com/ainlabs/explorer/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of knowledge graph endpoints.
type Handlers struct {
	Log *zap.SugaredLogger

	// Graph is the configured graph backend. KV always points at the
	// key/value materializer, which additionally serves the store-level
	// reads no graph database carries.
	Graph   knowledge.Storer
	KV      *knowledge.Core
	Gateway *gateway.Core
}

// FullGraph returns the complete materialized graph.
func (h Handlers) FullGraph(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	graph, err := h.Graph.Graph(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, graph, http.StatusOK)
}

// TopicSubgraph returns the induced subgraph for one topic path.
func (h Handlers) TopicSubgraph(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	topicPath := strings.Trim(web.Param(r, "path"), "/")
	if topicPath == "" {
		return errs.NewTrusted(errors.New("topic path required"), http.StatusBadRequest)
	}

	graph, err := h.Graph.TopicSubgraph(ctx, topicPath)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, graph, http.StatusOK)
}

// Neighbors returns the 1-hop neighborhood of one node.
func (h Handlers) Neighbors(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	nodeID := web.Param(r, "id")
	if nodeID == "" {
		return errs.NewTrusted(errors.New("node id required"), http.StatusBadRequest)
	}

	graph, err := h.Graph.Neighbors(ctx, nodeID)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, graph, http.StatusOK)
}

// Stats returns the summary counts for the dashboard.
func (h Handlers) Stats(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	stats, err := h.Graph.Stats(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, stats, http.StatusOK)
}

// Topics returns the flattened topic list.
func (h Handlers) Topics(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	topics, err := h.KV.Topics(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, topics, http.StatusOK)
}

// TopicDetail returns one topic's metadata, explorations and aggregates.
func (h Handlers) TopicDetail(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	topicPath := strings.Trim(web.Param(r, "path"), "/")
	if topicPath == "" {
		return errs.NewTrusted(errors.New("topic path required"), http.StatusBadRequest)
	}

	detail, err := h.KV.TopicDetail(ctx, topicPath)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, detail, http.StatusOK)
}

// Exploration returns the record behind one exploration node id together
// with its 1-hop neighborhood.
func (h Handlers) Exploration(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	nodeID := web.Param(r, "id")

	eid, data, err := h.KV.Exploration(ctx, nodeID)
	if err != nil {
		return err
	}

	graph, err := h.Graph.Neighbors(ctx, nodeID)
	if err != nil {
		return err
	}

	resp := struct {
		NodeID      string                 `json:"node_id"`
		Address     string                 `json:"address"`
		TopicPath   string                 `json:"topic_path"`
		EntryID     string                 `json:"entry_id"`
		Exploration *knowledge.Exploration `json:"exploration"`
		Neighbors   knowledge.GraphData    `json:"neighbors"`
	}{
		NodeID:      nodeID,
		Address:     eid.Address,
		TopicPath:   eid.TopicPath,
		EntryID:     eid.EntryID,
		Exploration: data,
		Neighbors:   graph,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// gatewayRequest is the payload for the x402 gateway proxy.
type gatewayRequest struct {
	GatewayURL     string `json:"gatewayUrl" validate:"required,url"`
	PaymentPayload string `json:"paymentPayload"`
}

// Validate runs field validation on the request model.
func (r gatewayRequest) Validate() error {
	return validate.Check(r)
}

// X402 proxies a content request to a payment gateway, forwarding the
// caller's payment payload when one is present.
func (h Handlers) X402(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req gatewayRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	result, err := h.Gateway.Fetch(ctx, req.GatewayURL, req.PaymentPayload)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	if result.Status == http.StatusPaymentRequired {
		return web.Respond(ctx, w, result, http.StatusPaymentRequired)
	}

	return web.Respond(ctx, w, result, http.StatusOK)
}
