// Package rpcgrp maintains the raw JSON-RPC proxy endpoint.
package rpcgrp

import (
	"context"
	"net/http"

	"github.com/ainlabs/explorer/business/web/errs"
	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/validate"
	"github.com/ainlabs/explorer/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the rpc proxy endpoint.
type Handlers struct {
	Log    *zap.SugaredLogger
	Client *ainrpc.Client
}

type proxyRequest struct {
	Method string         `json:"method" validate:"required"`
	Params map[string]any `json:"params"`
}

// Validate runs field validation on the request model.
func (r proxyRequest) Validate() error {
	return validate.Check(r)
}

// Proxy forwards one method call to the node and returns the raw result.
func (h Handlers) Proxy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req proxyRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	result, err := h.Client.Call(ctx, req.Method, req.Params)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadGateway)
	}

	resp := struct {
		Result any `json:"result"`
	}{
		Result: result,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
