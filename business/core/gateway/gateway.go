// Package gateway proxies content requests to x402 payment gateways. Gated
// exploration content lives behind such a gateway; the explorer forwards the
// caller's signed payment payload and surfaces the gateway's challenge or
// the unlocked content.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result represents the outcome of a gateway fetch. When Status is 402 the
// PaymentRequired document describes the challenge; otherwise Content holds
// the body and the payment headers echo what the gateway settled.
type Result struct {
	Status          int             `json:"status"`
	PaymentRequired json.RawMessage `json:"paymentRequired,omitempty"`
	Content         string          `json:"content,omitempty"`
	TxHash          string          `json:"txHash,omitempty"`
	Currency        string          `json:"currency,omitempty"`
}

// Core manages access to payment gateways.
type Core struct {
	http *http.Client
}

// NewCore constructs a core for gateway access.
func NewCore(timeout time.Duration) *Core {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Core{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch requests the specified gateway url, forwarding the payment payload
// when one is provided.
func (c *Core) Fetch(ctx context.Context, gatewayURL string, paymentPayload string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gatewayURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if paymentPayload != "" {
		req.Header.Set("X-PAYMENT", paymentPayload)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("gateway fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		result := Result{Status: http.StatusPaymentRequired}

		if challenge := resp.Header.Get("x-payment-required"); challenge != "" {
			if decoded, err := base64.StdEncoding.DecodeString(challenge); err == nil && json.Valid(decoded) {
				result.PaymentRequired = decoded
			}
		}

		return result, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read gateway body: %w", err)
	}

	return Result{
		Status:   resp.StatusCode,
		Content:  string(body),
		TxHash:   resp.Header.Get("x-payment-tx-hash"),
		Currency: resp.Header.Get("x-payment-currency"),
	}, nil
}
