// Package api implements the storefront's HTTP collaborators: fetching the
// product catalog and submitting an order. Transport failures are folded
// into a small set of user-facing messages.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"storefront/pkg/catalog"
	"storefront/pkg/checkout"
	"storefront/pkg/otel"
)

// ErrInFlight is returned when a fetch or submit is started while the
// previous one has not finished. Overlapping requests are rejected rather
// than coalesced: the caller has no waiter to hand a shared result to.
var ErrInFlight = errors.New("request already in flight")

const requestTimeout = 5 * time.Second

// OrderResult is the server's reply to a submitted order.
type OrderResult struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

type listResponse struct {
	Total int            `json:"total"`
	Items []catalog.Item `json:"items"`
}

// Client talks to the storefront backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	fetchBusy  atomic.Bool
	submitBusy atomic.Bool
}

// NewClient builds a client for the given base URL. A trailing slash is
// trimmed so request paths can be joined naively.
func NewClient(baseURL string, log *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}, nil
}

// FetchCatalog retrieves the product list. Only one fetch may be in flight
// at a time.
func (c *Client) FetchCatalog(ctx context.Context) ([]catalog.Item, error) {
	if !c.fetchBusy.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer c.fetchBusy.Store(false)

	ctx, span := otel.AddSpan(ctx, "api.FetchCatalog")
	defer span.End()

	var list listResponse
	if err := c.do(ctx, http.MethodGet, "/product", nil, &list); err != nil {
		return nil, err
	}
	if list.Items == nil {
		return nil, errors.New(msgInvalidResponse)
	}
	return list.Items, nil
}

// SubmitOrder sends the order payload. The caller is responsible for
// filling Total and Items from the basket; an empty item list is rejected
// locally. Only one submission may be in flight at a time.
func (c *Client) SubmitOrder(ctx context.Context, data checkout.OrderData) (OrderResult, error) {
	if len(data.Items) == 0 {
		return OrderResult{}, errors.New(msgMissingOrderData)
	}
	if !c.submitBusy.CompareAndSwap(false, true) {
		return OrderResult{}, ErrInFlight
	}
	defer c.submitBusy.Store(false)

	ctx, span := otel.AddSpan(ctx, "api.SubmitOrder")
	defer span.End()

	var result OrderResult
	if err := c.do(ctx, http.MethodPost, "/order", data, &result); err != nil {
		return OrderResult{}, err
	}
	if result.ID == "" {
		return OrderResult{}, errors.New(msgInvalidResponse)
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("path", path), zap.Error(err))
		return &Error{Status: 0, Message: msgNetwork}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: messageFor(resp.StatusCode)}
		c.log.Error("server rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.New(msgInvalidResponse)
		}
	}
	return nil
}
