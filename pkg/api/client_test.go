package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/pkg/checkout"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("", zap.NewNop())
	require.Error(t, err)

	c, err := NewClient("http://shop.local/", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://shop.local", c.baseURL)
}

func TestFetchCatalog(t *testing.T) {
	items := Fixture()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/product", r.URL.Path)
		json.NewEncoder(w).Encode(listResponse{Total: len(items), Items: items})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, zap.NewNop())
	require.NoError(t, err)

	got, err := c.FetchCatalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, len(items))
	assert.Equal(t, "HEX lollipop", got[1].Title)
}

func TestFetchCatalogRejectsMissingItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 0}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, zap.NewNop())
	_, err := c.FetchCatalog(context.Background())
	require.EqualError(t, err, msgInvalidResponse)
}

func TestSubmitOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/order", r.URL.Path)

		var data checkout.OrderData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&data))
		assert.Equal(t, checkout.PaymentCard, data.Payment)
		assert.Equal(t, int64(2200), data.Total)

		json.NewEncoder(w).Encode(OrderResult{ID: "ord-1", Total: data.Total})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, zap.NewNop())
	result, err := c.SubmitOrder(context.Background(), checkout.OrderData{
		Payment: checkout.PaymentCard,
		Email:   "dev@example.com",
		Phone:   "+1 555 0100",
		Address: "Elm Street 13",
		Total:   2200,
		Items:   []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", result.ID)
	assert.Equal(t, int64(2200), result.Total)
}

func TestSubmitOrderRejectsEmptyItems(t *testing.T) {
	c, _ := NewClient("http://unused.local", zap.NewNop())
	_, err := c.SubmitOrder(context.Background(), checkout.OrderData{})
	require.EqualError(t, err, msgMissingOrderData)
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, msgValidation},
		{http.StatusUnauthorized, msgUnauthorized},
		{http.StatusForbidden, msgForbidden},
		{http.StatusNotFound, msgNotFound},
		{http.StatusUnprocessableEntity, msgValidation},
		{http.StatusInternalServerError, msgServer},
		{http.StatusBadGateway, msgServer},
		{http.StatusTeapot, msgUnknown},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c, _ := NewClient(srv.URL, zap.NewNop())
		_, err := c.FetchCatalog(context.Background())
		srv.Close()

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr, "status %d", tt.status)
		assert.Equal(t, tt.status, apiErr.Status)
		assert.Equal(t, tt.want, apiErr.Message)
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, _ := NewClient(srv.URL, zap.NewNop())
	_, err := c.FetchCatalog(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, msgNetwork, apiErr.Message)
}

func TestSingleFlightGuard(t *testing.T) {
	c, _ := NewClient("http://unused.local", zap.NewNop())

	c.fetchBusy.Store(true)
	_, err := c.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)
	c.fetchBusy.Store(false)

	c.submitBusy.Store(true)
	_, err = c.SubmitOrder(context.Background(), checkout.OrderData{Items: []string{"a"}})
	assert.ErrorIs(t, err, ErrInFlight)
}

func TestFixtureShape(t *testing.T) {
	items := Fixture()
	require.Len(t, items, 10)

	var notForSale int
	seen := make(map[string]bool)
	for _, item := range items {
		require.NotEmpty(t, item.ID)
		require.False(t, seen[item.ID], "duplicate fixture id %s", item.ID)
		seen[item.ID] = true
		if item.Price == nil {
			notForSale++
		}
	}
	assert.Equal(t, 1, notForSale)
}
