package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/pkg/api"
	"storefront/pkg/catalog"
	catalogmem "storefront/pkg/catalog/memory"
	ordersmem "storefront/pkg/orders/memory"
)

func newTestServer() (*server, *mux.Router) {
	srv := &server{
		products: catalogmem.New(api.Fixture()),
		orders:   ordersmem.New(),
		log:      zap.NewNop(),
	}
	r := mux.NewRouter()
	r.HandleFunc("/product", srv.listProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/product/{id}", srv.getProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/order", srv.createOrderHandler).Methods(http.MethodPost)
	return srv, r
}

func TestListProducts(t *testing.T) {
	_, r := newTestServer()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(api.Fixture()), resp.Total)
	assert.Len(t, resp.Items, resp.Total)
}

func TestGetProduct(t *testing.T) {
	_, r := newTestServer()
	id := api.Fixture()[0].ID

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/"+id, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var item catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, id, item.ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/product/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	srv, r := newTestServer()

	body := `{"payment":"card","email":"dev@example.com","phone":"+1 555 0100",` +
		`"address":"Elm Street 13","total":2200,"items":["a","b"]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(2200), resp.Total)

	stored, err := srv.orders.Get(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, stored.Items)
}

func TestCreateOrderValidation(t *testing.T) {
	_, r := newTestServer()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", "{", http.StatusBadRequest},
		{"empty items", `{"payment":"card","email":"a","phone":"b","address":"c","items":[]}`, http.StatusUnprocessableEntity},
		{"missing email", `{"payment":"card","phone":"b","address":"c","items":["x"]}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
