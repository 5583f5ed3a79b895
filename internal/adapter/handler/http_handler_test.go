package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skustore/skustore/internal/adapter/storage"
	"github.com/skustore/skustore/internal/core/service"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := storage.NewMemoryAdapter(storage.DefaultShardCount, storage.DefaultWatchBuffer, zerolog.Nop())
	h := NewHTTPHandler(service.NewInventoryService(store))

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/items", h.Items)
	mux.HandleFunc("/api/items/quantity", h.UpdateQuantity)
	mux.HandleFunc("/api/items/price", h.UpdatePrice)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHealthCheck(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHTTPItemLifecycle(t *testing.T) {
	mux := newTestMux(t)

	name := "wrench"
	rec := doJSON(t, mux, http.MethodPost, "/api/items", ItemHTTPRequest{
		SKU: "TEST-SKU-1", Price: 1.99, Quantity: 20, Name: &name,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var change ChangeHTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, "success: item was added", change.Status)

	rec = doJSON(t, mux, http.MethodPost, "/api/items", ItemHTTPRequest{
		SKU: "TEST-SKU-1", Price: 2.99, Quantity: 5,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/items?sku=TEST-SKU-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var item ItemHTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "TEST-SKU-1", item.SKU)
	assert.InDelta(t, 1.99, item.Price, 0.001)
	assert.Equal(t, uint32(20), item.Quantity)
	require.NotNil(t, item.Name)
	assert.Equal(t, "wrench", *item.Name)

	rec = doJSON(t, mux, http.MethodPost, "/api/items/quantity", QuantityHTTPRequest{
		SKU: "TEST-SKU-1", Change: -17,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var upd UpdateHTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upd))
	assert.Equal(t, uint32(3), upd.Quantity)

	rec = doJSON(t, mux, http.MethodPost, "/api/items/quantity", QuantityHTTPRequest{
		SKU: "TEST-SKU-1", Change: -100,
	})
	assert.Equal(t, http.StatusGone, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/items/price", PriceHTTPRequest{
		SKU: "TEST-SKU-1", Price: 2.19,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upd))
	assert.InDelta(t, 2.19, upd.Price, 0.001)

	rec = doJSON(t, mux, http.MethodDelete, "/api/items?sku=TEST-SKU-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, "success: item was removed", change.Status)

	rec = doJSON(t, mux, http.MethodDelete, "/api/items?sku=TEST-SKU-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, "success: item didn't exist", change.Status)

	rec = doJSON(t, mux, http.MethodGet, "/api/items?sku=TEST-SKU-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPValidation(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/items", ItemHTTPRequest{
		SKU: "", Price: 1.99, Quantity: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/items", ItemHTTPRequest{
		SKU: "SKU-1", Price: 0, Quantity: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString("{not json"))
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)

	rec = doJSON(t, mux, http.MethodPut, "/api/items", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
