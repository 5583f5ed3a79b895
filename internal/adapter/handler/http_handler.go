package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/core/service"
)

type HTTPHandler struct {
	inventory *service.InventoryService
}

type ItemHTTPRequest struct {
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ItemHTTPResponse struct {
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Quantity    uint32  `json:"quantity"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type QuantityHTTPRequest struct {
	SKU    string `json:"sku"`
	Change int32  `json:"change"`
}

type PriceHTTPRequest struct {
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

type ChangeHTTPResponse struct {
	Status string `json:"status"`
}

type UpdateHTTPResponse struct {
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Quantity uint32  `json:"quantity"`
}

type ErrorHTTPResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(inventory *service.InventoryService) *HTTPHandler {
	return &HTTPHandler{inventory: inventory}
}

// Items dispatches on method: POST adds an item, GET fetches one by
// the sku query parameter, DELETE removes one.
func (h *HTTPHandler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addItem(w, r)
	case http.MethodGet:
		h.getItem(w, r)
	case http.MethodDelete:
		h.removeItem(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HTTPHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req ItemHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Error: "invalid request body"})
		return
	}

	item := domain.Item{
		SKU: req.SKU,
		Stock: &domain.Stock{
			Price:    decimal.NewFromFloat(req.Price),
			Quantity: req.Quantity,
		},
	}
	if req.Name != nil || req.Description != nil {
		item.Info = &domain.Info{Name: req.Name, Description: req.Description}
	}

	if err := h.inventory.Add(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChangeHTTPResponse{Status: statusAdded})
}

func (h *HTTPHandler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.inventory.Get(r.Context(), r.URL.Query().Get("sku"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ItemHTTPResponse{SKU: item.SKU}
	if item.Stock != nil {
		resp.Price = item.Stock.Price.InexactFloat64()
		resp.Quantity = item.Stock.Quantity
	}
	if item.Info != nil {
		resp.Name = item.Info.Name
		resp.Description = item.Info.Description
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	removed, err := h.inventory.Remove(r.Context(), r.URL.Query().Get("sku"))
	if err != nil {
		writeError(w, err)
		return
	}

	msg := statusAlreadyAbsent
	if removed {
		msg = statusRemoved
	}
	writeJSON(w, http.StatusOK, ChangeHTTPResponse{Status: msg})
}

func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req QuantityHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Error: "invalid request body"})
		return
	}

	stock, err := h.inventory.AdjustQuantity(r.Context(), req.SKU, req.Change)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateHTTPResponse{
		Status:   statusQuantityUpdated,
		Price:    stock.Price.InexactFloat64(),
		Quantity: stock.Quantity,
	})
}

func (h *HTTPHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PriceHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Error: "invalid request body"})
		return
	}

	stock, err := h.inventory.SetPrice(r.Context(), req.SKU, decimal.NewFromFloat(req.Price))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UpdateHTTPResponse{
		Status:   statusPriceUpdated,
		Price:    stock.Price.InexactFloat64(),
		Quantity: stock.Quantity,
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument, domain.KindNoOpPrice:
		status = http.StatusBadRequest
	case domain.KindAlreadyExists:
		status = http.StatusConflict
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInsufficientStock:
		status = http.StatusGone
	}
	writeJSON(w, status, ErrorHTTPResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
