/*
handlers.go - HTTP handlers for the order book service

PURPOSE:
  Exposes the order book client over REST. Handlers only translate between
  HTTP and the client's positional contract; every invariant lives behind
  the client's validation pipeline.

ENDPOINTS:
  POST   /api/orders           Add an order
  GET    /api/orders           List live orders (ledger insertion order)
  DELETE /api/orders/{orderId} Remove an order by id
  GET    /api/book             Current depth-of-book aggregate
  GET    /api/health           Liveness check

ERROR HANDLING:
  Errors are returned as JSON with the status derived from the error class:
  - 400: arity and validation failures
  - 404: unknown order id
  - 500: internal store faults

SEE ALSO:
  - dto.go: response envelope types
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/warp/order-book/orderbook"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Client *orderbook.Client
	Log    zerolog.Logger
}

// NewHandler creates a handler around the given order book client.
func NewHandler(client *orderbook.Client, logger zerolog.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// AddOrder adds a new order to the book.
// POST /api/orders
func (h *Handler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	order, err := h.Client.AddOrder(r.Context(), raw)
	if err != nil {
		writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// ListOrders returns the live ledger in insertion order.
// GET /api/orders
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Client.Orders(r.Context())
	if err != nil {
		writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// RemoveOrder removes an order by id.
// DELETE /api/orders/{orderId}
func (h *Handler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "orderId")

	// A non-numeric path segment is handed to the client as-is so the
	// validation pipeline produces the canonical "must be a number" error.
	var arg any = param
	if f, err := strconv.ParseFloat(param, 64); err == nil {
		arg = f
	}

	if err := h.Client.RemoveOrder(r.Context(), arg); err != nil {
		writeClientError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBook returns the current depth-of-book aggregate.
// GET /api/book
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.Client.GetOrderBookAggregate(r.Context())
	if err != nil {
		writeClientError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Health responds with a simple liveness payload.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// writeClientError maps an order book error to an HTTP status.
func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case orderbook.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case orderbook.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
