/*
dto.go - Data transfer objects for the HTTP surface

PURPOSE:
  The core types in the orderbook package already carry their wire field
  names (orderId, clientId, orderType, price, quantity, priceGroup, aggQty),
  so responses serialize them directly. This file only holds the envelope
  types the transport adds on top.
*/
package api

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
