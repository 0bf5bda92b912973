/*
Package orderbook implements a live order book for a single instrument.

PURPOSE:
  Maintains a volatile ledger of resting BUY/SELL orders and derives a
  depth-of-book view on demand: orders grouped by price level, aggregated
  by quantity, ordered by side-specific price priority.

KEY CONCEPTS IN THIS FILE (types.go):
  - Order: one resting order, identified by a ledger-assigned id
  - PriceLevel: a derived view of all orders on one side sharing a price
  - BookAggregate: the two sorted PriceLevel sequences, one per side

DESIGN PRINCIPLES:
  1. The ledger is the sole source of truth; aggregates are never stored
  2. Orders are never mutated in place; removal is the only lifecycle exit
  3. Quantity aggregation goes through AddBounded so sums are reproducible

SEE ALSO:
  - store.go: Store interface owning the live order sequence
  - book.go: aggregation fold and sorting
  - client.go: validated entry points
*/
package orderbook

// =============================================================================
// SIDE - BUY/SELL classification
// =============================================================================

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Sides lists the permitted order type values, in wire order.
var Sides = []string{string(SideBuy), string(SideSell)}

// =============================================================================
// ORDER - One resting order
// =============================================================================

// Order is a resting order in the ledger. OrderID is assigned by the Store
// on a successful add, is unique for the process lifetime, and is never
// reused, even after removal.
type Order struct {
	OrderID  int64   `json:"orderId"`
	ClientID string  `json:"clientId"`
	Side     Side    `json:"orderType"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// =============================================================================
// PRICE LEVEL - Derived, ephemeral aggregate of one (side, price) group
// =============================================================================

// LevelOrder is one order's contribution to a price level.
type LevelOrder struct {
	OrderID  int64   `json:"orderId"`
	Quantity float64 `json:"quantity"`
}

// PriceLevel folds all orders on one side sharing an identical price.
// Orders preserves ledger insertion order and is never re-sorted.
type PriceLevel struct {
	PriceGroup float64      `json:"priceGroup"`
	AggQty     float64      `json:"aggQty"`
	Orders     []LevelOrder `json:"orders"`
}

// BookAggregate is the query result: two ordered PriceLevel sequences,
// SELL ascending and BUY descending by price group. It is recomputed fresh
// on every query and holds no identity across calls.
type BookAggregate struct {
	Buy  []PriceLevel `json:"BUY"`
	Sell []PriceLevel `json:"SELL"`
}
