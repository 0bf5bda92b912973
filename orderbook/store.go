/*
store.go - Storage interface for the live order ledger

PURPOSE:
  Defines the interface between the client entry points and the ledger
  backend. The Store exclusively owns the sequence of live orders, assigns
  identifiers, and hands out point-in-time snapshots for aggregation.

CONTRACT:
  - Add assigns the next id (monotonically increasing, first id is 1, never
    reused even across removals), appends the order, and returns it. The
    append either fully succeeds or does not happen.
  - Remove deletes exactly the order with the matching id, preserving the
    relative order of every other entry. An unknown id fails with
    ErrOrderNotFound and leaves the ledger unchanged.
  - Snapshot returns a consistent copy of the live sequence in insertion
    order, so a concurrent add/remove cannot produce a partially-applied
    aggregate.

  Implementations must serialize mutation: callers observe a strictly
  serial history.

IMPLEMENTATIONS:
  - orderbook/store: in-memory (canonical; the ledger is volatile state)
  - store/sqlite:    SQLite-backed alternative, same contract
*/
package orderbook

import "context"

// Store owns the canonical sequence of live orders.
type Store interface {
	// Add assigns the next order id, appends the order, and returns the
	// stored order. Insertion order is significant and preserved.
	Add(ctx context.Context, order Order) (Order, error)

	// Remove deletes the order with the given id. Returns an error
	// matching ErrOrderNotFound when no live order has that id.
	Remove(ctx context.Context, orderID int64) error

	// Snapshot returns a point-in-time copy of the live orders in
	// insertion order.
	Snapshot(ctx context.Context) ([]Order, error)
}
