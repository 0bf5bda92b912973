// Package store provides the in-memory Store implementation. The ledger is
// volatile, process-lifetime state, so this is the canonical backend.
package store

import (
	"context"
	"sync"

	"github.com/warp/order-book/orderbook"
)

// =============================================================================
// MEMORY STORE - Mutex-guarded order sequence with a monotonic id counter
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	orders []orderbook.Order
	lastID int64
}

func NewMemory() *Memory {
	return &Memory{orders: []orderbook.Order{}}
}

// Add assigns the next id and appends the order. Ids start at 1 and are
// never reused, even after removals.
func (m *Memory) Add(_ context.Context, order orderbook.Order) (orderbook.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	order.OrderID = m.lastID
	m.orders = append(m.orders, order)
	return order, nil
}

// Remove deletes exactly the order with the matching id, keeping the
// relative order of all other entries.
func (m *Memory) Remove(_ context.Context, orderID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, o := range m.orders {
		if o.OrderID == orderID {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return &orderbook.NotFoundError{OrderID: float64(orderID)}
}

// Snapshot returns a copy of the live sequence so aggregation never sees a
// partially-applied mutation.
func (m *Memory) Snapshot(_ context.Context) ([]orderbook.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]orderbook.Order, len(m.orders))
	copy(result, m.orders)
	return result, nil
}
