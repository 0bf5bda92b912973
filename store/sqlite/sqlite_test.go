package sqlite_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/order-book/orderbook"
	"github.com/warp/order-book/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func addOrder(t *testing.T, st *sqlite.Store, side orderbook.Side, price, qty float64) orderbook.Order {
	t.Helper()
	o, err := st.Add(context.Background(), orderbook.Order{
		ClientID: "c1",
		Side:     side,
		Price:    price,
		Quantity: qty,
	})
	require.NoError(t, err)
	return o
}

func TestSQLite_IdsStartAtOneAndNeverReuse(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	a := addOrder(t, st, orderbook.SideBuy, 100, 1)
	b := addOrder(t, st, orderbook.SideBuy, 101, 1)
	assert.Equal(t, int64(1), a.OrderID)
	assert.Equal(t, int64(2), b.OrderID)

	// AUTOINCREMENT keeps the highest id retired after deletion.
	require.NoError(t, st.Remove(ctx, b.OrderID))
	c := addOrder(t, st, orderbook.SideSell, 102, 1)
	assert.Equal(t, int64(3), c.OrderID)
}

func TestSQLite_SnapshotInInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	addOrder(t, st, orderbook.SideSell, 305, 0.5)
	addOrder(t, st, orderbook.SideBuy, 304, 5.4)
	addOrder(t, st, orderbook.SideSell, 303, 1.2)

	orders, err := st.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, int64(1), orders[0].OrderID)
	assert.Equal(t, int64(2), orders[1].OrderID)
	assert.Equal(t, int64(3), orders[2].OrderID)
	assert.Equal(t, orderbook.SideBuy, orders[1].Side)
	assert.Equal(t, 5.4, orders[1].Quantity)
}

func TestSQLite_DSNWithQueryParameters(t *testing.T) {
	// A DSN that already carries query parameters must still open; the
	// journal setting joins with "&" instead of a second "?".
	st, err := sqlite.New("file:orders_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	o := addOrder(t, st, orderbook.SideBuy, 100, 1)
	assert.Equal(t, int64(1), o.OrderID)

	orders, err := st.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestSQLite_RemoveUnknownId(t *testing.T) {
	st := newTestStore(t)

	err := st.Remove(context.Background(), 9999)

	assert.ErrorIs(t, err, orderbook.ErrOrderNotFound)
	assert.EqualError(t, err, "Order (9999) does not exist in Order Book.")
}

func TestSQLite_RemovePreservesOtherOrders(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	addOrder(t, st, orderbook.SideBuy, 100, 1)
	addOrder(t, st, orderbook.SideBuy, 101, 2)
	addOrder(t, st, orderbook.SideBuy, 102, 3)

	require.NoError(t, st.Remove(ctx, 2))

	orders, err := st.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].OrderID)
	assert.Equal(t, int64(3), orders[1].OrderID)
}

func TestSQLite_WorksBehindClient(t *testing.T) {
	// The sqlite backend satisfies the same contract the client relies on.
	st := newTestStore(t)
	client := orderbook.NewClient(st, zerolog.Nop())
	ctx := context.Background()

	_, err := client.AddOrder(ctx, map[string]any{
		"clientId": "c1", "orderType": "BUY", "price": 304.0, "quantity": 5.4,
	})
	require.NoError(t, err)
	_, err = client.AddOrder(ctx, map[string]any{
		"clientId": "c2", "orderType": "BUY", "price": 304.0, "quantity": 1.1,
	})
	require.NoError(t, err)

	agg, err := client.GetOrderBookAggregate(ctx)
	require.NoError(t, err)
	require.Len(t, agg.Buy, 1)
	assert.Equal(t, 6.5, agg.Buy[0].AggQty)
}
