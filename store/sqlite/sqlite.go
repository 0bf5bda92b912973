/*
Package sqlite provides a SQLite-backed implementation of orderbook.Store.

PURPOSE:
  An alternative ledger backend with the same contract as the in-memory
  store. Run with ":memory:" the ledger stays volatile; pointing it at a
  file is possible but the engine makes no durability promises across
  restarts.

ID ASSIGNMENT:
  The orders table uses INTEGER PRIMARY KEY AUTOINCREMENT, so ids are
  monotonically increasing starting at 1 and are never reused even after
  deletes. Insertion order equals id order, which keeps Snapshot's
  ORDER BY order_id equivalent to ledger insertion order.

CONCURRENCY:
  Uses sync.RWMutex around mutation so callers observe a strictly serial
  history, mirroring the in-memory store.

USAGE:
  st, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()
  client := orderbook.NewClient(st, logger)

SEE ALSO:
  - orderbook/store.go: interface contract
  - orderbook/store/memory.go: canonical in-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/order-book/orderbook"
)

// Store implements orderbook.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", withJournalMode(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases from being opened
	// per pooled connection and matches the serialized mutation contract.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// withJournalMode appends the WAL journal setting to the DSN, joining with
// "&" when the caller's DSN already carries query parameters.
func withJournalMode(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_journal_mode=WAL"
	}
	return dsn + "?_journal_mode=WAL"
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Live orders. AUTOINCREMENT keeps ids monotonic and never reused.
	CREATE TABLE IF NOT EXISTS orders (
		order_id   INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id  TEXT NOT NULL,
		order_type TEXT NOT NULL,
		price      REAL NOT NULL,
		quantity   REAL NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add inserts the order and returns it with the database-assigned id.
func (s *Store) Add(ctx context.Context, order orderbook.Order) (orderbook.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (client_id, order_type, price, quantity) VALUES (?, ?, ?, ?)`,
		order.ClientID, string(order.Side), order.Price, order.Quantity)
	if err != nil {
		return orderbook.Order{}, fmt.Errorf("insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return orderbook.Order{}, fmt.Errorf("read assigned order id: %w", err)
	}
	order.OrderID = id
	return order, nil
}

// Remove deletes the order with the given id.
func (s *Store) Remove(ctx context.Context, orderID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, orderID)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}
	if rows == 0 {
		return &orderbook.NotFoundError{OrderID: float64(orderID)}
	}
	return nil
}

// Snapshot returns the live orders in insertion order.
func (s *Store) Snapshot(ctx context.Context) ([]orderbook.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT order_id, client_id, order_type, price, quantity FROM orders ORDER BY order_id`)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	defer rows.Close()

	orders := []orderbook.Order{}
	for rows.Next() {
		var o orderbook.Order
		var side string
		if err := rows.Scan(&o.OrderID, &o.ClientID, &side, &o.Price, &o.Quantity); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Side = orderbook.Side(side)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}
