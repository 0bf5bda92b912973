/*
client.go - Validated entry points for the order book

PURPOSE:
  The Client is the boundary the transport layer talks to. Every mutating
  entry point runs the validation pipeline before the request reaches the
  Store, so validation is all-or-nothing: a rejected request never partially
  applies. Arguments are positional and dynamically typed (decoded JSON),
  which lets the argument count and the request shape be checked the same
  way regardless of transport.

REQUEST FLOW (AddOrder):
  1. Arity check - exactly one positional argument
  2. Validate the whole request as an object (malformed requests fail fast)
  3. Validate clientId, quantity, price, orderType in that order
  4. Re-validate the request object against the permitted property set
  5. Bind to a typed Order and append via the Store

ERROR HANDLING:
  Validation and not-found failures surface directly with a message naming
  the offending field or value. Unexpected store faults are logged and
  surfaced as InternalError so callers can tell rejected input apart from
  a store failure. No error is retried internally.
*/
package orderbook

import (
	"context"

	"github.com/rs/zerolog"
)

// orderProperties is the permitted property set of an add-order request,
// in validation order.
var orderProperties = []string{"clientId", "quantity", "price", "orderType"}

// Client applies the validation pipeline to incoming requests and forwards
// validated requests to the Store.
type Client struct {
	store Store
	log   zerolog.Logger
}

// NewClient creates a Client backed by the given store.
func NewClient(store Store, logger zerolog.Logger) *Client {
	return &Client{store: store, log: logger}
}

// AddOrder validates a raw add-order request and appends the resulting
// order to the ledger. The single argument must be a decoded JSON object
// with exactly the properties clientId, quantity, price, and orderType.
// Returns the stored order including its assigned id.
func (c *Client) AddOrder(ctx context.Context, args ...any) (*Order, error) {
	if len(args) != 1 {
		return nil, &ArityError{Expected: 1, Received: len(args)}
	}
	raw := args[0]

	if err := Validate("order", raw, KindObject, nil); err != nil {
		return nil, err
	}
	fields, _ := raw.(map[string]any)
	if err := Validate("clientId", fields["clientId"], KindText, nil); err != nil {
		return nil, err
	}
	if err := Validate("quantity", fields["quantity"], KindNumber, nil); err != nil {
		return nil, err
	}
	if err := Validate("price", fields["price"], KindNumber, nil); err != nil {
		return nil, err
	}
	if err := Validate("orderType", fields["orderType"], KindText, Sides); err != nil {
		return nil, err
	}
	if err := Validate("order", raw, KindObject, orderProperties); err != nil {
		return nil, err
	}

	order := bindOrder(fields)
	stored, err := c.store.Add(ctx, order)
	if err != nil {
		c.log.Error().Err(err).Str("client_id", order.ClientID).Msg("order append failed")
		return nil, &InternalError{Err: err}
	}
	return &stored, nil
}

// RemoveOrder validates an order id and removes the matching order from the
// ledger. The single argument must be a number. Removal of an unknown id
// fails with a NotFoundError naming the id; the ledger is unchanged.
func (c *Client) RemoveOrder(ctx context.Context, args ...any) error {
	if len(args) != 1 {
		return &ArityError{Expected: 1, Received: len(args)}
	}
	if err := Validate("orderId", args[0], KindNumber, nil); err != nil {
		return err
	}

	requested, _ := toFloat(args[0])
	id := int64(requested)
	if float64(id) != requested {
		// A fractional id can never match a ledger-assigned one.
		return &NotFoundError{OrderID: requested}
	}

	err := c.store.Remove(ctx, id)
	if err == nil || IsNotFound(err) {
		return err
	}
	c.log.Error().Err(err).Int64("order_id", id).Msg("order removal failed")
	return &InternalError{Err: err}
}

// GetOrderBookAggregate takes a consistent snapshot of the ledger and folds
// it into the depth-of-book view. Takes no arguments.
func (c *Client) GetOrderBookAggregate(ctx context.Context, args ...any) (*BookAggregate, error) {
	if len(args) != 0 {
		return nil, &ArityError{Expected: 0, Received: len(args)}
	}

	orders, err := c.store.Snapshot(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("ledger snapshot failed")
		return nil, &InternalError{Err: err}
	}
	return Aggregate(orders), nil
}

// Orders returns a snapshot of the live ledger in insertion order.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	orders, err := c.store.Snapshot(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("ledger snapshot failed")
		return nil, &InternalError{Err: err}
	}
	return orders, nil
}

// bindOrder binds a validated request object to a typed Order. The id is
// assigned by the Store, never by the caller.
func bindOrder(fields map[string]any) Order {
	clientID, _ := fields["clientId"].(string)
	side, _ := fields["orderType"].(string)
	quantity, _ := toFloat(fields["quantity"])
	price, _ := toFloat(fields["price"])
	return Order{
		ClientID: clientID,
		Side:     Side(side),
		Price:    price,
		Quantity: quantity,
	}
}
