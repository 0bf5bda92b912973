/*
book.go - Depth-of-book aggregation

PURPOSE:
  Folds a snapshot of the live order sequence into per-side price levels.
  The aggregate is derived state: it is recomputed from the ledger on every
  query and never stored.

ALGORITHM:
  One pass over the orders in insertion order. Each order either creates a
  new level for its (side, price) or joins the existing one, summing
  quantity with AddBounded and appending its {orderId, quantity} entry.
  Levels are then sorted by price group: SELL ascending, BUY descending.
  Prices are compared by exact value; price groups are never split or
  merged after sorting, and ties are impossible since the price is the
  grouping key itself.
*/
package orderbook

import "sort"

// Aggregate folds live orders into a BookAggregate. An empty ledger yields
// empty (non-nil) level sequences on both sides.
func Aggregate(orders []Order) *BookAggregate {
	agg := &BookAggregate{
		Buy:  []PriceLevel{},
		Sell: []PriceLevel{},
	}

	for _, o := range orders {
		levels := agg.sideLevels(o.Side)
		if levels == nil {
			continue
		}
		entry := LevelOrder{OrderID: o.OrderID, Quantity: o.Quantity}

		i := findLevel(*levels, o.Price)
		if i == -1 {
			*levels = append(*levels, PriceLevel{
				PriceGroup: o.Price,
				AggQty:     o.Quantity,
				Orders:     []LevelOrder{entry},
			})
			continue
		}

		level := &(*levels)[i]
		level.AggQty = AddBounded(level.AggQty, o.Quantity)
		level.Orders = append(level.Orders, entry)
	}

	// Price groups are unique per side, so ordering is total.
	sort.Slice(agg.Sell, func(i, j int) bool {
		return agg.Sell[i].PriceGroup < agg.Sell[j].PriceGroup
	})
	sort.Slice(agg.Buy, func(i, j int) bool {
		return agg.Buy[i].PriceGroup > agg.Buy[j].PriceGroup
	})

	return agg
}

// sideLevels returns nil for any side other than BUY or SELL. Orders reach
// the fold validated, so an unknown side can only come from an externally
// populated store backend; such rows contribute to neither side.
func (a *BookAggregate) sideLevels(side Side) *[]PriceLevel {
	switch side {
	case SideBuy:
		return &a.Buy
	case SideSell:
		return &a.Sell
	}
	return nil
}

func findLevel(levels []PriceLevel, price float64) int {
	for i := range levels {
		if levels[i].PriceGroup == price {
			return i
		}
	}
	return -1
}
