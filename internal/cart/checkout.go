package cart

import (
	"fmt"
	"time"

	"github.com/aminegames/gamekiosk/internal/catalog"
	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/ledger"
)

// OrderIDGenerator produces time-derived order numbers in the form
// PREFIX-YYYYMMDD-HHMMSS. Two checkouts within the same second get a numeric
// suffix so ids stay unique within the process.
type OrderIDGenerator struct {
	prefix    string
	lastStamp string
	seq       int
}

func NewOrderIDGenerator(prefix string) *OrderIDGenerator {
	if prefix == "" {
		prefix = "AGS"
	}
	return &OrderIDGenerator{prefix: prefix}
}

// Next returns the order id for a checkout happening at now.
func (g *OrderIDGenerator) Next(now time.Time) string {
	stamp := now.Format("20060102-150405")
	if stamp == g.lastStamp {
		g.seq++
		return fmt.Sprintf("%s-%s-%d", g.prefix, stamp, g.seq+1)
	}
	g.lastStamp = stamp
	g.seq = 0
	return fmt.Sprintf("%s-%s", g.prefix, stamp)
}

// Checkout commits the cart: it validates the minimum item count, snapshots
// every line into an immutable order, decrements catalog stock (clamped at
// zero), appends the order to the ledger and clears the cart.
//
// All validation and snapshotting happen before the first mutation, so on
// any failure the cart, catalog and ledger are untouched; on success the
// stock decrement and the ledger append are both applied before returning.
func (c *Cart) Checkout(cat *catalog.Catalog, led *ledger.Ledger, settings domain.Settings, ids *OrderIDGenerator, now time.Time) (domain.Order, error) {
	totals := c.Totals(cat, settings)
	if totals.ItemCount < settings.MinItems {
		return domain.Order{}, domain.ErrBelowMinimum
	}

	items := make([]domain.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		game, ok := cat.Get(line.GameID)
		if !ok {
			// A line whose game was deleted by the admin mid-session
			// cannot be committed.
			return domain.Order{}, domain.ErrGameNotFound
		}
		items = append(items, domain.OrderItem{
			GameID:   game.ID,
			Name:     game.Name,
			Platform: game.Platform,
			Price:    game.Price,
			Quantity: line.Quantity,
		})
	}

	order := domain.Order{
		ID:       ids.Next(now),
		Date:     now,
		Items:    items,
		Subtotal: totals.Subtotal,
		Discount: totals.Discount,
		Total:    totals.Total,
		Status:   domain.OrderStatusCompleted,
	}

	for _, it := range items {
		_ = cat.DecrementStock(it.GameID, it.Quantity)
	}
	led.Append(order)
	c.Clear()
	return order, nil
}
