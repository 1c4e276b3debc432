package cart

import (
	"github.com/aminegames/gamekiosk/internal/catalog"
	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/pkg/common"
)

// Cart is the customer's in-progress selection: at most one line per game,
// lines kept in first-add order for display. Every mutation validates
// against live catalog stock before touching the cart, so a quantity never
// leaves the [1, stock] range while its line exists.
type Cart struct {
	lines []*domain.CartLine
	index map[int64]*domain.CartLine
}

func New() *Cart {
	return &Cart{index: make(map[int64]*domain.CartLine)}
}

// Lines returns a snapshot of the cart lines in first-add order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// ItemCount returns the total units across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Quantity returns the current quantity for a game, zero when absent.
func (c *Cart) Quantity(gameID int64) int {
	if l, ok := c.index[gameID]; ok {
		return l.Quantity
	}
	return 0
}

// Add puts one unit of the game into the cart. A game with zero stock fails
// with ErrOutOfStock; incrementing past stock fails with ErrStockExceeded.
// The cart is unchanged on failure.
func (c *Cart) Add(cat *catalog.Catalog, gameID int64) error {
	game, ok := cat.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	if game.Stock <= 0 {
		return domain.ErrOutOfStock
	}
	if line, exists := c.index[gameID]; exists {
		if line.Quantity+1 > game.Stock {
			return domain.ErrStockExceeded
		}
		line.Quantity++
		return nil
	}
	line := &domain.CartLine{GameID: gameID, Quantity: 1}
	c.lines = append(c.lines, line)
	c.index[gameID] = line
	return nil
}

// Remove takes one unit out of the cart, deleting the line when the
// quantity reaches zero. Removing an absent game is a no-op.
func (c *Cart) Remove(gameID int64) {
	line, ok := c.index[gameID]
	if !ok {
		return
	}
	if line.Quantity > 1 {
		line.Quantity--
		return
	}
	c.deleteLine(gameID)
}

// ChangeQuantity applies a signed delta to a line. A resulting quantity
// under one removes the line; above stock fails with ErrStockExceeded and
// leaves the cart unchanged. Changing an absent game is a no-op.
func (c *Cart) ChangeQuantity(cat *catalog.Catalog, gameID int64, delta int) error {
	line, ok := c.index[gameID]
	if !ok {
		return nil
	}
	game, ok := cat.Get(gameID)
	if !ok {
		return domain.ErrGameNotFound
	}
	newQuantity := line.Quantity + delta
	if newQuantity < 1 {
		c.deleteLine(gameID)
		return nil
	}
	if newQuantity > game.Stock {
		return domain.ErrStockExceeded
	}
	line.Quantity = newQuantity
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[int64]*domain.CartLine)
}

func (c *Cart) deleteLine(gameID int64) {
	delete(c.index, gameID)
	for i, l := range c.lines {
		if l.GameID == gameID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// Totals computes subtotal, discount and total from live catalog prices, so
// an admin price edit is reflected until checkout snapshots the lines.
// Amounts are rounded to two decimal places; the rule is fixed so repeated
// computations over the same cart always agree. Lines whose game has been
// deleted from the catalog contribute nothing.
func (c *Cart) Totals(cat *catalog.Catalog, settings domain.Settings) domain.CartTotals {
	var totals domain.CartTotals
	for _, line := range c.lines {
		game, ok := cat.Get(line.GameID)
		if !ok {
			continue
		}
		totals.Subtotal += game.Price * float64(line.Quantity)
		totals.ItemCount += line.Quantity
	}
	totals.Subtotal = common.Round2(totals.Subtotal)
	if totals.ItemCount >= settings.MinItems {
		totals.Discount = common.Round2(totals.Subtotal * float64(settings.DiscountPercent) / 100)
	}
	totals.Total = common.Round2(totals.Subtotal - totals.Discount)
	return totals
}
