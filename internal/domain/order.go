package domain

import "time"

const OrderStatusCompleted = "completed"

// OrderItem is the snapshot of one cart line at commit time. Values are
// copied from the catalog so later edits never rewrite history.
type OrderItem struct {
	GameID   int64   `json:"game_id" csv:"game_id"`
	Name     string  `json:"name" csv:"name"`
	Platform string  `json:"platform" csv:"platform"`
	Price    float64 `json:"price" csv:"price"`
	Quantity int     `json:"quantity" csv:"quantity"`
}

// LineTotal returns price x quantity for the snapshot line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is an immutable record of a completed checkout. Orders are only ever
// appended to the sales ledger.
type Order struct {
	ID       string      `json:"id"`
	Date     time.Time   `json:"date"`
	Items    []OrderItem `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Discount float64     `json:"discount"`
	Total    float64     `json:"total"`
	Status   string      `json:"status"`
}

// ItemCount returns the total number of units across all lines.
func (o Order) ItemCount() int {
	var n int
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// CartLine references a catalog game plus a positive quantity. Quantity is
// clamped to [1, stock] for the referenced game while the line exists.
type CartLine struct {
	GameID   int64 `json:"game_id"`
	Quantity int   `json:"quantity"`
}

// CartTotals is the computed state of a cart.
type CartTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}
