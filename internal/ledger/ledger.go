package ledger

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/aminegames/gamekiosk/internal/domain"
)

// Ledger is the append-only sequence of completed orders. Orders are never
// mutated after Append; history edits would falsify the sales record.
type Ledger struct {
	orders []domain.Order
}

func New(orders []domain.Order) *Ledger {
	return &Ledger{orders: append([]domain.Order(nil), orders...)}
}

// Append adds a completed order to the end of the ledger.
func (l *Ledger) Append(order domain.Order) {
	l.orders = append(l.orders, order)
}

func (l *Ledger) Len() int { return len(l.orders) }

// Orders returns a snapshot of the full ledger in append order.
func (l *Ledger) Orders() []domain.Order {
	return append([]domain.Order(nil), l.orders...)
}

// Get returns the order with the given id.
func (l *Ledger) Get(id string) (domain.Order, bool) {
	for i := range l.orders {
		if l.orders[i].ID == id {
			return l.orders[i], true
		}
	}
	return domain.Order{}, false
}

// Recent returns up to n most recent orders, newest first.
func (l *Ledger) Recent(n int) []domain.Order {
	if n > len(l.orders) {
		n = len(l.orders)
	}
	out := make([]domain.Order, 0, n)
	for i := len(l.orders) - 1; i >= len(l.orders)-n; i-- {
		out = append(out, l.orders[i])
	}
	return out
}

// Between returns orders with from <= date < to, in append order. Zero
// bounds are open.
func (l *Ledger) Between(from, to time.Time) []domain.Order {
	var out []domain.Order
	for _, o := range l.orders {
		if !from.IsZero() && o.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !o.Date.Before(to) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Summary aggregates revenue figures for the dashboard.
type Summary struct {
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	AverageOrder float64 `json:"average_order"`
	TotalItems   int     `json:"total_items"`
}

// Summarize computes ledger aggregates. An empty ledger yields zeros.
func (l *Ledger) Summarize() Summary {
	s := Summary{TotalSales: len(l.orders)}
	if len(l.orders) == 0 {
		return s
	}
	totals := make([]float64, 0, len(l.orders))
	for _, o := range l.orders {
		totals = append(totals, o.Total)
		s.TotalItems += o.ItemCount()
	}
	s.TotalRevenue, _ = stats.Sum(totals)
	s.AverageOrder, _ = stats.Mean(totals)
	return s
}
