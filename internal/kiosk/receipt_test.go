package kiosk

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aminegames/gamekiosk/internal/domain"
)

func TestReceipt(t *testing.T) {
	order := domain.Order{
		ID:   "AGS-20260831-100000",
		Date: time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local),
		Items: []domain.OrderItem{
			{GameID: 1, Name: "FIFA 23", Platform: "PS5", Price: 50, Quantity: 2},
			{GameID: 2, Name: "Halo Infinite", Platform: "XBOX Series", Price: 100, Quantity: 1},
		},
		Subtotal: 200,
		Discount: 20,
		Total:    180,
		Status:   domain.OrderStatusCompleted,
	}

	lines := Receipt(order, domain.DefaultSettings())
	ticket := strings.Join(lines, "\n")

	assert.Equal(t, "Amine Games & Services", lines[0])
	assert.Contains(t, ticket, "AGS-20260831-100000")
	assert.Contains(t, ticket, "31/08/2026 10:00:00")
	assert.Contains(t, ticket, "FIFA 23 (x2)  100.00 DH")
	assert.Contains(t, ticket, "Sous-total: 200.00 DH")
	assert.Contains(t, ticket, "Remise (10%): -20.00 DH")
	assert.Contains(t, ticket, "TOTAL: 180.00 DH")
}

func TestReceiptWithoutDiscount(t *testing.T) {
	order := domain.Order{
		ID:       "AGS-20260831-110000",
		Date:     time.Date(2026, 8, 31, 11, 0, 0, 0, time.Local),
		Items:    []domain.OrderItem{{GameID: 1, Name: "FIFA 23", Price: 50, Quantity: 1}},
		Subtotal: 50,
		Total:    50,
	}

	ticket := strings.Join(Receipt(order, domain.DefaultSettings()), "\n")
	assert.NotContains(t, ticket, "Remise")
}
