package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/ledger"
)

func TestOrderIDGenerator(t *testing.T) {
	ids := NewOrderIDGenerator("AGS")
	at := time.Date(2026, 8, 31, 14, 30, 5, 0, time.Local)

	assert.Equal(t, "AGS-20260831-143005", ids.Next(at))

	t.Run("same second gets a suffix", func(t *testing.T) {
		assert.Equal(t, "AGS-20260831-143005-2", ids.Next(at))
		assert.Equal(t, "AGS-20260831-143005-3", ids.Next(at))
	})

	t.Run("next second resets", func(t *testing.T) {
		assert.Equal(t, "AGS-20260831-143006", ids.Next(at.Add(time.Second)))
	})

	t.Run("empty prefix falls back to default", func(t *testing.T) {
		fallback := NewOrderIDGenerator("")
		assert.Equal(t, "AGS-20260831-143005", fallback.Next(at))
	})
}

func TestCheckout(t *testing.T) {
	settings := domain.DefaultSettings()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)

	t.Run("below minimum leaves everything untouched", func(t *testing.T) {
		cat := newTestCatalog(t)
		led := ledger.New(nil)
		c := New()
		require.NoError(t, c.Add(cat, 1))

		_, err := c.Checkout(cat, led, settings, NewOrderIDGenerator("AGS"), now)
		assert.ErrorIs(t, err, domain.ErrBelowMinimum)
		assert.Equal(t, 1, c.ItemCount())
		assert.Zero(t, led.Len())
		g, _ := cat.Get(1)
		assert.Equal(t, 5, g.Stock)
	})

	t.Run("successful checkout", func(t *testing.T) {
		cat := newTestCatalog(t)
		led := ledger.New(nil)
		c := New()
		require.NoError(t, c.Add(cat, 1))
		require.NoError(t, c.Add(cat, 1))
		require.NoError(t, c.Add(cat, 2))
		expected := c.Totals(cat, settings)

		order, err := c.Checkout(cat, led, settings, NewOrderIDGenerator("AGS"), now)
		require.NoError(t, err)

		assert.Equal(t, "AGS-20260831-100000", order.ID)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.Equal(t, expected.Subtotal, order.Subtotal)
		assert.Equal(t, expected.Discount, order.Discount)
		assert.Equal(t, expected.Total, order.Total)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "God of War Ragnarök", order.Items[0].Name)
		assert.Equal(t, 2, order.Items[0].Quantity)

		// stock decremented, ledger appended, cart cleared
		g1, _ := cat.Get(1)
		assert.Equal(t, 3, g1.Stock)
		g2, _ := cat.Get(2)
		assert.Equal(t, 1, g2.Stock)
		assert.Equal(t, 1, led.Len())
		assert.True(t, c.IsEmpty())

		stored, found := led.Get(order.ID)
		require.True(t, found)
		assert.Equal(t, order.Total, stored.Total)
	})

	t.Run("deleted game aborts before any mutation", func(t *testing.T) {
		cat := newTestCatalog(t)
		led := ledger.New(nil)
		c := New()
		require.NoError(t, c.Add(cat, 1))
		require.NoError(t, c.Add(cat, 1))
		require.NoError(t, c.Add(cat, 1))
		require.NoError(t, c.Add(cat, 2))
		require.NoError(t, cat.Delete(2))

		_, err := c.Checkout(cat, led, settings, NewOrderIDGenerator("AGS"), now)
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
		assert.Zero(t, led.Len())
		assert.Equal(t, 4, c.ItemCount())
		g, _ := cat.Get(1)
		assert.Equal(t, 5, g.Stock)
	})
}
