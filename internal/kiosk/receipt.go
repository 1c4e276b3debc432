package kiosk

import (
	"fmt"

	"github.com/aminegames/gamekiosk/internal/domain"
)

// Receipt renders the printable sales ticket for an order as plain text
// lines; the kiosk front-end sends them to the receipt printer as-is.
func Receipt(order domain.Order, settings domain.Settings) []string {
	lines := []string{
		settings.StoreName,
		"Ticket de vente",
		fmt.Sprintf("N°: %s", order.ID),
		fmt.Sprintf("Date: %s", order.Date.Format("02/01/2006 15:04:05")),
		"--------------------------------",
	}
	for _, it := range order.Items {
		lines = append(lines, fmt.Sprintf("%s (x%d)  %.2f DH", it.Name, it.Quantity, it.LineTotal()))
	}
	lines = append(lines,
		"--------------------------------",
		fmt.Sprintf("Sous-total: %.2f DH", order.Subtotal),
	)
	if order.Discount > 0 {
		lines = append(lines, fmt.Sprintf("Remise (%d%%): -%.2f DH", settings.DiscountPercent, order.Discount))
	}
	lines = append(lines,
		fmt.Sprintf("TOTAL: %.2f DH", order.Total),
		"Merci pour votre achat !",
	)
	return lines
}
