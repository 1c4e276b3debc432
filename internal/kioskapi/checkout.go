package kioskapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/kiosk"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerCheckoutRoutes() {
	webserver.ApiPOST("/kiosk/checkout", confirmOrder)
	webserver.ApiGET("/kiosk/ticket/:id", getTicket)
	webserver.ApiPOST("/kiosk/reset", resetKiosk)
	webserver.ApiGET("/kiosk/status", kioskStatus)
}

func confirmOrder(c echo.Context) error {
	order, err := webserver.App(c).Session().Checkout()
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, order)
}

// getTicket renders the printable receipt for a completed order.
func getTicket(c echo.Context) error {
	app := webserver.App(c)
	order, found := app.Session().GetOrder(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	}
	return ok(c, map[string]interface{}{
		"order": order,
		"lines": kiosk.Receipt(order, app.Session().Settings()),
	})
}

// resetKiosk clears the cart and the countdown, returning the kiosk to the
// welcome screen state.
func resetKiosk(c echo.Context) error {
	app := webserver.App(c)
	app.Session().ClearCart()
	app.Watchdog().Reset()
	return ok(c, map[string]interface{}{"reset": true})
}

// kioskStatus reports the header data the kiosk polls every second.
func kioskStatus(c echo.Context) error {
	app := webserver.App(c)
	settings := app.Session().Settings()
	return ok(c, map[string]interface{}{
		"store_name":         settings.StoreName,
		"min_items":          settings.MinItems,
		"discount_percent":   settings.DiscountPercent,
		"inactivity_seconds": app.Watchdog().Remaining(),
	})
}
