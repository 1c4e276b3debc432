// Package kioskapi exposes the customer-facing kiosk surface: catalog
// browsing, cart mutations and checkout. The rendering front-end is a thin
// client over these endpoints.
package kioskapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aminegames/gamekiosk/internal/domain"
)

// InitRouter registers all kiosk routes.
func InitRouter() {
	registerCatalogRoutes()
	registerCartRoutes()
	registerCheckoutRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
	})
}

// failDomain maps engine errors onto HTTP failures the front-end renders.
func failDomain(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		return fail(c, http.StatusConflict, "OUT_OF_STOCK", "This game is out of stock")
	case errors.Is(err, domain.ErrStockExceeded):
		return fail(c, http.StatusConflict, "STOCK_EXCEEDED", "Not enough stock for the requested quantity")
	case errors.Is(err, domain.ErrBelowMinimum):
		return fail(c, http.StatusBadRequest, "BELOW_MINIMUM", "Cart does not reach the minimum item count")
	case errors.Is(err, domain.ErrGameNotFound):
		return fail(c, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found")
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
