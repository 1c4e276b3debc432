package kioskapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerCartRoutes() {
	webserver.ApiGET("/kiosk/cart", getCart)
	webserver.ApiPOST("/kiosk/cart/items/:id", addCartItem)
	webserver.ApiDELETE("/kiosk/cart/items/:id", removeCartItem)
	webserver.ApiPUT("/kiosk/cart/items/:id", changeCartItem)
}

type quantityPayload struct {
	Delta int `json:"delta" validate:"required"`
}

func parseGameID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func getCart(c echo.Context) error {
	return ok(c, webserver.App(c).Session().Cart())
}

func addCartItem(c echo.Context) error {
	id, err := parseGameID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID")
	}
	view, err := webserver.App(c).Session().AddToCart(id)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, view)
}

func removeCartItem(c echo.Context) error {
	id, err := parseGameID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID")
	}
	return ok(c, webserver.App(c).Session().RemoveFromCart(id))
}

func changeCartItem(c echo.Context) error {
	id, err := parseGameID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID")
	}
	var payload quantityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity change")
	}
	if payload.Delta == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "delta must be non-zero")
	}
	view, err := webserver.App(c).Session().ChangeQuantity(id, payload.Delta)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, view)
}
