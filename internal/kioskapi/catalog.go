package kioskapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerCatalogRoutes() {
	webserver.ApiGET("/kiosk/catalog", browseCatalog)
	webserver.ApiGET("/kiosk/catalog/search", searchCatalog)
	webserver.ApiGET("/kiosk/catalog/:id", getGame)
	webserver.ApiGET("/kiosk/platforms", listPlatforms)
	webserver.ApiGET("/kiosk/categories/:platform", listCategories)
}

// browseCatalog returns one page of the filtered, sorted catalog.
func browseCatalog(c echo.Context) error {
	app := webserver.App(c)

	platform := strings.TrimSpace(c.QueryParam("platform"))
	category := strings.TrimSpace(c.QueryParam("category"))

	maxPrice := 0.0
	if v := c.QueryParam("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "maxPrice must be a non-negative number")
		}
		maxPrice = p
	}

	sortKey := domain.SortKey(c.QueryParam("sort"))
	if sortKey == "" {
		sortKey = domain.SortNameAsc
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	pageSize := app.Config().Kiosk.ItemsPerPage
	if v := c.QueryParam("perPage"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}

	result := app.Session().Browse(platform, category, maxPrice, sortKey, page, pageSize)
	// Clamp out-of-range pages for the UI rather than erroring.
	if result.Page > result.TotalPages && result.TotalPages > 0 {
		result = app.Session().Browse(platform, category, maxPrice, sortKey, result.TotalPages, pageSize)
	}
	return ok(c, result)
}

func searchCatalog(c echo.Context) error {
	app := webserver.App(c)
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Search query is required")
	}
	results := app.Session().Search(query)
	return ok(c, map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func getGame(c echo.Context) error {
	app := webserver.App(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID")
	}
	game, found := app.Session().GetGame(id)
	if !found {
		return fail(c, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found")
	}
	return ok(c, game)
}

func listPlatforms(c echo.Context) error {
	app := webserver.App(c)
	return ok(c, map[string]interface{}{
		"platforms":  app.Session().PlatformCounts(),
		"categories": app.Session().Categories(),
	})
}

func listCategories(c echo.Context) error {
	app := webserver.App(c)
	platform := c.Param("platform")
	return ok(c, app.Session().CategoriesForPlatform(platform))
}
