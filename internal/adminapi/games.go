package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

type gamePayload struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Platform    string  `json:"platform" validate:"required,min=1,max=50"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Popularity  *int    `json:"popularity" validate:"omitempty,gte=0,lte=100"`
	Image       string  `json:"image" validate:"omitempty,max=255"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
}

func registerGameRoutes() {
	webserver.ApiGET("/admin/games", listGames)
	webserver.ApiGET("/admin/games/:id", getGame)
	webserver.ApiPOST("/admin/games", createGame)
	webserver.ApiPUT("/admin/games/:id", updateGame)
	webserver.ApiDELETE("/admin/games/:id", deleteGame)
}

func listGames(c echo.Context) error {
	page, pageSize := parsePagination(c)
	session := webserver.App(c).Session()

	games := session.Games()
	if q := strings.ToLower(strings.TrimSpace(c.QueryParam("q"))); q != "" {
		var filtered []domain.Game
		for _, g := range games {
			if strings.Contains(strings.ToLower(g.Name), q) ||
				strings.Contains(strings.ToLower(g.Platform), q) ||
				strings.Contains(strings.ToLower(g.Category), q) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	return paged(c, pageSlice(games, page, pageSize), int64(len(games)), page, pageSize)
}

func getGame(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID", nil)
	}
	game, found := webserver.App(c).Session().GetGame(id)
	if !found {
		return fail(c, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
	}
	return ok(c, game)
}

func (p *gamePayload) toGame(id int64) domain.Game {
	popularity := 50
	if p.Popularity != nil {
		popularity = *p.Popularity
	}
	image := strings.TrimSpace(p.Image)
	if image == "" {
		image = "default.jpg"
	}
	return domain.Game{
		ID:          id,
		Name:        strings.TrimSpace(p.Name),
		Platform:    strings.TrimSpace(p.Platform),
		Category:    strings.TrimSpace(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		Popularity:  popularity,
		Image:       image,
		Description: strings.TrimSpace(p.Description),
	}
}

func createGame(c echo.Context) error {
	var payload gamePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse game", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	game, err := webserver.App(c).Session().AddGame(payload.toGame(0))
	if err != nil {
		return fail(c, http.StatusConflict, "DUPLICATE_GAME", "Game id already exists", nil)
	}
	return ok(c, game)
}

func updateGame(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID", nil)
	}
	var payload gamePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse game", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	session := webserver.App(c).Session()
	existing, found := session.GetGame(id)
	if !found {
		return fail(c, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
	}
	game := payload.toGame(id)
	if payload.Popularity == nil {
		game.Popularity = existing.Popularity
	}
	if err := session.UpdateGame(game); err != nil {
		return fail(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update game", err.Error())
	}
	return ok(c, game)
}

func deleteGame(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid game ID", nil)
	}
	if err := webserver.App(c).Session().DeleteGame(id); err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return fail(c, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete game", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
