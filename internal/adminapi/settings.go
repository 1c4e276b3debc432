package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerSettingsRoutes() {
	webserver.ApiGET("/admin/settings", getSettings)
	webserver.ApiPUT("/admin/settings", saveSettings)
	webserver.ApiPOST("/admin/settings/reset", resetSettings)
}

func getSettings(c echo.Context) error {
	return ok(c, webserver.App(c).Session().Settings())
}

// saveSettings accepts a partial settings document: known fields overwrite
// the current values, everything else keeps its value.
func saveSettings(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}

	app := webserver.App(c)
	settings := app.Session().Settings()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &settings,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build settings decoder", err.Error())
	}
	if err := decoder.Decode(payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Settings values have the wrong type", err.Error())
	}

	app.Session().SaveSettings(settings)
	applied := app.Session().Settings()
	app.Watchdog().SetTimeout(applied.InactivityTimeout)
	return ok(c, applied)
}

func resetSettings(c echo.Context) error {
	app := webserver.App(c)
	defaults := domain.DefaultSettings()
	app.Session().SaveSettings(defaults)
	app.Watchdog().SetTimeout(defaults.InactivityTimeout)
	return ok(c, defaults)
}
