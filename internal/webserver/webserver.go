package webserver

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/aminegames/gamekiosk/config"
	"github.com/aminegames/gamekiosk/internal/kiosk"
)

const appContextKey = "gamekiosk_app"

// AppContext is what route handlers may reach through the request context.
type AppContext interface {
	Config() *config.AppConfig
	Session() *kiosk.Session
	Watchdog() *kiosk.Watchdog
}

type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	appCtx AppContext
}

var server *WebServer

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Init builds the echo server and the /api/v1 group all routes hang off.
func Init(appCtx AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(zapLoggerMiddleware())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, appCtx)
			return next(c)
		}
	})

	server = &WebServer{
		root:   e,
		api:    e.Group("/api/v1"),
		appCtx: appCtx,
	}
	return server
}

// Instance returns the initialized server.
func Instance() *WebServer {
	return server
}

// Start blocks serving HTTP until the server is shut down.
func (s *WebServer) Start() error {
	cfg := s.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	return s.root.Start(addr)
}

// Echo exposes the underlying engine, used by tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func zapLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status))
			return err
		}
	}
}

// App returns the application context injected into the request.
func App(c echo.Context) AppContext {
	return c.Get(appContextKey).(AppContext)
}

// Route registrars; handlers register themselves against the API group.

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// NotImplemented is the shared handler for stubbed endpoints.
func NotImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"code":    "NOT_IMPLEMENTED",
		"message": "This operation is not available yet",
	})
}
