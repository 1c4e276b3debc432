package kioskapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminegames/gamekiosk/config"
	"github.com/aminegames/gamekiosk/internal/kiosk"
	"github.com/aminegames/gamekiosk/internal/store"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

type testAppCtx struct {
	cfg      *config.AppConfig
	session  *kiosk.Session
	watchdog *kiosk.Watchdog
}

func (a *testAppCtx) Config() *config.AppConfig { return a.cfg }
func (a *testAppCtx) Session() *kiosk.Session   { return a.session }
func (a *testAppCtx) Watchdog() *kiosk.Watchdog { return a.watchdog }

var (
	initOnce sync.Once
	testCtx  = &testAppCtx{cfg: config.DefaultAppConfig}
	testEcho *echo.Echo
)

// newTestServer resets the shared server to a fresh kiosk session. Routes
// register against a package-global group, so the echo engine is built once.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	initOnce.Do(func() {
		ws := webserver.Init(testCtx)
		InitRouter()
		testEcho = ws.Echo()
	})
	session := kiosk.NewSession(store.NewMemoryStorage(), nil, "AGS")
	require.NoError(t, session.Load(""))
	testCtx.session = session
	testCtx.watchdog = kiosk.NewWatchdog(900, nil)
	return testEcho
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var payload map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestBrowseCatalog(t *testing.T) {
	e := newTestServer(t)

	rec, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog?perPage=2&page=1&sort=name-asc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := payload["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["total_pages"])
	assert.EqualValues(t, 4, data["total_items"])
	assert.Len(t, data["items"], 2)

	t.Run("platform filter", func(t *testing.T) {
		_, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog?platform=PS5", "")
		data := payload["data"].(map[string]interface{})
		assert.EqualValues(t, 2, data["total_items"])
	})

	t.Run("page past the end clamps to the last page", func(t *testing.T) {
		_, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog?perPage=3&page=99", "")
		data := payload["data"].(map[string]interface{})
		assert.EqualValues(t, 2, data["page"])
		assert.Len(t, data["items"], 1)
	})
}

func TestSearchRequiresQuery(t *testing.T) {
	e := newTestServer(t)

	rec, _ := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog/search?q=fifa", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["count"])
	assert.Len(t, data["results"], 1)
}

func TestGetGame(t *testing.T) {
	e := newTestServer(t)

	rec, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	game := payload["data"].(map[string]interface{})
	assert.Equal(t, "God of War Ragnarök", game["name"])

	rec, _ = doRequest(t, e, http.MethodGet, "/api/v1/kiosk/catalog/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	e := newTestServer(t)

	rec, payload := doRequest(t, e, http.MethodPost, "/api/v1/kiosk/cart/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	totals := data["totals"].(map[string]interface{})
	assert.EqualValues(t, 1, totals["item_count"])

	t.Run("quantity change", func(t *testing.T) {
		rec, payload := doRequest(t, e, http.MethodPut, "/api/v1/kiosk/cart/items/1", `{"delta":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		totals := payload["data"].(map[string]interface{})["totals"].(map[string]interface{})
		assert.EqualValues(t, 3, totals["item_count"])
	})

	t.Run("zero delta is rejected", func(t *testing.T) {
		rec, _ := doRequest(t, e, http.MethodPut, "/api/v1/kiosk/cart/items/1", `{"delta":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("over stock", func(t *testing.T) {
		rec, payload := doRequest(t, e, http.MethodPut, "/api/v1/kiosk/cart/items/1", `{"delta":99}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "STOCK_EXCEEDED", payload["code"])
	})

	t.Run("remove one unit", func(t *testing.T) {
		rec, payload := doRequest(t, e, http.MethodDelete, "/api/v1/kiosk/cart/items/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		totals := payload["data"].(map[string]interface{})["totals"].(map[string]interface{})
		assert.EqualValues(t, 2, totals["item_count"])
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	e := newTestServer(t)

	t.Run("below minimum", func(t *testing.T) {
		_, _ = doRequest(t, e, http.MethodPost, "/api/v1/kiosk/cart/items/1", "")
		rec, payload := doRequest(t, e, http.MethodPost, "/api/v1/kiosk/checkout", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BELOW_MINIMUM", payload["code"])
	})

	t.Run("successful checkout and ticket", func(t *testing.T) {
		_, _ = doRequest(t, e, http.MethodPut, "/api/v1/kiosk/cart/items/1", `{"delta":2}`)
		rec, payload := doRequest(t, e, http.MethodPost, "/api/v1/kiosk/checkout", "")
		require.Equal(t, http.StatusOK, rec.Code)

		order := payload["data"].(map[string]interface{})
		orderID := order["id"].(string)
		assert.True(t, strings.HasPrefix(orderID, "AGS-"))

		rec, payload = doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/v1/kiosk/ticket/%s", orderID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		ticket := payload["data"].(map[string]interface{})
		assert.NotEmpty(t, ticket["lines"])
	})
}

func TestResetAndStatus(t *testing.T) {
	e := newTestServer(t)

	_, _ = doRequest(t, e, http.MethodPost, "/api/v1/kiosk/cart/items/1", "")

	rec, _ := doRequest(t, e, http.MethodPost, "/api/v1/kiosk/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, payload := doRequest(t, e, http.MethodGet, "/api/v1/kiosk/cart", "")
	totals := payload["data"].(map[string]interface{})["totals"].(map[string]interface{})
	assert.EqualValues(t, 0, totals["item_count"])

	_, payload = doRequest(t, e, http.MethodGet, "/api/v1/kiosk/status", "")
	status := payload["data"].(map[string]interface{})
	assert.Equal(t, "Amine Games & Services", status["store_name"])
	assert.EqualValues(t, 3, status["min_items"])
}
