package adminapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerSalesRoutes() {
	webserver.ApiGET("/admin/sales", listSales)
	webserver.ApiGET("/admin/sales/export", exportSales)
	webserver.ApiGET("/admin/sales/export.csv", exportSalesCSV)
	webserver.ApiGET("/admin/sales/:id", getSale)
}

// listSales returns the ledger newest-first, optionally bounded by from/to
// query params (any common date format).
func listSales(c echo.Context) error {
	page, pageSize := parsePagination(c)
	session := webserver.App(c).Session()

	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := dateparse.ParseAny(v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse 'from' date", err.Error())
		}
		from = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := dateparse.ParseAny(v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse 'to' date", err.Error())
		}
		to = t
	}

	orders := session.OrdersBetween(from, to)
	// newest first
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return paged(c, pageSlice(orders, page, pageSize), int64(len(orders)), page, pageSize)
}

func getSale(c echo.Context) error {
	order, found := webserver.App(c).Session().GetOrder(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	}
	return ok(c, order)
}

// exportSales downloads the full ledger as a JSON document.
func exportSales(c echo.Context) error {
	session := webserver.App(c).Session()
	orders := session.Orders()
	summary := session.LedgerSummary()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="sales-%s.json"`, time.Now().Format("2006-01-02")))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sales":        orders,
		"exportDate":   time.Now(),
		"totalSales":   summary.TotalSales,
		"totalRevenue": summary.TotalRevenue,
	})
}

// salesCSVRow flattens one order line for the CSV export.
type salesCSVRow struct {
	OrderID  string  `csv:"order_id"`
	Date     string  `csv:"date"`
	GameID   int64   `csv:"game_id"`
	Name     string  `csv:"name"`
	Platform string  `csv:"platform"`
	Price    float64 `csv:"unit_price"`
	Quantity int     `csv:"quantity"`
	Total    float64 `csv:"order_total"`
}

// exportSalesCSV downloads the ledger as CSV, one row per order line.
func exportSalesCSV(c echo.Context) error {
	orders := webserver.App(c).Session().Orders()

	rows := make([]salesCSVRow, 0, len(orders))
	for _, o := range orders {
		for _, it := range o.Items {
			rows = append(rows, salesCSVRow{
				OrderID:  o.ID,
				Date:     o.Date.Format(time.RFC3339),
				GameID:   it.GameID,
				Name:     it.Name,
				Platform: it.Platform,
				Price:    it.Price,
				Quantity: it.Quantity,
				Total:    o.Total,
			})
		}
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to build CSV export", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="sales-%s.csv"`, time.Now().Format("2006-01-02")))
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
