package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/webserver"
	"github.com/aminegames/gamekiosk/pkg/metrics"
)

// Games with stock under this count show up in the low-stock alert.
const lowStockThreshold = 3

func registerDashboardRoutes() {
	webserver.ApiGET("/admin/dashboard", getDashboard)
}

// getDashboard returns the admin landing page aggregates: inventory size,
// sales figures, low stock alerts, recent orders and process gauges.
func getDashboard(c echo.Context) error {
	session := webserver.App(c).Session()
	summary := session.LedgerSummary()

	return ok(c, map[string]interface{}{
		"total_games":   session.GameCount(),
		"total_sales":   summary.TotalSales,
		"total_revenue": summary.TotalRevenue,
		"average_order": summary.AverageOrder,
		"total_items":   summary.TotalItems,
		"low_stock":     session.LowStockCount(lowStockThreshold),
		"recent_sales":  session.RecentOrders(5),
		"system": map[string]int64{
			"cpu_use_percent": metrics.LatestGauge("system_cpuuse") / 100,
			"mem_use_mb":      metrics.LatestGauge("system_memuse"),
			"process_mem_mb":  metrics.LatestGauge("gamekiosk_memuse"),
		},
	})
}
