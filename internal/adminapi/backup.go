package adminapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerBackupRoutes() {
	webserver.ApiGET("/admin/backup", exportBackup)
	webserver.ApiPOST("/admin/backup/restore", restoreBackup)
}

// exportBackup downloads the full kiosk state (games, sales, settings) as a
// single document. Restoring the same document reproduces the state exactly.
func exportBackup(c echo.Context) error {
	backup := webserver.App(c).Session().Backup()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="backup-%s.json"`, time.Now().Format("2006-01-02")))
	return c.JSON(http.StatusOK, backup)
}

// restoreBackup replaces the whole kiosk state from a backup document.
func restoreBackup(c echo.Context) error {
	var backup domain.Backup
	if err := c.Bind(&backup); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse backup document", err.Error())
	}
	if err := webserver.App(c).Session().Restore(backup); err != nil {
		if errors.Is(err, domain.ErrInvalidBackupFormat) {
			return fail(c, http.StatusBadRequest, "INVALID_BACKUP_FORMAT",
				"Backup must contain games, sales and settings", nil)
		}
		return fail(c, http.StatusInternalServerError, "RESTORE_FAILED", "Failed to restore backup", err.Error())
	}
	return ok(c, map[string]interface{}{
		"games":  len(backup.Games),
		"sales":  len(backup.Sales),
		"backup": backup.BackupDate,
	})
}
