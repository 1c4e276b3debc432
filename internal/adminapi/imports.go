package adminapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/aminegames/gamekiosk/internal/webserver"
)

func registerImportRoutes() {
	webserver.ApiGET("/admin/import/template.xlsx", downloadTemplateXLSX)
	webserver.ApiGET("/admin/import/template.csv", downloadTemplateCSV)
	// Bulk Excel import of the catalog is not wired to the inventory yet;
	// the operator keeps using per-game create/update.
	webserver.ApiPOST("/admin/import/excel", webserver.NotImplemented)
}

// templateRow is one example line of the bulk import template.
type templateRow struct {
	Name        string `csv:"Nom"`
	Platform    string `csv:"Plateforme"`
	Category    string `csv:"Catégorie"`
	Price       string `csv:"Prix"`
	Stock       string `csv:"Stock"`
	Image       string `csv:"Image"`
	Description string `csv:"Description"`
}

func templateRows() []templateRow {
	return []templateRow{
		{"God of War Ragnarök", "PS5", "Action-Aventure", "300", "5", "god-of-war.jpg", "Jeu d'action-aventure"},
		{"FIFA 23", "PS5", "Sport", "250", "8", "fifa-23.jpg", "Jeu de football"},
		{"Halo Infinite", "XBOX Series", "FPS", "280", "6", "halo-infinite.jpg", "Jeu de tir"},
	}
}

// downloadTemplateXLSX builds the example spreadsheet operators fill in for
// a bulk inventory import.
func downloadTemplateXLSX(c echo.Context) error {
	headers := []string{"Nom", "Plateforme", "Catégorie", "Prix", "Stock", "Image", "Description"}
	xlsx := excelize.NewFile()
	for i, h := range headers {
		xlsx.SetCellValue("Sheet1", fmt.Sprintf("%c1", 'A'+i), h)
	}
	for r, row := range templateRows() {
		values := []string{row.Name, row.Platform, row.Category, row.Price, row.Stock, row.Image, row.Description}
		for i, v := range values {
			xlsx.SetCellValue("Sheet1", fmt.Sprintf("%c%d", 'A'+i, r+2), v)
		}
	}

	var buf bytes.Buffer
	if err := xlsx.Write(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "TEMPLATE_FAILED", "Failed to build template", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="template-jeux.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func downloadTemplateCSV(c echo.Context) error {
	rows := templateRows()
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TEMPLATE_FAILED", "Failed to build template", err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="template-jeux.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(out))
}
