package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (ctrl *ReportController) GetReport(c echo.Context) error {
	kind := c.QueryParam("kind")
	format := c.QueryParam("format")

	report, err := ctrl.reportService.GetReport(c.Request().Context(), kind)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	switch format {
	case "csv":
		return ctrl.respondWithCSV(c, report)
	case "xlsx":
		return ctrl.respondWithXLSX(c, report)
	default:
		return utils.SuccessResponse(c, report, "report generated", http.StatusOK)
	}
}

// reportRows flattens a report into its export rows. The completion trend is
// exported as Month/Completed/Remaining/Total, every other kind as Name/Count.
func reportRows(report *dto.ReportDTO) [][]string {
	if report.Kind == services.ReportRequestCompletion {
		rows := make([][]string, 0, len(report.Trend))
		for _, row := range report.Trend {
			rows = append(rows, []string{
				row.Month,
				strconv.Itoa(row.Completed),
				strconv.Itoa(row.Remaining),
				strconv.Itoa(row.Total),
			})
		}
		return rows
	}

	rows := make([][]string, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, []string{row.Name, strconv.Itoa(row.Count)})
	}
	return rows
}

func (ctrl *ReportController) respondWithCSV(c echo.Context, report *dto.ReportDTO) error {
	fileName := fmt.Sprintf("report-%s-%s.csv", report.Kind, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response().Writer)
	if err := writer.Write([]string{"Report Type", report.Kind}); err != nil {
		return err
	}
	if err := writer.Write([]string{}); err != nil {
		return err
	}
	if err := writer.WriteAll(reportRows(report)); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, report *dto.ReportDTO) error {
	f := excelize.NewFile()
	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Report Type", report.Kind}
	f.SetSheetRow(sheet, "A1", &header)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "B1", style)

	for i, row := range reportRows(report) {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "A", "A", 30)

	fileName := fmt.Sprintf("report-%s-%s.xlsx", report.Kind, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
