package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runReportRouter(secure *echo.Group, ctrl *controllers.ReportController) {
	secure.GET("/reports", ctrl.GetReport)
}
