package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(secure *echo.Group, ctrl *controllers.RequestController) {
	secure.GET("/requests", ctrl.GetRequests)
	secure.GET("/requests/board", ctrl.GetBoard)
	secure.GET("/requests/:id", ctrl.FindRequest)
	secure.POST("/requests", ctrl.CreateRequest)
	secure.PUT("/requests/:id", ctrl.UpdateRequest)
	secure.DELETE("/requests/:id", ctrl.DeleteRequest)
	secure.POST("/requests/:id/transition", ctrl.Transition)
	secure.GET("/requests/:id/history", ctrl.GetHistory)
}
