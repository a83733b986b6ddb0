package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(secure *echo.Group, ctrl *controllers.TeamController) {
	secure.GET("/teams", ctrl.GetTeams)
	secure.GET("/teams/:id", ctrl.FindTeam)
	secure.POST("/teams", ctrl.CreateTeam)
	secure.PUT("/teams/:id", ctrl.UpdateTeam)
	secure.DELETE("/teams/:id", ctrl.DeleteTeam)
}
