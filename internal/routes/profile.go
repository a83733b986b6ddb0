package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runProfileRouter(secure *echo.Group, ctrl *controllers.ProfileController) {
	secure.GET("/profiles", ctrl.GetProfiles)
	secure.GET("/profiles/:id", ctrl.FindProfile)
	secure.PUT("/profiles/me", ctrl.UpdateProfile)
}
