package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
	logger         *zap.Logger
}

func NewProfileController(profileService services.ProfileServiceInterface, logger *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

func (ctrl *ProfileController) GetProfiles(c echo.Context) error {
	profiles, err := ctrl.profileService.GetProfiles(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, profiles, "profiles fetched", http.StatusOK)
}

func (ctrl *ProfileController) FindProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid profile id"), ctrl.logger)
	}

	profile, err := ctrl.profileService.FindProfile(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, profile, "profile fetched", http.StatusOK)
}

// UpdateProfile lets the authenticated user change their own profile.
func (ctrl *ProfileController) UpdateProfile(c echo.Context) error {
	profileID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateProfileDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid profile payload"), ctrl.logger)
	}

	profile, err := ctrl.profileService.UpdateProfile(c.Request().Context(), profileID, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, profile, "profile updated", http.StatusOK)
}
