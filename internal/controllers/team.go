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

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: teamService, logger: logger}
}

func (ctrl *TeamController) GetTeams(c echo.Context) error {
	teams, err := ctrl.teamService.GetTeams(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, teams, "teams fetched", http.StatusOK)
}

func (ctrl *TeamController) FindTeam(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team id"), ctrl.logger)
	}

	team, err := ctrl.teamService.FindTeam(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, team, "team fetched", http.StatusOK)
}

func (ctrl *TeamController) CreateTeam(c echo.Context) error {
	var payload dto.CreateTeamDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	team, err := ctrl.teamService.CreateTeam(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, team, "team created", http.StatusCreated)
}

func (ctrl *TeamController) UpdateTeam(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team id"), ctrl.logger)
	}

	var payload dto.UpdateTeamDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team payload"), ctrl.logger)
	}

	team, err := ctrl.teamService.UpdateTeam(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, team, "team updated", http.StatusOK)
}

func (ctrl *TeamController) DeleteTeam(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid team id"), ctrl.logger)
	}

	if err := ctrl.teamService.DeleteTeam(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "team deleted", http.StatusOK)
}
