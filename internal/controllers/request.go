package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	boardService   services.BoardServiceInterface
	logger         *zap.Logger
}

func NewRequestController(
	requestService services.RequestServiceInterface,
	boardService services.BoardServiceInterface,
	logger *zap.Logger,
) *RequestController {
	return &RequestController{
		requestService: requestService,
		boardService:   boardService,
		logger:         logger,
	}
}

func parseFilter(c echo.Context) dto.RequestFilterDTO {
	return dto.RequestFilterDTO{
		Stage:  c.QueryParam("stage"),
		Type:   c.QueryParam("type"),
		Search: c.QueryParam("search"),
	}
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError("invalid request id")
	}
	return id, nil
}

func (ctrl *RequestController) GetRequests(c echo.Context) error {
	requests, err := ctrl.requestService.GetRequests(c.Request().Context(), parseFilter(c))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, requests, "requests fetched", http.StatusOK)
}

func (ctrl *RequestController) GetBoard(c echo.Context) error {
	columns, err := ctrl.boardService.GetBoard(c.Request().Context(), parseFilter(c))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, columns, "board fetched", http.StatusOK)
}

func (ctrl *RequestController) FindRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.FindRequest(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "request fetched", http.StatusOK)
}

func (ctrl *RequestController) CreateRequest(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actorID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.CreateRequest(c.Request().Context(), payload, actorID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "request created", http.StatusCreated)
}

func (ctrl *RequestController) UpdateRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request payload"), ctrl.logger)
	}

	request, err := ctrl.requestService.UpdateRequest(c.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "request updated", http.StatusOK)
}

func (ctrl *RequestController) DeleteRequest(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.requestService.DeleteRequest(c.Request().Context(), id); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "request deleted", http.StatusOK)
}

func (ctrl *RequestController) Transition(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.TransitionRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid transition payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actorID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.Transition(c.Request().Context(), id, entities.Stage(payload.Stage), actorID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, request, "stage changed", http.StatusOK)
}

func (ctrl *RequestController) GetHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	history, err := ctrl.requestService.GetHistory(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, history, "history fetched", http.StatusOK)
}
