package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type CalendarController struct {
	calendarService services.CalendarServiceInterface
	logger          *zap.Logger
}

func NewCalendarController(calendarService services.CalendarServiceInterface, logger *zap.Logger) *CalendarController {
	return &CalendarController{calendarService: calendarService, logger: logger}
}

// GetMonth returns the preventive-maintenance calendar for one month.
// Defaults to the current month when year/month are absent.
func (ctrl *CalendarController) GetMonth(c echo.Context) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid year"), ctrl.logger)
		}
		year = parsed
	}
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid month"), ctrl.logger)
		}
		month = parsed
	}

	calendar, err := ctrl.calendarService.GetMonth(c.Request().Context(), year, month)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, calendar, "calendar fetched", http.StatusOK)
}

func (ctrl *CalendarController) GetDay(c echo.Context) error {
	day, err := ctrl.calendarService.GetDay(c.Request().Context(), c.Param("date"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, day, "calendar day fetched", http.StatusOK)
}
