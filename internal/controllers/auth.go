package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

const refreshCookieName = "refreshToken"

type AuthController struct {
	authService services.AuthServiceInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, jwtService service.JWTService, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, jwtService: jwtService, logger: logger}
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid registration payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	response, refreshToken, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctrl.setRefreshCookie(c, refreshToken)
	return utils.SuccessResponse(c, response, "registered", http.StatusCreated)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid login payload"), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	response, refreshToken, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctrl.setRefreshCookie(c, refreshToken)
	return utils.SuccessResponse(c, response, "logged in", http.StatusOK)
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.ErrUnauthorized, ctrl.logger)
	}

	response, refreshToken, err := ctrl.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	ctrl.setRefreshCookie(c, refreshToken)
	return utils.SuccessResponse(c, response, "token refreshed", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		if err := ctrl.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			ctrl.logger.Warn("logout: failed to revoke session", zap.Error(err))
		}
	}

	ctrl.clearRefreshCookie(c)
	return utils.SuccessResponse(c, nil, "logged out", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	profileID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	profile, err := ctrl.authService.Me(c.Request().Context(), profileID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, profile, "profile fetched", http.StatusOK)
}

func (ctrl *AuthController) setRefreshCookie(c echo.Context, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     "/",
		Expires:  time.Now().Add(ctrl.jwtService.GetRefreshTokenTTL()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (ctrl *AuthController) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
