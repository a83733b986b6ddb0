package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/websocket"
)

// InitRouter wires repositories, services and controllers and mounts every
// route group under /api.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	hub *websocket.Hub,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	bus := eventbus.New(logger)
	listeners.NewBoardRefreshListener(hub, logger).Register(bus)

	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	profileRepo := repositories.NewProfileRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn, logger)
	historyRepo := repositories.NewRequestHistoryRepository(dbConn)

	authService := services.NewAuthService(profileRepo, cacheRepo, jwtSvc, logger)
	profileService := services.NewProfileService(profileRepo)
	teamService := services.NewTeamService(teamRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, categoryRepo, logger)
	requestService := services.NewRequestService(requestRepo, historyRepo, txManager, bus, logger)
	boardService := services.NewBoardService(requestRepo)
	calendarService := services.NewCalendarService(requestRepo, cfg.Location())
	reportService := services.NewReportService(teamRepo, equipmentRepo, requestRepo, cfg.Location(), logger)
	dashboardService := services.NewDashboardService(teamRepo, equipmentRepo, requestRepo)

	authController := controllers.NewAuthController(authService, jwtSvc, logger)
	profileController := controllers.NewProfileController(profileService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	requestController := controllers.NewRequestController(requestService, boardService, logger)
	calendarController := controllers.NewCalendarController(calendarService, logger)
	reportController := controllers.NewReportController(reportService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	wsController := controllers.NewWebSocketController(hub, jwtSvc, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authController)
	runProfileRouter(secure, profileController)
	runTeamRouter(secure, teamController)
	runEquipmentRouter(secure, equipmentController)
	runRequestRouter(secure, requestController)
	runCalendarRouter(secure, calendarController)
	runReportRouter(secure, reportController)
	runDashboardRouter(secure, dashboardController)

	api.GET("/ws", wsController.ServeWs)
}
