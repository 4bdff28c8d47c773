package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/authz"
	"github.com/dapittriandi/simdor-service/internal/controllers"
	"github.com/dapittriandi/simdor-service/internal/repositories"
	"github.com/dapittriandi/simdor-service/internal/services"
	"github.com/dapittriandi/simdor-service/pkg/config"
	"github.com/dapittriandi/simdor-service/pkg/filestorage"
	"github.com/dapittriandi/simdor-service/pkg/middleware"
	"github.com/dapittriandi/simdor-service/pkg/service"
)

// InitRouter wires repositories, services and controllers together and
// mounts every route group. Everything hangs off /api; the secure group
// requires a valid access token.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := newFileStorage(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepository(dbConn)
	orderRepo := repositories.NewOrderRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// Services
	gatekeeper := authz.NewGatekeeper()
	authService := services.NewAuthService(userRepo, cacheRepo, jwtSvc, logger)
	orderService := services.NewOrderService(orderRepo, fileStorage, gatekeeper, logger)
	dashboardService := services.NewDashboardService(dashboardRepo)
	reportService := services.NewReportService(reportRepo, logger)

	// Controllers
	authController := controllers.NewAuthController(authService, logger)
	orderController := controllers.NewOrderController(orderService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)
	reportController := controllers.NewReportController(reportService, logger)
	uploadController := controllers.NewUploadController(fileStorage, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runOrderRouter(secureGroup, orderController)
	runDashboardRouter(secureGroup, dashboardController)
	runReportRouter(secureGroup, reportController)
	runUploadRouter(secureGroup, uploadController)
}

// newFileStorage picks Cloudinary when credentials are configured and falls
// back to local disk for development.
func newFileStorage(cfg *config.Config, logger *zap.Logger) (filestorage.FileStorage, error) {
	if cfg.Cloudinary.CloudName != "" {
		return filestorage.NewCloudinaryStorage(cfg.Cloudinary)
	}
	logger.Warn("Cloudinary credentials not configured, using local file storage")
	return filestorage.NewLocalFileStorage("uploads")
}
