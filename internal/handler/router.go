package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/safari-for-safety/roadkill-api/internal/middleware"
	"github.com/safari-for-safety/roadkill-api/internal/service"
	"github.com/safari-for-safety/roadkill-api/pkg/config"
	"github.com/safari-for-safety/roadkill-api/pkg/logger"
	corsmiddleware "github.com/safari-for-safety/roadkill-api/pkg/middleware/cors"
	reqidmiddleware "github.com/safari-for-safety/roadkill-api/pkg/middleware/requestid"

	"go.uber.org/zap"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     *service.AuthService
	Incident *service.IncidentService
	Report   *service.ReportService
	Region   *service.RegionService
	Stats    *service.StatsService
	Health   *service.HealthService
	Metrics  *service.MetricsService
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(cfg *config.Config, logr *zap.Logger, svcs Services) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(svcs.Metrics))

	authHandler := NewAuthHandler(svcs.Auth)
	roadkillHandler := NewRoadkillHandler(svcs.Incident)
	reportHandler := NewReportHandler(svcs.Report)
	regionHandler := NewRegionHandler(svcs.Region)
	statsHandler := NewStatsHandler(svcs.Stats)
	healthHandler := NewHealthHandler(svcs.Health)

	if svcs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcs.Metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(svcs.Auth), authHandler.Me)
	}

	roadkill := api.Group("/roadkill")
	{
		roadkill.GET("", roadkillHandler.Combined)
		roadkill.GET("/region/:region", roadkillHandler.ByRegion)
		roadkill.GET("/statistics/by-region", roadkillHandler.StatisticsByRegion)
		roadkill.GET("/statistics/by-date", roadkillHandler.StatisticsByDate)
		roadkill.GET("/statistics/animals", roadkillHandler.AnimalStatistics)
		roadkill.GET("/weather", roadkillHandler.Weather)
	}

	reports := api.Group("/reports")
	{
		reports.GET("", reportHandler.List)
		reports.POST("", middleware.JWT(svcs.Auth), reportHandler.Create)
		reports.GET("/user/my-reports", middleware.JWT(svcs.Auth), reportHandler.MyReports)
		reports.GET("/:id", reportHandler.Get)
		reports.PATCH("/:id/status", middleware.JWT(svcs.Auth), reportHandler.UpdateStatus)
		reports.DELETE("/:id", middleware.JWT(svcs.Auth), reportHandler.Delete)
	}

	regions := api.Group("/regions")
	{
		regions.GET("", regionHandler.Hierarchy)
		regions.GET("/provinces", regionHandler.Provinces)
		regions.GET("/cities/:province", regionHandler.Cities)
		regions.POST("/reverse-geocode", regionHandler.ReverseGeocode)
	}

	stats := api.Group("/statistics")
	{
		stats.GET("/animals", statsHandler.Animals)
		stats.GET("/animals/:province", statsHandler.AnimalsByProvince)
		stats.GET("/summary", statsHandler.Summary)
	}

	return r
}
