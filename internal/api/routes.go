package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/rajeev970/smartagri-go/internal/api/handlers"
	"github.com/rajeev970/smartagri-go/internal/config"
	"github.com/rajeev970/smartagri-go/internal/database"
	"github.com/rajeev970/smartagri-go/internal/forecast"
	"github.com/rajeev970/smartagri-go/internal/middleware"
	"github.com/rajeev970/smartagri-go/internal/repository"
	"github.com/rajeev970/smartagri-go/internal/services"
	"github.com/rajeev970/smartagri-go/internal/telemetry"
)

// SetupRoutes wires all HTTP routes. db and redis may be nil; the service
// then answers from synthetic data and demo auth.
func SetupRoutes(router *gin.Engine, cfg *config.Config, db *database.PostgresDB, redis *database.RedisClient, logger *logrus.Logger) {
	// Initialize services
	repo := repository.NewPriceRepository(db, logger)
	artifacts := forecast.NewArtifactStore(cfg.Models.Dir)
	forecastService := services.NewForecastService(repo, artifacts, cfg.Forecast.Lookback, logger)
	graphService := services.NewGraphService(repo, redis, cfg.Forecast.MaxGraphPoints, cfg.Forecast.CacheTTL(), logger)

	// Initialize handlers
	forecastHandler := handlers.NewForecastHandler(forecastService, logger)
	graphHandler := handlers.NewGraphHandler(graphService, logger)
	cropsHandler := handlers.NewCropsHandler(forecastService, logger)
	healthHandler := handlers.NewHealthHandler(db, redis, forecastService)

	auth := middleware.NewAuthMiddleware(cfg.Security.JWTSecret)
	var store handlers.UserStore
	if db != nil {
		store = db.Pool
	}
	userHandler := handlers.NewUserHandler(store, auth, cfg.Security.JWTExpiryDuration(), cfg.Security.BcryptCost, logger)

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", healthHandler.Health)
	router.GET("/predict", forecastHandler.GetPredict)
	router.GET("/commodities", forecastHandler.ListCommodities)

	api := router.Group("/api")
	api.Use(otelgin.Middleware(telemetry.ServiceName))
	{
		crops := api.Group("/crops")
		{
			crops.GET("/popular", cropsHandler.GetPopular)
			crops.GET("/trained", cropsHandler.GetTrained)
		}

		graphs := api.Group("/graphs")
		{
			graphs.GET("/crop/:cropName", graphHandler.GetCropGraph)
			graphs.GET("/test/:cropName", graphHandler.GetCropGraph)
		}

		api.POST("/user-predictions/test/predict", forecastHandler.PredictForTargetDate)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", userHandler.Register)
			authGroup.POST("/login", userHandler.Login)
			authGroup.GET("/profile", auth.RequireAuth(), userHandler.Profile)
		}
	}
}
