package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/lookup"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/middleware"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Calorie Tracker API is running",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, images *service.ImageService) {
	router.GET("/health", HealthCheck)

	// Redis backs the lookup cache and rate limiting; both degrade when it
	// is absent or unreachable.
	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		var err error
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis: %v", err)
			redisClient = nil
		}
	}

	var lookupLimiter *middleware.RateLimiter
	if redisClient != nil {
		lookupLimiter = middleware.NewLookupRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	catalogService := service.NewCatalogService(db, buildLookupProvider(cfg, redisClient))
	recipeService := service.NewRecipeService(db)
	logService := service.NewLogService(db)
	profileService := service.NewProfileService(db)

	authHandler := NewAuthHandler(authService)
	foodHandler := NewFoodHandler(catalogService, lookupLimiter)
	recipeHandler := NewRecipeHandler(recipeService)
	logHandler := NewLogHandler(logService)
	summaryHandler := NewSummaryHandler(logService, profileService)
	profileHandler := NewProfileHandler(profileService, images)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	foodHandler.RegisterRoutes(protected)
	recipeHandler.RegisterRoutes(protected)
	logHandler.RegisterRoutes(protected)
	summaryHandler.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
}

// buildLookupProvider assembles the nutrition lookup chain: the remote API
// when credentials are present, the static table as fallback, the whole
// thing cached in Redis or in process.
func buildLookupProvider(cfg *config.Config, redisClient *redis.Client) lookup.Provider {
	var provider lookup.Provider = lookup.NewStaticProvider()
	remote := lookup.NewRemoteProvider(cfg.LookupBaseURL, cfg.LookupAppID, cfg.LookupAppKey)
	if remote.Configured() {
		provider = lookup.Chain{remote, lookup.NewStaticProvider()}
	}
	if redisClient != nil {
		return lookup.NewRedisCachingProvider(provider, cfg.LookupCacheTTL, redisClient)
	}
	return lookup.NewCachingProvider(provider, cfg.LookupCacheTTL)
}
