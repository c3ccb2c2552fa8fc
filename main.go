package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sheikh-riyadh/captake-server/cache"
	"github.com/sheikh-riyadh/captake-server/controllers"
	"github.com/sheikh-riyadh/captake-server/database"
	"github.com/sheikh-riyadh/captake-server/logger"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/repository"
	"github.com/sheikh-riyadh/captake-server/routes"
	"github.com/sheikh-riyadh/captake-server/services"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const requestTimeout = 30 * time.Second

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		// Logger is not up yet.
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	if err := database.Connect(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// The catalog cache is optional; without REDIS_URL every read goes
	// straight to the database.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, catalog cache disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(redisOpts)
		}
	}
	catalogCache := cache.New(redisClient, 30*time.Second)

	// Repositories
	counterStore := repository.NewMongoCounterStore(database.DB)
	orderRepo := repository.NewMongoOrderRepository(database.DB)
	productRepo := repository.NewMongoProductRepository(database.DB)
	reviewRepo := repository.NewMongoReviewRepository(database.DB)

	// Services
	allocator := services.NewSequenceAllocator(counterStore)
	orderService := services.NewOrderService(orderRepo, allocator)
	catalogService := services.NewCatalogService(productRepo, catalogCache)
	recommendationService := services.NewRecommendationService(reviewRepo, productRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret)

	// Controllers
	production := cfg.Env == "production"
	ctrl := routes.Controllers{
		Auth:            controllers.NewAuthController(tokenService, production),
		Orders:          controllers.NewOrderController(orderService),
		Catalog:         controllers.NewCatalogController(catalogService),
		Recommendations: controllers.NewRecommendationController(recommendationService),
		Reviews:         controllers.NewReviewController(reviewRepo),
	}

	controllers.RegisterValidators()

	if production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.RateLimit(rate.Every(time.Minute/300), 50))

	routes.Register(r, ctrl, []byte(cfg.JWTSecret))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello developer!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}
	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
