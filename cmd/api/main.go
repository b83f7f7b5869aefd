package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/jageocoder-go/app/config"
	"github.com/jageocoder-go/app/controllers"
	"github.com/jageocoder-go/app/services"
	"github.com/jageocoder-go/internal/dictionary"
	"github.com/jageocoder-go/routes"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// 2. Initialize logger
	logger := initLogger(cfg.AppEnv)
	defer logger.Sync()

	logger.Info("starting jageocoder-go", zap.String("env", cfg.AppEnv))

	// 3. Connect MongoDB (offline admin/review workflow)
	mongoDB, disconnect := initMongoDB(cfg.Mongo, logger)
	defer disconnect()

	// 4. Open the dictionary and build the local tree handle
	handle, err := dictionary.EmbeddedSource{}.Open()
	if err != nil {
		logger.Fatal("failed to open dictionary", zap.Error(err))
	}
	logger.Info("dictionary opened", zap.String("signature", handle.Signature))

	// 5. Build domain services
	geocodeService := services.NewGeocodeService(handle, cfg.Search, logger)

	var cacheService services.ICacheService
	if cfg.Cache.Enabled {
		redisCache, err := services.NewRedisResultCache(cfg.Cache.RedisURL, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			logger.Fatal("failed to initialize redis result cache", zap.Error(err))
		}
		cacheService = redisCache
	} else {
		cacheService = services.NewNoopCacheService()
	}
	defer cacheService.Close()

	reviewService := services.NewAdminReviewService(mongoDB, logger)
	if err := reviewService.RecordDictionaryReload(context.Background(), handle.Signature, cfg.Dictionary.Source, int(handle.Store.Root().SiblingID)); err != nil {
		logger.Warn("failed to record initial dictionary load", zap.Error(err))
	}

	// 6. Build controllers
	geocodeController := controllers.NewGeocodeController(geocodeService, cacheService, reviewService, logger)
	adminController := controllers.NewAdminController(reviewService, cacheService, logger)

	// 7. Gin router + middleware + routes
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, geocodeController, adminController)

	// 8. Start server
	logger.Info("jageocoder-go listening", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// initLogger builds a structured logger matching the teacher's
// production/development split, keyed off app_env.
func initLogger(env string) *zap.Logger {
	var zapConfig zap.Config
	if env == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	logger, err := zapConfig.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

// initMongoDB connects to the offline review/alias store, returning a
// disconnect func suitable for a top-level defer.
func initMongoDB(cfg config.MongoConfig, logger *zap.Logger) (*mongo.Database, func()) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URL))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongodb", zap.Error(err))
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	db := client.Database(cfg.Database)

	return db, func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting mongodb", zap.Error(err))
		}
	}
}
