package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/jageocoder-go/app/config"
	"github.com/jageocoder-go/app/services"
	"github.com/jageocoder-go/internal/dictionary"
)

// cmd/worker periodically re-opens the dictionary source and records an
// audit entry whenever its signature changes, generalized from the
// teacher's worker stub (config.Load + signal-wait, no actual job) into
// the reload watcher SPEC_FULL §5 describes ("handles may be reopened
// on a dictionary swap").
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := initLogger(cfg.AppEnv)
	defer logger.Sync()

	logger.Info("starting jageocoder-go dictionary worker", zap.String("env", cfg.AppEnv))

	mongoDB, disconnect := initMongoDB(cfg.Mongo, logger)
	defer disconnect()
	reviewService := services.NewAdminReviewService(mongoDB, logger)

	lastSignature := ""
	if cfg.Dictionary.ReloadInterval > 0 {
		go watchDictionary(cfg, reviewService, logger, &lastSignature)
	} else {
		logger.Info("dictionary reload disabled (reload_interval=0)")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker")
	time.Sleep(1 * time.Second)
	logger.Info("worker exited")
}

// watchDictionary re-opens the embedded source on a ticker and records a
// DictionaryVersion whenever the signature has changed since the last
// observation, leaving normal query serving (cmd/api) untouched.
func watchDictionary(cfg *config.GeocoderConfig, reviewService *services.AdminReviewService, logger *zap.Logger, lastSignature *string) {
	ticker := time.NewTicker(cfg.Dictionary.ReloadInterval)
	defer ticker.Stop()

	for range ticker.C {
		handle, err := dictionary.EmbeddedSource{}.Open()
		if err != nil {
			logger.Error("dictionary reload check failed", zap.Error(err))
			continue
		}

		if handle.Signature == *lastSignature {
			continue
		}
		*lastSignature = handle.Signature

		nodeCount := int(handle.Store.Root().SiblingID)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = reviewService.RecordDictionaryReload(ctx, handle.Signature, cfg.Dictionary.Source, nodeCount)
		cancel()
		if err != nil {
			logger.Error("failed to record dictionary reload", zap.Error(err))
			continue
		}
		logger.Info("dictionary reloaded", zap.String("signature", handle.Signature), zap.Int("nodes", nodeCount))
	}
}

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

// initMongoDB connects to the same offline review/alias store cmd/api
// writes to, so reload records land alongside approved/rejected reviews.
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
