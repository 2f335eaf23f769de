package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/config"
	"github.com/dev-mohitbeniwal/hazard/api/controller"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	"github.com/dev-mohitbeniwal/hazard/api/db"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/router"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	if err := logger.InitLogger(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the store
	var store dao.Store
	switch cfg.Store.Driver {
	case "memory":
		logger.Info("Using in-memory store")
		store = dao.NewMemoryStore()
	default:
		if err := db.InitNeo4j(); err != nil {
			logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
		}
		defer db.CloseNeo4j()
		store = dao.NewNeo4jStore(db.Neo4jDriver)
	}

	engineCfg := config.EngineOptions()

	// Initialize Redis. Without it the cache and rate limiter are disabled and
	// rule locks are process local.
	var cacheService *util.CacheService
	var locker util.Locker = util.NewLocalLocker(engineCfg.LockWait)
	if cfg.Redis.Enabled {
		if err := db.InitRedis(); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
		cacheService = util.NewCacheService(db.RedisClient, cfg.Redis.DefaultCacheTTL)
		locker = util.NewRedisLocker(db.RedisClient, engineCfg.LockTTL, engineCfg.LockWait)
	}

	// Initialize the audit trail
	var auditRepository audit.Repository = audit.NewLogRepository()
	if cfg.Elasticsearch.Enabled {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services
	services, err := service.InitializeServices(
		store,
		auditService,
		util.NewValidationUtil(),
		cacheService,
		locker,
		util.NewNotificationService(),
		eventBus,
		service.OptionsFromConfig(engineCfg),
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	if cfg.Catalog.SeedFile != "" {
		seed, err := util.LoadCatalogSeed(cfg.Catalog.SeedFile)
		if err != nil {
			logger.Fatal("Failed to load catalog seed", zap.Error(err), zap.String("file", cfg.Catalog.SeedFile))
		}
		summary, err := services.Catalog.SeedCatalog(ctx, seed)
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		logger.Info("Catalog seeded",
			zap.Int("observationTypes", summary.ObservationTypes),
			zap.Int("observationValues", summary.ObservationValues),
			zap.Int("mitigationTypes", summary.MitigationTypes),
			zap.Int("mitigationValues", summary.MitigationValues))
	}

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	controllers := controller.InitializeControllers(services, auditService)
	handler := router.SetupRouter(controllers, db.RedisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: handler,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
