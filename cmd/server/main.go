package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agrovia/kiosk-service/config"
	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/pos"
	"github.com/agrovia/kiosk-service/pkg/logger"

	blH "github.com/agrovia/kiosk-service/internal/billing/handler"
	blUCPkg "github.com/agrovia/kiosk-service/internal/billing/usecase"

	invH "github.com/agrovia/kiosk-service/internal/inventory/handler"
	invRepoPkg "github.com/agrovia/kiosk-service/internal/inventory/repository"
	invUCPkg "github.com/agrovia/kiosk-service/internal/inventory/usecase"

	repH "github.com/agrovia/kiosk-service/internal/report/handler"
	repUCPkg "github.com/agrovia/kiosk-service/internal/report/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.New(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize Storage Slot
	repo := newRepository(ctx, cfg, appLogger)

	// 4. Initialize UseCases
	posCfg := pos.Config{
		LowStockPercent:  cfg.Inventory.LowStockPercent,
		ExpiringSoonDays: cfg.Inventory.ExpiringSoonDays,
		AlertHorizonDays: cfg.Inventory.AlertHorizonDays,
		OverviewLimit:    cfg.Inventory.OverviewLimit,
	}
	invUC := invUCPkg.NewInventoryUseCase(ctx, repo, posCfg, time.Now, appLogger)
	blUC := blUCPkg.NewBillingUseCase(invUC, cfg.Kiosk, time.Now, appLogger)
	repUC := repUCPkg.NewReportUseCase(invUC, blUC, time.Now, appLogger)

	// 5. Initialize Handlers
	validate := validator.New()
	invHandler := invH.NewInventoryHandler(invUC, validate, appLogger)
	blHandler := blH.NewBillingHandler(blUC, validate, appLogger)
	repHandler := repH.NewReportHandler(repUC)

	// 6. HTTP Server
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "kiosk": cfg.Kiosk.KioskID})
	})

	api := engine.Group("/api")
	invHandler.Register(api)
	blHandler.Register(api)
	repHandler.Register(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	srv := &http.Server{
		Addr:         port,
		Handler:      engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

// newRepository builds the slot backend from config. A redis driver that
// fails its startup ping falls back to the in-memory slot so the kiosk can
// keep selling; the slot contents are then lost on restart.
func newRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) inventory.Repository {
	switch cfg.Storage.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		defer pingCancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Warn("Could not connect to Redis, falling back to in-memory slot", zap.Error(err))
			return invRepoPkg.NewMemoryRepository()
		}
		log.Info("Connected to Redis", zap.String("addr", cfg.Storage.RedisAddr))
		return invRepoPkg.NewRedisRepository(client, cfg.Storage.RedisKey)
	case "memory":
		return invRepoPkg.NewMemoryRepository()
	default:
		log.Info("Using file slot", zap.String("path", cfg.Storage.FilePath))
		return invRepoPkg.NewFileRepository(cfg.Storage.FilePath)
	}
}
