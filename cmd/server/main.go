// Package main runs the surplus-to-serve HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/surplustoserve/backend/config"
	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/internal/donors"
	"github.com/surplustoserve/backend/internal/events"
	"github.com/surplustoserve/backend/internal/foods"
	"github.com/surplustoserve/backend/internal/history"
	"github.com/surplustoserve/backend/internal/middleware"
	"github.com/surplustoserve/backend/internal/ngos"
	"github.com/surplustoserve/backend/internal/stats"
	"github.com/surplustoserve/backend/pkg/database"
	"github.com/surplustoserve/backend/pkg/redis"
	"github.com/surplustoserve/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// The stats cache is optional: without Redis the endpoint just hits the
	// database on every poll.
	var statsCache *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Warn("stats cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			statsCache = rdb.Client
		}
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	donorHandler := donors.NewHandler(donors.NewRepository(pool), tokens, logger)
	ngoHandler := ngos.NewHandler(ngos.NewRepository(pool), tokens, logger)
	foodHandler := foods.NewHandler(foods.NewRepository(pool), logger)
	eventHandler := events.NewHandler(events.NewRepository(pool), logger)
	historyHandler := history.NewHandler(history.NewRepository(pool), logger)
	statsHandler := stats.NewHandler(
		stats.NewRepository(pool),
		statsCache,
		time.Duration(cfg.Stats.CacheTTLSeconds)*time.Second,
		logger,
	)

	donorOnly := []gin.HandlerFunc{middleware.JWT(tokens), middleware.RequireKind(auth.KindDonor)}
	ngoOnly := []gin.HandlerFunc{middleware.JWT(tokens), middleware.RequireKind(auth.KindNGO)}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "OK"}) })

	router.POST("/donors/register", donorHandler.Register)
	router.POST("/donors/login", donorHandler.Login)

	router.POST("/ngos/register", ngoHandler.Register)
	router.POST("/ngos/login", ngoHandler.Login)
	router.POST("/ngos/validate-secret", ngoHandler.ValidateSecret)

	router.GET("/foods/available", foodHandler.ListAvailable)
	router.GET("/foods/my", append(donorOnly, foodHandler.ListMine)...)
	router.GET("/foods/:id", foodHandler.GetByID)
	router.POST("/foods", append(donorOnly, foodHandler.Create)...)
	router.POST("/foods/:id/claim", append(ngoOnly, foodHandler.Claim)...)

	router.GET("/events", eventHandler.List)
	router.GET("/events/:id", eventHandler.GetByID)
	router.POST("/events", append(donorOnly, eventHandler.Create)...)
	router.PUT("/events/:id", append(donorOnly, eventHandler.Update)...)
	router.DELETE("/events/:id", append(donorOnly, eventHandler.Delete)...)

	router.GET("/history", historyHandler.List)
	router.GET("/stats", statsHandler.Get)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
