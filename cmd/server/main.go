package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"order_search/internal/app/config"
	"order_search/internal/app/di"
	"order_search/internal/app/router"
	ordersearchhandler "order_search/internal/feature/ordersearch/transport/handler"
	"order_search/internal/feature/ordersearch/transport/web"
	"order_search/internal/feature/ordersearch/usecase"
	infradb "order_search/internal/platform/db"
	healthhandler "order_search/internal/platform/http/handler"
	"order_search/internal/platform/logger"
	infraredis "order_search/internal/platform/redis"
)

func main() {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	zl, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()
	slog.SetDefault(logger.NewSlog(zl))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	probes := map[string]healthhandler.Probe{}

	// db（ORDER_SOURCE=database のときのみ）
	var gdb *gorm.DB
	if cfg.OrderSource == config.SourceDatabase {
		gdb, err = infradb.OpenDB(cfg.DB)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		probes["database"] = func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			probes["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	// Repository
	source, err := di.NewOrderSource(cfg, gdb, rdb)
	if err != nil {
		slog.Error("failed to build order source", "error", err)
		os.Exit(1)
	}

	// Usecase
	pageUC := usecase.NewPageUsecase(source,
		usecase.WithIdleTTL(cfg.PageIdleTTL),
		usecase.WithDefaultWidth(cfg.DefaultWidth),
		usecase.WithMaxPages(cfg.MaxPages),
	)
	go pageUC.RunJanitor(ctx, cfg.JanitorInterval)

	// Handler
	tmpl, err := web.Templates()
	if err != nil {
		slog.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if !cfg.AuthEnabled() {
		slog.Warn("JWT_SECRET is not set. The JSON API is served without authentication.")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.NewRouter(router.Deps{
		Logger:      zl,
		Templates:   tmpl,
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Health:      healthhandler.NewHealth(probes),
		OrderSearch: ordersearchhandler.NewOrderSearchHandler(pageUC),
		Page:        ordersearchhandler.NewPageHTMLHandler(pageUC),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", srv.Addr), zap.String("order_source", cfg.OrderSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down", zap.Int("mounted_pages", pageUC.Count()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
