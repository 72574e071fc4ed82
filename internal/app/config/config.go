// Package config はアプリケーション設定を環境変数（と任意の .env）から読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/db"
	"order_search/internal/platform/externalapi/orderapi"
	"order_search/internal/platform/redis"
	"order_search/internal/platform/viewport"
)

// 注文検索ソースの種類です。
const (
	SourceSample   = "sample"
	SourceDatabase = "database"
	SourceRemote   = "remote"
)

// ErrInvalidConfig は設定値が不正な場合に返されます。
var ErrInvalidConfig = errors.New("invalid config")

// Config はアプリケーション全体の設定です。
type Config struct {
	Port            string
	LogLevel        string
	JWTSecret       string
	CORSOrigins     []string
	OrderSource     string
	CacheTTL        time.Duration
	PageIdleTTL     time.Duration
	JanitorInterval time.Duration
	DefaultWidth    int
	MaxPages        int

	DB       db.Config
	Redis    redis.Config
	OrderAPI orderapi.Config
}

// LoadEnv は .env があれば読み込みます。既存の環境変数は上書きしません。
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load は環境変数から設定を組み立てて検証します。
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOW_ORIGINS")),
		OrderSource: strings.ToLower(getEnv("ORDER_SOURCE", SourceSample)),
		DB:          db.LoadConfigFromEnv(),
		Redis:       redis.LoadConfigFromEnv(),
		OrderAPI:    orderapi.LoadConfig(),
	}

	var err error
	if cfg.CacheTTL, err = getDuration("ORDER_CACHE_TTL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.PageIdleTTL, err = getDuration("PAGE_IDLE_TTL", usecase.DefaultPageIdleTTL); err != nil {
		return Config{}, err
	}
	if cfg.JanitorInterval, err = getDuration("PAGE_JANITOR_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.DefaultWidth, err = getInt("DEFAULT_VIEWPORT_WIDTH", viewport.DefaultWidth); err != nil {
		return Config{}, err
	}
	if cfg.MaxPages, err = getInt("PAGE_MAX_MOUNTED", usecase.DefaultMaxPages); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.OrderSource {
	case SourceSample, SourceDatabase:
	case SourceRemote:
		if c.OrderAPI.BaseURL == "" {
			return fmt.Errorf("%w: ORDER_API_BASE_URL is required for ORDER_SOURCE=remote", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ORDER_SOURCE %q", ErrInvalidConfig, c.OrderSource)
	}
	if c.DefaultWidth <= 0 {
		return fmt.Errorf("%w: DEFAULT_VIEWPORT_WIDTH must be positive", ErrInvalidConfig)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("%w: PAGE_MAX_MOUNTED must be positive", ErrInvalidConfig)
	}
	if c.PageIdleTTL <= 0 || c.JanitorInterval <= 0 {
		return fmt.Errorf("%w: PAGE_IDLE_TTL and PAGE_JANITOR_INTERVAL must be positive", ErrInvalidConfig)
	}
	return nil
}

// AuthEnabled はJSON APIにJWT認証をかけるかを返します。
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

// splitList はカンマ区切りの値を空要素を除いて分割します。
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
