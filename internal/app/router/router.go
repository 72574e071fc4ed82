// Package router はGinのルーティングを組み立てます。
package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ordersearchhandler "order_search/internal/feature/ordersearch/transport/handler"
	jwtmw "order_search/internal/platform/jwt"
	"order_search/internal/platform/logger"
)

// Deps はルーターが必要とするハンドラーと設定です。
type Deps struct {
	Logger      *zap.Logger
	Templates   *template.Template
	JWTSecret   string // 空の場合はJSON APIを認証なしで公開
	CORSOrigins []string

	Health      gin.HandlerFunc
	OrderSearch *ordersearchhandler.OrderSearchHandler
	Page        *ordersearchhandler.PageHTMLHandler
}

// NewRouter はルーティング済みのGinエンジンを返します。
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(logger.AccessLog(d.Logger, "/healthz"))
	}
	r.Use(newCORS(d.CORSOrigins))
	if d.Templates != nil {
		r.SetHTMLTemplate(d.Templates)
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", d.Health)
	r.HEAD("/healthz", d.Health)
	r.OPTIONS("/healthz", d.Health)

	// サーバー描画の注文検索ページ
	r.GET("/orders/search", d.Page.Render)
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/orders/search") })

	// JSON API（JWT_SECRET 設定時は認証必須）
	api := r.Group("/api/order-search")
	if d.JWTSecret != "" {
		api.Use(jwtmw.AuthRequired(d.JWTSecret))
	}
	{
		api.GET("/dropdowns", d.OrderSearch.Dropdowns)
		api.POST("/pages", d.OrderSearch.CreatePage)
		api.GET("/pages/:id", d.OrderSearch.GetPage)
		api.PATCH("/pages/:id/form", d.OrderSearch.SetField)
		api.POST("/pages/:id/search", d.OrderSearch.Search)
		api.PUT("/pages/:id/viewport", d.OrderSearch.Resize)
		api.GET("/pages/:id/rows/:row/detail", d.OrderSearch.Detail)
		api.DELETE("/pages/:id", d.OrderSearch.DeletePage)
	}

	return r
}

// newCORS は許可オリジン未設定なら全オリジンを許可します。
func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
