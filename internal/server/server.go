package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Bag     *handler.BagHandler
	Admin   *handler.AdminItemHandler
}

// New はechoを組み立てて全ルートを登録する。
func New(cfg config.Config, logger *zap.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLog(logger))
	e.Use(middleware.Metrics())
	e.Use(middleware.Session(cfg.SessionSecret))

	e.GET("/metrics", middleware.MetricsHandler())

	h.Catalog.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Bag.RegisterRoutes(e)
	h.Admin.RegisterRoutes(e)

	//アップロード済み写真の配信
	e.Static("/static/uploads", cfg.UploadDir)

	return e
}

// Start はサーバーを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
