package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"verbcards/config"
	"verbcards/controller"
	"verbcards/middleware"
	"verbcards/repository"
	"verbcards/router"
	"verbcards/service"
	"verbcards/ws"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// No catalog, no decks. Nothing to serve.
	catalog, err := repository.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("cards", catalog.Size()))

	hub := ws.NewHub()
	svc := service.NewGameService(catalog, hub)
	go svc.ReapLoop(cfg.ReapInterval, cfg.GameIdleTimeout, nil)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, controller.NewGameController(svc), hub)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
