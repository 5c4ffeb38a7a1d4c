package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger := configs.NewLogger(cfg)

	// DB
	configs.ConnectDB(cfg.DBSource)
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}
	if err := configs.SeedDemoRestaurant(); err != nil {
		logger.Fatal().Err(err).Msg("seed demo restaurant failed")
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
