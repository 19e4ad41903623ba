package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/api"
	"github.com/yourname/wearmock/internal/config"
	"github.com/yourname/wearmock/internal/generate"
	"github.com/yourname/wearmock/internal/seed"
	"github.com/yourname/wearmock/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := store.New(logger)
	g := generate.New(generate.NewRand())

	// Seeding must finish before the first request; the store is not
	// designed for concurrent mutation during bootstrap.
	if err := seed.Run(s, g, cfg.SeedUsers, cfg.SeedDays, logger); err != nil {
		logger.Fatalf("failed to seed store: %v", err)
	}
	for _, u := range s.Users() {
		logger.Infof("available mock user: %s (%s)", u.ID, u.Email)
	}

	app := api.NewApp(logger, s, time.Duration(cfg.TokenTTLSeconds)*time.Second)
	r := api.NewRouter(app)

	logger.Infof("mock wearable API listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
