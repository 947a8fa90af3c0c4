package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cogbio/labsite/internal/api"
	"github.com/cogbio/labsite/internal/config"
	"github.com/cogbio/labsite/internal/db"
	"github.com/cogbio/labsite/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("configuration load failed")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration rejected")
	}
	for _, warning := range cfg.InsecureDefaults() {
		log.Warn().Msg(warning)
	}

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	handler := api.NewHandler(database, cfg, log)

	app := fiber.New(fiber.Config{
		AppName:               "labsite",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(handler.RequestLogger)
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Bool("production", cfg.Production()).
		Msg("labsite listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
