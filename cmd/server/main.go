package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	httpadapter "github.com/ekosiswoyo/cv-generator/internal/adapter/http"
	"github.com/ekosiswoyo/cv-generator/internal/config"
	"github.com/ekosiswoyo/cv-generator/internal/render"
	"github.com/ekosiswoyo/cv-generator/internal/session"
	infra "github.com/ekosiswoyo/cv-generator/pkg/infrastructure"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	store := session.NewStore(time.Duration(cfg.Session.TTLMinutes)*time.Minute, logger)
	janitor, err := store.StartJanitor(cfg.Session.SweepSchedule)
	if err != nil {
		logger.Fatal("janitor schedule invalid", zap.Error(err))
	}
	defer janitor.Stop()

	renderer := infra.NewChromedpRenderer(cfg.Render.ChromePath)

	app := fiber.New(fiber.Config{
		AppName:   "cleancv",
		BodyLimit: 8 << 20, // photo uploads arrive base64-expanded
	})
	app.Use(recover.New())

	h := httpadapter.NewHandler(store, renderer, logger, render.Options{QRBaseURL: cfg.Render.QRBaseURL})
	h.Register(app)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "sessions": store.Len()})
	})

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
