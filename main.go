package main

import (
	"fmt"
	"log"
	"log/slog"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logger"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.GetSchedulerConfig()
	slog.SetDefault(logger.BuildLogger(cfg.LogLevel))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.Register(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg, slog.Default()))

	slog.Info("listening", slog.Int("port", cfg.Port), slog.Int("time_quantum", cfg.RoundRobinTimeQuantum))
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
