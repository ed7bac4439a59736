package main

import (
	"os"
	"os/signal"
	"syscall"

	"tabletop-server/internal/engine"
	"tabletop-server/internal/server"
	"tabletop-server/internal/version"
	"tabletop-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	logger.Log.Info("Starting tabletop session server...")
	logger.Log.Info(version.String())

	// 1. Конфигурация из окружения
	cfg, err := engine.NewConfig()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}

	if cfg.WebhookURL == "" {
		logger.Log.Warn("TS_WEBHOOK_URL is not set: narrative actions will be rejected")
	}

	// 2. Инициализация движка сессии
	gameService := engine.NewService(cfg)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
