package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-input/config"
	_ "smart-task-input/docs" // Swagger docs
	"smart-task-input/internal/httpserver"
	smartinputHTTP "smart-task-input/internal/smartinput/delivery/http"
	tgDelivery "smart-task-input/internal/smartinput/delivery/telegram"
	"smart-task-input/internal/smartinput/usecase"
	"smart-task-input/pkg/log"
	"smart-task-input/pkg/telegram"
)

// @title       Smart Task Input API
// @description Parses free-text task lines into title, due date, time, project, label and priority.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Input...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.SmartInput.Timezone)

	// 3. Smart input domain
	uc, err := usecase.New(logger, usecase.Options{
		Timezone:       cfg.SmartInput.Timezone,
		MaxInputLength: cfg.SmartInput.MaxInputLength,
		CacheSize:      cfg.SmartInput.CacheSize,
		Notes:          cfg.SmartInput.NotesEnabled,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize smart input use case: %v", err)
		os.Exit(1)
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot)

		// ngrok may still be starting; register without holding up the server.
		go registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL, cfg.Telegram.NgrokAPI)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		RateLimitPerMin:   cfg.RateLimit.PerMin,
		SmartInputHandler: smartinputHTTP.New(logger, uc),
		TelegramHandler:   telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
