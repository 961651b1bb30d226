package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecoshop-assistant/config"
	_ "ecoshop-assistant/docs" // Swagger docs
	chatHTTP "ecoshop-assistant/internal/chat/delivery/http"
	"ecoshop-assistant/internal/chat/repository/catalog"
	"ecoshop-assistant/internal/chat/usecase"
	"ecoshop-assistant/internal/httpserver"
	"ecoshop-assistant/internal/middleware"
	"ecoshop-assistant/internal/router"
	"ecoshop-assistant/internal/session"
	"ecoshop-assistant/pkg/gemini"
	"ecoshop-assistant/pkg/log"
)

// @title       EcoShop Assistant API
// @description Chat assistant for the EcoShop storefront: intent routing, catalog lookups, and a Gemini-backed generative delegate.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting EcoShop Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog URL: %s", cfg.Catalog.BaseURL)

	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing: open-ended questions will fall back to the canned helper reply")
	}

	// 3. Chat domain
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}
	geminiClient.SetModel(cfg.Gemini.Model)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)
	productRepo := catalog.New(catalogClient, logger)

	sessionStore := session.NewStore(cfg.Chat.SessionMax, cfg.Chat.SessionTTL)
	intentRouter := router.New(logger)

	chatUC := usecase.New(logger, intentRouter, productRepo, geminiClient, sessionStore, cfg.Chat.GenerativeTimeout)
	chatHandler := chatHTTP.New(logger, chatUC)

	mw := middleware.New(logger, cfg.Chat.RateLimitPerMin)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
