package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/shouri123/WRAP-YOUR-GIT/docs"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/config"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/github"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/handler"
	md "github.com/shouri123/WRAP-YOUR-GIT/internal/middleware"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/service"
	"github.com/shouri123/WRAP-YOUR-GIT/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Wrap Your Git
// @version 1.0.0
// @description Derives a GitHub user's wrapped story statistics from their public profile, repositories, and recent events.
// @host localhost:5000
// @BasePath /
func main() {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Load configuration
	cfg, err := config.LoadConfiguration()
	if err != nil {
		logger.Error("‼️ Failed to load config: %v", err)
		os.Exit(1)
	}

	// * Initialize GitHub client with the optional server fallback token
	githubClient := github.NewClient(cfg.GitHubToken)

	// * Create services
	wrappedService := service.NewWrappedService(githubClient)

	// * Create API server
	apiHandler := handler.NewWrappedHandler(wrappedService)
	router := mux.NewRouter()
	router.Use(md.LoggingMiddleware)
	router.Use(md.CORSMiddleware)

	apiHandler.RegisterRoutes(router)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	server := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting API server on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server error: %v", err)
			os.Exit(1)
		}
	}()

	// * Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error: %v", err)
	}
}
