package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	linearclient "linearcode/clients/linear"
	opencodeclient "linearcode/clients/opencode"
	socketioclient "linearcode/clients/socketio"
	"linearcode/config"
	"linearcode/handlers"
	"linearcode/middleware"
	"linearcode/services/dedup"
	"linearcode/services/stream"
	"linearcode/services/tracker"
	webhookusecase "linearcode/usecases/webhook"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  cfg.AlertConfig.WebhookURL,
		Environment: cfg.Environment,
		AppName:     "linearcode",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize clients
	linearClient := linearclient.NewLinearClient(cfg.LinearConfig.APIKey)
	opencodeClient := opencodeclient.NewOpenCodeClient(cfg.OpenCodeConfig.ServerURL)
	socketioClient := socketioclient.NewSocketIOClient()

	// Initialize services
	trackerService := tracker.NewTrackerService(linearClient, cfg.LinearConfig.SafetyChecks)
	streamService := stream.NewStreamManager(socketioClient)
	streamService.Start()

	dedupService, err := dedup.NewDedupService(dedup.DefaultTTL)
	if err != nil {
		return err
	}
	defer dedupService.Close()

	webhookUsecase := webhookusecase.NewWebhookUsecase(
		cfg.LinearConfig.WebhookSecret,
		trackerService,
		streamService,
		dedupService,
		opencodeClient,
	)

	webhooksHandler := handlers.NewWebhooksHandler(
		cfg.LinearConfig.WebhookSecret,
		webhookUsecase,
		streamService,
	)
	toolsHandler := handlers.NewToolsHandler(trackerService)

	// Create a new router and mount everything
	router := mux.NewRouter()
	socketioClient.RegisterWithRouter(router)
	toolsHandler.RegisterWithRouter(router)
	webhooksHandler.SetupEndpoints(router)

	// Verify collaborators at startup; failures degrade, they don't abort
	if cfg.OpenCodeConfig.IsConfigured() {
		go func() {
			_ = alertMiddleware.WrapBackgroundTask("OpenCodeHealthCheck", func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := opencodeClient.Health(ctx); err != nil {
					log.Printf("⚠️ OpenCode server health check failed: %v", err)
					return err
				}
				log.Printf("✅ OpenCode server is reachable")
				return nil
			})()
		}()
	}
	if cfg.LinearConfig.IsConfigured() {
		go func() {
			_ = alertMiddleware.WrapBackgroundTask("LinearAuthTest", func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				user, err := trackerService.AuthTest(ctx)
				if err != nil {
					log.Printf("⚠️ Linear authentication check failed: %v", err)
					return err
				}
				log.Printf("✅ Authenticated against Linear as %s", user.Name)
				return nil
			})()
		}()
	}

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server, streamService)
}

func handleGracefulShutdown(server *http.Server, streamService *stream.StreamManager) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	streamService.Stop()

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
