package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agent-dashboard/config"
	"agent-dashboard/database"
	"agent-dashboard/handlers"
	"agent-dashboard/logger"
	"agent-dashboard/metrics"
	"agent-dashboard/provider"
	"agent-dashboard/router"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log := logger.NewLogger()
	log.Info("Starting Agent Dashboard Service")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()
	m := metrics.NewMetrics("agent_dashboard")

	// The users collection lives in MongoDB in both provider modes.
	log.Info("Connecting to MongoDB")
	mongoClient, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := mongoClient.Database(cfg.MongoDB)
	database.UsersCollection = db.Collection("users")

	var source provider.Source
	if cfg.ProviderMode == "mongo" {
		source = provider.NewMongoSource(db)
	} else {
		source = provider.NewAPIClient(cfg.APIBaseURL, cfg.APIToken, cfg.FetchTimeout)
	}

	snapshot := provider.NewSnapshot(source, log, m)

	refreshCtx, cancelRefresh := context.WithTimeout(ctx, cfg.FetchTimeout)
	if err := snapshot.Refresh(refreshCtx); err != nil {
		// The service still comes up; collections stay empty until the
		// next successful refresh.
		log.Warn("Initial data fetch failed", "error", err)
	}
	cancelRefresh()

	// Metrics endpoint on its own port.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info("Starting metrics server", "port", cfg.MetricsPort)
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Error("Metrics server error", "error", err)
		}
	}()

	app := fiber.New()
	dashboard := handlers.NewDashboard(snapshot, log, m)
	router.SetupRoutes(app, dashboard, cfg.JWTSecret)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	if err := app.Shutdown(); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Agent Dashboard Service stopped")
}
