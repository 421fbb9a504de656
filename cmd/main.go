package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/config"
	"github.com/Dosada05/dominoes-tournament/db"
	"github.com/Dosada05/dominoes-tournament/handlers"
	"github.com/Dosada05/dominoes-tournament/metrics"
	"github.com/Dosada05/dominoes-tournament/registry"
	"github.com/Dosada05/dominoes-tournament/repositories"
	api "github.com/Dosada05/dominoes-tournament/routes"
	"github.com/Dosada05/dominoes-tournament/services"
	"github.com/Dosada05/dominoes-tournament/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("league", cfg.League),
		slog.String("default_model", cfg.BracketModel),
	)

	ctx := context.Background()

	teams, err := registry.Default()
	if err != nil {
		logger.Error("failed to load team registry", slog.Any("error", err))
		os.Exit(1)
	}
	if _, err := teams.Teams(cfg.League); err != nil {
		logger.Error("configured league is not in the registry", slog.Any("error", err), slog.Any("leagues", teams.Leagues()))
		os.Exit(1)
	}

	// Tournament state: Postgres when DATABASE_URL is set, otherwise a JSON file.
	var tournamentRepo repositories.TournamentRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		if err := repositories.EnsureTournamentSchema(ctx, dbConn); err != nil {
			logger.Error("failed to prepare database schema", slog.Any("error", err))
			os.Exit(1)
		}
		tournamentRepo = repositories.NewPostgresTournamentRepository(dbConn)
		logger.Info("tournament state stored in postgres")
	} else {
		tournamentRepo = repositories.NewFileTournamentRepository(cfg.StateFile)
		logger.Info("tournament state stored on disk", slog.String("path", cfg.StateFile))
	}

	// Model setting: Redis when REDIS_URL is set, otherwise a JSON file.
	var settingsRepo repositories.SettingsRepository
	if cfg.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		redisClient, err := repositories.NewRedisClient(pingCtx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()
		settingsRepo = repositories.NewRedisSettingsRepository(redisClient)
		logger.Info("model setting stored in redis")
	} else {
		settingsRepo = repositories.NewFileSettingsRepository(cfg.SettingsFile)
		logger.Info("model setting stored on disk", slog.String("path", cfg.SettingsFile))
	}

	var archive services.Archiver
	if cfg.ArchiveEnabled() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		archive = storage.NewChampionArchive(uploader)
		logger.Info("champion archive enabled", slog.String("bucket", cfg.R2BucketName))
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheus(promRegistry)
	if err != nil {
		logger.Error("failed to register metrics", slog.Any("error", err))
		os.Exit(1)
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	selector, err := services.NewModelSelector(settingsRepo, cfg.BracketModel)
	if err != nil {
		logger.Error("invalid BRACKET_MODEL", slog.Any("error", err), slog.Any("available", brackets.EngineNames()))
		os.Exit(1)
	}

	tournamentService := services.NewTournamentService(
		cfg.League,
		teams,
		tournamentRepo,
		selector,
		wsHub,
		archive,
		recorder,
		logger,
		nil,
	)
	if _, err := tournamentService.Get(ctx); err != nil {
		logger.Error("failed to load tournament", slog.Any("error", err))
		os.Exit(1)
	}

	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	modelHandler := handlers.NewModelHandler(tournamentService)
	leagueHandler := handlers.NewLeagueHandler(teams)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, cfg.League, api.OriginChecker(cfg.CORSAllowedOrigins), logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Metrics:        promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
			Logger:         logger,
		},
		tournamentHandler,
		modelHandler,
		leagueHandler,
		webSocketHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
