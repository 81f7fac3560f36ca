package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/fittracker/docs"
	"github.com/sbilibin2017/fittracker/internal/config"
	"github.com/sbilibin2017/fittracker/internal/facades"
	"github.com/sbilibin2017/fittracker/internal/handlers"
	"github.com/sbilibin2017/fittracker/internal/jwt"
	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/middlewares"
	"github.com/sbilibin2017/fittracker/internal/mongodb"
	"github.com/sbilibin2017/fittracker/internal/repositories"
	"github.com/sbilibin2017/fittracker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title FitTracker API
// @version 1.0.0
// @description Nutrition and weight tracking backend
// @host localhost:8001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the stores, wires the HTTP API and serves until ctx is done or
// a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	client, db, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.MongoConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "err", err)
		}
	}()
	logger.Log.Infow("connected to MongoDB", "database", db.Name())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	var searcher services.FoodSearcher
	var cache services.FoodSearchCache
	if cfg.USDAAPIKey != "" {
		searcher = facades.NewUSDAFacade(&http.Client{Timeout: cfg.USDATimeout}, cfg.USDABaseURL, cfg.USDAAPIKey)

		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			defer rdb.Close()
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Log.Warnw("Redis unavailable, food search cache disabled", "addr", cfg.RedisAddr, "err", err)
			} else {
				cache = repositories.NewFoodSearchCacheRepository(rdb, cfg.FoodCacheExp)
			}
		}
	} else {
		logger.Log.Info("USDA_API_KEY not set, food search serves sample data")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithAlgorithm(cfg.JWTAlgorithm),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	foodReadRepo := repositories.NewFoodEntryReadRepository(db)
	foodWriteRepo := repositories.NewFoodEntryWriteRepository(db)
	weightReadRepo := repositories.NewWeightEntryReadRepository(db)
	weightWriteRepo := repositories.NewWeightEntryWriteRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, weightWriteRepo, tokens)
	profileService := services.NewProfileService(userWriteRepo)
	foodSearchService := services.NewFoodSearchService(searcher, cache)
	foodEntryService := services.NewFoodEntryService(foodReadRepo, foodWriteRepo)
	weightService := services.NewWeightService(weightReadRepo, weightWriteRepo, userWriteRepo)
	dashboardService := services.NewDashboardService(foodReadRepo, weightReadRepo)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/health", handlers.NewHealthHandler())

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, userReadRepo))

			r.Get("/profile", handlers.NewGetProfileHandler())
			r.Put("/profile", handlers.NewUpdateProfileHandler(profileService))
			r.Get("/foods/search", handlers.NewFoodSearchHandler(foodSearchService))
			r.Post("/food-entries", handlers.NewLogFoodHandler(foodEntryService))
			r.Get("/food-entries", handlers.NewListFoodEntriesHandler(foodEntryService))
			r.Delete("/food-entries/{entry_id}", handlers.NewDeleteFoodEntryHandler(foodEntryService))
			r.Post("/weight-entries", handlers.NewLogWeightHandler(weightService))
			r.Get("/weight-entries", handlers.NewListWeightEntriesHandler(weightService))
			r.Get("/dashboard", handlers.NewDashboardHandler(dashboardService))
		})
	})

	mountSwagger(r)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// mountSwagger serves the generated API docs under /swagger/.
func mountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}
