package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/config"
	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/handlers"
	middlewareCustom "github.com/BradenHooton/gardenbook/internal/middleware"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/repositories"
	"github.com/BradenHooton/gardenbook/internal/routes"
	"github.com/BradenHooton/gardenbook/internal/services"
	pkgauth "github.com/BradenHooton/gardenbook/pkg/auth"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Server.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		slog.String("env", cfg.Server.Env),
		slog.String("mail_driver", cfg.Mail.Driver),
	)

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Outbound mail transport, shared by every request
	mailCtx, mailCancel := context.WithTimeout(context.Background(), 10*time.Second)
	emailService, err := services.NewEmailService(mailCtx, cfg.Mail, cfg.App, cfg.Server.Env, logger)
	mailCancel()
	if err != nil {
		logger.Error("failed to initialize email service", slog.Any("error", err))
		os.Exit(1)
	}
	defer emailService.Close()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := pkgauth.NewPasswordHasher(cfg.Auth.BcryptCost)
	failureDelay := auth.NewFailureDelay(cfg.Auth.FailureDelay, cfg.Auth.FailureDelay/2)

	// Initialize services
	authService := services.NewAuthService(services.AuthServiceConfig{
		Users:        userRepo,
		Codes:        codeRepo,
		Tokens:       tokenManager,
		Hasher:       hasher,
		Mailer:       emailService,
		FailureDelay: failureDelay,
		CodeTTL:      cfg.Auth.CodeTTL,
		Logger:       logger,
	})
	userService := services.NewUserService(userRepo, hasher, logger)

	// Bootstrap first admin user if configured
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := userService.EnsureAdmin(ctx, "Admin", cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		cancel()
		switch {
		case err != nil:
			logger.Error("failed to ensure admin user", slog.Any("error", err))
		case created:
			logger.Info("admin user created")
		default:
			logger.Info("admin user already exists")
		}
	} else {
		logger.Info("no ADMIN_EMAIL or ADMIN_PASSWORD set, skipping admin user creation")
	}

	h := routes.Handlers{
		Auth:  handlers.NewAuthHandler(authService),
		Users: handlers.NewUserHandler(userService),
		Drainage: handlers.NewDrainageHandler(
			services.NewRecordService[models.Drainage]("drainage", repositories.NewDrainageRepository(db), logger),
			repositories.DrainageSpec),
		Energy: handlers.NewEnergyHandler(
			services.NewRecordService[models.Energy]("energy", repositories.NewEnergyRepository(db), logger),
			repositories.EnergySpec),
		Fertilizer: handlers.NewFertilizerHandler(
			services.NewRecordService[models.Fertilizer]("fertilizer", repositories.NewFertilizerRepository(db), logger),
			repositories.FertilizerSpec),
		Food: handlers.NewFoodHandler(
			services.NewRecordService[models.Food]("food", repositories.NewFoodRepository(db), logger),
			repositories.FoodSpec),
		Oil: handlers.NewOilHandler(
			services.NewRecordService[models.Oil]("oil", repositories.NewOilRepository(db), logger),
			repositories.OilSpec),
		Remont: handlers.NewRemontHandler(
			services.NewRecordService[models.Remont]("remont", repositories.NewRemontRepository(db), logger),
			repositories.RemontSpec),
		Tax: handlers.NewTaxHandler(
			services.NewRecordService[models.Tax]("tax", repositories.NewTaxRepository(db), logger),
			repositories.TaxSpec),
		Transport: handlers.NewTransportHandler(
			services.NewRecordService[models.Transport]("transport", repositories.NewTransportRepository(db), logger),
			repositories.TransportSpec),
		Worker: handlers.NewWorkerHandler(
			services.NewRecordService[models.Worker]("worker", repositories.NewWorkerRepository(db), logger),
			repositories.WorkerSpec),
	}

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.ClientContext)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(middlewareCustom.NewCORSConfig(cfg.Server.AllowedOrigins)))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// Register routes
	routes.RegisterRoutes(router, h, tokenManager, middlewareCustom.RateLimitConfig{
		Requests: cfg.Auth.AuthRateLimit,
		Window:   cfg.Auth.AuthRateWindow,
	})

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health, err := db.HealthCheck(r.Context())
		if err != nil {
			logger.Warn("health check failed", slog.Any("error", err))
			pkghttp.WriteJSON(w, http.StatusServiceUnavailable, health)
			return
		}
		pkghttp.WriteJSON(w, http.StatusOK, health)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}

	logger.Info("server stopped gracefully")
}
