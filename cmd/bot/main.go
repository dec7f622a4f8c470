package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sessionbot/internal/config"
	"sessionbot/internal/handler"
	"sessionbot/internal/middleware"
	"sessionbot/internal/repository"
	"sessionbot/internal/repository/file"
	"sessionbot/internal/repository/postgres"
	"sessionbot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Session Link Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage_backend", cfg.Storage.Backend),
	)
	if cfg.AdminID == 0 {
		logger.Warn("ADMIN_ID is not set, /users and /userids are disabled")
	}

	// Initialize user registry
	userRepo, closeRepo, err := openUserRepo(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open user registry", zap.Error(err))
	}
	defer closeRepo()

	// A corrupt registry is fatal, check it before serving anyone
	count, err := userRepo.CountUsers()
	if err != nil {
		logger.Fatal("Failed to read user registry", zap.Error(err))
	}
	logger.Info("User registry loaded", zap.Int("users", count))

	// Initialize services
	consentService := service.NewConsentService(userRepo, logger)
	linkService := service.NewLinkService(cfg.BaseURL)
	menuService := service.NewMenuService(consentService, linkService, cfg.SupportHandle)
	statsService := service.NewStatsService(userRepo, int64(cfg.AdminID), logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: time.Duration(cfg.PollTimeoutSeconds) * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(middleware.Recover(logger), middleware.Logging(logger))

	// Initialize handler
	h := handler.NewHandler(bot, menuService, statsService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// openUserRepo opens the configured registry backend
func openUserRepo(cfg *config.Config, logger *zap.Logger) (repository.UserRepository, func(), error) {
	if cfg.Storage.Backend != config.BackendPostgres {
		repo, err := file.NewUserRepo(cfg.Storage.UsersFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using file user registry", zap.String("path", cfg.Storage.UsersFile))
		return repo, func() {}, nil
	}

	db, err := connectDatabase(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := migrateRegistry(db, logger); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewUserRepo(db), func() { db.Close() }, nil
}

const (
	dbConnectAttempts = 15
	dbRetryDelay      = 2 * time.Second
)

// connectDatabase waits for the registry database to accept connections
func connectDatabase(cfg *config.Config, logger *zap.Logger) (*sqlx.DB, error) {
	log := logger.With(
		zap.String("db_host", cfg.Database.Host),
		zap.String("db_name", cfg.Database.Name),
	)

	var err error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		var db *sqlx.DB
		db, err = sqlx.Connect("postgres", cfg.DSN())
		if err == nil {
			// The registry is one table touched once per /start and accept
			db.SetMaxOpenConns(4)
			db.SetMaxIdleConns(1)
			db.SetConnMaxIdleTime(time.Minute)

			log.Info("Connected to registry database", zap.Int("attempt", attempt))
			return db, nil
		}

		log.Warn("Registry database not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", dbConnectAttempts),
			zap.Error(err),
		)
		time.Sleep(dbRetryDelay)
	}

	return nil, fmt.Errorf("registry database unreachable after %d attempts: %w", dbConnectAttempts, err)
}

// migrateRegistry brings the users table up to the latest schema
func migrateRegistry(db *sqlx.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("Registry schema ready", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}
