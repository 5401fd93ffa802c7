package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pmapp/personal_management_app/internal/adapters/database/pgsql"
	"github.com/pmapp/personal_management_app/internal/adapters/mail"
	"github.com/pmapp/personal_management_app/internal/adapters/push"
	ports "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/core/services"
	"github.com/pmapp/personal_management_app/internal/handlers"
	"github.com/pmapp/personal_management_app/internal/middleware"
	"github.com/pmapp/personal_management_app/internal/platform/config"
	"github.com/pmapp/personal_management_app/internal/scheduler"
	"github.com/pmapp/personal_management_app/pkg/database"
)

// @title Personal Manager API
// @version 1.0
// @description Backend for the personal and business management application.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := buildServices(dbPool, cfg, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	// The notification scheduler only runs when push delivery is configured.
	if cfg.FCMCredentialsFile != "" {
		sched := scheduler.New(container.Notifier, cfg.NotifyInterval, logger)
		if err := sched.Start(); err != nil {
			logger.Error("Failed to start notification scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer sched.Stop()
	} else {
		logger.Warn("Push delivery not configured, notification scheduler disabled")
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories and outbound adapters into the service
// container used by route registration and the scheduler.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *ports.ServiceContainer {
	repos := services.Repositories{
		Users:        pgsql.NewUserRepository(dbPool),
		Devices:      pgsql.NewDeviceRepository(dbPool),
		Contacts:     pgsql.NewContactRepository(dbPool),
		Tasks:        pgsql.NewTaskRepository(dbPool),
		Timesheets:   pgsql.NewTimesheetRepository(dbPool),
		Events:       pgsql.NewEventRepository(dbPool),
		Returnings:   pgsql.NewReturningRepository(dbPool),
		Surveys:      pgsql.NewSurveyRepository(dbPool),
		Expenditures: pgsql.NewExpenditureRepository(dbPool),
		Purchases:    pgsql.NewPurchaseRepository(dbPool),
		Employees:    pgsql.NewEmployeeRepository(dbPool),
	}

	var sender ports.PushSender
	if cfg.FCMCredentialsFile != "" {
		fcm, err := push.NewFCMSender(context.Background(), cfg.FCMCredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize FCM sender", slog.String("error", err.Error()))
			os.Exit(1)
		}
		sender = fcm
	}

	var mailer ports.Mailer
	if cfg.SMTPUser != "" && cfg.SMTPPassword != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	return services.NewServiceContainer(repos, cfg, sender, mailer, logger)
}

// runMigrations applies pending schema migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}
