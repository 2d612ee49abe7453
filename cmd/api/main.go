package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"outofschool/docs"
	"outofschool/internal/config"
	"outofschool/internal/database"
	"outofschool/internal/database/migration"
	"outofschool/internal/dto"
	handlers "outofschool/internal/http/handler"
	"outofschool/internal/http/middleware"
	"outofschool/internal/localizer"
	"outofschool/internal/logger"
	"outofschool/internal/otel"
	"outofschool/internal/repository/postgres"
	"outofschool/internal/service"
	"outofschool/internal/storage"
)

// @title       Out-of-School Education API
// @version     1.0
// @description Providers, workshops and parents of the out-of-school education registry.
// @BasePath    /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, tzErr := time.LoadLocation(cfg.Timezone)
	if tzErr != nil {
		loc = time.UTC
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Location: loc})
	if tzErr != nil {
		log.Warn().Err(tzErr).Str("timezone", cfg.Timezone).Msg("unknown timezone, using UTC")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.OTel, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(cfg.Database, logger.Component(log, "database"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO, logger.Component(log, "storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	defaultLang := dto.ParseLanguage(cfg.DefaultLanguage, dto.LanguageUA)
	services := newServices(db, objStore, localizer.New(defaultLang), cfg.TrackedProperties, logger.Component(log, "service"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(logger.Component(log, "http")),
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger.Component(log, "http")))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:              db,
		Metrics:         reg,
		DefaultLanguage: defaultLang,
		Services:        services,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	addr := cfg.AppHost + ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server_starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
	log.Info().Msg("server_stopped")
}

func newServices(db *sql.DB, store storage.Storage, loc *localizer.Localizer, tracked map[string][]string, log zerolog.Logger) handlers.Services {
	users := postgres.NewUserPostgres(db)
	parents := postgres.NewParentPostgres(db)
	providers := postgres.NewProviderPostgres(db)
	workshops := postgres.NewWorkshopPostgres(db)
	categories := postgres.NewCategoryPostgres(db)
	cities := postgres.NewCityPostgres(db)
	statuses := postgres.NewInstitutionStatusPostgres(db)
	providerTypes := postgres.NewProviderTypePostgres(db)
	backupOps := postgres.NewBackupOperationPostgres(db)
	operations := postgres.NewOperationWithObjectPostgres(db)
	blockLog := postgres.NewParentBlockedByAdminLogPostgres(db)
	changesLog := postgres.NewChangesLogPostgres(db)

	changes := service.NewChangesLogService(changesLog, service.NewValueProjector(), tracked, log)
	apiErrors := service.NewAPIErrorService(users, loc, log)
	operationSvc := service.NewOperationWithObjectService(operations, log)
	tracker := service.NewBackupTrackerService(backupOps, log)

	tables := map[string]service.TableExporter{
		"users":                       service.ExportRepository(users),
		"parents":                     service.ExportRepository(parents),
		"providers":                   service.ExportRepository(providers),
		"workshops":                   service.ExportRepository(workshops),
		"categories":                  service.ExportRepository(categories),
		"cities":                      service.ExportRepository(cities),
		"institution_statuses":        service.ExportRepository(statuses),
		"provider_types":              service.ExportRepository(providerTypes),
		"operations_with_objects":     service.ExportRepository(operations),
		"parent_blocked_by_admin_log": service.ExportRepository(blockLog),
		"changes_log":                 service.ExportRepository(changesLog),
	}

	return handlers.Services{
		Categories:             service.NewCategoryService(categories, loc, log),
		Cities:                 service.NewCityService(cities, loc, log),
		InstitutionStatuses:    service.NewInstitutionStatusService(statuses, loc, log),
		ProviderTypes:          service.NewProviderTypeService(providerTypes, loc, log),
		Parents:                service.NewParentService(parents, users, service.NewParentBlockedByAdminLogService(blockLog, log), changes, loc, log),
		Providers:              service.NewProviderService(providers, apiErrors, changes, loc, log),
		Workshops:              service.NewWorkshopService(workshops, providers, loc, log),
		BlockedProviderParents: service.NewBlockedProviderParentService(log),
		Operations:             operationSvc,
		ChangesLog:             changes,
		BackupTracker:          tracker,
		Backups:                service.NewBackupService(store, tracker, operationSvc, tables, log),
	}
}
