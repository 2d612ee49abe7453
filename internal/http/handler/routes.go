package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outofschool/internal/dto"
	"outofschool/internal/http/middleware"
	"outofschool/internal/service"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Categories             service.CategoryService
	Cities                 service.CityService
	InstitutionStatuses    service.InstitutionStatusService
	ProviderTypes          service.ProviderTypeService
	Parents                service.ParentService
	Providers              service.ProviderService
	Workshops              service.WorkshopService
	BlockedProviderParents service.BlockedProviderParentService
	Operations             service.OperationWithObjectService
	ChangesLog             service.ChangesLogService
	BackupTracker          service.BackupTrackerService
	Backups                service.BackupService
}

// Dependencies is everything RegisterRoutes needs.
type Dependencies struct {
	DB *sql.DB
	// Metrics is served on /metrics when set.
	Metrics         prometheus.Gatherer
	DefaultLanguage dto.Language
	Services        Services
}

// RegisterRoutes attaches health checks, metrics and the /api/v1 resources to app.
// Handlers return errors; ErrorHandler renders them.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", Liveness())
	if deps.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	s := deps.Services
	api := app.Group("/api/v1", middleware.Language(deps.DefaultLanguage))

	newDictionaryHandler[dto.CategoryDTO](s.Categories, func(d *dto.CategoryDTO, id int64) { d.ID = id }).
		register(api.Group("/categories"))

	cities := api.Group("/cities")
	cities.Get("/search", SearchCities(s.Cities))
	newDictionaryHandler[dto.CityDTO](s.Cities, func(d *dto.CityDTO, id int64) { d.ID = id }).
		register(cities)

	newDictionaryHandler[dto.ProviderTypeDTO](s.ProviderTypes, func(d *dto.ProviderTypeDTO, id int64) { d.ID = id }).
		register(api.Group("/provider-types"))

	statuses := api.Group("/institution-statuses")
	statuses.Get("/", ListInstitutionStatuses(s.InstitutionStatuses))
	statuses.Post("/", CreateInstitutionStatus(s.InstitutionStatuses))
	statuses.Get("/:id", GetInstitutionStatus(s.InstitutionStatuses))
	statuses.Put("/:id", UpdateInstitutionStatus(s.InstitutionStatuses))
	statuses.Delete("/:id", DeleteInstitutionStatus(s.InstitutionStatuses))

	parents := api.Group("/parents")
	parents.Post("/", CreateParent(s.Parents))
	parents.Put("/", UpdateParent(s.Parents))
	parents.Put("/block", BlockUnblockParent(s.Parents))
	parents.Get("/by-user/:userId", GetParentByUser(s.Parents))
	parents.Get("/:id", GetParent(s.Parents))
	parents.Delete("/:id", DeleteParent(s.Parents))

	providers := api.Group("/providers")
	providers.Get("/", ListProviders(s.Providers))
	providers.Post("/", CreateProvider(s.Providers))
	providers.Get("/:id", GetProvider(s.Providers))
	providers.Put("/:id", UpdateProvider(s.Providers))
	providers.Delete("/:id", DeleteProvider(s.Providers))
	providers.Get("/:id/workshops", ListProviderWorkshops(s.Workshops))

	workshops := api.Group("/workshops")
	workshops.Get("/", ListWorkshops(s.Workshops))
	workshops.Post("/", CreateWorkshop(s.Workshops))
	workshops.Get("/:id", GetWorkshop(s.Workshops))
	workshops.Put("/:id", UpdateWorkshop(s.Workshops))
	workshops.Delete("/:id", DeleteWorkshop(s.Workshops))

	blocked := api.Group("/blocked-provider-parents")
	blocked.Get("/", GetProviderParentBlock(s.BlockedProviderParents))
	blocked.Post("/block", BlockProviderParent(s.BlockedProviderParents))
	blocked.Post("/unblock", UnblockProviderParent(s.BlockedProviderParents))

	operations := api.Group("/operations")
	operations.Get("/", ListOperations(s.Operations))
	operations.Get("/exists", OperationExists(s.Operations))
	operations.Post("/", CreateOperation(s.Operations))
	operations.Delete("/:id", DeleteOperation(s.Operations))

	api.Get("/changes-log", ListChanges(s.ChangesLog))

	backups := api.Group("/backups")
	backups.Get("/", ListBackups(s.BackupTracker))
	backups.Get("/tables", ListBackupTables(s.Backups))
	backups.Post("/", CreateBackup(s.Backups))
	backups.Get("/:id/download", DownloadBackup(s.Backups))
	backups.Get("/:id/url", BackupURL(s.Backups))
}
