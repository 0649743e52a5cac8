package di

import (
	"github.com/tourbase/tourbase/internal/events"
	"github.com/tourbase/tourbase/internal/handler"
	"github.com/tourbase/tourbase/internal/mail"
	"github.com/tourbase/tourbase/internal/realtime"
	"github.com/tourbase/tourbase/internal/repository"
	"github.com/tourbase/tourbase/internal/service"
	"github.com/tourbase/tourbase/pkg/config"
	"github.com/tourbase/tourbase/pkg/database"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/redis"
)

// Container holds all dependencies for the tourbase service
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Cache    *redis.Client
	Events   events.Publisher
	Notifier *realtime.Notifier

	// Repositories
	TenantRepo   repository.TenantRepository
	TourRepo     repository.TourRepository
	AuditRepo    repository.AuditRepository
	EmailJobRepo repository.EmailJobRepository

	// Services
	TenantService service.TenantService
	TourService   service.TourService
	AuditService  service.AuditService
	Mailer        service.MailerService

	// Handlers
	HealthHandler *handler.HealthHandler
	TenantHandler *handler.TenantHandler
	TourHandler   *handler.TourHandler
	AuditHandler  *handler.AuditHandler
	CronHandler   *handler.CronHandler
	SEOHandler    *handler.SEOHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  *redis.Client
	Events events.Publisher
	Sender mail.Sender
	Logger *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	log := cfg.Logger

	c := &Container{
		DB:     cfg.DB,
		Cache:  cfg.Cache,
		Events: cfg.Events,
	}

	if c.Events == nil {
		c.Events = events.NopPublisher{}
	}

	c.Notifier = realtime.NewNotifier(c.Cache, realtime.Config{
		AppID:   cfg.Config.Push.AppID,
		Key:     cfg.Config.Push.Key,
		Secret:  cfg.Config.Push.Secret,
		Cluster: cfg.Config.Push.Cluster,
	}, log)

	// Repositories
	pool := c.DB.Pool()
	tenantRepo := repository.NewPostgresTenantRepository(pool)
	if c.Cache != nil {
		c.TenantRepo = repository.NewCachedTenantRepository(tenantRepo, c.Cache, log)
	} else {
		c.TenantRepo = tenantRepo
	}
	c.TourRepo = repository.NewPostgresTourRepository(pool)
	c.AuditRepo = repository.NewPostgresAuditRepository(pool)
	c.EmailJobRepo = repository.NewPostgresEmailJobRepository(pool)

	// Services
	c.TenantService = service.NewTenantService(c.TenantRepo)
	c.AuditService = service.NewAuditService(c.AuditRepo)
	c.TourService = service.NewTourService(c.TourRepo, c.AuditService, c.Events, c.Notifier, log)

	sender := cfg.Sender
	if sender == nil {
		sender = mail.NewLogSender(log)
	}
	c.Mailer = service.NewMailerService(c.EmailJobRepo, sender, c.Events, service.MailerConfig{
		FromAddress: cfg.Config.Email.FromAddress,
		FromName:    cfg.Config.Email.FromName,
		BatchSize:   cfg.Config.Email.BatchSize,
	}, log)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.TenantHandler = handler.NewTenantHandler(c.TenantService)
	c.TourHandler = handler.NewTourHandler(c.TourService)
	c.AuditHandler = handler.NewAuditHandler(c.AuditService)
	c.CronHandler = handler.NewCronHandler(c.Mailer, cfg.Config.Cron.Secret, log)
	c.SEOHandler = handler.NewSEOHandler(cfg.Config.App.BaseURL, cfg.Config.Locale.Supported)

	return c
}
