package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	analyticsUsecases "github.com/relatorio-inc/relatorio/internal/application/analytics/usecases"
	notificationUsecases "github.com/relatorio-inc/relatorio/internal/application/notification/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/cache"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/config"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/email"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/messaging"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/pubsub"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/ratelimit"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/realtime"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/storage"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const eventBufferSize = 256

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Basic Services
// ============================================================

// initInfrastructure initializes Redis, all repositories, auth services,
// the policy store and the request middlewares.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.SeedDefaults(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	if c.redis != nil {
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.limiter = ratelimit.NewMemoryRateLimiter()
	}

	store, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix, cfg.Storage.MaxBytes, log)
	if err != nil {
		return fmt.Errorf("failed to prepare upload storage: %w", err)
	}
	c.storage = store

	c.dispatcher = events.NewInMemoryEventDispatcher(eventBufferSize, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.loginRateLimiter = middleware.NewRateLimiter(c.limiter, "login", cfg.RateLimit.LoginPerMinute, log)

	return nil
}

// initRedis creates and tests the Redis client connection. Redis is optional:
// when it is disabled or unreachable the process runs single-instance with
// in-memory state and no dashboard cache.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, using in-memory state")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to redis, using in-memory state", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("redis connection established successfully")

	return redisClient
}

// ============================================================
// Section 2: Realtime - WebSocket hub and cross-instance relay
// ============================================================

func (c *Container) initRealtime() {
	var relay realtime.Relay
	if c.redis != nil {
		relay = pubsub.NewRedisNotificationBus(c.redis, c.log)
	}
	c.hub = realtime.NewHub(relay, c.log)

	ctx, cancel := context.WithCancel(context.Background())
	c.relayCancel = cancel
	c.hub.RunRelay(ctx)
}

// newMailer returns the SMTP service when email is enabled and a mailer that
// only logs otherwise.
func newMailer(cfg *config.Config, log logger.Interface) notificationUsecases.Mailer {
	if !cfg.Email.Enabled {
		return email.NewLogOnlyMailer(log)
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SubjectTag:  cfg.Email.SubjectTag,
	}, log)
}

// dashboardCache returns nil when Redis is unavailable so dashboards are
// always computed.
func (c *Container) dashboardCache() analyticsUsecases.DashboardCache {
	if c.redis == nil {
		return nil
	}
	return cache.NewRedisDashboardCache(c.redis)
}

// ============================================================
// Section 3: Events - report event subscribers
// ============================================================

// initEvents subscribes the notification fan-out, the dashboard cache
// invalidator and, when configured, the RabbitMQ publisher to report events,
// then starts the dispatcher.
func (c *Container) initEvents() error {
	var handlers []eventSubscriber
	handlers = append(handlers, c.ucs.reportEventHandler)

	if dc := c.dashboardCache(); dc != nil {
		handlers = append(handlers, analyticsUsecases.NewCacheInvalidator(dc, c.log))
	}

	if c.cfg.RabbitMQ.Enabled {
		c.publisher = messaging.NewReportEventPublisher(c.cfg.RabbitMQ.URL, c.cfg.RabbitMQ.Exchange, c.log)
		handlers = append(handlers, c.publisher)
	}

	for _, h := range handlers {
		for _, eventType := range h.EventTypes() {
			if err := c.dispatcher.Subscribe(eventType, h); err != nil {
				return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
			}
		}
	}

	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.log.Infow("event dispatcher started", "subscribers", len(handlers))
	return nil
}

// eventSubscriber is an event handler that declares the event types it
// consumes.
type eventSubscriber interface {
	events.EventHandler
	EventTypes() []string
}
