package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/config"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/messaging"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/permission"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/ratelimit"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/realtime"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/storage"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/middleware"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services of the API process and releases them on
// Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginRateLimiter     *middleware.RateLimiter

	// Infrastructure services
	jwtSvc     *auth.JWTService
	hasher     *auth.BcryptPasswordHasher
	enforcer   *permission.Enforcer
	limiter    ratelimit.RateLimiter
	storage    *storage.LocalStorage
	hub        *realtime.Hub
	dispatcher *events.InMemoryEventDispatcher
	publisher  *messaging.ReportEventPublisher

	relayCancel context.CancelFunc
}

// NewContainer wires every section in dependency order. It fails only when
// a mandatory component (policy store, upload directory, event dispatcher)
// cannot be initialized.
func NewContainer(engine *gin.Engine, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: engine,
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRealtime()
	c.ucs = c.newUseCases()
	if err := c.initEvents(); err != nil {
		return nil, err
	}
	c.hdlrs = c.newHandlers()

	return c, nil
}

// Engine returns the Gin engine the routes are registered on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background work and closes connections. Live WebSocket
// clients are released first so the HTTP server can drain quickly.
func (c *Container) Shutdown() {
	if c.hub != nil {
		c.hub.CloseAll()
	}

	if c.relayCancel != nil {
		c.relayCancel()
	}

	if c.dispatcher != nil {
		if err := c.dispatcher.Stop(); err != nil {
			c.log.Warnw("failed to stop event dispatcher", "error", err)
		}
	}

	if c.publisher != nil {
		c.publisher.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
