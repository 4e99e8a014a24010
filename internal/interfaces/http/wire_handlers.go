package http

import (
	"context"

	analyticsHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/analytics"
	authHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/auth"
	healthHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/health"
	locationHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/location"
	notificationHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/notification"
	reportHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/report"
	userHandlers "github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/user"
	"github.com/relatorio-inc/relatorio/internal/interfaces/http/handlers/ws"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// allHandlers holds every HTTP handler registered by SetupRoutes.
type allHandlers struct {
	authHandler         *authHandlers.Handler
	userHandler         *userHandlers.Handler
	organizationHandler *userHandlers.OrganizationHandler

	localHandler       *locationHandlers.LocalHandler
	equipamentoHandler *locationHandlers.EquipamentoHandler
	motorHandler       *locationHandlers.MotorHandler

	reportHandler   *reportHandlers.Handler
	workflowHandler *reportHandlers.WorkflowHandler
	categoryHandler *reportHandlers.CategoryHandler

	notificationHandler *notificationHandlers.Handler
	streamHandler       *ws.Handler

	analyticsHandler *analyticsHandlers.Handler
	healthHandler    *healthHandlers.Handler
}

func (c *Container) newHandlers() *allHandlers {
	log := c.log
	u := c.ucs

	return &allHandlers{
		authHandler: authHandlers.NewHandler(
			u.loginUC, u.refreshTokenUC, u.getUserUC, u.googleLoginUC, u.googleCallbackUC, log),
		userHandler: userHandlers.NewHandler(
			u.createUserUC, u.updateUserUC, u.getUserUC, u.listUsersUC, u.changePasswordUC, log),
		organizationHandler: userHandlers.NewOrganizationHandler(
			u.createUnitUC, u.listUnitsUC, u.createSectorUC, u.listSectorsUC, log),

		localHandler: locationHandlers.NewLocalHandler(
			u.createLocalUC, u.updateLocalUC, u.deleteLocalUC, u.getLocalUC, u.listLocalsUC, log),
		equipamentoHandler: locationHandlers.NewEquipamentoHandler(
			u.createEquipamentoUC, u.updateEquipamentoUC, u.deleteEquipamentoUC, u.getEquipamentoUC, u.listEquipamentosUC, log),
		motorHandler: locationHandlers.NewMotorHandler(
			u.createMotorUC, u.updateMotorUC, u.deleteMotorUC, u.getMotorUC, u.listMotorsUC, log),

		reportHandler: reportHandlers.NewHandler(
			u.createReportUC, u.bulkCreateReportsUC, u.updateReportUC, u.deleteReportUC,
			u.getReportUC, u.listReportsUC, u.exportReportsUC, log),
		workflowHandler: reportHandlers.NewWorkflowHandler(
			u.updateProgressUC, u.listUpdatesUC, u.assignReportUC, u.setReportLockUC,
			u.uploadImageUC, u.setReportDataUC, u.deleteReportDataUC, log),
		categoryHandler: reportHandlers.NewCategoryHandler(u.createCategoryUC, u.listCategoriesUC, log),

		notificationHandler: notificationHandlers.NewHandler(
			u.listNotificationsUC, u.countUnreadUC, u.markAsReadUC, u.markAllAsReadUC, u.deleteNotificationUC,
			u.getSettingsUC, u.updateSettingsUC, u.sendBulkUC, u.sendSystemUC, log),
		streamHandler: ws.NewHandler(c.hub, c.cfg.Server.AllowedOrigins, log),

		analyticsHandler: analyticsHandlers.NewHandler(u.dashboardUC, u.sectionUC, u.userStatsUC, log),
		healthHandler:    healthHandlers.NewHandler(Version, c.healthChecks(), log),
	}
}

// healthChecks pings the database and, when configured, Redis.
func (c *Container) healthChecks() map[string]healthHandlers.Check {
	checks := map[string]healthHandlers.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	return checks
}
