package http

import (
	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/repository"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// repositories holds every repository instance used by the use cases.
type repositories struct {
	userRepo   *repository.UserRepository
	unitRepo   *repository.UnitRepository
	sectorRepo *repository.SectorRepository

	localRepo       *repository.LocalRepository
	equipamentoRepo *repository.EquipamentoRepository
	motorRepo       *repository.MotorRepository

	reportRepo       *repository.ReportRepository
	reportUpdateRepo *repository.ReportUpdateRepository
	reportImageRepo  *repository.ReportImageRepository
	reportDataRepo   *repository.ReportDataRepository
	categoryRepo     *repository.CategoryRepository

	notificationRepo *repository.NotificationRepository
	settingsRepo     *repository.NotificationSettingsRepository
	deliveryLogRepo  *repository.DeliveryLogRepository

	factRepo *repository.FactRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:   repository.NewUserRepository(db, log),
		unitRepo:   repository.NewUnitRepository(db, log),
		sectorRepo: repository.NewSectorRepository(db, log),

		localRepo:       repository.NewLocalRepository(db, log),
		equipamentoRepo: repository.NewEquipamentoRepository(db, log),
		motorRepo:       repository.NewMotorRepository(db, log),

		reportRepo:       repository.NewReportRepository(db, log),
		reportUpdateRepo: repository.NewReportUpdateRepository(db, log),
		reportImageRepo:  repository.NewReportImageRepository(db),
		reportDataRepo:   repository.NewReportDataRepository(db),
		categoryRepo:     repository.NewCategoryRepository(db),

		notificationRepo: repository.NewNotificationRepository(db, log),
		settingsRepo:     repository.NewNotificationSettingsRepository(db),
		deliveryLogRepo:  repository.NewDeliveryLogRepository(db),

		factRepo: repository.NewFactRepository(db),
	}
}
