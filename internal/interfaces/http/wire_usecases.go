package http

import (
	"time"

	analyticsUsecases "github.com/relatorio-inc/relatorio/internal/application/analytics/usecases"
	locationUsecases "github.com/relatorio-inc/relatorio/internal/application/location/usecases"
	notificationUsecases "github.com/relatorio-inc/relatorio/internal/application/notification/usecases"
	reportUsecases "github.com/relatorio-inc/relatorio/internal/application/report/usecases"
	userUsecases "github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/auth"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/cache"
	"github.com/relatorio-inc/relatorio/internal/interfaces/adapters"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	"github.com/relatorio-inc/relatorio/internal/shared/services/markdown"
)

const oauthStateTTL = 10 * time.Minute

// allUseCases holds every use case the handlers depend on.
type allUseCases struct {
	// Auth and users
	loginUC          *userUsecases.LoginUseCase
	refreshTokenUC   *userUsecases.RefreshTokenUseCase
	googleLoginUC    userUsecases.InitiateGoogleLoginExecutor
	googleCallbackUC userUsecases.HandleGoogleCallbackExecutor
	createUserUC     *userUsecases.CreateUserUseCase
	updateUserUC     *userUsecases.UpdateUserUseCase
	getUserUC        *userUsecases.GetUserUseCase
	listUsersUC      *userUsecases.ListUsersUseCase
	changePasswordUC *userUsecases.ChangePasswordUseCase
	createUnitUC     *userUsecases.CreateUnitUseCase
	listUnitsUC      *userUsecases.ListUnitsUseCase
	createSectorUC   *userUsecases.CreateSectorUseCase
	listSectorsUC    *userUsecases.ListSectorsUseCase

	// Locations
	createLocalUC        *locationUsecases.CreateLocalUseCase
	updateLocalUC        *locationUsecases.UpdateLocalUseCase
	deleteLocalUC        *locationUsecases.DeleteLocalUseCase
	getLocalUC           *locationUsecases.GetLocalUseCase
	listLocalsUC         *locationUsecases.ListLocalsUseCase
	createEquipamentoUC  *locationUsecases.CreateEquipamentoUseCase
	updateEquipamentoUC  *locationUsecases.UpdateEquipamentoUseCase
	deleteEquipamentoUC  *locationUsecases.DeleteEquipamentoUseCase
	getEquipamentoUC     *locationUsecases.GetEquipamentoUseCase
	listEquipamentosUC   *locationUsecases.ListEquipamentosUseCase
	createMotorUC        *locationUsecases.CreateMotorUseCase
	updateMotorUC        *locationUsecases.UpdateMotorUseCase
	deleteMotorUC        *locationUsecases.DeleteMotorUseCase
	getMotorUC           *locationUsecases.GetMotorUseCase
	listMotorsUC         *locationUsecases.ListMotorsUseCase

	// Reports
	createReportUC      *reportUsecases.CreateReportUseCase
	bulkCreateReportsUC *reportUsecases.BulkCreateReportsUseCase
	updateReportUC      *reportUsecases.UpdateReportUseCase
	deleteReportUC      *reportUsecases.DeleteReportUseCase
	getReportUC         *reportUsecases.GetReportUseCase
	listReportsUC       *reportUsecases.ListReportsUseCase
	exportReportsUC     *reportUsecases.ExportReportsUseCase
	updateProgressUC    *reportUsecases.UpdateProgressUseCase
	listUpdatesUC       *reportUsecases.ListReportUpdatesUseCase
	assignReportUC      *reportUsecases.AssignReportUseCase
	setReportLockUC     *reportUsecases.SetReportLockUseCase
	uploadImageUC       *reportUsecases.UploadReportImageUseCase
	setReportDataUC     *reportUsecases.SetReportDataUseCase
	deleteReportDataUC  *reportUsecases.DeleteReportDataUseCase
	createCategoryUC    *reportUsecases.CreateCategoryUseCase
	listCategoriesUC    *reportUsecases.ListCategoriesUseCase

	// Notifications
	listNotificationsUC  *notificationUsecases.ListNotificationsUseCase
	countUnreadUC        *notificationUsecases.CountUnreadUseCase
	markAsReadUC         *notificationUsecases.MarkAsReadUseCase
	markAllAsReadUC      *notificationUsecases.MarkAllAsReadUseCase
	deleteNotificationUC *notificationUsecases.DeleteNotificationUseCase
	getSettingsUC        *notificationUsecases.GetSettingsUseCase
	updateSettingsUC     *notificationUsecases.UpdateSettingsUseCase
	sendBulkUC           *notificationUsecases.SendBulkUseCase
	sendSystemUC         *notificationUsecases.SendSystemUseCase
	reportEventHandler   *notificationUsecases.ReportEventHandler

	// Analytics
	dashboardUC *analyticsUsecases.GetDashboardUseCase
	sectionUC   *analyticsUsecases.GetSectionUseCase
	userStatsUC *analyticsUsecases.GetUserStatisticsUseCase
}

// newUseCases builds the use cases from the repositories and infrastructure
// services prepared by initInfrastructure and initRealtime.
func (c *Container) newUseCases() *allUseCases {
	log := c.log
	r := c.repos
	tokens := adapters.NewTokenServiceAdapter(c.jwtSvc)
	txMgr := db.NewTransactionManager(c.db)
	publisher := c.dispatcher

	ucs := &allUseCases{
		loginUC:          userUsecases.NewLoginUseCase(r.userRepo, c.hasher, tokens, log),
		refreshTokenUC:   userUsecases.NewRefreshTokenUseCase(r.userRepo, tokens, log),
		createUserUC:     userUsecases.NewCreateUserUseCase(r.userRepo, r.unitRepo, r.sectorRepo, c.hasher, log),
		updateUserUC:     userUsecases.NewUpdateUserUseCase(r.userRepo, r.unitRepo, r.sectorRepo, log),
		getUserUC:        userUsecases.NewGetUserUseCase(r.userRepo, log),
		listUsersUC:      userUsecases.NewListUsersUseCase(r.userRepo, log),
		changePasswordUC: userUsecases.NewChangePasswordUseCase(r.userRepo, c.hasher, log),
		createUnitUC:     userUsecases.NewCreateUnitUseCase(r.unitRepo, log),
		listUnitsUC:      userUsecases.NewListUnitsUseCase(r.unitRepo, log),
		createSectorUC:   userUsecases.NewCreateSectorUseCase(r.sectorRepo, r.unitRepo, log),
		listSectorsUC:    userUsecases.NewListSectorsUseCase(r.sectorRepo, log),

		createLocalUC:       locationUsecases.NewCreateLocalUseCase(r.localRepo, r.userRepo, log),
		updateLocalUC:       locationUsecases.NewUpdateLocalUseCase(r.localRepo, r.userRepo, log),
		deleteLocalUC:       locationUsecases.NewDeleteLocalUseCase(r.localRepo, log),
		getLocalUC:          locationUsecases.NewGetLocalUseCase(r.localRepo, log),
		listLocalsUC:        locationUsecases.NewListLocalsUseCase(r.localRepo, log),
		createEquipamentoUC: locationUsecases.NewCreateEquipamentoUseCase(r.equipamentoRepo, r.localRepo, r.userRepo, log),
		updateEquipamentoUC: locationUsecases.NewUpdateEquipamentoUseCase(r.equipamentoRepo, r.localRepo, r.userRepo, log),
		deleteEquipamentoUC: locationUsecases.NewDeleteEquipamentoUseCase(r.equipamentoRepo, log),
		getEquipamentoUC:    locationUsecases.NewGetEquipamentoUseCase(r.equipamentoRepo, log),
		listEquipamentosUC:  locationUsecases.NewListEquipamentosUseCase(r.equipamentoRepo, log),
		createMotorUC:       locationUsecases.NewCreateMotorUseCase(r.motorRepo, r.localRepo, r.userRepo, log),
		updateMotorUC:       locationUsecases.NewUpdateMotorUseCase(r.motorRepo, r.localRepo, r.userRepo, log),
		deleteMotorUC:       locationUsecases.NewDeleteMotorUseCase(r.motorRepo, log),
		getMotorUC:          locationUsecases.NewGetMotorUseCase(r.motorRepo, log),
		listMotorsUC:        locationUsecases.NewListMotorsUseCase(r.motorRepo, log),

		createReportUC: reportUsecases.NewCreateReportUseCase(
			r.reportRepo, r.localRepo, r.equipamentoRepo, r.categoryRepo, r.userRepo, publisher, log),
		bulkCreateReportsUC: reportUsecases.NewBulkCreateReportsUseCase(
			r.reportRepo, r.localRepo, r.equipamentoRepo, r.categoryRepo, r.userRepo, txMgr, publisher, log),
		updateReportUC: reportUsecases.NewUpdateReportUseCase(
			r.reportRepo, r.localRepo, r.equipamentoRepo, r.categoryRepo, r.userRepo, publisher, log),
		deleteReportUC: reportUsecases.NewDeleteReportUseCase(r.reportRepo, publisher, log),
		getReportUC: reportUsecases.NewGetReportUseCase(
			r.reportRepo, r.reportUpdateRepo, r.reportImageRepo, r.reportDataRepo, c.storage, markdown.NewRenderer(), log),
		listReportsUC:      reportUsecases.NewListReportsUseCase(r.reportRepo, log),
		exportReportsUC:    reportUsecases.NewExportReportsUseCase(r.reportRepo, log),
		updateProgressUC:   reportUsecases.NewUpdateProgressUseCase(r.reportRepo, r.reportUpdateRepo, txMgr, publisher, log),
		listUpdatesUC:      reportUsecases.NewListReportUpdatesUseCase(r.reportRepo, r.reportUpdateRepo, log),
		assignReportUC:     reportUsecases.NewAssignReportUseCase(r.reportRepo, r.userRepo, publisher, log),
		setReportLockUC:    reportUsecases.NewSetReportLockUseCase(r.reportRepo, log),
		uploadImageUC:      reportUsecases.NewUploadReportImageUseCase(r.reportRepo, r.reportImageRepo, c.storage, log),
		setReportDataUC:    reportUsecases.NewSetReportDataUseCase(r.reportRepo, r.reportDataRepo, log),
		deleteReportDataUC: reportUsecases.NewDeleteReportDataUseCase(r.reportRepo, r.reportDataRepo, log),
		createCategoryUC:   reportUsecases.NewCreateCategoryUseCase(r.categoryRepo, log),
		listCategoriesUC:   reportUsecases.NewListCategoriesUseCase(r.categoryRepo, log),

		listNotificationsUC:  notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, log),
		countUnreadUC:        notificationUsecases.NewCountUnreadUseCase(r.notificationRepo, log),
		markAsReadUC:         notificationUsecases.NewMarkAsReadUseCase(r.notificationRepo, log),
		markAllAsReadUC:      notificationUsecases.NewMarkAllAsReadUseCase(r.notificationRepo, log),
		deleteNotificationUC: notificationUsecases.NewDeleteNotificationUseCase(r.notificationRepo, log),
		getSettingsUC:        notificationUsecases.NewGetSettingsUseCase(r.settingsRepo, log),
		updateSettingsUC:     notificationUsecases.NewUpdateSettingsUseCase(r.settingsRepo, log),

		userStatsUC: analyticsUsecases.NewGetUserStatisticsUseCase(r.factRepo, r.reportRepo, log),
	}

	deliverer := notificationUsecases.NewDeliverer(
		r.notificationRepo, r.settingsRepo, r.deliveryLogRepo, r.userRepo, c.hub, newMailer(c.cfg, log), log)
	ucs.sendBulkUC = notificationUsecases.NewSendBulkUseCase(deliverer, r.userRepo, log)
	ucs.sendSystemUC = notificationUsecases.NewSendSystemUseCase(deliverer, r.userRepo, log)
	ucs.reportEventHandler = notificationUsecases.NewReportEventHandler(deliverer, r.userRepo, log)

	ttl := time.Duration(c.cfg.Analytics.CacheTTLSeconds) * time.Second
	ucs.dashboardUC = analyticsUsecases.NewGetDashboardUseCase(
		r.factRepo, r.localRepo, r.equipamentoRepo, r.userRepo, c.dashboardCache(), ttl, log)
	ucs.sectionUC = analyticsUsecases.NewGetSectionUseCase(ucs.dashboardUC)

	c.initGoogleOAuth(ucs, tokens)

	return ucs
}

// initGoogleOAuth wires the Google sign-in use cases when credentials are
// configured. The executors stay nil otherwise so the routes are not
// registered.
func (c *Container) initGoogleOAuth(ucs *allUseCases, tokens userUsecases.TokenService) {
	google := c.cfg.OAuth.Google
	if !google.Enabled() {
		c.log.Infow("google oauth not configured, sign-in with google disabled")
		return
	}

	client := adapters.NewGoogleOAuthAdapter(auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
		ClientID:     google.ClientID,
		ClientSecret: google.ClientSecret,
		RedirectURL:  google.RedirectURL,
	}))

	var stateStore userUsecases.OAuthStateStore
	if c.redis != nil {
		stateStore = cache.NewRedisStateStore(c.redis, "oauth:state:", oauthStateTTL)
	} else {
		stateStore = cache.NewMemoryStateStore(oauthStateTTL)
	}

	ucs.googleLoginUC = userUsecases.NewInitiateGoogleLoginUseCase(client, stateStore, c.log)
	ucs.googleCallbackUC = userUsecases.NewHandleGoogleCallbackUseCase(client, stateStore, c.repos.userRepo, tokens, c.log)
}
