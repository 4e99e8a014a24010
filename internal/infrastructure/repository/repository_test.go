package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	notificationvo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	reportvo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
	apperrors "github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const tenantID uint = 1

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func createUser(t *testing.T, repo *UserRepository, username string, role authorization.UserRole, manager bool) *user.User {
	t.Helper()
	u, err := user.NewUser(tenantID, username, username+"@example.com", "User "+username, role)
	require.NoError(t, err)
	u.SetPasswordHash("hash")
	u.SetManager(manager)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createLocal(t *testing.T, repo *LocalRepository, code string) *location.Local {
	t.Helper()
	l, err := location.NewLocal(tenantID, location.LocalData{
		Name: "Local " + code, Code: code, Type: location.LocalTypeFabrica, City: "Campinas", State: "sp",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), l))
	return l
}

func createReport(t *testing.T, repo *ReportRepository, authorID uint, d report.Draft) *report.Report {
	t.Helper()
	r, err := report.NewReport(tenantID, authorID, d)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func uintPtr(v uint) *uint { return &v }

func TestUserRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	ana := createUser(t, repo, "ana", authorization.RoleUser, false)
	bia := createUser(t, repo, "bia", authorization.RoleStaff, true)

	byName, err := repo.GetByLogin(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, ana.ID(), byName.ID())

	byEmail, err := repo.GetByLogin(ctx, "BIA@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, bia.ID(), byEmail.ID())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.ExistsByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, exists)

	ana.Deactivate()
	require.NoError(t, repo.Update(ctx, ana))

	active, err := repo.ListActiveIDs(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bia.ID()}, active)

	managers, err := repo.ListManagerIDs(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bia.ID()}, managers)

	role := "staff"
	list, total, err := repo.List(ctx, user.ListFilter{TenantID: tenantID, Role: &role, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "bia", list[0].Username())

	dup, err := user.NewUser(tenantID, "ana", "other@example.com", "Other", authorization.RoleUser)
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestLocalRepository_DeleteCascades(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewLogger()
	locals := NewLocalRepository(gdb, log)
	equipment := NewEquipamentoRepository(gdb, log)
	motors := NewMotorRepository(gdb, log)
	reports := NewReportRepository(gdb, log)
	ctx := context.Background()

	local := createLocal(t, locals, "FAB-1")
	for i, status := range []location.OperationalStatus{location.OperationalOperando, location.OperationalOperando, location.OperationalManutencao} {
		e, err := location.NewEquipamento(tenantID, location.EquipamentoData{
			LocalID: local.ID(), Name: "Compressor", Code: string(rune('A' + i)), OperationalStatus: status,
		})
		require.NoError(t, err)
		require.NoError(t, equipment.Create(ctx, e))
	}
	m, err := location.NewMotor(tenantID, location.MotorData{LocalID: local.ID(), Name: "Motor", Code: "M-1"})
	require.NoError(t, err)
	require.NoError(t, motors.Create(ctx, m))

	stats, err := locals.EquipmentStats(ctx, local.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Operando)
	assert.Equal(t, int64(1), stats.Manutencao)

	r := createReport(t, reports, 1, report.Draft{Title: "Vazamento", LocalID: uintPtr(local.ID())})

	require.NoError(t, locals.Delete(ctx, local.ID()))

	got, err := locals.GetByID(ctx, local.ID())
	require.NoError(t, err)
	assert.Nil(t, got)

	_, total, err := equipment.List(ctx, location.ListFilter{TenantID: tenantID})
	require.NoError(t, err)
	assert.Zero(t, total)
	_, total, err = motors.List(ctx, location.ListFilter{TenantID: tenantID})
	require.NoError(t, err)
	assert.Zero(t, total)

	kept, err := reports.GetByID(ctx, r.ID())
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Nil(t, kept.LocalID())
}

func TestLocalRepository_ExistsByCodeExcludesSelf(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewLocalRepository(gdb, logger.NewLogger())
	local := createLocal(t, repo, "LJ-1")

	exists, err := repo.ExistsByCode(context.Background(), "LJ-1", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(context.Background(), "LJ-1", local.ID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReportRepository_ListScopesAndSorts(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReportRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	low := createReport(t, repo, 10, report.Draft{Title: "Lâmpada queimada", Priority: shared.PriorityLow})
	critical := createReport(t, repo, 11, report.Draft{Title: "Curto-circuito", Priority: shared.PriorityCritical, AssigneeID: uintPtr(10)})
	createReport(t, repo, 12, report.Draft{Title: "Porta emperrada", Priority: shared.PriorityHigh, Progress: 100})

	visible, total, err := repo.List(ctx, report.ListFilter{TenantID: tenantID, VisibleTo: uintPtr(10), Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, visible, 2)

	sorted, _, err := repo.List(ctx, report.ListFilter{TenantID: tenantID, SortBy: "priority", SortOrder: "desc", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, critical.ID(), sorted[0].ID())
	assert.Equal(t, low.ID(), sorted[2].ID())

	resolved := "resolved"
	done, total, err := repo.List(ctx, report.ListFilter{TenantID: tenantID, Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, done, 1)
	assert.NotNil(t, done[0].ResolvedAt())

	found, _, err := repo.List(ctx, report.ListFilter{TenantID: tenantID, Search: "circuito"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, critical.ID(), found[0].ID())

	other, total, err := repo.List(ctx, report.ListFilter{TenantID: 2})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, other)
}

func TestReportRepository_ProgressHistoryInTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewLogger()
	reports := NewReportRepository(gdb, log)
	updates := NewReportUpdateRepository(gdb, log)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	r := createReport(t, reports, 10, report.Draft{Title: "Ar-condicionado"})

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		u, err := r.ApplyProgress(report.Actor{UserID: 10}, 40, "Troca do filtro", []report.UpdateImage{{Path: "a.jpg"}})
		if err != nil {
			return err
		}
		if err := reports.Update(txCtx, r); err != nil {
			return err
		}
		return updates.Create(txCtx, u)
	})
	require.NoError(t, err)

	stored, err := reports.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Progress())
	assert.Equal(t, reportvo.StatusInProgress, stored.Status())

	history, err := updates.ListByReport(ctx, r.ID())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].PreviousProgress())
	assert.Equal(t, 40, history[0].NewProgress())
	assert.Equal(t, []report.UpdateImage{{Path: "a.jpg"}}, history[0].Images())

	require.NoError(t, reports.Delete(ctx, r.ID()))
	history, err = updates.ListByReport(ctx, r.ID())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReportRepository_UpdateRejectsStaleCopy(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReportRepository(gdb, logger.NewLogger())
	ctx := context.Background()
	actor := report.Actor{UserID: 10}

	r := createReport(t, repo, 10, report.Draft{Title: "Bomba com ruído", Progress: 50})

	first, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)

	_, err = first.ApplyProgress(actor, 90, "Rolamento trocado", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, first))

	_, err = second.ApplyProgress(actor, 60, "", nil)
	require.NoError(t, err)
	err = repo.Update(ctx, second)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err), "unexpected error: %v", err)

	require.NoError(t, second.ApplyEdit(actor, report.Edit{Title: "Bomba com ruído alto"}))
	assert.True(t, apperrors.IsConflictError(repo.Update(ctx, second)))

	stored, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, 90, stored.Progress())
	assert.Equal(t, reportvo.StatusInProgress, stored.Status())
	assert.Equal(t, "Bomba com ruído", stored.Title())
	assert.Equal(t, first.Version(), stored.Version())

	require.NoError(t, stored.ApplyEdit(actor, report.Edit{Title: "Bomba com ruído alto"}))
	require.NoError(t, repo.Update(ctx, stored))
}

func TestReportDataRepository_Upsert(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReportDataRepository(gdb)
	ctx := context.Background()

	first, err := report.NewData(7, "voltagem", "220", reportvo.DataTypeNumber)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, first))

	second, err := report.NewData(7, "voltagem", "380", reportvo.DataTypeNumber)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID(), second.ID())

	items, err := repo.ListByReport(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "380", items[0].Value())

	require.NoError(t, repo.DeleteByName(ctx, 7, "voltagem"))
	err = repo.DeleteByName(ctx, 7, "voltagem")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCategoryRepository_ExistsByNameIgnoresCase(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCategoryRepository(gdb)
	ctx := context.Background()

	c, err := report.NewCategory(tenantID, "Elétrica", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	exists, err := repo.ExistsByName(ctx, tenantID, "elétrica")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, 2, "Elétrica")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotificationRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationRepository(gdb, logger.NewLogger())
	settings := NewNotificationSettingsRepository(gdb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n, err := notification.NewNotification(5, notification.Draft{
			TenantID: tenantID,
			Type:     notificationvo.TypeReportCreated,
			Title:    "Novo relatório",
			Message:  "Um relatório foi criado",
			Metadata: map[string]interface{}{"report_id": float64(i)},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))
	}

	unread, err := repo.CountUnread(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	page, total, err := repo.List(ctx, notification.ListFilter{RecipientID: 5, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Contains(t, page[0].Metadata(), "report_id")

	require.NoError(t, repo.MarkAsRead(ctx, page[0].ID(), time.Now().UTC()))

	changed, err := repo.MarkAllAsRead(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	s, err := settings.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, s)

	defaults := notification.DefaultSettings(5)
	defaults.SystemUpdates = true
	require.NoError(t, settings.Save(ctx, defaults))
	defaults.EmailEnabled = false
	require.NoError(t, settings.Save(ctx, defaults))

	s, err = settings.Get(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.SystemUpdates)
	assert.False(t, s.EmailEnabled)
}

func TestNotificationRepository_EmailFlagKeepsRead(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	n, err := notification.NewNotification(5, notification.Draft{
		TenantID: tenantID,
		Type:     notificationvo.TypeReportAssigned,
		Title:    "Relatório atribuído",
		Message:  "Você foi designado",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, n))

	inbox, _, err := repo.List(ctx, notification.ListFilter{RecipientID: 5, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	readAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.MarkAsRead(ctx, inbox[0].ID(), readAt))

	// the e-mail goroutine still holds the unread copy
	require.False(t, n.IsRead())
	require.NoError(t, repo.MarkSentByEmail(ctx, n.ID()))

	unread, err := repo.CountUnread(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, unread)

	stored, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsRead())
	assert.True(t, stored.SentByEmail())

	require.NoError(t, repo.MarkAsRead(ctx, n.ID(), readAt.Add(time.Hour)))
	again, err := repo.GetByID(ctx, n.ID())
	require.NoError(t, err)
	assert.WithinDuration(t, readAt, *again.ReadAt(), time.Second)

	assert.Error(t, repo.MarkSentByEmail(ctx, 999))
}

func TestFactRepository(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewLogger()
	reports := NewReportRepository(gdb, log)
	updates := NewReportUpdateRepository(gdb, log)
	facts := NewFactRepository(gdb)
	ctx := context.Background()

	mine := createReport(t, reports, 10, report.Draft{Title: "Meu", Priority: shared.PriorityHigh})
	createReport(t, reports, 11, report.Draft{Title: "Outro"})

	u, err := mine.ApplyProgress(report.Actor{UserID: 10}, 100, "", nil)
	require.NoError(t, err)
	require.NoError(t, reports.Update(ctx, mine))
	require.NoError(t, updates.Create(ctx, u))

	all, err := facts.ReportFacts(ctx, analytics.Scope{TenantID: tenantID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := facts.ReportFacts(ctx, analytics.Scope{TenantID: tenantID, VisibleTo: uintPtr(10)})
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "resolved", scoped[0].Status)
	assert.NotNil(t, scoped[0].ResolvedAt)

	future, err := facts.ReportFacts(ctx, analytics.Scope{TenantID: tenantID, From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	ups, err := facts.UpdateFacts(ctx, analytics.Scope{TenantID: tenantID, VisibleTo: uintPtr(10)})
	require.NoError(t, err)
	require.Len(t, ups, 1)
	assert.Equal(t, mine.ID(), ups[0].ReportID)
	assert.Equal(t, 0, ups[0].PreviousProgress)
}
