package usecases

import (
	"context"
	"io"
	"sync"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type mockReportRepository struct {
	CreateFunc  func(ctx context.Context, r *report.Report) error
	UpdateFunc  func(ctx context.Context, r *report.Report) error
	DeleteFunc  func(ctx context.Context, id uint) error
	GetByIDFunc func(ctx context.Context, id uint) (*report.Report, error)
	ListFunc    func(ctx context.Context, filter report.ListFilter) ([]*report.Report, int64, error)
}

func (m *mockReportRepository) Create(ctx context.Context, r *report.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Update(ctx context.Context, r *report.Report) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id uint) (*report.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReportRepository) List(ctx context.Context, filter report.ListFilter) ([]*report.Report, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockUpdateRepository struct {
	CreateFunc       func(ctx context.Context, u *report.Update) error
	ListByReportFunc func(ctx context.Context, reportID uint) ([]*report.Update, error)
}

func (m *mockUpdateRepository) Create(ctx context.Context, u *report.Update) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUpdateRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Update, error) {
	if m.ListByReportFunc != nil {
		return m.ListByReportFunc(ctx, reportID)
	}
	return nil, nil
}

type mockImageRepository struct {
	CreateFunc        func(ctx context.Context, img *report.Image) error
	ListByReportFunc  func(ctx context.Context, reportID uint) ([]*report.Image, error)
	CountByReportFunc func(ctx context.Context, reportID uint) (int64, error)
}

func (m *mockImageRepository) Create(ctx context.Context, img *report.Image) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, img)
	}
	return nil
}

func (m *mockImageRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Image, error) {
	if m.ListByReportFunc != nil {
		return m.ListByReportFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *mockImageRepository) CountByReport(ctx context.Context, reportID uint) (int64, error) {
	if m.CountByReportFunc != nil {
		return m.CountByReportFunc(ctx, reportID)
	}
	return 0, nil
}

type mockCategoryRepository struct {
	CreateFunc       func(ctx context.Context, c *report.Category) error
	GetByIDFunc      func(ctx context.Context, id uint) (*report.Category, error)
	ExistsByNameFunc func(ctx context.Context, tenantID uint, name string) (bool, error)
	ListFunc         func(ctx context.Context, tenantID uint) ([]*report.Category, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *report.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*report.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, tenantID uint, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, tenantID, name)
	}
	return false, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, tenantID uint) ([]*report.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockDataRepository struct {
	UpsertFunc       func(ctx context.Context, d *report.Data) error
	DeleteByNameFunc func(ctx context.Context, reportID uint, name string) error
	ListByReportFunc func(ctx context.Context, reportID uint) ([]*report.Data, error)
}

func (m *mockDataRepository) Upsert(ctx context.Context, d *report.Data) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, d)
	}
	return nil
}

func (m *mockDataRepository) DeleteByName(ctx context.Context, reportID uint, name string) error {
	if m.DeleteByNameFunc != nil {
		return m.DeleteByNameFunc(ctx, reportID, name)
	}
	return nil
}

func (m *mockDataRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Data, error) {
	if m.ListByReportFunc != nil {
		return m.ListByReportFunc(ctx, reportID)
	}
	return nil, nil
}

type mockLocalRepository struct {
	location.LocalRepository
	GetByIDFunc func(ctx context.Context, id uint) (*location.Local, error)
}

func (m *mockLocalRepository) GetByID(ctx context.Context, id uint) (*location.Local, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockEquipamentoRepository struct {
	location.EquipamentoRepository
	GetByIDFunc func(ctx context.Context, id uint) (*location.Equipamento, error)
}

func (m *mockEquipamentoRepository) GetByID(ctx context.Context, id uint) (*location.Equipamento, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockUserRepository struct {
	user.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockPublisher struct {
	mu        sync.Mutex
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	return m.PublishAll([]events.DomainEvent{event})
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, evts...)
	return m.err
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.published))
	for _, e := range m.published {
		out = append(out, e.GetEventType())
	}
	return out
}

// mockTransactor runs fn inline and records whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockStorage struct {
	SaveFunc func(ctx context.Context, dir, name string, r io.Reader, size int64) (string, error)
	deleted  []string
}

func (m *mockStorage) Save(ctx context.Context, dir, name string, r io.Reader, size int64) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, dir, name, r, size)
	}
	return dir + "/" + name, nil
}

func (m *mockStorage) Delete(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStorage) PublicURL(path string) string {
	return "/media/" + path
}

type mockRenderer struct{}

func (mockRenderer) Render(source string) (string, error) {
	return "<p>" + source + "</p>", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
