package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type mockFactRepository struct {
	reports []analytics.ReportFact
	updates []analytics.UpdateFact

	scopes []analytics.Scope
}

func (m *mockFactRepository) ReportFacts(ctx context.Context, scope analytics.Scope) ([]analytics.ReportFact, error) {
	m.scopes = append(m.scopes, scope)
	var out []analytics.ReportFact
	for _, f := range m.reports {
		if !scope.From.IsZero() && f.CreatedAt.Before(scope.From) {
			continue
		}
		if !scope.To.IsZero() && !f.CreatedAt.Before(scope.To) {
			continue
		}
		if scope.VisibleTo != nil && f.AuthorID != *scope.VisibleTo &&
			(f.AssigneeID == nil || *f.AssigneeID != *scope.VisibleTo) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (m *mockFactRepository) UpdateFacts(ctx context.Context, scope analytics.Scope) ([]analytics.UpdateFact, error) {
	return m.updates, nil
}

type mockCache struct {
	items       map[string]*analytics.Dashboard
	invalidated []uint
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string]*analytics.Dashboard)}
}

func (m *mockCache) Get(ctx context.Context, key string) (*analytics.Dashboard, error) {
	return m.items[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, d *analytics.Dashboard, ttl time.Duration) error {
	m.items[key] = d
	return nil
}

func (m *mockCache) InvalidateTenant(ctx context.Context, tenantID uint) error {
	m.invalidated = append(m.invalidated, tenantID)
	prefix := fmt.Sprintf("%d:", tenantID)
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	return nil
}

type mockLocalRepository struct {
	location.LocalRepository
	locals []*location.Local
}

func (m *mockLocalRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Local, error) {
	return m.locals, nil
}

type mockEquipamentoRepository struct {
	location.EquipamentoRepository
	items []*location.Equipamento
}

func (m *mockEquipamentoRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Equipamento, error) {
	return m.items, nil
}

type mockUserRepository struct {
	user.Repository
	users []*user.User
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return m.users, nil
}

type mockReportRepository struct {
	report.Repository
	filter report.ListFilter
}

func (m *mockReportRepository) List(ctx context.Context, filter report.ListFilter) ([]*report.Report, int64, error) {
	m.filter = filter
	return nil, 0, nil
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
