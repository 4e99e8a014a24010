package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type mockLocalRepository struct {
	locals map[uint]*location.Local
	stats  *location.EquipmentStats

	ExistsByCodeFunc func(ctx context.Context, code string, excludeID uint) (bool, error)
	ListFunc         func(ctx context.Context, filter location.ListFilter) ([]*location.Local, int64, error)

	created []*location.Local
	updated []*location.Local
	deleted []uint
}

func (m *mockLocalRepository) Create(ctx context.Context, l *location.Local) error {
	m.created = append(m.created, l)
	return l.SetID(uint(len(m.created) + 10))
}

func (m *mockLocalRepository) Update(ctx context.Context, l *location.Local) error {
	m.updated = append(m.updated, l)
	return nil
}

func (m *mockLocalRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockLocalRepository) GetByID(ctx context.Context, id uint) (*location.Local, error) {
	return m.locals[id], nil
}

func (m *mockLocalRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Local, error) {
	return nil, nil
}

func (m *mockLocalRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code, excludeID)
	}
	return false, nil
}

func (m *mockLocalRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Local, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockLocalRepository) EquipmentStats(ctx context.Context, localID uint) (*location.EquipmentStats, error) {
	if m.stats == nil {
		return &location.EquipmentStats{}, nil
	}
	return m.stats, nil
}

type mockEquipamentoRepository struct {
	items map[uint]*location.Equipamento

	ListFunc func(ctx context.Context, filter location.ListFilter) ([]*location.Equipamento, int64, error)

	created []*location.Equipamento
	deleted []uint
}

func (m *mockEquipamentoRepository) Create(ctx context.Context, e *location.Equipamento) error {
	m.created = append(m.created, e)
	return e.SetID(uint(len(m.created)))
}

func (m *mockEquipamentoRepository) Update(ctx context.Context, e *location.Equipamento) error {
	return nil
}

func (m *mockEquipamentoRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockEquipamentoRepository) GetByID(ctx context.Context, id uint) (*location.Equipamento, error) {
	return m.items[id], nil
}

func (m *mockEquipamentoRepository) GetByIDs(ctx context.Context, ids []uint) ([]*location.Equipamento, error) {
	return nil, nil
}

func (m *mockEquipamentoRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Equipamento, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockMotorRepository struct {
	items   map[uint]*location.Motor
	created []*location.Motor
}

func (m *mockMotorRepository) Create(ctx context.Context, motor *location.Motor) error {
	m.created = append(m.created, motor)
	return motor.SetID(uint(len(m.created)))
}

func (m *mockMotorRepository) Update(ctx context.Context, motor *location.Motor) error { return nil }
func (m *mockMotorRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockMotorRepository) GetByID(ctx context.Context, id uint) (*location.Motor, error) {
	return m.items[id], nil
}

func (m *mockMotorRepository) List(ctx context.Context, filter location.ListFilter) ([]*location.Motor, int64, error) {
	return nil, 0, nil
}

// mockUserRepository only resolves users by id.
type mockUserRepository struct {
	user.Repository
	users map[uint]*user.User
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
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
