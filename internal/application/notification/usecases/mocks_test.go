package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type mockNotificationRepository struct {
	mu    sync.Mutex
	items map[uint]*notification.Notification

	CreateFunc func(ctx context.Context, n *notification.Notification) error

	deleted []uint
	updates int
	emailed map[uint]bool
}

func newMockNotificationRepository(items ...*notification.Notification) *mockNotificationRepository {
	m := &mockNotificationRepository{
		items:   make(map[uint]*notification.Notification),
		emailed: make(map[uint]bool),
	}
	for _, n := range items {
		m.items[n.ID()] = n
	}
	return m
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, n); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := n.SetID(uint(len(m.items) + 1)); err != nil {
		return err
	}
	m.items[n.ID()] = n
	return nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if n, ok := m.items[id]; ok {
		n.MarkAsRead(at)
	}
	return nil
}

func (m *mockNotificationRepository) MarkSentByEmail(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailed[id] = true
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return m.items[id], nil
}

func (m *mockNotificationRepository) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	var out []*notification.Notification
	for _, n := range m.items {
		if n.RecipientID() == filter.RecipientID && (!filter.UnreadOnly || !n.IsRead()) {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	for _, n := range m.items {
		if n.RecipientID() == recipientID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) (int64, error) {
	return 0, nil
}

// forRecipient returns the stored notifications addressed to userID.
func (m *mockNotificationRepository) forRecipient(userID uint) []*notification.Notification {
	var out []*notification.Notification
	for _, n := range m.items {
		if n.RecipientID() == userID {
			out = append(out, n)
		}
	}
	return out
}

type mockSettingsRepository struct {
	settings map[uint]*notification.Settings
	saved    int
}

func newMockSettingsRepository(settings ...*notification.Settings) *mockSettingsRepository {
	m := &mockSettingsRepository{settings: make(map[uint]*notification.Settings)}
	for _, s := range settings {
		m.settings[s.UserID] = s
	}
	return m
}

func (m *mockSettingsRepository) Get(ctx context.Context, userID uint) (*notification.Settings, error) {
	return m.settings[userID], nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, s *notification.Settings) error {
	m.saved++
	m.settings[s.UserID] = s
	return nil
}

type mockDeliveryLogRepository struct {
	logs []*notification.DeliveryLog
}

func (m *mockDeliveryLogRepository) Create(ctx context.Context, log *notification.DeliveryLog) error {
	m.logs = append(m.logs, log)
	return nil
}

type mockUserRepository struct {
	user.Repository
	users      map[uint]*user.User
	managerIDs []uint
	activeIDs  []uint
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) ListManagerIDs(ctx context.Context, tenantID uint) ([]uint, error) {
	return append([]uint(nil), m.managerIDs...), nil
}

func (m *mockUserRepository) ListActiveIDs(ctx context.Context, tenantID uint) ([]uint, error) {
	return m.activeIDs, nil
}

type mockPusher struct {
	mu     sync.Mutex
	pushed map[uint][]*dto.PushMessage
}

func (m *mockPusher) Push(ctx context.Context, userID uint, msg *dto.PushMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pushed == nil {
		m.pushed = make(map[uint][]*dto.PushMessage)
	}
	m.pushed[userID] = append(m.pushed[userID], msg)
	return nil
}

type mockMailer struct {
	Err  error
	sent []string

	// OnSend runs while the message is "in flight".
	OnSend func()
}

func (m *mockMailer) SendNotificationEmail(to, subject, message string) error {
	if m.OnSend != nil {
		m.OnSend()
	}
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, to)
	return nil
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
