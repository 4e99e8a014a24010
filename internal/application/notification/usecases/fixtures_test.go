package usecases

import (
	"fmt"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
)

const tenantID uint = 1

type harness struct {
	repo     *mockNotificationRepository
	settings *mockSettingsRepository
	logs     *mockDeliveryLogRepository
	users    *mockUserRepository
	pusher   *mockPusher
	mailer   *mockMailer
	d        *Deliverer
}

func newHarness(users ...*user.User) *harness {
	h := &harness{
		repo:     newMockNotificationRepository(),
		settings: newMockSettingsRepository(),
		logs:     &mockDeliveryLogRepository{},
		users:    &mockUserRepository{users: make(map[uint]*user.User)},
		pusher:   &mockPusher{},
		mailer:   &mockMailer{},
	}
	for _, u := range users {
		h.users.users[u.ID()] = u
	}
	h.d = NewDeliverer(h.repo, h.settings, h.logs, h.users, h.pusher, h.mailer, &mockLogger{})
	h.d.async = false
	return h
}

func member(id uint, role string, active bool) *user.User {
	return memberOf(id, tenantID, role, active)
}

func memberOf(id, tenant uint, role string, active bool) *user.User {
	u, err := user.ReconstructUser(id, user.UserState{
		TenantID: tenant,
		Username: fmt.Sprintf("user%d", id),
		Email:    fmt.Sprintf("user%d@example.com", id),
		Role:     role,
		IsActive: active,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func settingsFor(userID uint, mutate func(*notification.Settings)) *notification.Settings {
	s := notification.DefaultSettings(userID)
	mutate(s)
	return s
}
