package usecases

import (
	"context"
	"fmt"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/goroutine"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const pushEventNew = "notification.new"

// Deliverer stores one notification per recipient and fans it out over push
// and e-mail according to each recipient's settings.
type Deliverer struct {
	repo     notification.Repository
	settings notification.SettingsRepository
	logs     notification.DeliveryLogRepository
	users    user.Repository
	pusher   Pusher
	mailer   Mailer
	logger   logger.Interface

	// async is false in tests so e-mail delivery can be asserted.
	async bool
}

func NewDeliverer(
	repo notification.Repository,
	settings notification.SettingsRepository,
	logs notification.DeliveryLogRepository,
	users user.Repository,
	pusher Pusher,
	mailer Mailer,
	logger logger.Interface,
) *Deliverer {
	return &Deliverer{
		repo:     repo,
		settings: settings,
		logs:     logs,
		users:    users,
		pusher:   pusher,
		mailer:   mailer,
		logger:   logger,
		async:    true,
	}
}

// Deliver returns the notifications that were created. Recipients whose
// settings reject the type are skipped. A recipient that cannot be saved does
// not stop delivery to the others; the failures are reported together.
func (d *Deliverer) Deliver(ctx context.Context, recipients []uint, draft notification.Draft) ([]*notification.Notification, error) {
	var created []*notification.Notification
	var errs []error
	seen := make(map[uint]bool, len(recipients))

	for _, recipientID := range recipients {
		if recipientID == 0 || seen[recipientID] {
			continue
		}
		seen[recipientID] = true

		prefs, err := loadSettings(ctx, d.settings, recipientID)
		if err != nil {
			d.logger.Warnw("failed to load notification settings, using defaults", "user_id", recipientID, "error", err)
			prefs = notification.DefaultSettings(recipientID)
		}
		if !prefs.Wants(draft.Type) {
			continue
		}

		n, err := notification.NewNotification(recipientID, draft)
		if err != nil {
			return created, err
		}
		if err := d.repo.Create(ctx, n); err != nil {
			d.logger.Errorw("failed to save notification", "user_id", recipientID, "error", err)
			errs = append(errs, err)
			continue
		}
		created = append(created, n)

		if prefs.WantsPush(draft.Type) {
			d.push(ctx, n)
		}
		if prefs.WantsEmail(draft.Type) && d.mailer != nil {
			d.email(n)
		}
	}

	if len(errs) > 0 {
		return created, fmt.Errorf("failed to save %d/%d notifications, first error: %w", len(errs), len(seen), errs[0])
	}
	return created, nil
}

func (d *Deliverer) push(ctx context.Context, n *notification.Notification) {
	if d.pusher == nil {
		return
	}
	unread, err := d.repo.CountUnread(ctx, n.RecipientID())
	if err != nil {
		d.logger.Warnw("failed to count unread notifications", "user_id", n.RecipientID(), "error", err)
	}
	msg := &dto.PushMessage{
		Event:        pushEventNew,
		Notification: dto.ToNotificationDTO(n),
		UnreadCount:  unread,
	}
	if err := d.pusher.Push(ctx, n.RecipientID(), msg); err != nil {
		d.logger.Warnw("failed to push notification", "notification_id", n.ID(), "error", err)
	}
}

func (d *Deliverer) email(n *notification.Notification) {
	send := func() { d.sendEmail(context.Background(), n) }
	if !d.async {
		send()
		return
	}
	goroutine.SafeGo(d.logger, "notification-email", send)
}

func (d *Deliverer) sendEmail(ctx context.Context, n *notification.Notification) {
	recipient, err := d.users.GetByID(ctx, n.RecipientID())
	if err != nil || recipient == nil || recipient.Email() == "" {
		d.logger.Warnw("no e-mail address for notification recipient", "user_id", n.RecipientID(), "error", err)
		return
	}

	id := n.ID()
	entry := &notification.DeliveryLog{
		NotificationID:   &id,
		NotificationType: n.Type(),
		RecipientEmail:   recipient.Email(),
		Title:            n.Title(),
		CreatedAt:        biztime.NowUTC(),
	}

	if err := d.mailer.SendNotificationEmail(recipient.Email(), n.Title(), n.Message()); err != nil {
		d.logger.Errorw("failed to send notification e-mail", "notification_id", id, "error", err)
		entry.ErrorMessage = err.Error()
	} else {
		sentAt := biztime.NowUTC()
		entry.Sent = true
		entry.SentAt = &sentAt
		if err := d.repo.MarkSentByEmail(ctx, id); err != nil {
			d.logger.Warnw("failed to flag notification as e-mailed", "notification_id", id, "error", err)
		}
	}

	if err := d.logs.Create(ctx, entry); err != nil {
		d.logger.Warnw("failed to write delivery log", "notification_id", id, "error", err)
	}
}

// loadSettings returns stored settings, creating the defaults on first use.
func loadSettings(ctx context.Context, repo notification.SettingsRepository, userID uint) (*notification.Settings, error) {
	s, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	s = notification.DefaultSettings(userID)
	if err := repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
