package usecases

import (
	"context"
	"fmt"

	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	vo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// ReportEventHandler turns report lifecycle events into notifications.
type ReportEventHandler struct {
	deliverer *Deliverer
	users     user.Repository
	logger    logger.Interface
}

func NewReportEventHandler(deliverer *Deliverer, users user.Repository, logger logger.Interface) *ReportEventHandler {
	return &ReportEventHandler{deliverer: deliverer, users: users, logger: logger}
}

// EventTypes lists the events the handler subscribes to.
func (h *ReportEventHandler) EventTypes() []string {
	return []string{
		report.EventReportCreated,
		report.EventReportAssigned,
		report.EventReportProgressUpdated,
		report.EventReportResolved,
	}
}

func (h *ReportEventHandler) CanHandle(eventType string) bool {
	for _, t := range h.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *ReportEventHandler) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	var (
		recipients []uint
		draft      notification.Draft
		err        error
	)

	switch e := event.(type) {
	case report.ReportCreatedEvent:
		recipients, err = h.managersExcept(ctx, e.TenantID, e.AuthorID)
		draft = h.draft(e.TenantID, e.ReportID, &e.AuthorID, vo.TypeReportCreated,
			"Novo relatório: "+e.Title,
			fmt.Sprintf("Um novo relatório de prioridade %s foi registrado.", e.Priority),
			notificationPriority(e.Priority))
	case report.ReportAssignedEvent:
		if e.AssigneeID == 0 || e.AssigneeID == e.AssignedBy {
			return nil
		}
		recipients = []uint{e.AssigneeID}
		draft = h.draft(e.TenantID, e.ReportID, &e.AssignedBy, vo.TypeReportAssigned,
			"Relatório atribuído a você: "+e.Title,
			"Você foi designado como responsável por este relatório.",
			vo.PriorityHigh)
	case report.ReportProgressUpdatedEvent:
		if e.ActorID == e.AuthorID {
			return nil
		}
		recipients = []uint{e.AuthorID}
		draft = h.draft(e.TenantID, e.ReportID, &e.ActorID, vo.TypeReportProgress,
			"Progresso atualizado: "+e.Title,
			fmt.Sprintf("O progresso passou de %d%% para %d%%.", e.PreviousProgress, e.NewProgress),
			vo.PriorityNormal)
		draft.Metadata = map[string]interface{}{
			"previous_progress": e.PreviousProgress,
			"new_progress":      e.NewProgress,
			"new_status":        e.NewStatus,
		}
	case report.ReportResolvedEvent:
		var managers []uint
		managers, err = h.users.ListManagerIDs(ctx, e.TenantID)
		recipients = append([]uint{e.AuthorID}, managers...)
		draft = h.draft(e.TenantID, e.ReportID, &e.ActorID, vo.TypeReportResolved,
			"Relatório resolvido: "+e.Title,
			"O relatório foi concluído.",
			vo.PriorityNormal)
	default:
		return nil
	}

	if err != nil {
		h.logger.Errorw("failed to resolve notification recipients", "event_type", event.GetEventType(), "error", err)
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	created, err := h.deliverer.Deliver(ctx, recipients, draft)
	if err != nil {
		h.logger.Errorw("failed to deliver report notifications", "event_type", event.GetEventType(), "error", err)
		return err
	}

	h.logger.Debugw("report notifications delivered", "event_type", event.GetEventType(), "count", len(created))
	return nil
}

func (h *ReportEventHandler) managersExcept(ctx context.Context, tenantID, exclude uint) ([]uint, error) {
	ids, err := h.users.ListManagerIDs(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out, nil
}

func (h *ReportEventHandler) draft(tenantID, reportID uint, sender *uint, t vo.NotificationType, title, message string, p vo.Priority) notification.Draft {
	id := reportID
	return notification.Draft{
		TenantID: tenantID,
		SenderID: sender,
		Type:     t,
		Title:    truncateTitle(title),
		Message:  message,
		Priority: p,
		ReportID: &id,
	}
}

func notificationPriority(reportPriority string) vo.Priority {
	switch shared.Priority(reportPriority) {
	case shared.PriorityCritical:
		return vo.PriorityUrgent
	case shared.PriorityHigh:
		return vo.PriorityHigh
	case shared.PriorityLow:
		return vo.PriorityLow
	default:
		return vo.PriorityNormal
	}
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 200 {
		return title
	}
	return string(runes[:197]) + "..."
}
