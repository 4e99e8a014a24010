package report

import (
	"strconv"

	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
)

const (
	EventReportCreated         = "report.created"
	EventReportAssigned        = "report.assigned"
	EventReportProgressUpdated = "report.progress"
	EventReportResolved        = "report.resolved"
	EventReportUpdated         = "report.updated"
	EventReportDeleted         = "report.deleted"
)

type ReportCreatedEvent struct {
	events.BaseEvent
	ReportID uint   `json:"report_id"`
	TenantID uint   `json:"tenant_id"`
	AuthorID uint   `json:"author_id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

func NewReportCreatedEvent(r *Report) ReportCreatedEvent {
	return ReportCreatedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(r.ID()), 10), EventReportCreated),
		ReportID:  r.ID(),
		TenantID:  r.TenantID(),
		AuthorID:  r.AuthorID(),
		Title:     r.Title(),
		Priority:  r.Priority().String(),
	}
}

type ReportAssignedEvent struct {
	events.BaseEvent
	ReportID   uint   `json:"report_id"`
	TenantID   uint   `json:"tenant_id"`
	AssigneeID uint   `json:"assignee_id"`
	AssignedBy uint   `json:"assigned_by"`
	Title      string `json:"title"`
}

func NewReportAssignedEvent(r *Report, assignedBy uint) ReportAssignedEvent {
	var assignee uint
	if r.AssigneeID() != nil {
		assignee = *r.AssigneeID()
	}
	return ReportAssignedEvent{
		BaseEvent:  events.NewBaseEvent(strconv.FormatUint(uint64(r.ID()), 10), EventReportAssigned),
		ReportID:   r.ID(),
		TenantID:   r.TenantID(),
		AssigneeID: assignee,
		AssignedBy: assignedBy,
		Title:      r.Title(),
	}
}

type ReportProgressUpdatedEvent struct {
	events.BaseEvent
	ReportID         uint   `json:"report_id"`
	TenantID         uint   `json:"tenant_id"`
	AuthorID         uint   `json:"author_id"`
	ActorID          uint   `json:"actor_id"`
	Title            string `json:"title"`
	PreviousProgress int    `json:"previous_progress"`
	NewProgress      int    `json:"new_progress"`
	NewStatus        string `json:"new_status"`
}

func NewReportProgressUpdatedEvent(r *Report, u *Update) ReportProgressUpdatedEvent {
	return ReportProgressUpdatedEvent{
		BaseEvent:        events.NewBaseEvent(strconv.FormatUint(uint64(r.ID()), 10), EventReportProgressUpdated),
		ReportID:         r.ID(),
		TenantID:         r.TenantID(),
		AuthorID:         r.AuthorID(),
		ActorID:          u.AuthorID(),
		Title:            r.Title(),
		PreviousProgress: u.PreviousProgress(),
		NewProgress:      u.NewProgress(),
		NewStatus:        u.NewStatus().String(),
	}
}

type ReportResolvedEvent struct {
	events.BaseEvent
	ReportID uint   `json:"report_id"`
	TenantID uint   `json:"tenant_id"`
	AuthorID uint   `json:"author_id"`
	ActorID  uint   `json:"actor_id"`
	Title    string `json:"title"`
}

func NewReportResolvedEvent(r *Report, actorID uint) ReportResolvedEvent {
	return ReportResolvedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(r.ID()), 10), EventReportResolved),
		ReportID:  r.ID(),
		TenantID:  r.TenantID(),
		AuthorID:  r.AuthorID(),
		ActorID:   actorID,
		Title:     r.Title(),
	}
}

// ReportChangedEvent covers edits and deletions, which matter to analytics
// but do not notify anyone.
type ReportChangedEvent struct {
	events.BaseEvent
	ReportID uint `json:"report_id"`
	TenantID uint `json:"tenant_id"`
	ActorID  uint `json:"actor_id"`
}

func NewReportUpdatedEvent(r *Report, actorID uint) ReportChangedEvent {
	return newReportChangedEvent(r, actorID, EventReportUpdated)
}

func NewReportDeletedEvent(r *Report, actorID uint) ReportChangedEvent {
	return newReportChangedEvent(r, actorID, EventReportDeleted)
}

func newReportChangedEvent(r *Report, actorID uint, eventType string) ReportChangedEvent {
	return ReportChangedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(r.ID()), 10), eventType),
		ReportID:  r.ID(),
		TenantID:  r.TenantID(),
		ActorID:   actorID,
	}
}
