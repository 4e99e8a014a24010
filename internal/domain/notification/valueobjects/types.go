package valueobjects

type NotificationType string

const (
	TypeReportCreated  NotificationType = "report_created"
	TypeReportAssigned NotificationType = "report_assigned"
	TypeReportProgress NotificationType = "report_progress"
	TypeReportResolved NotificationType = "report_resolved"
	TypeBulk           NotificationType = "bulk"
	TypeSystem         NotificationType = "system"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case TypeReportCreated, TypeReportAssigned, TypeReportProgress, TypeReportResolved, TypeBulk, TypeSystem:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
