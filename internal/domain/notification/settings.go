package notification

import (
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
)

// Settings are a user's delivery preferences. They are created on first use.
type Settings struct {
	UserID         uint
	EmailEnabled   bool
	BrowserEnabled bool
	ReportCreated  bool
	ReportAssigned bool
	ReportProgress bool
	ReportResolved bool
	SystemUpdates  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultSettings enables everything except system updates.
func DefaultSettings(userID uint) *Settings {
	now := time.Now().UTC()
	return &Settings{
		UserID:         userID,
		EmailEnabled:   true,
		BrowserEnabled: true,
		ReportCreated:  true,
		ReportAssigned: true,
		ReportProgress: true,
		ReportResolved: true,
		SystemUpdates:  false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Wants reports whether the user accepts notifications of type t at all.
// Bulk messages from staff are always delivered.
func (s *Settings) Wants(t vo.NotificationType) bool {
	switch t {
	case vo.TypeReportCreated:
		return s.ReportCreated
	case vo.TypeReportAssigned:
		return s.ReportAssigned
	case vo.TypeReportProgress:
		return s.ReportProgress
	case vo.TypeReportResolved:
		return s.ReportResolved
	case vo.TypeSystem:
		return s.SystemUpdates
	default:
		return true
	}
}

func (s *Settings) WantsEmail(t vo.NotificationType) bool {
	return s.EmailEnabled && s.Wants(t)
}

func (s *Settings) WantsPush(t vo.NotificationType) bool {
	return s.BrowserEnabled && s.Wants(t)
}
