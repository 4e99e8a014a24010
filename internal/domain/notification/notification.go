package notification

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/notification/valueobjects"
)

type Notification struct {
	id          uint
	tenantID    uint
	recipientID uint
	senderID    *uint
	nType       vo.NotificationType
	title       string
	message     string
	priority    vo.Priority
	reportID    *uint
	metadata    map[string]interface{}
	readAt      *time.Time
	sentByEmail bool
	createdAt   time.Time
}

// Draft carries the content shared by every recipient of one notification.
type Draft struct {
	TenantID uint
	SenderID *uint
	Type     vo.NotificationType
	Title    string
	Message  string
	Priority vo.Priority
	ReportID *uint
	Metadata map[string]interface{}
}

func (d Draft) Validate() error {
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid notification type: %s", d.Type)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len([]rune(d.Title)) > 200 {
		return fmt.Errorf("title cannot exceed 200 characters")
	}
	if strings.TrimSpace(d.Message) == "" {
		return fmt.Errorf("message is required")
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", d.Priority)
	}
	return nil
}

func NewNotification(recipientID uint, d Draft) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient is required")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	priority := d.Priority
	if priority == "" {
		priority = vo.PriorityNormal
	}
	meta := make(map[string]interface{}, len(d.Metadata))
	for k, v := range d.Metadata {
		meta[k] = v
	}
	return &Notification{
		tenantID:    d.TenantID,
		recipientID: recipientID,
		senderID:    d.SenderID,
		nType:       d.Type,
		title:       strings.TrimSpace(d.Title),
		message:     d.Message,
		priority:    priority,
		reportID:    d.ReportID,
		metadata:    meta,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructNotification(id, tenantID, recipientID uint, senderID *uint, nType, title, message, priority string,
	reportID *uint, metadata map[string]interface{}, readAt *time.Time, sentByEmail bool, createdAt time.Time) *Notification {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return &Notification{
		id:          id,
		tenantID:    tenantID,
		recipientID: recipientID,
		senderID:    senderID,
		nType:       vo.NotificationType(nType),
		title:       title,
		message:     message,
		priority:    vo.Priority(priority),
		reportID:    reportID,
		metadata:    metadata,
		readAt:      readAt,
		sentByEmail: sentByEmail,
		createdAt:   createdAt,
	}
}

func (n *Notification) ID() uint                      { return n.id }
func (n *Notification) TenantID() uint                { return n.tenantID }
func (n *Notification) RecipientID() uint             { return n.recipientID }
func (n *Notification) SenderID() *uint               { return n.senderID }
func (n *Notification) Type() vo.NotificationType     { return n.nType }
func (n *Notification) Title() string                 { return n.title }
func (n *Notification) Message() string               { return n.message }
func (n *Notification) Priority() vo.Priority         { return n.priority }
func (n *Notification) ReportID() *uint               { return n.reportID }
func (n *Notification) ReadAt() *time.Time            { return n.readAt }
func (n *Notification) SentByEmail() bool             { return n.sentByEmail }
func (n *Notification) CreatedAt() time.Time          { return n.createdAt }
func (n *Notification) IsRead() bool                  { return n.readAt != nil }

func (n *Notification) Metadata() map[string]interface{} {
	out := make(map[string]interface{}, len(n.metadata))
	for k, v := range n.metadata {
		out[k] = v
	}
	return out
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	n.id = id
	return nil
}

// MarkAsRead keeps the first read time on repeated calls.
func (n *Notification) MarkAsRead(at time.Time) {
	if n.readAt != nil {
		return
	}
	t := at.UTC()
	n.readAt = &t
}

// IsOwnedBy reports whether userID is the recipient.
func (n *Notification) IsOwnedBy(userID uint) bool {
	return n.recipientID == userID
}
