package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 10000
)

var (
	ErrProgressRegression = errors.New("progress cannot decrease")
	ErrNotAllowed         = errors.New("user is not allowed to perform this action on the report")
	ErrReportLocked       = errors.New("report is locked for editing")
)

// Actor identifies who performs an operation on a report.
type Actor struct {
	UserID uint
	Staff  bool
}

// Draft holds the fields supplied when a report is created.
type Draft struct {
	Title         string
	Description   string
	Priority      shared.Priority
	Progress      int
	AssigneeID    *uint
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	OccurredAt    *time.Time
}

// Edit holds the fields an edit may change. Progress is deliberately absent.
type Edit struct {
	Title         string
	Description   string
	Priority      shared.Priority
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	OccurredAt    *time.Time
}

type Report struct {
	id            uint
	tenantID      uint
	authorID      uint
	assigneeID    *uint
	localID       *uint
	equipamentoID *uint
	categoryID    *uint
	occurredAt    time.Time
	title         string
	description   string
	status        vo.Status
	priority      shared.Priority
	progress      int
	editable      bool
	mainImage     string
	resolvedAt    *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

func validateText(title, description string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return title, nil
}

func NewReport(tenantID, authorID uint, d Draft) (*Report, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	title, err := validateText(d.Title, d.Description)
	if err != nil {
		return nil, err
	}
	if d.Priority == "" {
		d.Priority = shared.PriorityMedium
	}
	if !d.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", d.Priority)
	}
	status, err := vo.StatusFromProgress(d.Progress)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	occurredAt := now
	if d.OccurredAt != nil {
		occurredAt = d.OccurredAt.UTC()
	}

	r := &Report{
		tenantID:      tenantID,
		authorID:      authorID,
		assigneeID:    d.AssigneeID,
		localID:       d.LocalID,
		equipamentoID: d.EquipamentoID,
		categoryID:    d.CategoryID,
		occurredAt:    occurredAt,
		title:         title,
		description:   d.Description,
		status:        status,
		priority:      d.Priority,
		progress:      d.Progress,
		editable:      true,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}
	if status.IsResolved() {
		r.resolvedAt = &now
	}
	return r, nil
}

// State is the persisted form used to rebuild a Report.
type State struct {
	TenantID      uint
	AuthorID      uint
	AssigneeID    *uint
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	OccurredAt    time.Time
	Title         string
	Description   string
	Status        string
	Priority      string
	Progress      int
	Editable      bool
	MainImage     string
	ResolvedAt    *time.Time
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructReport(id uint, s State) (*Report, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	status := vo.Status(s.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", s.Status)
	}
	priority := shared.Priority(s.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", s.Priority)
	}
	return &Report{
		id:            id,
		tenantID:      s.TenantID,
		authorID:      s.AuthorID,
		assigneeID:    s.AssigneeID,
		localID:       s.LocalID,
		equipamentoID: s.EquipamentoID,
		categoryID:    s.CategoryID,
		occurredAt:    s.OccurredAt,
		title:         s.Title,
		description:   s.Description,
		status:        status,
		priority:      priority,
		progress:      s.Progress,
		editable:      s.Editable,
		mainImage:     s.MainImage,
		resolvedAt:    s.ResolvedAt,
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}, nil
}

func (r *Report) ID() uint                  { return r.id }
func (r *Report) TenantID() uint            { return r.tenantID }
func (r *Report) AuthorID() uint            { return r.authorID }
func (r *Report) AssigneeID() *uint         { return r.assigneeID }
func (r *Report) LocalID() *uint            { return r.localID }
func (r *Report) EquipamentoID() *uint      { return r.equipamentoID }
func (r *Report) CategoryID() *uint         { return r.categoryID }
func (r *Report) OccurredAt() time.Time     { return r.occurredAt }
func (r *Report) Title() string             { return r.title }
func (r *Report) Description() string       { return r.description }
func (r *Report) Status() vo.Status         { return r.status }
func (r *Report) Priority() shared.Priority { return r.priority }
func (r *Report) Progress() int             { return r.progress }
func (r *Report) Editable() bool            { return r.editable }
func (r *Report) MainImage() string         { return r.mainImage }
func (r *Report) ResolvedAt() *time.Time    { return r.resolvedAt }
func (r *Report) Version() int              { return r.version }
func (r *Report) CreatedAt() time.Time      { return r.createdAt }
func (r *Report) UpdatedAt() time.Time      { return r.updatedAt }

func (r *Report) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Report) IsResolved() bool {
	return r.status.IsResolved()
}

func (r *Report) isAssignee(userID uint) bool {
	return r.assigneeID != nil && *r.assigneeID == userID
}

// CurrentResponsible is the assignee when there is one, otherwise the author.
func (r *Report) CurrentResponsible() uint {
	if r.assigneeID != nil {
		return *r.assigneeID
	}
	return r.authorID
}

// CanView: staff see every report, others only what they wrote or were assigned.
func (r *Report) CanView(a Actor) bool {
	return a.Staff || r.authorID == a.UserID || r.isAssignee(a.UserID)
}

// CanUpdateProgress: the author always may, the assignee while the report is
// not resolved, and staff always.
func (r *Report) CanUpdateProgress(a Actor) bool {
	if a.UserID == r.authorID {
		return true
	}
	if r.isAssignee(a.UserID) && !r.IsResolved() {
		return true
	}
	return a.Staff
}

// CanEdit covers edit and delete: staff always, the author while editable.
func (r *Report) CanEdit(a Actor) bool {
	if a.Staff {
		return true
	}
	return a.UserID == r.authorID && r.editable
}

// CanAssign: staff or the author.
func (r *Report) CanAssign(a Actor) bool {
	return a.Staff || a.UserID == r.authorID
}

// ApplyEdit changes descriptive fields. Progress and status are untouched.
func (r *Report) ApplyEdit(a Actor, e Edit) error {
	if !r.CanEdit(a) {
		if a.UserID == r.authorID && !r.editable {
			return ErrReportLocked
		}
		return ErrNotAllowed
	}
	title, err := validateText(e.Title, e.Description)
	if err != nil {
		return err
	}
	if e.Priority == "" {
		e.Priority = r.priority
	}
	if !e.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", e.Priority)
	}

	r.title = title
	r.description = e.Description
	r.priority = e.Priority
	r.localID = e.LocalID
	r.equipamentoID = e.EquipamentoID
	r.categoryID = e.CategoryID
	if e.OccurredAt != nil {
		r.occurredAt = e.OccurredAt.UTC()
	}
	r.touch()
	return nil
}

// ApplyProgress is the single progress transition. It rejects regressions,
// derives the new status and returns the history entry to persist alongside
// the report. Equal progress is accepted as a note-only update.
func (r *Report) ApplyProgress(a Actor, newProgress int, note string, images []UpdateImage) (*Update, error) {
	if !r.CanUpdateProgress(a) {
		return nil, ErrNotAllowed
	}
	newStatus, err := vo.StatusFromProgress(newProgress)
	if err != nil {
		return nil, err
	}
	if newProgress < r.progress {
		return nil, fmt.Errorf("%w: current %d, requested %d", ErrProgressRegression, r.progress, newProgress)
	}

	upd, err := NewUpdate(r.id, a.UserID, r.progress, newProgress, r.status, newStatus, note, images)
	if err != nil {
		return nil, err
	}

	wasResolved := r.IsResolved()
	r.progress = newProgress
	r.status = newStatus
	r.touch()
	if newStatus.IsResolved() && !wasResolved {
		now := r.updatedAt
		r.resolvedAt = &now
	}
	return upd, nil
}

// AssignTo sets the assignee. The caller checks CanAssign and that the user is active.
func (r *Report) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	r.assigneeID = &assigneeID
	r.touch()
	return nil
}

func (r *Report) Unassign() {
	r.assigneeID = nil
	r.touch()
}

// SetEditable locks or unlocks the report for author edits and reports
// whether anything changed.
func (r *Report) SetEditable(editable bool) bool {
	if r.editable == editable {
		return false
	}
	r.editable = editable
	r.touch()
	return true
}

func (r *Report) SetMainImage(path string) {
	r.mainImage = path
	r.touch()
}

func (r *Report) touch() {
	r.updatedAt = time.Now().UTC()
	r.version++
}
