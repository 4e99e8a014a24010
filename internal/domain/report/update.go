package report

import (
	"fmt"
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
)

const MaxUpdateNoteLength = 5000

// UpdateImage is an image attached to a progress update.
type UpdateImage struct {
	Path    string `json:"path"`
	Caption string `json:"caption,omitempty"`
}

// Update is an append-only history entry written by every progress transition.
type Update struct {
	id               uint
	reportID         uint
	authorID         uint
	previousProgress int
	newProgress      int
	previousStatus   vo.Status
	newStatus        vo.Status
	note             string
	images           []UpdateImage
	createdAt        time.Time
}

func NewUpdate(reportID, authorID uint, prevProgress, newProgress int, prevStatus, newStatus vo.Status, note string, images []UpdateImage) (*Update, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("update author is required")
	}
	if len([]rune(note)) > MaxUpdateNoteLength {
		return nil, fmt.Errorf("note exceeds maximum length of %d characters", MaxUpdateNoteLength)
	}
	for _, img := range images {
		if img.Path == "" {
			return nil, fmt.Errorf("update image path is required")
		}
	}
	return &Update{
		reportID:         reportID,
		authorID:         authorID,
		previousProgress: prevProgress,
		newProgress:      newProgress,
		previousStatus:   prevStatus,
		newStatus:        newStatus,
		note:             note,
		images:           append([]UpdateImage(nil), images...),
		createdAt:        time.Now().UTC(),
	}, nil
}

func ReconstructUpdate(id, reportID, authorID uint, prevProgress, newProgress int, prevStatus, newStatus string, note string, images []UpdateImage, createdAt time.Time) *Update {
	return &Update{
		id:               id,
		reportID:         reportID,
		authorID:         authorID,
		previousProgress: prevProgress,
		newProgress:      newProgress,
		previousStatus:   vo.Status(prevStatus),
		newStatus:        vo.Status(newStatus),
		note:             note,
		images:           images,
		createdAt:        createdAt,
	}
}

func (u *Update) ID() uint                  { return u.id }
func (u *Update) ReportID() uint            { return u.reportID }
func (u *Update) AuthorID() uint            { return u.authorID }
func (u *Update) PreviousProgress() int     { return u.previousProgress }
func (u *Update) NewProgress() int          { return u.newProgress }
func (u *Update) PreviousStatus() vo.Status { return u.previousStatus }
func (u *Update) NewStatus() vo.Status      { return u.newStatus }
func (u *Update) Note() string              { return u.note }
func (u *Update) CreatedAt() time.Time      { return u.createdAt }

func (u *Update) Images() []UpdateImage {
	out := make([]UpdateImage, len(u.images))
	copy(out, u.images)
	return out
}

// ProgressDelta is the number of points this update added.
func (u *Update) ProgressDelta() int {
	return u.newProgress - u.previousProgress
}

func (u *Update) StatusChanged() bool {
	return u.previousStatus != u.newStatus
}

func (u *Update) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("update ID is already set")
	}
	u.id = id
	return nil
}

// SetReportID binds an update built before its report had an ID.
func (u *Update) SetReportID(reportID uint) {
	u.reportID = reportID
}
