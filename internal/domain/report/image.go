package report

import (
	"fmt"
	"time"
)

// Image is one picture in a report's ordered gallery.
type Image struct {
	id         uint
	reportID   uint
	path       string
	caption    string
	position   int
	uploadedAt time.Time
}

func NewImage(reportID uint, path, caption string, position int) (*Image, error) {
	if reportID == 0 {
		return nil, fmt.Errorf("report ID is required")
	}
	if path == "" {
		return nil, fmt.Errorf("image path is required")
	}
	if len([]rune(caption)) > 200 {
		return nil, fmt.Errorf("caption cannot exceed 200 characters")
	}
	if position < 0 {
		position = 0
	}
	return &Image{
		reportID:   reportID,
		path:       path,
		caption:    caption,
		position:   position,
		uploadedAt: time.Now().UTC(),
	}, nil
}

func ReconstructImage(id, reportID uint, path, caption string, position int, uploadedAt time.Time) *Image {
	return &Image{id: id, reportID: reportID, path: path, caption: caption, position: position, uploadedAt: uploadedAt}
}

func (i *Image) ID() uint              { return i.id }
func (i *Image) ReportID() uint        { return i.reportID }
func (i *Image) Path() string          { return i.path }
func (i *Image) Caption() string       { return i.caption }
func (i *Image) Position() int         { return i.position }
func (i *Image) UploadedAt() time.Time { return i.uploadedAt }

func (i *Image) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("image ID is already set")
	}
	i.id = id
	return nil
}
