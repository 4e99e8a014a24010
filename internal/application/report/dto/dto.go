package dto

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

type ReportDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html,omitempty"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	Progress        int        `json:"progress"`
	AuthorID        uint       `json:"author_id"`
	AssigneeID      *uint      `json:"assignee_id"`
	ResponsibleID   uint       `json:"responsible_id"`
	LocalID         *uint      `json:"local_id"`
	EquipamentoID   *uint      `json:"equipamento_id"`
	CategoryID      *uint      `json:"category_id"`
	OccurredAt      time.Time  `json:"occurred_at"`
	Editable        bool       `json:"editable"`
	MainImage       string     `json:"main_image,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	Version         int        `json:"version"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PermissionsDTO tells the client which actions the caller may take.
type PermissionsDTO struct {
	CanEdit           bool `json:"can_edit"`
	CanUpdateProgress bool `json:"can_update_progress"`
	CanAssign         bool `json:"can_assign"`
}

type ReportDetailDTO struct {
	ReportDTO
	Permissions PermissionsDTO `json:"permissions"`
	Updates     []UpdateDTO    `json:"updates"`
	Images      []ImageDTO     `json:"images"`
	Data        []DataDTO      `json:"data"`
}

type UpdateDTO struct {
	ID               uint                 `json:"id"`
	ReportID         uint                 `json:"report_id"`
	AuthorID         uint                 `json:"author_id"`
	PreviousProgress int                  `json:"previous_progress"`
	NewProgress      int                  `json:"new_progress"`
	ProgressDelta    int                  `json:"progress_delta"`
	PreviousStatus   string               `json:"previous_status"`
	NewStatus        string               `json:"new_status"`
	StatusChanged    bool                 `json:"status_changed"`
	Note             string               `json:"note"`
	NoteHTML         string               `json:"note_html,omitempty"`
	Images           []report.UpdateImage `json:"images"`
	CreatedAt        time.Time            `json:"created_at"`
}

type ImageDTO struct {
	ID         uint      `json:"id"`
	Path       string    `json:"path"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption"`
	Position   int       `json:"position"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type DataDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	DataType  string    `json:"data_type"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToReportDTO(r *report.Report) *ReportDTO {
	if r == nil {
		return nil
	}
	return &ReportDTO{
		ID:            r.ID(),
		Title:         r.Title(),
		Description:   r.Description(),
		Status:        r.Status().String(),
		Priority:      r.Priority().String(),
		Progress:      r.Progress(),
		AuthorID:      r.AuthorID(),
		AssigneeID:    r.AssigneeID(),
		ResponsibleID: r.CurrentResponsible(),
		LocalID:       r.LocalID(),
		EquipamentoID: r.EquipamentoID(),
		CategoryID:    r.CategoryID(),
		OccurredAt:    r.OccurredAt(),
		Editable:      r.Editable(),
		MainImage:     r.MainImage(),
		ResolvedAt:    r.ResolvedAt(),
		Version:       r.Version(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func ToReportDTOs(reports []*report.Report) []*ReportDTO {
	return mapper.MapSlice(reports, ToReportDTO)
}

func ToPermissionsDTO(r *report.Report, a report.Actor) PermissionsDTO {
	return PermissionsDTO{
		CanEdit:           r.CanEdit(a),
		CanUpdateProgress: r.CanUpdateProgress(a),
		CanAssign:         r.CanAssign(a),
	}
}

func ToUpdateDTO(u *report.Update) UpdateDTO {
	images := u.Images()
	if images == nil {
		images = []report.UpdateImage{}
	}
	return UpdateDTO{
		ID:               u.ID(),
		ReportID:         u.ReportID(),
		AuthorID:         u.AuthorID(),
		PreviousProgress: u.PreviousProgress(),
		NewProgress:      u.NewProgress(),
		ProgressDelta:    u.ProgressDelta(),
		PreviousStatus:   u.PreviousStatus().String(),
		NewStatus:        u.NewStatus().String(),
		StatusChanged:    u.StatusChanged(),
		Note:             u.Note(),
		Images:           images,
		CreatedAt:        u.CreatedAt(),
	}
}

func ToImageDTO(img *report.Image, url string) ImageDTO {
	return ImageDTO{
		ID:         img.ID(),
		Path:       img.Path(),
		URL:        url,
		Caption:    img.Caption(),
		Position:   img.Position(),
		UploadedAt: img.UploadedAt(),
	}
}

func ToDataDTO(d *report.Data) DataDTO {
	return DataDTO{
		ID:        d.ID(),
		Name:      d.Name(),
		Value:     d.Value(),
		DataType:  d.DataType().String(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func ToCategoryDTO(c *report.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Color:       c.Color(),
		CreatedAt:   c.CreatedAt(),
	}
}

func ToCategoryDTOs(categories []*report.Category) []*CategoryDTO {
	return mapper.MapSlice(categories, ToCategoryDTO)
}
