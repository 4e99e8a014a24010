package report

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/report/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type CreateReportRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Description   string  `json:"description" binding:"required,max=10000"`
	Priority      string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Progress      int     `json:"progress" binding:"min=0,max=100"`
	AssigneeID    *uint   `json:"assignee_id"`
	LocalID       *uint   `json:"local_id"`
	EquipamentoID *uint   `json:"equipamento_id"`
	CategoryID    *uint   `json:"category_id"`
	OccurredAt    *string `json:"occurred_at" example:"2026-02-14T09:30:00-03:00"`
}

func (r *CreateReportRequest) ToInput() (usecases.ReportInput, error) {
	occurredAt, err := utils.ParseOptionalTime("occurred_at", r.OccurredAt)
	if err != nil {
		return usecases.ReportInput{}, err
	}
	return usecases.ReportInput{
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		Progress:      r.Progress,
		AssigneeID:    r.AssigneeID,
		LocalID:       r.LocalID,
		EquipamentoID: r.EquipamentoID,
		CategoryID:    r.CategoryID,
		OccurredAt:    occurredAt,
	}, nil
}

type BulkCreateReportsRequest struct {
	Reports []CreateReportRequest `json:"reports" binding:"required,min=1,max=100,dive"`
}

type UpdateReportRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Description   string  `json:"description" binding:"required,max=10000"`
	Priority      string  `json:"priority" binding:"required,oneof=low medium high critical"`
	LocalID       *uint   `json:"local_id"`
	EquipamentoID *uint   `json:"equipamento_id"`
	CategoryID    *uint   `json:"category_id"`
	OccurredAt    *string `json:"occurred_at"`
}

func (r *UpdateReportRequest) ToCommand(tenantID, reportID uint, actor report.Actor) (usecases.UpdateReportCommand, error) {
	occurredAt, err := utils.ParseOptionalTime("occurred_at", r.OccurredAt)
	if err != nil {
		return usecases.UpdateReportCommand{}, err
	}
	return usecases.UpdateReportCommand{
		TenantID:      tenantID,
		ReportID:      reportID,
		Actor:         actor,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		LocalID:       r.LocalID,
		EquipamentoID: r.EquipamentoID,
		CategoryID:    r.CategoryID,
		OccurredAt:    occurredAt,
	}, nil
}

type ProgressImage struct {
	Path    string `json:"path" binding:"required,max=255"`
	Caption string `json:"caption" binding:"max=255"`
}

type UpdateProgressRequest struct {
	Progress *int            `json:"progress" binding:"required,min=0,max=100"`
	Note     string          `json:"note" binding:"max=5000"`
	Images   []ProgressImage `json:"images" binding:"max=10,dive"`
}

func (r *UpdateProgressRequest) ToCommand(tenantID, reportID uint, actor report.Actor) usecases.UpdateProgressCommand {
	images := make([]report.UpdateImage, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, report.UpdateImage{Path: img.Path, Caption: img.Caption})
	}
	return usecases.UpdateProgressCommand{
		TenantID: tenantID,
		ReportID: reportID,
		Actor:    actor,
		Progress: *r.Progress,
		Note:     r.Note,
		Images:   images,
	}
}

// AssignReportRequest with a zero assignee clears the assignment.
type AssignReportRequest struct {
	AssigneeID uint `json:"assignee_id"`
}

type SetReportDataRequest struct {
	Value    string `json:"value" binding:"max=5000"`
	DataType string `json:"data_type" binding:"omitempty,oneof=text number date boolean"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
}

// parseListQuery reads the report filters shared by listing and export.
func parseListQuery(c *gin.Context, tenantID uint, actor report.Actor) (usecases.ListReportsQuery, error) {
	q := usecases.ListReportsQuery{
		TenantID:  tenantID,
		Actor:     actor,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: strings.ToLower(c.Query("sort_order")),
	}

	ids := []struct {
		key    string
		target **uint
	}{
		{"assignee_id", &q.AssigneeID},
		{"author_id", &q.AuthorID},
		{"local_id", &q.LocalID},
		{"equipamento_id", &q.EquipamentoID},
		{"category_id", &q.CategoryID},
	}
	for _, id := range ids {
		v, err := utils.ParseUintQuery(c, id.key)
		if err != nil {
			return q, err
		}
		*id.target = v
	}

	from, err := parseDateQuery(c, "from", false)
	if err != nil {
		return q, err
	}
	to, err := parseDateQuery(c, "to", true)
	if err != nil {
		return q, err
	}
	q.From, q.To = from, to

	p := utils.ParsePaginationWithLimits(c, constants.DefaultReportPageSize, constants.MaxPageSize)
	q.Page = p.Page
	q.PageSize = p.PageSize
	return q, nil
}

// parseDateQuery reads a date-only value as a business-timezone day.
func parseDateQuery(c *gin.Context, key string, endOfDay bool) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if day, err := time.ParseInLocation(time.DateOnly, raw, biztime.Location()); err == nil {
		if endOfDay {
			return biztime.EndOfDayUTC(day), nil
		}
		return biztime.StartOfDayUTC(day), nil
	}
	t, err := utils.ParseOptionalTime(key, &raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
