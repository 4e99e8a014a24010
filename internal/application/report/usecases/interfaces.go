package usecases

import (
	"context"
	"io"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
)

type CreateReportExecutor interface {
	Execute(ctx context.Context, cmd CreateReportCommand) (*dto.ReportDTO, error)
}

type BulkCreateReportsExecutor interface {
	Execute(ctx context.Context, cmd BulkCreateReportsCommand) (*BulkCreateReportsResult, error)
}

type UpdateReportExecutor interface {
	Execute(ctx context.Context, cmd UpdateReportCommand) (*dto.ReportDTO, error)
}

type DeleteReportExecutor interface {
	Execute(ctx context.Context, cmd DeleteReportCommand) error
}

type GetReportExecutor interface {
	Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDetailDTO, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error)
}

type UpdateProgressExecutor interface {
	Execute(ctx context.Context, cmd UpdateProgressCommand) (*UpdateProgressResult, error)
}

type ListReportUpdatesExecutor interface {
	Execute(ctx context.Context, query ListReportUpdatesQuery) ([]dto.UpdateDTO, error)
}

type AssignReportExecutor interface {
	Execute(ctx context.Context, cmd AssignReportCommand) (*dto.ReportDTO, error)
}

type SetReportLockExecutor interface {
	Execute(ctx context.Context, cmd SetReportLockCommand) (*dto.ReportDTO, error)
}

type UploadReportImageExecutor interface {
	Execute(ctx context.Context, cmd UploadReportImageCommand) (*dto.ImageDTO, error)
}

type SetReportDataExecutor interface {
	Execute(ctx context.Context, cmd SetReportDataCommand) (*dto.DataDTO, error)
}

type DeleteReportDataExecutor interface {
	Execute(ctx context.Context, cmd DeleteReportDataCommand) error
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, tenantID uint) ([]*dto.CategoryDTO, error)
}

type ExportReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery, w io.Writer) (int, error)
}

// ImageStorage persists uploaded files and returns their storage path.
type ImageStorage interface {
	Save(ctx context.Context, dir, originalName string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
}

// Renderer turns markdown into sanitized HTML.
type Renderer interface {
	Render(source string) (string, error)
}
