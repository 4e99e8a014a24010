package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type GetReportQuery struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
}

// GetReportUseCase returns a report with its history, gallery and custom fields.
type GetReportUseCase struct {
	reportRepo report.Repository
	updateRepo report.UpdateRepository
	imageRepo  report.ImageRepository
	dataRepo   report.DataRepository
	storage    ImageStorage
	renderer   Renderer
	logger     logger.Interface
}

func NewGetReportUseCase(
	reportRepo report.Repository,
	updateRepo report.UpdateRepository,
	imageRepo report.ImageRepository,
	dataRepo report.DataRepository,
	storage ImageStorage,
	renderer Renderer,
	logger logger.Interface,
) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
		updateRepo: updateRepo,
		imageRepo:  imageRepo,
		dataRepo:   dataRepo,
		storage:    storage,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDetailDTO, error) {
	uc.logger.Infow("executing get report use case", "report_id", query.ReportID, "user_id", query.Actor.UserID)

	r, err := loadReport(ctx, uc.reportRepo, query.TenantID, query.ReportID, query.Actor)
	if err != nil {
		return nil, err
	}

	updates, err := uc.updateRepo.ListByReport(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to load report updates", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load report history")
	}
	images, err := uc.imageRepo.ListByReport(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to load report images", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load report images")
	}
	data, err := uc.dataRepo.ListByReport(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to load report data", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load report data")
	}

	detail := &dto.ReportDetailDTO{
		ReportDTO:   *dto.ToReportDTO(r),
		Permissions: dto.ToPermissionsDTO(r, query.Actor),
		Updates:     make([]dto.UpdateDTO, 0, len(updates)),
		Images:      make([]dto.ImageDTO, 0, len(images)),
		Data:        make([]dto.DataDTO, 0, len(data)),
	}
	detail.DescriptionHTML = uc.render(r.Description())
	for _, u := range updates {
		d := dto.ToUpdateDTO(u)
		d.NoteHTML = uc.render(u.Note())
		detail.Updates = append(detail.Updates, d)
	}
	for _, img := range images {
		detail.Images = append(detail.Images, dto.ToImageDTO(img, uc.storage.PublicURL(img.Path())))
	}
	for _, d := range data {
		detail.Data = append(detail.Data, dto.ToDataDTO(d))
	}
	return detail, nil
}

func (uc *GetReportUseCase) render(source string) string {
	if source == "" {
		return ""
	}
	html, err := uc.renderer.Render(source)
	if err != nil {
		uc.logger.Warnw("failed to render markdown", "error", err)
		return ""
	}
	return html
}
