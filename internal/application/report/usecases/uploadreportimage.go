package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type UploadReportImageCommand struct {
	TenantID uint
	ReportID uint
	Actor    report.Actor
	FileName string
	Content  io.Reader
	Size     int64
	Caption  string
}

// UploadReportImageUseCase appends an image to the gallery. The first image
// becomes the report's main image.
type UploadReportImageUseCase struct {
	reportRepo report.Repository
	imageRepo  report.ImageRepository
	storage    ImageStorage
	logger     logger.Interface
}

func NewUploadReportImageUseCase(
	reportRepo report.Repository,
	imageRepo report.ImageRepository,
	storage ImageStorage,
	logger logger.Interface,
) *UploadReportImageUseCase {
	return &UploadReportImageUseCase{
		reportRepo: reportRepo,
		imageRepo:  imageRepo,
		storage:    storage,
		logger:     logger,
	}
}

func (uc *UploadReportImageUseCase) Execute(ctx context.Context, cmd UploadReportImageCommand) (*dto.ImageDTO, error) {
	uc.logger.Infow("executing upload report image use case",
		"report_id", cmd.ReportID,
		"file_name", cmd.FileName,
		"size", cmd.Size)

	if cmd.Content == nil {
		return nil, errors.NewValidationError("image file is required")
	}

	r, err := loadReport(ctx, uc.reportRepo, cmd.TenantID, cmd.ReportID, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !r.CanUpdateProgress(cmd.Actor) && !r.CanEdit(cmd.Actor) {
		return nil, toAppError(report.ErrNotAllowed)
	}

	count, err := uc.imageRepo.CountByReport(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to count report images", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to upload image")
	}

	path, err := uc.storage.Save(ctx, fmt.Sprintf("reports/%d", r.ID()), cmd.FileName, cmd.Content, cmd.Size)
	if err != nil {
		uc.logger.Warnw("failed to store image", "report_id", r.ID(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to store image")
	}

	img, err := report.NewImage(r.ID(), path, cmd.Caption, int(count))
	if err != nil {
		_ = uc.storage.Delete(ctx, path)
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.imageRepo.Create(ctx, img); err != nil {
		_ = uc.storage.Delete(ctx, path)
		uc.logger.Errorw("failed to save report image", "report_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save image")
	}

	if r.MainImage() == "" {
		r.SetMainImage(path)
		if err := uc.reportRepo.Update(ctx, r); err != nil {
			uc.logger.Warnw("failed to set main image", "report_id", r.ID(), "error", err)
		}
	}

	result := dto.ToImageDTO(img, uc.storage.PublicURL(path))
	return &result, nil
}
