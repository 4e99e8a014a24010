package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/notification/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/notification"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type GetSettingsUseCase struct {
	repo   notification.SettingsRepository
	logger logger.Interface
}

func NewGetSettingsUseCase(repo notification.SettingsRepository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{repo: repo, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, userID uint) (*dto.SettingsDTO, error) {
	s, err := loadSettings(ctx, uc.repo, userID)
	if err != nil {
		uc.logger.Errorw("failed to load notification settings", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to load notification settings")
	}
	return dto.ToSettingsDTO(s), nil
}

// UpdateSettingsCommand changes only the flags that are set.
type UpdateSettingsCommand struct {
	UserID         uint
	EmailEnabled   *bool
	BrowserEnabled *bool
	ReportCreated  *bool
	ReportAssigned *bool
	ReportProgress *bool
	ReportResolved *bool
	SystemUpdates  *bool
}

type UpdateSettingsUseCase struct {
	repo   notification.SettingsRepository
	logger logger.Interface
}

func NewUpdateSettingsUseCase(repo notification.SettingsRepository, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{repo: repo, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, cmd UpdateSettingsCommand) (*dto.SettingsDTO, error) {
	uc.logger.Infow("executing update notification settings use case", "user_id", cmd.UserID)

	s, err := loadSettings(ctx, uc.repo, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load notification settings", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update notification settings")
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&s.EmailEnabled, cmd.EmailEnabled)
	apply(&s.BrowserEnabled, cmd.BrowserEnabled)
	apply(&s.ReportCreated, cmd.ReportCreated)
	apply(&s.ReportAssigned, cmd.ReportAssigned)
	apply(&s.ReportProgress, cmd.ReportProgress)
	apply(&s.ReportResolved, cmd.ReportResolved)
	apply(&s.SystemUpdates, cmd.SystemUpdates)
	s.UpdatedAt = biztime.NowUTC()

	if err := uc.repo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save notification settings", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update notification settings")
	}

	return dto.ToSettingsDTO(s), nil
}
