package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/location/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type CreateLocalCommand struct {
	TenantID uint
	Data     location.LocalData
}

type CreateLocalUseCase struct {
	localRepo location.LocalRepository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewCreateLocalUseCase(localRepo location.LocalRepository, userRepo user.Repository, logger logger.Interface) *CreateLocalUseCase {
	return &CreateLocalUseCase{localRepo: localRepo, userRepo: userRepo, logger: logger}
}

func (uc *CreateLocalUseCase) Execute(ctx context.Context, cmd CreateLocalCommand) (*dto.LocalDTO, error) {
	uc.logger.Infow("executing create local use case", "code", cmd.Data.Code, "tenant_id", cmd.TenantID)

	l, err := location.NewLocal(cmd.TenantID, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.localRepo.ExistsByCode(ctx, l.Code(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check local code", "error", err)
		return nil, errors.NewInternalError("failed to create local")
	}
	if exists {
		return nil, errors.NewConflictError("local code already in use", l.Code())
	}

	if err := checkResponsible(ctx, uc.userRepo, cmd.TenantID, l.ResponsibleID()); err != nil {
		return nil, err
	}

	if err := uc.localRepo.Create(ctx, l); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("local code already in use", l.Code())
		}
		uc.logger.Errorw("failed to save local", "error", err)
		return nil, errors.NewInternalError("failed to create local")
	}

	uc.logger.Infow("local created successfully", "local_id", l.ID())
	return dto.ToLocalDTO(l), nil
}

type UpdateLocalCommand struct {
	TenantID uint
	ID       uint
	Data     location.LocalData
}

type UpdateLocalUseCase struct {
	localRepo location.LocalRepository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewUpdateLocalUseCase(localRepo location.LocalRepository, userRepo user.Repository, logger logger.Interface) *UpdateLocalUseCase {
	return &UpdateLocalUseCase{localRepo: localRepo, userRepo: userRepo, logger: logger}
}

func (uc *UpdateLocalUseCase) Execute(ctx context.Context, cmd UpdateLocalCommand) (*dto.LocalDTO, error) {
	uc.logger.Infow("executing update local use case", "local_id", cmd.ID)

	l, err := loadLocal(ctx, uc.localRepo, cmd.TenantID, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := l.Update(cmd.Data); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.localRepo.ExistsByCode(ctx, l.Code(), l.ID())
	if err != nil {
		uc.logger.Errorw("failed to check local code", "error", err)
		return nil, errors.NewInternalError("failed to update local")
	}
	if exists {
		return nil, errors.NewConflictError("local code already in use", l.Code())
	}

	if err := checkResponsible(ctx, uc.userRepo, cmd.TenantID, l.ResponsibleID()); err != nil {
		return nil, err
	}

	if err := uc.localRepo.Update(ctx, l); err != nil {
		uc.logger.Errorw("failed to update local", "local_id", l.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update local")
	}

	uc.logger.Infow("local updated successfully", "local_id", l.ID())
	return dto.ToLocalDTO(l), nil
}

type DeleteLocalUseCase struct {
	localRepo location.LocalRepository
	logger    logger.Interface
}

func NewDeleteLocalUseCase(localRepo location.LocalRepository, logger logger.Interface) *DeleteLocalUseCase {
	return &DeleteLocalUseCase{localRepo: localRepo, logger: logger}
}

// Execute removes the Local along with its equipment and motors.
func (uc *DeleteLocalUseCase) Execute(ctx context.Context, cmd DeleteCommand) error {
	uc.logger.Infow("executing delete local use case", "local_id", cmd.ID)

	if _, err := loadLocal(ctx, uc.localRepo, cmd.TenantID, cmd.ID); err != nil {
		return err
	}

	if err := uc.localRepo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete local", "local_id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete local")
	}

	uc.logger.Infow("local deleted successfully", "local_id", cmd.ID)
	return nil
}

type GetLocalUseCase struct {
	localRepo location.LocalRepository
	logger    logger.Interface
}

func NewGetLocalUseCase(localRepo location.LocalRepository, logger logger.Interface) *GetLocalUseCase {
	return &GetLocalUseCase{localRepo: localRepo, logger: logger}
}

func (uc *GetLocalUseCase) Execute(ctx context.Context, query GetQuery) (*dto.LocalDetailDTO, error) {
	l, err := loadLocal(ctx, uc.localRepo, query.TenantID, query.ID)
	if err != nil {
		return nil, err
	}

	stats, err := uc.localRepo.EquipmentStats(ctx, l.ID())
	if err != nil {
		uc.logger.Errorw("failed to load equipment stats", "local_id", l.ID(), "error", err)
		return nil, errors.NewInternalError("failed to get local")
	}

	return dto.ToLocalDetailDTO(l, stats), nil
}

type ListLocalsUseCase struct {
	localRepo location.LocalRepository
	logger    logger.Interface
}

func NewListLocalsUseCase(localRepo location.LocalRepository, logger logger.Interface) *ListLocalsUseCase {
	return &ListLocalsUseCase{localRepo: localRepo, logger: logger}
}

func (uc *ListLocalsUseCase) Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.LocalDTO], error) {
	if query.Type != "" && !location.LocalType(query.Type).IsValid() {
		return nil, errors.NewValidationError("invalid local type", query.Type)
	}
	if query.Status != "" && !location.LocalStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid local status", query.Status)
	}

	filter := query.toFilter()
	filter.LocalID = nil

	locals, total, err := uc.localRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list locals", "error", err)
		return nil, errors.NewInternalError("failed to list locals")
	}

	return &ListResult[*dto.LocalDTO]{
		Items:    dto.ToLocalDTOs(locals),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
