package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/location/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type CreateMotorCommand struct {
	TenantID uint
	Data     location.MotorData
}

type UpdateMotorCommand struct {
	TenantID uint
	ID       uint
	Data     location.MotorData
}

func loadMotor(ctx context.Context, repo location.MotorRepository, tenantID, id uint) (*location.Motor, error) {
	m, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("failed to get motor")
	}
	if m == nil || m.TenantID() != tenantID {
		return nil, errors.NewNotFoundError("motor not found")
	}
	return m, nil
}

type CreateMotorUseCase struct {
	repo      location.MotorRepository
	localRepo location.LocalRepository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewCreateMotorUseCase(
	repo location.MotorRepository,
	localRepo location.LocalRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateMotorUseCase {
	return &CreateMotorUseCase{repo: repo, localRepo: localRepo, userRepo: userRepo, logger: logger}
}

func (uc *CreateMotorUseCase) Execute(ctx context.Context, cmd CreateMotorCommand) (*dto.MotorDTO, error) {
	uc.logger.Infow("executing create motor use case", "code", cmd.Data.Code, "local_id", cmd.Data.LocalID)

	m, err := location.NewMotor(cmd.TenantID, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := checkLocalRef(ctx, uc.localRepo, cmd.TenantID, m.LocalID()); err != nil {
		return nil, err
	}
	if err := checkResponsible(ctx, uc.userRepo, cmd.TenantID, m.Data().ResponsibleID); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("motor code already in use", m.Code())
		}
		uc.logger.Errorw("failed to save motor", "error", err)
		return nil, errors.NewInternalError("failed to create motor")
	}

	uc.logger.Infow("motor created successfully", "motor_id", m.ID())
	return dto.ToMotorDTO(m), nil
}

type UpdateMotorUseCase struct {
	repo      location.MotorRepository
	localRepo location.LocalRepository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewUpdateMotorUseCase(
	repo location.MotorRepository,
	localRepo location.LocalRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateMotorUseCase {
	return &UpdateMotorUseCase{repo: repo, localRepo: localRepo, userRepo: userRepo, logger: logger}
}

func (uc *UpdateMotorUseCase) Execute(ctx context.Context, cmd UpdateMotorCommand) (*dto.MotorDTO, error) {
	uc.logger.Infow("executing update motor use case", "motor_id", cmd.ID)

	m, err := loadMotor(ctx, uc.repo, cmd.TenantID, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := m.Update(cmd.Data); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := checkLocalRef(ctx, uc.localRepo, cmd.TenantID, m.LocalID()); err != nil {
		return nil, err
	}
	if err := checkResponsible(ctx, uc.userRepo, cmd.TenantID, m.Data().ResponsibleID); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update motor", "motor_id", m.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update motor")
	}

	uc.logger.Infow("motor updated successfully", "motor_id", m.ID())
	return dto.ToMotorDTO(m), nil
}

type DeleteMotorUseCase struct {
	repo   location.MotorRepository
	logger logger.Interface
}

func NewDeleteMotorUseCase(repo location.MotorRepository, logger logger.Interface) *DeleteMotorUseCase {
	return &DeleteMotorUseCase{repo: repo, logger: logger}
}

func (uc *DeleteMotorUseCase) Execute(ctx context.Context, cmd DeleteCommand) error {
	uc.logger.Infow("executing delete motor use case", "motor_id", cmd.ID)

	if _, err := loadMotor(ctx, uc.repo, cmd.TenantID, cmd.ID); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete motor", "motor_id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete motor")
	}
	return nil
}

type GetMotorUseCase struct {
	repo   location.MotorRepository
	logger logger.Interface
}

func NewGetMotorUseCase(repo location.MotorRepository, logger logger.Interface) *GetMotorUseCase {
	return &GetMotorUseCase{repo: repo, logger: logger}
}

func (uc *GetMotorUseCase) Execute(ctx context.Context, query GetQuery) (*dto.MotorDTO, error) {
	m, err := loadMotor(ctx, uc.repo, query.TenantID, query.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToMotorDTO(m), nil
}

type ListMotorsUseCase struct {
	repo   location.MotorRepository
	logger logger.Interface
}

func NewListMotorsUseCase(repo location.MotorRepository, logger logger.Interface) *ListMotorsUseCase {
	return &ListMotorsUseCase{repo: repo, logger: logger}
}

func (uc *ListMotorsUseCase) Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.MotorDTO], error) {
	if query.Status != "" && !location.OperationalStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid operational status", query.Status)
	}

	filter := query.toFilter()
	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list motors", "error", err)
		return nil, errors.NewInternalError("failed to list motors")
	}

	return &ListResult[*dto.MotorDTO]{
		Items:    dto.ToMotorDTOs(items),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
