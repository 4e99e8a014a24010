package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/location/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type CreateEquipamentoCommand struct {
	TenantID uint
	Data     location.EquipamentoData
}

type UpdateEquipamentoCommand struct {
	TenantID uint
	ID       uint
	Data     location.EquipamentoData
}

type equipamentoRefs struct {
	localRepo location.LocalRepository
	userRepo  user.Repository
}

func (r equipamentoRefs) check(ctx context.Context, tenantID uint, e *location.Equipamento) error {
	if err := checkLocalRef(ctx, r.localRepo, tenantID, e.LocalID()); err != nil {
		return err
	}
	return checkResponsible(ctx, r.userRepo, tenantID, e.Data().ResponsibleID)
}

func loadEquipamento(ctx context.Context, repo location.EquipamentoRepository, tenantID, id uint) (*location.Equipamento, error) {
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("failed to get equipment")
	}
	if e == nil || e.TenantID() != tenantID {
		return nil, errors.NewNotFoundError("equipment not found")
	}
	return e, nil
}

type CreateEquipamentoUseCase struct {
	repo   location.EquipamentoRepository
	refs   equipamentoRefs
	logger logger.Interface
}

func NewCreateEquipamentoUseCase(
	repo location.EquipamentoRepository,
	localRepo location.LocalRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateEquipamentoUseCase {
	return &CreateEquipamentoUseCase{repo: repo, refs: equipamentoRefs{localRepo, userRepo}, logger: logger}
}

func (uc *CreateEquipamentoUseCase) Execute(ctx context.Context, cmd CreateEquipamentoCommand) (*dto.EquipamentoDTO, error) {
	uc.logger.Infow("executing create equipment use case", "code", cmd.Data.Code, "local_id", cmd.Data.LocalID)

	e, err := location.NewEquipamento(cmd.TenantID, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.refs.check(ctx, cmd.TenantID, e); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("equipment code already in use", e.Code())
		}
		uc.logger.Errorw("failed to save equipment", "error", err)
		return nil, errors.NewInternalError("failed to create equipment")
	}

	uc.logger.Infow("equipment created successfully", "equipamento_id", e.ID())
	return dto.ToEquipamentoDTO(e), nil
}

type UpdateEquipamentoUseCase struct {
	repo   location.EquipamentoRepository
	refs   equipamentoRefs
	logger logger.Interface
}

func NewUpdateEquipamentoUseCase(
	repo location.EquipamentoRepository,
	localRepo location.LocalRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateEquipamentoUseCase {
	return &UpdateEquipamentoUseCase{repo: repo, refs: equipamentoRefs{localRepo, userRepo}, logger: logger}
}

func (uc *UpdateEquipamentoUseCase) Execute(ctx context.Context, cmd UpdateEquipamentoCommand) (*dto.EquipamentoDTO, error) {
	uc.logger.Infow("executing update equipment use case", "equipamento_id", cmd.ID)

	e, err := loadEquipamento(ctx, uc.repo, cmd.TenantID, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := e.Update(cmd.Data); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.refs.check(ctx, cmd.TenantID, e); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, e); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("equipment code already in use", e.Code())
		}
		uc.logger.Errorw("failed to update equipment", "equipamento_id", e.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update equipment")
	}

	uc.logger.Infow("equipment updated successfully", "equipamento_id", e.ID())
	return dto.ToEquipamentoDTO(e), nil
}

type DeleteEquipamentoUseCase struct {
	repo   location.EquipamentoRepository
	logger logger.Interface
}

func NewDeleteEquipamentoUseCase(repo location.EquipamentoRepository, logger logger.Interface) *DeleteEquipamentoUseCase {
	return &DeleteEquipamentoUseCase{repo: repo, logger: logger}
}

func (uc *DeleteEquipamentoUseCase) Execute(ctx context.Context, cmd DeleteCommand) error {
	uc.logger.Infow("executing delete equipment use case", "equipamento_id", cmd.ID)

	if _, err := loadEquipamento(ctx, uc.repo, cmd.TenantID, cmd.ID); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, cmd.ID); err != nil {
		uc.logger.Errorw("failed to delete equipment", "equipamento_id", cmd.ID, "error", err)
		return errors.NewInternalError("failed to delete equipment")
	}
	return nil
}

type GetEquipamentoUseCase struct {
	repo   location.EquipamentoRepository
	logger logger.Interface
}

func NewGetEquipamentoUseCase(repo location.EquipamentoRepository, logger logger.Interface) *GetEquipamentoUseCase {
	return &GetEquipamentoUseCase{repo: repo, logger: logger}
}

func (uc *GetEquipamentoUseCase) Execute(ctx context.Context, query GetQuery) (*dto.EquipamentoDTO, error) {
	e, err := loadEquipamento(ctx, uc.repo, query.TenantID, query.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToEquipamentoDTO(e), nil
}

type ListEquipamentosUseCase struct {
	repo   location.EquipamentoRepository
	logger logger.Interface
}

func NewListEquipamentosUseCase(repo location.EquipamentoRepository, logger logger.Interface) *ListEquipamentosUseCase {
	return &ListEquipamentosUseCase{repo: repo, logger: logger}
}

func (uc *ListEquipamentosUseCase) Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.EquipamentoDTO], error) {
	if query.Type != "" && !location.EquipmentType(query.Type).IsValid() {
		return nil, errors.NewValidationError("invalid equipment type", query.Type)
	}
	if query.Status != "" && !location.OperationalStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid operational status", query.Status)
	}

	filter := query.toFilter()
	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, errors.NewInternalError("failed to list equipment")
	}

	return &ListResult[*dto.EquipamentoDTO]{
		Items:    dto.ToEquipamentoDTOs(items),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
