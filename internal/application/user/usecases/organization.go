package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

type CreateUnitCommand struct {
	TenantID    uint
	ActorRole   authorization.UserRole
	Code        string
	Name        string
	Description string
}

type CreateUnitUseCase struct {
	unitRepo organization.UnitRepository
	logger   logger.Interface
}

func NewCreateUnitUseCase(unitRepo organization.UnitRepository, logger logger.Interface) *CreateUnitUseCase {
	return &CreateUnitUseCase{unitRepo: unitRepo, logger: logger}
}

func (uc *CreateUnitUseCase) Execute(ctx context.Context, cmd CreateUnitCommand) (*dto.UnitDTO, error) {
	uc.logger.Infow("executing create unit use case", "code", cmd.Code, "tenant_id", cmd.TenantID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can manage units")
	}

	unit, err := organization.NewUnit(cmd.TenantID, cmd.Code, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.unitRepo.ExistsByCode(ctx, cmd.TenantID, unit.Code())
	if err != nil {
		uc.logger.Errorw("failed to check unit code", "error", err)
		return nil, errors.NewInternalError("failed to create unit")
	}
	if exists {
		return nil, errors.NewConflictError("unit code already in use", unit.Code())
	}

	if err := uc.unitRepo.Create(ctx, unit); err != nil {
		uc.logger.Errorw("failed to save unit", "error", err)
		return nil, errors.NewInternalError("failed to create unit")
	}

	uc.logger.Infow("unit created successfully", "unit_id", unit.ID())
	return dto.ToUnitDTO(unit), nil
}

type ListUnitsUseCase struct {
	unitRepo organization.UnitRepository
	logger   logger.Interface
}

func NewListUnitsUseCase(unitRepo organization.UnitRepository, logger logger.Interface) *ListUnitsUseCase {
	return &ListUnitsUseCase{unitRepo: unitRepo, logger: logger}
}

func (uc *ListUnitsUseCase) Execute(ctx context.Context, tenantID uint, activeOnly bool) ([]*dto.UnitDTO, error) {
	units, err := uc.unitRepo.List(ctx, tenantID, activeOnly)
	if err != nil {
		uc.logger.Errorw("failed to list units", "error", err)
		return nil, errors.NewInternalError("failed to list units")
	}
	return mapper.MapSlice(units, dto.ToUnitDTO), nil
}

type CreateSectorCommand struct {
	TenantID  uint
	ActorRole authorization.UserRole
	Code      string
	Name      string
	UnitID    *uint
}

type CreateSectorUseCase struct {
	sectorRepo organization.SectorRepository
	unitRepo   organization.UnitRepository
	logger     logger.Interface
}

func NewCreateSectorUseCase(sectorRepo organization.SectorRepository, unitRepo organization.UnitRepository, logger logger.Interface) *CreateSectorUseCase {
	return &CreateSectorUseCase{sectorRepo: sectorRepo, unitRepo: unitRepo, logger: logger}
}

func (uc *CreateSectorUseCase) Execute(ctx context.Context, cmd CreateSectorCommand) (*dto.SectorDTO, error) {
	uc.logger.Infow("executing create sector use case", "code", cmd.Code, "tenant_id", cmd.TenantID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can manage sectors")
	}

	sector, err := organization.NewSector(cmd.TenantID, cmd.Code, organization.SectorName(cmd.Name), cmd.UnitID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(ctx, *cmd.UnitID)
		if err != nil {
			uc.logger.Errorw("failed to get unit", "error", err)
			return nil, errors.NewInternalError("failed to create sector")
		}
		if unit == nil || unit.TenantID() != cmd.TenantID {
			return nil, errors.NewValidationError("unit not found")
		}
	}

	exists, err := uc.sectorRepo.ExistsByCode(ctx, cmd.TenantID, sector.Code())
	if err != nil {
		uc.logger.Errorw("failed to check sector code", "error", err)
		return nil, errors.NewInternalError("failed to create sector")
	}
	if exists {
		return nil, errors.NewConflictError("sector code already in use", sector.Code())
	}

	if err := uc.sectorRepo.Create(ctx, sector); err != nil {
		uc.logger.Errorw("failed to save sector", "error", err)
		return nil, errors.NewInternalError("failed to create sector")
	}

	uc.logger.Infow("sector created successfully", "sector_id", sector.ID())
	return dto.ToSectorDTO(sector), nil
}

type ListSectorsUseCase struct {
	sectorRepo organization.SectorRepository
	logger     logger.Interface
}

func NewListSectorsUseCase(sectorRepo organization.SectorRepository, logger logger.Interface) *ListSectorsUseCase {
	return &ListSectorsUseCase{sectorRepo: sectorRepo, logger: logger}
}

func (uc *ListSectorsUseCase) Execute(ctx context.Context, tenantID uint, unitID *uint) ([]*dto.SectorDTO, error) {
	sectors, err := uc.sectorRepo.List(ctx, tenantID, unitID)
	if err != nil {
		uc.logger.Errorw("failed to list sectors", "error", err)
		return nil, errors.NewInternalError("failed to list sectors")
	}
	return mapper.MapSlice(sectors, dto.ToSectorDTO), nil
}
