package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/location/dto"
)

type CreateLocalExecutor interface {
	Execute(ctx context.Context, cmd CreateLocalCommand) (*dto.LocalDTO, error)
}

type UpdateLocalExecutor interface {
	Execute(ctx context.Context, cmd UpdateLocalCommand) (*dto.LocalDTO, error)
}

type GetLocalExecutor interface {
	Execute(ctx context.Context, query GetQuery) (*dto.LocalDetailDTO, error)
}

type ListLocalsExecutor interface {
	Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.LocalDTO], error)
}

type CreateEquipamentoExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipamentoCommand) (*dto.EquipamentoDTO, error)
}

type UpdateEquipamentoExecutor interface {
	Execute(ctx context.Context, cmd UpdateEquipamentoCommand) (*dto.EquipamentoDTO, error)
}

type GetEquipamentoExecutor interface {
	Execute(ctx context.Context, query GetQuery) (*dto.EquipamentoDTO, error)
}

type ListEquipamentosExecutor interface {
	Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.EquipamentoDTO], error)
}

type CreateMotorExecutor interface {
	Execute(ctx context.Context, cmd CreateMotorCommand) (*dto.MotorDTO, error)
}

type UpdateMotorExecutor interface {
	Execute(ctx context.Context, cmd UpdateMotorCommand) (*dto.MotorDTO, error)
}

type GetMotorExecutor interface {
	Execute(ctx context.Context, query GetQuery) (*dto.MotorDTO, error)
}

type ListMotorsExecutor interface {
	Execute(ctx context.Context, query ListQuery) (*ListResult[*dto.MotorDTO], error)
}

type DeleteExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommand) error
}
