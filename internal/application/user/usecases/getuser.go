package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type GetUserQuery struct {
	TenantID uint
	UserID   uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	u, err := loadTenantUser(ctx, uc.userRepo, query.TenantID, query.UserID)
	if err != nil {
		uc.logger.Warnw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}
