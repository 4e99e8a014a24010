package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type ListUsersQuery struct {
	TenantID  uint
	Role      string
	IsActive  *bool
	IsManager *bool
	Search    string
	Page      int
	PageSize  int
}

type ListUsersResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	uc.logger.Infow("executing list users use case", "tenant_id", query.TenantID, "page", query.Page)

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := user.ListFilter{
		TenantID:  query.TenantID,
		IsActive:  query.IsActive,
		IsManager: query.IsManager,
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.Role != "" {
		if !authorization.UserRole(query.Role).IsValid() {
			return nil, errors.NewValidationError("invalid role", query.Role)
		}
		filter.Role = &query.Role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{
		Users:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
