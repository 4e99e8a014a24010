package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

// ListQuery filters any of the location listings. LocalID is ignored for Locals.
type ListQuery struct {
	TenantID uint
	LocalID  *uint
	Type     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

func (q ListQuery) toFilter() location.ListFilter {
	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return location.ListFilter{
		TenantID: q.TenantID,
		LocalID:  q.LocalID,
		Type:     q.Type,
		Status:   q.Status,
		Search:   q.Search,
		Page:     page,
		PageSize: pageSize,
	}
}

type ListResult[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// DeleteCommand identifies the Local, Equipamento or Motor to remove.
type DeleteCommand struct {
	TenantID uint
	ID       uint
}

type GetQuery struct {
	TenantID uint
	ID       uint
}

func loadLocal(ctx context.Context, repo location.LocalRepository, tenantID, id uint) (*location.Local, error) {
	l, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("failed to get local")
	}
	if l == nil || l.TenantID() != tenantID {
		return nil, errors.NewNotFoundError("local not found")
	}
	return l, nil
}

// checkLocalRef validates a Local referenced by equipment or motors.
func checkLocalRef(ctx context.Context, repo location.LocalRepository, tenantID, id uint) error {
	if id == 0 {
		return nil
	}
	l, err := repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewInternalError("failed to get local")
	}
	if l == nil || l.TenantID() != tenantID {
		return errors.NewValidationError("local not found")
	}
	return nil
}

func checkResponsible(ctx context.Context, repo user.Repository, tenantID uint, id *uint) error {
	if id == nil {
		return nil
	}
	u, err := repo.GetByID(ctx, *id)
	if err != nil {
		return errors.NewInternalError("failed to get responsible user")
	}
	if u == nil || u.TenantID() != tenantID {
		return errors.NewValidationError("responsible user not found")
	}
	return nil
}
