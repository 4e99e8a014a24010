package usecases

import (
	"context"
	"errors"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	apperrors "github.com/relatorio-inc/relatorio/internal/shared/errors"
)

// toAppError translates report domain errors into API errors.
func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, report.ErrNotAllowed):
		return apperrors.NewForbiddenError("you are not allowed to perform this action on the report")
	case errors.Is(err, report.ErrReportLocked):
		return apperrors.NewForbiddenError("report is locked for editing")
	case errors.Is(err, report.ErrProgressRegression):
		return apperrors.NewValidationError("progress cannot decrease", err.Error())
	case apperrors.IsAppError(err):
		return err
	default:
		return apperrors.NewValidationError(err.Error())
	}
}

// persistError keeps API errors raised by a repository, such as a version
// conflict, and hides everything else behind an internal error.
func persistError(err error, message string) error {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		return appErr
	}
	return apperrors.NewInternalError(message)
}

// loadReport fetches a report the actor can see. Reports from other tenants
// and reports the actor cannot view are reported as not found.
func loadReport(ctx context.Context, repo report.Repository, tenantID, reportID uint, actor report.Actor) (*report.Report, error) {
	if reportID == 0 {
		return nil, apperrors.NewValidationError("report ID is required")
	}
	r, err := repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load report")
	}
	if r == nil || (tenantID != 0 && r.TenantID() != tenantID) || !r.CanView(actor) {
		return nil, apperrors.NewNotFoundError("report not found")
	}
	return r, nil
}

// referenceValidator checks that ids attached to a report exist in the tenant.
type referenceValidator struct {
	locals     location.LocalRepository
	equipment  location.EquipamentoRepository
	categories report.CategoryRepository
	users      user.Repository
}

type references struct {
	LocalID       *uint
	EquipamentoID *uint
	CategoryID    *uint
	AssigneeID    *uint
}

func (v *referenceValidator) validate(ctx context.Context, tenantID uint, refs references) error {
	if refs.LocalID != nil {
		l, err := v.locals.GetByID(ctx, *refs.LocalID)
		if err != nil {
			return apperrors.NewInternalError("failed to load local")
		}
		if l == nil || !sameTenant(tenantID, l.TenantID()) {
			return apperrors.NewValidationError("local not found")
		}
	}
	if refs.EquipamentoID != nil {
		e, err := v.equipment.GetByID(ctx, *refs.EquipamentoID)
		if err != nil {
			return apperrors.NewInternalError("failed to load equipment")
		}
		if e == nil || !sameTenant(tenantID, e.TenantID()) {
			return apperrors.NewValidationError("equipment not found")
		}
		if refs.LocalID != nil && e.LocalID() != *refs.LocalID {
			return apperrors.NewValidationError("equipment does not belong to the selected local")
		}
	}
	if refs.CategoryID != nil {
		c, err := v.categories.GetByID(ctx, *refs.CategoryID)
		if err != nil {
			return apperrors.NewInternalError("failed to load category")
		}
		if c == nil || !sameTenant(tenantID, c.TenantID()) {
			return apperrors.NewValidationError("category not found")
		}
	}
	if refs.AssigneeID != nil {
		if _, err := activeUser(ctx, v.users, tenantID, *refs.AssigneeID); err != nil {
			return err
		}
	}
	return nil
}

func activeUser(ctx context.Context, users user.Repository, tenantID, userID uint) (*user.User, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load user")
	}
	if u == nil || !sameTenant(tenantID, u.TenantID()) {
		return nil, apperrors.NewValidationError("assignee not found")
	}
	if !u.IsActive() {
		return nil, apperrors.NewValidationError("assignee is not active")
	}
	return u, nil
}

func sameTenant(want, got uint) bool {
	return want == 0 || want == got
}
