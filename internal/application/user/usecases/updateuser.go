package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/user/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// UpdateUserCommand carries optional changes. Profile fields may be edited by
// the user themselves; the remaining fields require an administrator.
type UpdateUserCommand struct {
	TenantID  uint
	ActorID   uint
	ActorRole authorization.UserRole
	UserID    uint

	FullName   *string
	Phone      *string
	Department *string
	JobTitle   *string

	Email     *string
	Role      *string
	IsManager *bool
	IsActive  *bool
	UnitID    *uint
	SectorID  *uint
}

func (c UpdateUserCommand) touchesAdminFields() bool {
	return c.Email != nil || c.Role != nil || c.IsManager != nil || c.IsActive != nil ||
		c.UnitID != nil || c.SectorID != nil
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	org      *organizationChecker
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	unitRepo organization.UnitRepository,
	sectorRepo organization.SectorRepository,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		org:      &organizationChecker{units: unitRepo, sectors: sectorRepo},
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	isAdmin := cmd.ActorRole.IsAdmin()
	if !isAdmin && cmd.ActorID != cmd.UserID {
		return nil, errors.NewForbiddenError("cannot update another user")
	}
	if !isAdmin && cmd.touchesAdminFields() {
		return nil, errors.NewForbiddenError("only administrators can change account settings")
	}

	u, err := loadTenantUser(ctx, uc.userRepo, cmd.TenantID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	fullName, phone, department, jobTitle := u.FullName(), u.Phone(), u.Department(), u.JobTitle()
	if cmd.FullName != nil {
		fullName = *cmd.FullName
	}
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	if cmd.Department != nil {
		department = *cmd.Department
	}
	if cmd.JobTitle != nil {
		jobTitle = *cmd.JobTitle
	}
	if err := u.UpdateProfile(fullName, phone, department, jobTitle); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Email != nil && *cmd.Email != u.Email() {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check email", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		if exists {
			return nil, errors.NewConflictError("email already in use", *cmd.Email)
		}
		if err := u.ChangeEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		if cmd.ActorID == cmd.UserID && *cmd.Role != u.Role().String() {
			return nil, errors.NewValidationError("administrators cannot change their own role")
		}
		if err := u.ChangeRole(authorization.UserRole(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsManager != nil {
		u.SetManager(*cmd.IsManager)
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			u.Activate()
		} else {
			if cmd.ActorID == cmd.UserID {
				return nil, errors.NewValidationError("cannot deactivate your own account")
			}
			u.Deactivate()
		}
	}

	if cmd.UnitID != nil || cmd.SectorID != nil {
		unitID, sectorID := u.UnitID(), u.SectorID()
		if cmd.UnitID != nil {
			unitID = cmd.UnitID
		}
		if cmd.SectorID != nil {
			sectorID = cmd.SectorID
		}
		if err := uc.org.check(ctx, cmd.TenantID, unitID, sectorID); err != nil {
			return nil, err
		}
		u.AssignOrganization(unitID, sectorID)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already in use")
		}
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
