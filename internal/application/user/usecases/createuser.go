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

type CreateUserCommand struct {
	TenantID   uint
	ActorRole  authorization.UserRole
	Username   string
	Email      string
	FullName   string
	Password   string
	Role       string
	Phone      string
	Department string
	JobTitle   string
	IsManager  bool
	UnitID     *uint
	SectorID   *uint
}

type CreateUserUseCase struct {
	userRepo user.Repository
	org      *organizationChecker
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	unitRepo organization.UnitRepository,
	sectorRepo organization.SectorRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		org:      &organizationChecker{units: unitRepo, sectors: sectorRepo},
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "tenant_id", cmd.TenantID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can create users")
	}

	role := authorization.UserRole(cmd.Role)
	if cmd.Role == "" {
		role = authorization.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role", cmd.Role)
	}

	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.TenantID, cmd.Username, cmd.Email, cmd.FullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ensureUnique(ctx, u); err != nil {
		return nil, err
	}

	if err := uc.org.check(ctx, cmd.TenantID, cmd.UnitID, cmd.SectorID); err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(u.FullName(), cmd.Phone, cmd.Department, cmd.JobTitle); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	u.SetManager(cmd.IsManager)
	u.AssignOrganization(cmd.UnitID, cmd.SectorID)

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}
	u.SetPasswordHash(hash)

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username or email already in use")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserDTO(u), nil
}

func (uc *CreateUserUseCase) ensureUnique(ctx context.Context, u *user.User) error {
	exists, err := uc.userRepo.ExistsByUsername(ctx, u.Username())
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return errors.NewInternalError("failed to create user")
	}
	if exists {
		return errors.NewConflictError("username already in use", u.Username())
	}

	exists, err = uc.userRepo.ExistsByEmail(ctx, u.Email())
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return errors.NewInternalError("failed to create user")
	}
	if exists {
		return errors.NewConflictError("email already in use", u.Email())
	}
	return nil
}

type organizationChecker struct {
	units   organization.UnitRepository
	sectors organization.SectorRepository
}

func (c *organizationChecker) check(ctx context.Context, tenantID uint, unitID, sectorID *uint) error {
	if unitID != nil {
		unit, err := c.units.GetByID(ctx, *unitID)
		if err != nil {
			return errors.NewInternalError("failed to get unit")
		}
		if unit == nil || unit.TenantID() != tenantID {
			return errors.NewValidationError("unit not found")
		}
	}
	if sectorID != nil {
		sector, err := c.sectors.GetByID(ctx, *sectorID)
		if err != nil {
			return errors.NewInternalError("failed to get sector")
		}
		if sector == nil || sector.TenantID() != tenantID {
			return errors.NewValidationError("sector not found")
		}
	}
	return nil
}
