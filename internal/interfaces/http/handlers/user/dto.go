package user

import (
	"github.com/relatorio-inc/relatorio/internal/application/user/usecases"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type CreateUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=150"`
	Email      string `json:"email" binding:"required,email,max=254"`
	FullName   string `json:"full_name" binding:"max=200"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	Role       string `json:"role" binding:"omitempty,oneof=admin staff manager user"`
	Phone      string `json:"phone" binding:"max=20"`
	Department string `json:"department" binding:"max=100"`
	JobTitle   string `json:"job_title" binding:"max=100"`
	IsManager  bool   `json:"is_manager"`
	UnitID     *uint  `json:"unit_id"`
	SectorID   *uint  `json:"sector_id"`
}

func (r *CreateUserRequest) ToCommand(actor utils.Actor) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		TenantID:   actor.TenantID,
		ActorRole:  actor.Role,
		Username:   r.Username,
		Email:      r.Email,
		FullName:   r.FullName,
		Password:   r.Password,
		Role:       r.Role,
		Phone:      r.Phone,
		Department: r.Department,
		JobTitle:   r.JobTitle,
		IsManager:  r.IsManager,
		UnitID:     r.UnitID,
		SectorID:   r.SectorID,
	}
}

// UpdateUserRequest is a partial update. Absent fields are left unchanged.
type UpdateUserRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,max=200"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	JobTitle   *string `json:"job_title" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email,max=254"`
	Role       *string `json:"role" binding:"omitempty,oneof=admin staff manager user"`
	IsManager  *bool   `json:"is_manager"`
	IsActive   *bool   `json:"is_active"`
	UnitID     *uint   `json:"unit_id"`
	SectorID   *uint   `json:"sector_id"`
}

func (r *UpdateUserRequest) ToCommand(actor utils.Actor, userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		TenantID:   actor.TenantID,
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		UserID:     userID,
		FullName:   r.FullName,
		Phone:      r.Phone,
		Department: r.Department,
		JobTitle:   r.JobTitle,
		Email:      r.Email,
		Role:       r.Role,
		IsManager:  r.IsManager,
		IsActive:   r.IsActive,
		UnitID:     r.UnitID,
		SectorID:   r.SectorID,
	}
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

type CreateUnitRequest struct {
	Code        string `json:"code" binding:"required,max=10"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

type CreateSectorRequest struct {
	Code   string `json:"code" binding:"required,max=15"`
	Name   string `json:"name" binding:"required,oneof=M_ELETRICA M_MECANICA REFRIGERACAO PRODUCAO C_QUALIDADE TERCEIRO"`
	UnitID *uint  `json:"unit_id"`
}
