package dto

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/organization"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

type UserDTO struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	Phone       string     `json:"phone"`
	Department  string     `json:"department"`
	JobTitle    string     `json:"job_title"`
	IsManager   bool       `json:"is_manager"`
	IsStaff     bool       `json:"is_staff"`
	IsActive    bool       `json:"is_active"`
	UnitID      *uint      `json:"unit_id"`
	SectorID    *uint      `json:"sector_id"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		FullName:    u.FullName(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		Phone:       u.Phone(),
		Department:  u.Department(),
		JobTitle:    u.JobTitle(),
		IsManager:   u.IsManager(),
		IsStaff:     u.IsStaff(),
		IsActive:    u.IsActive(),
		UnitID:      u.UnitID(),
		SectorID:    u.SectorID(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}

// AuthResult is returned by every sign-in flow.
type AuthResult struct {
	User         *UserDTO `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"`
}

type UnitDTO struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUnitDTO(u *organization.Unit) *UnitDTO {
	return &UnitDTO{
		ID:          u.ID(),
		Code:        u.Code(),
		Name:        u.Name(),
		Description: u.Description(),
		IsActive:    u.IsActive(),
		CreatedAt:   u.CreatedAt(),
	}
}

type SectorDTO struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	UnitID    *uint     `json:"unit_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToSectorDTO(s *organization.Sector) *SectorDTO {
	return &SectorDTO{
		ID:        s.ID(),
		Code:      s.Code(),
		Name:      string(s.Name()),
		Label:     s.Name().Label(),
		UnitID:    s.UnitID(),
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt(),
	}
}
