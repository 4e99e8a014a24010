package user

import (
	"fmt"
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/user/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
)

type User struct {
	id           uint
	tenantID     uint
	username     string
	email        *vo.Email
	fullName     string
	passwordHash string
	role         authorization.UserRole
	phone        string
	department   string
	jobTitle     string
	isManager    bool
	isActive     bool
	unitID       *uint
	sectorID     *uint
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(tenantID uint, username, email, fullName string, role authorization.UserRole) (*User, error) {
	name, err := vo.ValidateUsername(username)
	if err != nil {
		return nil, err
	}
	mail, err := vo.NewEmail(email)
	if err != nil {
		return nil, err
	}
	full, err := vo.NormalizeFullName(fullName)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		tenantID:  tenantID,
		username:  name,
		email:     mail,
		fullName:  full,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UserState is the persisted form used to rebuild a User.
type UserState struct {
	TenantID     uint
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         string
	Phone        string
	Department   string
	JobTitle     string
	IsManager    bool
	IsActive     bool
	UnitID       *uint
	SectorID     *uint
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(id uint, s UserState) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	mail, err := vo.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           id,
		tenantID:     s.TenantID,
		username:     s.Username,
		email:        mail,
		fullName:     s.FullName,
		passwordHash: s.PasswordHash,
		role:         authorization.ParseUserRole(s.Role),
		phone:        s.Phone,
		department:   s.Department,
		jobTitle:     s.JobTitle,
		isManager:    s.IsManager,
		isActive:     s.IsActive,
		unitID:       s.UnitID,
		sectorID:     s.SectorID,
		lastLoginAt:  s.LastLoginAt,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) TenantID() uint               { return u.tenantID }
func (u *User) Username() string             { return u.username }
func (u *User) Email() string                { return u.email.String() }
func (u *User) FullName() string             { return u.fullName }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) Phone() string                { return u.phone }
func (u *User) Department() string           { return u.department }
func (u *User) JobTitle() string             { return u.jobTitle }
func (u *User) IsManager() bool              { return u.isManager }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) UnitID() *uint                { return u.unitID }
func (u *User) SectorID() *uint              { return u.sectorID }
func (u *User) LastLoginAt() *time.Time      { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsStaff reports whether the user sees and manages every report in the tenant.
func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// DisplayName falls back to the username when no full name is set.
func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	return u.username
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

func (u *User) UpdateProfile(fullName, phone, department, jobTitle string) error {
	full, err := vo.NormalizeFullName(fullName)
	if err != nil {
		return err
	}
	u.fullName = full
	u.phone = phone
	u.department = department
	u.jobTitle = jobTitle
	u.touch()
	return nil
}

func (u *User) ChangeEmail(email string) error {
	mail, err := vo.NewEmail(email)
	if err != nil {
		return err
	}
	u.email = mail
	u.touch()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) SetManager(isManager bool) {
	u.isManager = isManager
	u.touch()
}

func (u *User) Activate() {
	u.isActive = true
	u.touch()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.touch()
}

// AssignOrganization links the user to a unit and sector. Nil clears the link.
func (u *User) AssignOrganization(unitID, sectorID *uint) {
	u.unitID = unitID
	u.sectorID = sectorID
	u.touch()
}

func (u *User) RecordLogin(at time.Time) {
	t := at.UTC()
	u.lastLoginAt = &t
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
