// Package organization models the unit/sector hierarchy users belong to.
package organization

import (
	"fmt"
	"strings"
	"time"
)

type Unit struct {
	id          uint
	tenantID    uint
	code        string
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUnit(tenantID uint, code, name, description string) (*Unit, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, fmt.Errorf("unit code is required")
	}
	if len(code) > 10 {
		return nil, fmt.Errorf("unit code cannot exceed 10 characters")
	}
	if name == "" {
		return nil, fmt.Errorf("unit name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("unit name cannot exceed 100 characters")
	}
	now := time.Now().UTC()
	return &Unit{
		tenantID:    tenantID,
		code:        code,
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructUnit(id, tenantID uint, code, name, description string, isActive bool, createdAt, updatedAt time.Time) *Unit {
	return &Unit{
		id:          id,
		tenantID:    tenantID,
		code:        code,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *Unit) ID() uint             { return u.id }
func (u *Unit) TenantID() uint       { return u.tenantID }
func (u *Unit) Code() string         { return u.code }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) Description() string  { return u.description }
func (u *Unit) IsActive() bool       { return u.isActive }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time { return u.updatedAt }

func (u *Unit) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("unit ID is already set")
	}
	u.id = id
	return nil
}
