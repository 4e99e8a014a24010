package models

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/shared/constants"
)

// UserModel is the persistence model for users.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	TenantID     uint   `gorm:"not null;index"`
	Username     string `gorm:"uniqueIndex;not null;size:50"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"not null;size:150"`
	PasswordHash string `gorm:"size:255"`
	Role         string `gorm:"not null;default:user;size:20"`
	Phone        string `gorm:"size:30"`
	Department   string `gorm:"size:100"`
	JobTitle     string `gorm:"size:100"`
	IsManager    bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true;index"`
	UnitID       *uint  `gorm:"index"`
	SectorID     *uint  `gorm:"index"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type UnitModel struct {
	ID          uint   `gorm:"primarykey"`
	TenantID    uint   `gorm:"not null;uniqueIndex:idx_unit_tenant_code"`
	Code        string `gorm:"not null;size:20;uniqueIndex:idx_unit_tenant_code"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UnitModel) TableName() string {
	return constants.TableUnits
}

type SectorModel struct {
	ID        uint   `gorm:"primarykey"`
	TenantID  uint   `gorm:"not null;uniqueIndex:idx_sector_tenant_code"`
	Code      string `gorm:"not null;size:20;uniqueIndex:idx_sector_tenant_code"`
	Name      string `gorm:"not null;size:50"`
	UnitID    *uint  `gorm:"index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SectorModel) TableName() string {
	return constants.TableSectors
}
