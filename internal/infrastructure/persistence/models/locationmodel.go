package models

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/shared/constants"
)

type LocalModel struct {
	ID            uint   `gorm:"primarykey"`
	TenantID      uint   `gorm:"not null;index"`
	Name          string `gorm:"not null;size:200"`
	Code          string `gorm:"not null;size:50;uniqueIndex"`
	Type          string `gorm:"size:30"`
	Address       string `gorm:"size:255"`
	City          string `gorm:"size:100"`
	State         string `gorm:"size:2"`
	CEP           string `gorm:"column:cep;size:9"`
	Phone         string `gorm:"size:30"`
	Email         string `gorm:"size:255"`
	ResponsibleID *uint  `gorm:"index"`
	Status        string `gorm:"not null;default:ativo;size:20;index"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LocalModel) TableName() string {
	return constants.TableLocals
}

type EquipamentoModel struct {
	ID                uint   `gorm:"primarykey"`
	TenantID          uint   `gorm:"not null;index"`
	LocalID           uint   `gorm:"not null;index"`
	Name              string `gorm:"not null;size:100"`
	Code              string `gorm:"not null;size:50"`
	Description       string `gorm:"type:text"`
	Type              string `gorm:"size:30"`
	Manufacturer      string `gorm:"size:100"`
	Model             string `gorm:"size:100"`
	SerialNumber      string `gorm:"size:100"`
	InstallDate       *time.Time
	OperationalStatus string `gorm:"not null;default:operando;size:20;index"`
	Active            bool   `gorm:"not null;default:true"`
	Priority          string `gorm:"not null;default:medium;size:20"`
	AcquisitionDate   *time.Time
	AcquisitionValue  *int64
	WarrantyUntil     *time.Time
	ResponsibleID     *uint  `gorm:"index"`
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (EquipamentoModel) TableName() string {
	return constants.TableEquipamentos
}

type MotorModel struct {
	ID                uint     `gorm:"primarykey"`
	TenantID          uint     `gorm:"not null;index"`
	LocalID           uint     `gorm:"not null;index"`
	Name              string   `gorm:"not null;size:100"`
	Code              string   `gorm:"not null;size:50"`
	Type              string   `gorm:"size:50"`
	Description       string   `gorm:"type:text"`
	PowerKW           *float64 `gorm:"column:power_kw"`
	Voltage           *float64
	Current           *float64
	RPM               *int   `gorm:"column:rpm"`
	Manufacturer      string `gorm:"size:100"`
	Model             string `gorm:"size:100"`
	SerialNumber      string `gorm:"size:100"`
	InstallDate       *time.Time
	OperationalStatus string `gorm:"not null;default:operando;size:20"`
	ResponsibleID     *uint  `gorm:"index"`
	Active            bool   `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MotorModel) TableName() string {
	return constants.TableMotors
}
