package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/relatorio-inc/relatorio/internal/shared/constants"
)

type ReportModel struct {
	ID            uint  `gorm:"primarykey"`
	TenantID      uint  `gorm:"not null;index:idx_report_tenant_created"`
	AuthorID      uint  `gorm:"not null;index"`
	AssigneeID    *uint `gorm:"index"`
	LocalID       *uint `gorm:"index"`
	EquipamentoID *uint `gorm:"index"`
	CategoryID    *uint `gorm:"index"`
	OccurredAt    time.Time
	Title         string `gorm:"not null;size:200"`
	Description   string `gorm:"type:text"`
	Status        string `gorm:"not null;default:pending;size:20;index"`
	Priority      string `gorm:"not null;default:medium;size:20;index"`
	Progress      int    `gorm:"not null;default:0"`
	Editable      bool   `gorm:"not null;default:true"`
	MainImage     string `gorm:"size:255"`
	ResolvedAt    *time.Time
	Version       int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"index:idx_report_tenant_created"`
	UpdatedAt     time.Time
}

func (ReportModel) TableName() string {
	return constants.TableReports
}

// ReportUpdateModel is append-only.
type ReportUpdateModel struct {
	ID               uint   `gorm:"primarykey"`
	ReportID         uint   `gorm:"not null;index"`
	AuthorID         uint   `gorm:"not null"`
	PreviousProgress int    `gorm:"not null"`
	NewProgress      int    `gorm:"not null"`
	PreviousStatus   string `gorm:"not null;size:20"`
	NewStatus        string `gorm:"not null;size:20"`
	Note             string `gorm:"type:text"`
	Images           datatypes.JSON
	CreatedAt        time.Time `gorm:"index"`
}

func (ReportUpdateModel) TableName() string {
	return constants.TableReportUpdates
}

type ReportImageModel struct {
	ID         uint   `gorm:"primarykey"`
	ReportID   uint   `gorm:"not null;index"`
	Path       string `gorm:"not null;size:255"`
	Caption    string `gorm:"size:200"`
	Position   int    `gorm:"not null;default:0"`
	UploadedAt time.Time
}

func (ReportImageModel) TableName() string {
	return constants.TableReportImages
}

type ReportCategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	TenantID    uint   `gorm:"not null;uniqueIndex:idx_category_tenant_name"`
	Name        string `gorm:"not null;size:100;uniqueIndex:idx_category_tenant_name"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"not null;size:7"`
	CreatedAt   time.Time
}

func (ReportCategoryModel) TableName() string {
	return constants.TableReportCategories
}

type ReportDataModel struct {
	ID        uint   `gorm:"primarykey"`
	ReportID  uint   `gorm:"not null;uniqueIndex:idx_report_data_name"`
	Name      string `gorm:"not null;size:100;uniqueIndex:idx_report_data_name"`
	Value     string `gorm:"type:text"`
	DataType  string `gorm:"not null;default:text;size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReportDataModel) TableName() string {
	return constants.TableReportData
}
