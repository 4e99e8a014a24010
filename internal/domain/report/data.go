package report

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
)

// Data is a typed custom field attached to a report. Names are unique per report.
type Data struct {
	id        uint
	reportID  uint
	name      string
	value     string
	dataType  vo.DataType
	createdAt time.Time
	updatedAt time.Time
}

func NewData(reportID uint, name, value string, dataType vo.DataType) (*Data, error) {
	name = strings.TrimSpace(name)
	if reportID == 0 {
		return nil, fmt.Errorf("report ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("field name cannot exceed 100 characters")
	}
	if dataType == "" {
		dataType = vo.DataTypeText
	}
	normalized, err := dataType.NormalizeValue(value)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Data{
		reportID:  reportID,
		name:      name,
		value:     normalized,
		dataType:  dataType,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructData(id, reportID uint, name, value, dataType string, createdAt, updatedAt time.Time) *Data {
	return &Data{
		id:        id,
		reportID:  reportID,
		name:      name,
		value:     value,
		dataType:  vo.DataType(dataType),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d *Data) ID() uint              { return d.id }
func (d *Data) ReportID() uint        { return d.reportID }
func (d *Data) Name() string          { return d.name }
func (d *Data) Value() string         { return d.value }
func (d *Data) DataType() vo.DataType { return d.dataType }
func (d *Data) CreatedAt() time.Time  { return d.createdAt }
func (d *Data) UpdatedAt() time.Time  { return d.updatedAt }

func (d *Data) SetID(id uint) {
	d.id = id
}
