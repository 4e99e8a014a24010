package dto

import (
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

type LocalDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	DisplayName   string    `json:"display_name"`
	Type          string    `json:"type"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	CEP           string    `json:"cep"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ResponsibleID *uint     `json:"responsible_id"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToLocalDTO(l *location.Local) *LocalDTO {
	if l == nil {
		return nil
	}
	return &LocalDTO{
		ID:            l.ID(),
		Name:          l.Name(),
		Code:          l.Code(),
		DisplayName:   l.DisplayName(),
		Type:          string(l.Type()),
		Address:       l.Address(),
		City:          l.City(),
		State:         l.State(),
		CEP:           l.CEP(),
		Phone:         l.Phone(),
		Email:         l.Email(),
		ResponsibleID: l.ResponsibleID(),
		Status:        string(l.Status()),
		Notes:         l.Notes(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func ToLocalDTOs(locals []*location.Local) []*LocalDTO {
	return mapper.MapSlice(locals, ToLocalDTO)
}

type EquipmentStatsDTO struct {
	Total      int64 `json:"total"`
	Operando   int64 `json:"operando"`
	Manutencao int64 `json:"manutencao"`
	Inativo    int64 `json:"inativo"`
}

// LocalDetailDTO is a Local with the summary of its equipment.
type LocalDetailDTO struct {
	*LocalDTO
	EquipmentStats EquipmentStatsDTO `json:"equipment_stats"`
}

func ToLocalDetailDTO(l *location.Local, stats *location.EquipmentStats) *LocalDetailDTO {
	out := &LocalDetailDTO{LocalDTO: ToLocalDTO(l)}
	if stats != nil {
		out.EquipmentStats = EquipmentStatsDTO{
			Total:      stats.Total,
			Operando:   stats.Operando,
			Manutencao: stats.Manutencao,
			Inativo:    stats.Inativo,
		}
	}
	return out
}

type EquipamentoDTO struct {
	ID                uint       `json:"id"`
	LocalID           uint       `json:"local_id"`
	Name              string     `json:"name"`
	Code              string     `json:"code"`
	Description       string     `json:"description"`
	Type              string     `json:"type"`
	Manufacturer      string     `json:"manufacturer"`
	Model             string     `json:"model"`
	SerialNumber      string     `json:"serial_number"`
	InstallDate       *time.Time `json:"install_date"`
	OperationalStatus string     `json:"operational_status"`
	Active            bool       `json:"active"`
	Priority          string     `json:"priority"`
	AcquisitionDate   *time.Time `json:"acquisition_date"`
	AcquisitionValue  *int64     `json:"acquisition_value"`
	WarrantyUntil     *time.Time `json:"warranty_until"`
	WarrantyValid     bool       `json:"warranty_valid"`
	ResponsibleID     *uint      `json:"responsible_id"`
	Notes             string     `json:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToEquipamentoDTO(e *location.Equipamento) *EquipamentoDTO {
	if e == nil {
		return nil
	}
	d := e.Data()
	return &EquipamentoDTO{
		ID:                e.ID(),
		LocalID:           d.LocalID,
		Name:              d.Name,
		Code:              d.Code,
		Description:       d.Description,
		Type:              string(d.Type),
		Manufacturer:      d.Manufacturer,
		Model:             d.Model,
		SerialNumber:      d.SerialNumber,
		InstallDate:       d.InstallDate,
		OperationalStatus: string(d.OperationalStatus),
		Active:            d.Active,
		Priority:          d.Priority.String(),
		AcquisitionDate:   d.AcquisitionDate,
		AcquisitionValue:  d.AcquisitionValue,
		WarrantyUntil:     d.WarrantyUntil,
		WarrantyValid:     e.IsWarrantyValid(biztime.NowUTC()),
		ResponsibleID:     d.ResponsibleID,
		Notes:             d.Notes,
		CreatedAt:         e.CreatedAt(),
		UpdatedAt:         e.UpdatedAt(),
	}
}

func ToEquipamentoDTOs(items []*location.Equipamento) []*EquipamentoDTO {
	return mapper.MapSlice(items, ToEquipamentoDTO)
}

type MotorDTO struct {
	ID                uint       `json:"id"`
	LocalID           uint       `json:"local_id"`
	Name              string     `json:"name"`
	Code              string     `json:"code"`
	Type              string     `json:"type"`
	Description       string     `json:"description"`
	PowerKW           *float64   `json:"power_kw"`
	Voltage           *float64   `json:"voltage"`
	Current           *float64   `json:"current"`
	RPM               *int       `json:"rpm"`
	Manufacturer      string     `json:"manufacturer"`
	Model             string     `json:"model"`
	SerialNumber      string     `json:"serial_number"`
	InstallDate       *time.Time `json:"install_date"`
	OperationalStatus string     `json:"operational_status"`
	ResponsibleID     *uint      `json:"responsible_id"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func ToMotorDTO(m *location.Motor) *MotorDTO {
	if m == nil {
		return nil
	}
	d := m.Data()
	return &MotorDTO{
		ID:                m.ID(),
		LocalID:           d.LocalID,
		Name:              d.Name,
		Code:              d.Code,
		Type:              d.Type,
		Description:       d.Description,
		PowerKW:           d.PowerKW,
		Voltage:           d.Voltage,
		Current:           d.Current,
		RPM:               d.RPM,
		Manufacturer:      d.Manufacturer,
		Model:             d.Model,
		SerialNumber:      d.SerialNumber,
		InstallDate:       d.InstallDate,
		OperationalStatus: string(d.OperationalStatus),
		ResponsibleID:     d.ResponsibleID,
		Active:            d.Active,
		CreatedAt:         m.CreatedAt(),
		UpdatedAt:         m.UpdatedAt(),
	}
}

func ToMotorDTOs(items []*location.Motor) []*MotorDTO {
	return mapper.MapSlice(items, ToMotorDTO)
}
