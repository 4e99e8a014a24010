package mappers

import (
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
)

func LocalToEntity(m *models.LocalModel) *location.Local {
	if m == nil {
		return nil
	}
	return location.ReconstructLocal(m.ID, m.TenantID, location.LocalData{
		Name:          m.Name,
		Code:          m.Code,
		Type:          location.LocalType(m.Type),
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		CEP:           m.CEP,
		Phone:         m.Phone,
		Email:         m.Email,
		ResponsibleID: m.ResponsibleID,
		Status:        location.LocalStatus(m.Status),
		Notes:         m.Notes,
	}, m.CreatedAt, m.UpdatedAt)
}

func LocalToModel(l *location.Local) *models.LocalModel {
	d := l.Data()
	return &models.LocalModel{
		ID:            l.ID(),
		TenantID:      l.TenantID(),
		Name:          d.Name,
		Code:          d.Code,
		Type:          string(d.Type),
		Address:       d.Address,
		City:          d.City,
		State:         d.State,
		CEP:           d.CEP,
		Phone:         d.Phone,
		Email:         d.Email,
		ResponsibleID: d.ResponsibleID,
		Status:        string(d.Status),
		Notes:         d.Notes,
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func EquipamentoToEntity(m *models.EquipamentoModel) *location.Equipamento {
	if m == nil {
		return nil
	}
	return location.ReconstructEquipamento(m.ID, m.TenantID, location.EquipamentoData{
		LocalID:           m.LocalID,
		Name:              m.Name,
		Code:              m.Code,
		Description:       m.Description,
		Type:              location.EquipmentType(m.Type),
		Manufacturer:      m.Manufacturer,
		Model:             m.Model,
		SerialNumber:      m.SerialNumber,
		InstallDate:       m.InstallDate,
		OperationalStatus: location.OperationalStatus(m.OperationalStatus),
		Active:            m.Active,
		Priority:          shared.Priority(m.Priority),
		AcquisitionDate:   m.AcquisitionDate,
		AcquisitionValue:  m.AcquisitionValue,
		WarrantyUntil:     m.WarrantyUntil,
		ResponsibleID:     m.ResponsibleID,
		Notes:             m.Notes,
	}, m.CreatedAt, m.UpdatedAt)
}

func EquipamentoToModel(e *location.Equipamento) *models.EquipamentoModel {
	d := e.Data()
	return &models.EquipamentoModel{
		ID:                e.ID(),
		TenantID:          e.TenantID(),
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
		Priority:          string(d.Priority),
		AcquisitionDate:   d.AcquisitionDate,
		AcquisitionValue:  d.AcquisitionValue,
		WarrantyUntil:     d.WarrantyUntil,
		ResponsibleID:     d.ResponsibleID,
		Notes:             d.Notes,
		CreatedAt:         e.CreatedAt(),
		UpdatedAt:         e.UpdatedAt(),
	}
}

func MotorToEntity(m *models.MotorModel) *location.Motor {
	if m == nil {
		return nil
	}
	return location.ReconstructMotor(m.ID, m.TenantID, location.MotorData{
		LocalID:           m.LocalID,
		Name:              m.Name,
		Code:              m.Code,
		Type:              m.Type,
		Description:       m.Description,
		PowerKW:           m.PowerKW,
		Voltage:           m.Voltage,
		Current:           m.Current,
		RPM:               m.RPM,
		Manufacturer:      m.Manufacturer,
		Model:             m.Model,
		SerialNumber:      m.SerialNumber,
		InstallDate:       m.InstallDate,
		OperationalStatus: location.OperationalStatus(m.OperationalStatus),
		ResponsibleID:     m.ResponsibleID,
		Active:            m.Active,
	}, m.CreatedAt, m.UpdatedAt)
}

func MotorToModel(mo *location.Motor) *models.MotorModel {
	d := mo.Data()
	return &models.MotorModel{
		ID:                mo.ID(),
		TenantID:          mo.TenantID(),
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
		CreatedAt:         mo.CreatedAt(),
		UpdatedAt:         mo.UpdatedAt(),
	}
}
