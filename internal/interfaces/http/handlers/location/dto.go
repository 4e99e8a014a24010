package location

import (
	"github.com/gin-gonic/gin"

	"github.com/relatorio-inc/relatorio/internal/application/location/usecases"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
	"github.com/relatorio-inc/relatorio/internal/shared/utils"
)

type LocalRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Code          string `json:"code" binding:"required,max=20"`
	Type          string `json:"type" binding:"required,oneof=escritorio fabrica deposito loja filial matriz outro"`
	Address       string `json:"address" binding:"max=255"`
	City          string `json:"city" binding:"max=100"`
	State         string `json:"state" binding:"omitempty,uf"`
	CEP           string `json:"cep" binding:"max=10"`
	Phone         string `json:"phone" binding:"max=20"`
	Email         string `json:"email" binding:"omitempty,email"`
	ResponsibleID *uint  `json:"responsible_id"`
	Status        string `json:"status" binding:"omitempty,oneof=ativo inativo manutencao desativado"`
	Notes         string `json:"notes" binding:"max=5000"`
}

func (r *LocalRequest) ToData() location.LocalData {
	return location.LocalData{
		Name:          r.Name,
		Code:          r.Code,
		Type:          location.LocalType(r.Type),
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		CEP:           r.CEP,
		Phone:         r.Phone,
		Email:         r.Email,
		ResponsibleID: r.ResponsibleID,
		Status:        location.LocalStatus(r.Status),
		Notes:         r.Notes,
	}
}

type EquipamentoRequest struct {
	LocalID           uint    `json:"local_id" binding:"required"`
	Name              string  `json:"name" binding:"required,max=100"`
	Code              string  `json:"code" binding:"required,max=50"`
	Description       string  `json:"description" binding:"max=5000"`
	Type              string  `json:"type" binding:"omitempty,oneof=computador impressora servidor roteador switch telefone monitor projetor scanner outro"`
	Manufacturer      string  `json:"manufacturer" binding:"max=100"`
	Model             string  `json:"model" binding:"max=100"`
	SerialNumber      string  `json:"serial_number" binding:"max=100"`
	InstallDate       *string `json:"install_date"`
	OperationalStatus string  `json:"operational_status" binding:"omitempty,oneof=operando manutencao inativo almoxarifado"`
	Active            *bool   `json:"active"`
	Priority          string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AcquisitionDate   *string `json:"acquisition_date"`
	// AcquisitionValue is expressed in cents.
	AcquisitionValue *int64  `json:"acquisition_value" binding:"omitempty,min=0"`
	WarrantyUntil    *string `json:"warranty_until"`
	ResponsibleID    *uint   `json:"responsible_id"`
	Notes            string  `json:"notes" binding:"max=5000"`
}

func (r *EquipamentoRequest) ToData() (location.EquipamentoData, error) {
	installDate, err := utils.ParseOptionalTime("install_date", r.InstallDate)
	if err != nil {
		return location.EquipamentoData{}, err
	}
	acquisitionDate, err := utils.ParseOptionalTime("acquisition_date", r.AcquisitionDate)
	if err != nil {
		return location.EquipamentoData{}, err
	}
	warrantyUntil, err := utils.ParseOptionalTime("warranty_until", r.WarrantyUntil)
	if err != nil {
		return location.EquipamentoData{}, err
	}

	return location.EquipamentoData{
		LocalID:           r.LocalID,
		Name:              r.Name,
		Code:              r.Code,
		Description:       r.Description,
		Type:              location.EquipmentType(r.Type),
		Manufacturer:      r.Manufacturer,
		Model:             r.Model,
		SerialNumber:      r.SerialNumber,
		InstallDate:       installDate,
		OperationalStatus: location.OperationalStatus(r.OperationalStatus),
		Active:            r.Active == nil || *r.Active,
		Priority:          shared.Priority(r.Priority),
		AcquisitionDate:   acquisitionDate,
		AcquisitionValue:  r.AcquisitionValue,
		WarrantyUntil:     warrantyUntil,
		ResponsibleID:     r.ResponsibleID,
		Notes:             r.Notes,
	}, nil
}

type MotorRequest struct {
	LocalID           uint     `json:"local_id" binding:"required"`
	Name              string   `json:"name" binding:"required,max=100"`
	Code              string   `json:"code" binding:"required,max=50"`
	Type              string   `json:"type" binding:"max=50"`
	Description       string   `json:"description" binding:"max=5000"`
	PowerKW           *float64 `json:"power_kw" binding:"omitempty,gte=0"`
	Voltage           *float64 `json:"voltage" binding:"omitempty,gte=0"`
	Current           *float64 `json:"current" binding:"omitempty,gte=0"`
	RPM               *int     `json:"rpm" binding:"omitempty,gte=0"`
	Manufacturer      string   `json:"manufacturer" binding:"max=100"`
	Model             string   `json:"model" binding:"max=100"`
	SerialNumber      string   `json:"serial_number" binding:"max=100"`
	InstallDate       *string  `json:"install_date"`
	OperationalStatus string   `json:"operational_status" binding:"omitempty,oneof=operando manutencao inativo almoxarifado"`
	ResponsibleID     *uint    `json:"responsible_id"`
	Active            *bool    `json:"active"`
}

func (r *MotorRequest) ToData() (location.MotorData, error) {
	installDate, err := utils.ParseOptionalTime("install_date", r.InstallDate)
	if err != nil {
		return location.MotorData{}, err
	}
	return location.MotorData{
		LocalID:           r.LocalID,
		Name:              r.Name,
		Code:              r.Code,
		Type:              r.Type,
		Description:       r.Description,
		PowerKW:           r.PowerKW,
		Voltage:           r.Voltage,
		Current:           r.Current,
		RPM:               r.RPM,
		Manufacturer:      r.Manufacturer,
		Model:             r.Model,
		SerialNumber:      r.SerialNumber,
		InstallDate:       installDate,
		OperationalStatus: location.OperationalStatus(r.OperationalStatus),
		ResponsibleID:     r.ResponsibleID,
		Active:            r.Active == nil || *r.Active,
	}, nil
}

// parseListQuery reads the filters shared by every location listing.
func parseListQuery(c *gin.Context, tenantID uint) (usecases.ListQuery, error) {
	localID, err := utils.ParseUintQuery(c, "local_id")
	if err != nil {
		return usecases.ListQuery{}, err
	}
	p := utils.ParsePagination(c)
	return usecases.ListQuery{
		TenantID: tenantID,
		LocalID:  localID,
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
