// Package location models sites and the equipment and motors installed in them.
package location

type LocalType string

const (
	LocalTypeEscritorio LocalType = "escritorio"
	LocalTypeFabrica    LocalType = "fabrica"
	LocalTypeDeposito   LocalType = "deposito"
	LocalTypeLoja       LocalType = "loja"
	LocalTypeFilial     LocalType = "filial"
	LocalTypeMatriz     LocalType = "matriz"
	LocalTypeOutro      LocalType = "outro"
)

func (t LocalType) IsValid() bool {
	switch t {
	case LocalTypeEscritorio, LocalTypeFabrica, LocalTypeDeposito, LocalTypeLoja,
		LocalTypeFilial, LocalTypeMatriz, LocalTypeOutro:
		return true
	}
	return false
}

type LocalStatus string

const (
	LocalStatusAtivo      LocalStatus = "ativo"
	LocalStatusInativo    LocalStatus = "inativo"
	LocalStatusManutencao LocalStatus = "manutencao"
	LocalStatusDesativado LocalStatus = "desativado"
)

func (s LocalStatus) IsValid() bool {
	switch s {
	case LocalStatusAtivo, LocalStatusInativo, LocalStatusManutencao, LocalStatusDesativado:
		return true
	}
	return false
}

type EquipmentType string

const (
	EquipmentComputador EquipmentType = "computador"
	EquipmentImpressora EquipmentType = "impressora"
	EquipmentServidor   EquipmentType = "servidor"
	EquipmentRoteador   EquipmentType = "roteador"
	EquipmentSwitch     EquipmentType = "switch"
	EquipmentTelefone   EquipmentType = "telefone"
	EquipmentMonitor    EquipmentType = "monitor"
	EquipmentProjetor   EquipmentType = "projetor"
	EquipmentScanner    EquipmentType = "scanner"
	EquipmentOutro      EquipmentType = "outro"
)

// IsValid accepts the empty type, which means "not informed".
func (t EquipmentType) IsValid() bool {
	switch t {
	case "", EquipmentComputador, EquipmentImpressora, EquipmentServidor, EquipmentRoteador,
		EquipmentSwitch, EquipmentTelefone, EquipmentMonitor, EquipmentProjetor,
		EquipmentScanner, EquipmentOutro:
		return true
	}
	return false
}

// OperationalStatus applies to both equipment and motors.
type OperationalStatus string

const (
	OperationalOperando     OperationalStatus = "operando"
	OperationalManutencao   OperationalStatus = "manutencao"
	OperationalInativo      OperationalStatus = "inativo"
	OperationalAlmoxarifado OperationalStatus = "almoxarifado"
)

func (s OperationalStatus) IsValid() bool {
	switch s {
	case OperationalOperando, OperationalManutencao, OperationalInativo, OperationalAlmoxarifado:
		return true
	}
	return false
}
