// Package models holds the gorm persistence models.
package models

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UnitModel{},
		&SectorModel{},
		&UserModel{},
		&LocalModel{},
		&EquipamentoModel{},
		&MotorModel{},
		&ReportCategoryModel{},
		&ReportModel{},
		&ReportUpdateModel{},
		&ReportImageModel{},
		&ReportDataModel{},
		&NotificationModel{},
		&NotificationSettingsModel{},
		&NotificationDeliveryLogModel{},
	}
}
