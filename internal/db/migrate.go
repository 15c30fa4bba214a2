package db

import (
	"procurehub/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Product{},
		&models.Supplier{},
		&models.ProductSupplier{},
		&models.DeliveryRecord{},
		&models.PricePoint{},
		&models.AuditLog{},
	)
}
