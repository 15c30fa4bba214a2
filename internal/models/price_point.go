package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one observation of a supplier's unit price for a product,
// appended by price-list imports and order confirmations.
type PricePoint struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	TenantID   string `gorm:"type:varchar(64);not null;index"`
	SupplierID uint64 `gorm:"not null;index:idx_pp_supplier_product"`
	ProductID  uint64 `gorm:"not null;index:idx_pp_supplier_product"`

	Price    decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Currency string          `gorm:"type:varchar(3);not null;default:'USD'"`

	RecordedAt time.Time `gorm:"type:timestamptz;not null;index"`
	CreatedAt  time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (PricePoint) TableName() string {
	return "price_points"
}
