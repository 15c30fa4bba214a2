package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSupplier is the product-supplier association carrying the commercial
// terms a candidate is scored on. At most one row per product may have
// IsPreferred set; the apply mutation enforces this inside a transaction.
type ProductSupplier struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	TenantID   string `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_ps_tenant_product_supplier"`
	ProductID  uint64 `gorm:"not null;index;uniqueIndex:idx_ps_tenant_product_supplier"`
	SupplierID uint64 `gorm:"not null;index;uniqueIndex:idx_ps_tenant_product_supplier"`
	Supplier   Supplier

	// Money-like values stored as numeric to avoid float errors.
	UnitCost     decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'USD'"`
	LeadTimeDays int             `gorm:"not null;default:0"`

	IsPreferred bool   `gorm:"not null;default:false;index"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	Notes       string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (ProductSupplier) TableName() string {
	return "product_suppliers"
}
