package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryRecord is a historical delivery outcome for a supplier. Produced by
// the ordering subsystem; the recommendation engine only reads these.
type DeliveryRecord struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	TenantID   string `gorm:"type:varchar(64);not null;index"`
	SupplierID uint64 `gorm:"not null;index"`
	OrderRef   string `gorm:"type:varchar(100)"`

	PromisedDate *time.Time `gorm:"type:timestamptz"`
	ActualDate   *time.Time `gorm:"type:timestamptz"`

	OrderedQty   decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	DeliveredQty decimal.Decimal `gorm:"type:numeric(20,6);not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
}

func (DeliveryRecord) TableName() string {
	return "delivery_records"
}
