package models

import "time"

type Product struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	TenantID string `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_product_tenant_code"`
	Code     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tenant_code"`
	Name     string `gorm:"type:varchar(200);not null"`
	Unit     string `gorm:"type:varchar(20)"`
	IsActive bool   `gorm:"not null;default:true;index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
