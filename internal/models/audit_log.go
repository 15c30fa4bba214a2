package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records a preferred-supplier change. Written by the audit sink
// outside the apply transaction; failures here never fail the apply.
type AuditLog struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	EntryID  string `gorm:"type:varchar(36);not null;uniqueIndex"`
	TenantID string `gorm:"type:varchar(64);not null;index"`
	Action   string `gorm:"type:varchar(50);not null;index"`

	ProductID     uint64  `gorm:"not null;index"`
	OldSupplierID *uint64 `gorm:""`
	NewSupplierID uint64  `gorm:"not null"`

	Reason  string         `gorm:"type:text"`
	Payload datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
