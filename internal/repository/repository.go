package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"procurehub/internal/models"
)

// Repository is the persistence surface the recommendation engine reads
// candidates and history through, plus the transactional hooks used by the
// apply mutation. Get* methods return (nil, nil) when the row does not exist.
type Repository interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	GetProduct(ctx context.Context, tenantID string, productID uint64) (*models.Product, error)
	ListActiveProductSuppliers(ctx context.Context, tenantID string, productID uint64) ([]models.ProductSupplier, error)
	GetProductSupplier(ctx context.Context, tenantID string, productID, supplierID uint64) (*models.ProductSupplier, error)

	// ClearOtherPreferredTx unsets the preferred flag on every association of
	// the product except the given supplier's.
	ClearOtherPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64) error
	// SetPreferredTx sets the preferred flag on one association and appends a
	// note line. Returns the number of rows updated (0 when the association
	// does not exist).
	SetPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64, note string) (int64, error)

	ListDeliveryRecords(ctx context.Context, tenantID string, supplierID uint64, since *time.Time) ([]models.DeliveryRecord, error)
	ListPricePoints(ctx context.Context, tenantID string, supplierID, productID uint64, since time.Time) ([]models.PricePoint, error)

	InsertAuditLog(ctx context.Context, item *models.AuditLog) error
	ListAuditLogs(ctx context.Context, params ListAuditLogsParams) ([]models.AuditLog, error)
}

type ListAuditLogsParams struct {
	TenantID  string
	ProductID *uint64
	Since     *time.Time
	Limit     int
	Offset    int
}
