package gormrepository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"procurehub/internal/models"
	"procurehub/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) GetProduct(ctx context.Context, tenantID string, productID uint64) (*models.Product, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Product
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListActiveProductSuppliers(ctx context.Context, tenantID string, productID uint64) ([]models.ProductSupplier, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.ProductSupplier
	err := s.db.WithContext(ctx).
		Preload("Supplier").
		Where("tenant_id = ? AND product_id = ? AND is_active = ?", tenantID, productID, true).
		Order("supplier_id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetProductSupplier(ctx context.Context, tenantID string, productID, supplierID uint64) (*models.ProductSupplier, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.ProductSupplier
	err := s.db.WithContext(ctx).
		Preload("Supplier").
		Where("tenant_id = ? AND product_id = ? AND supplier_id = ?", tenantID, productID, supplierID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ClearOtherPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64) error {
	if tx == nil {
		return nil
	}
	return tx.WithContext(ctx).
		Model(&models.ProductSupplier{}).
		Where("tenant_id = ? AND product_id = ? AND supplier_id <> ? AND is_preferred = ?", tenantID, productID, supplierID, true).
		Update("is_preferred", false).Error
}

func (s *Store) SetPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64, note string) (int64, error) {
	if tx == nil {
		return 0, nil
	}
	updates := map[string]any{
		"is_preferred": true,
		"updated_at":   time.Now().UTC(),
	}
	if note != "" {
		updates["notes"] = gorm.Expr("CASE WHEN notes = '' THEN ?::text ELSE notes || chr(10) || ? END", note, note)
	}
	res := tx.WithContext(ctx).
		Model(&models.ProductSupplier{}).
		Where("tenant_id = ? AND product_id = ? AND supplier_id = ? AND is_active = ?", tenantID, productID, supplierID, true).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (s *Store) ListDeliveryRecords(ctx context.Context, tenantID string, supplierID uint64, since *time.Time) ([]models.DeliveryRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.DeliveryRecord{}).
		Where("tenant_id = ? AND supplier_id = ?", tenantID, supplierID)
	if since != nil && !since.IsZero() {
		query = query.Where("created_at >= ?", *since)
	}
	var items []models.DeliveryRecord
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListPricePoints(ctx context.Context, tenantID string, supplierID, productID uint64, since time.Time) ([]models.PricePoint, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.PricePoint{}).
		Where("tenant_id = ? AND supplier_id = ? AND product_id = ?", tenantID, supplierID, productID)
	if !since.IsZero() {
		query = query.Where("recorded_at >= ?", since)
	}
	var items []models.PricePoint
	if err := query.Order("recorded_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertAuditLog(ctx context.Context, item *models.AuditLog) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListAuditLogs(ctx context.Context, params repository.ListAuditLogsParams) ([]models.AuditLog, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("tenant_id = ?", params.TenantID)
	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.Since != nil && !params.Since.IsZero() {
		query = query.Where("created_at >= ?", *params.Since)
	}
	limit := params.Limit
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	var items []models.AuditLog
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
