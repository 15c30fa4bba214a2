package recommend

import (
	"context"
	"time"

	"gorm.io/gorm"

	"procurehub/internal/models"
	"procurehub/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
type stubRepo struct {
	products     map[uint64]models.Product
	associations []*models.ProductSupplier
	deliveries   map[uint64][]models.DeliveryRecord
	prices       map[uint64][]models.PricePoint
	auditLogs    []models.AuditLog

	// txErr fails InTx before the callback runs, leaving state untouched.
	txErr error
}

func (s *stubRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.txErr != nil {
		return s.txErr
	}
	return fn(nil)
}

func (s *stubRepo) GetProduct(ctx context.Context, tenantID string, productID uint64) (*models.Product, error) {
	p, ok := s.products[productID]
	if !ok || p.TenantID != tenantID {
		return nil, nil
	}
	return &p, nil
}

func (s *stubRepo) ListActiveProductSuppliers(ctx context.Context, tenantID string, productID uint64) ([]models.ProductSupplier, error) {
	var items []models.ProductSupplier
	for _, a := range s.associations {
		if a.TenantID == tenantID && a.ProductID == productID && a.IsActive {
			items = append(items, *a)
		}
	}
	return items, nil
}

func (s *stubRepo) GetProductSupplier(ctx context.Context, tenantID string, productID, supplierID uint64) (*models.ProductSupplier, error) {
	for _, a := range s.associations {
		if a.TenantID == tenantID && a.ProductID == productID && a.SupplierID == supplierID {
			item := *a
			return &item, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ClearOtherPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64) error {
	for _, a := range s.associations {
		if a.TenantID == tenantID && a.ProductID == productID && a.SupplierID != supplierID {
			a.IsPreferred = false
		}
	}
	return nil
}

func (s *stubRepo) SetPreferredTx(ctx context.Context, tx *gorm.DB, tenantID string, productID, supplierID uint64, note string) (int64, error) {
	for _, a := range s.associations {
		if a.TenantID == tenantID && a.ProductID == productID && a.SupplierID == supplierID && a.IsActive {
			a.IsPreferred = true
			if note != "" {
				if a.Notes == "" {
					a.Notes = note
				} else {
					a.Notes = a.Notes + "\n" + note
				}
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubRepo) ListDeliveryRecords(ctx context.Context, tenantID string, supplierID uint64, since *time.Time) ([]models.DeliveryRecord, error) {
	var items []models.DeliveryRecord
	for _, rec := range s.deliveries[supplierID] {
		if rec.TenantID != tenantID {
			continue
		}
		if since != nil && rec.CreatedAt.Before(*since) {
			continue
		}
		items = append(items, rec)
	}
	return items, nil
}

func (s *stubRepo) ListPricePoints(ctx context.Context, tenantID string, supplierID, productID uint64, since time.Time) ([]models.PricePoint, error) {
	var items []models.PricePoint
	for _, p := range s.prices[supplierID] {
		if p.TenantID != tenantID || p.ProductID != productID {
			continue
		}
		if !since.IsZero() && p.RecordedAt.Before(since) {
			continue
		}
		items = append(items, p)
	}
	return items, nil
}

func (s *stubRepo) InsertAuditLog(ctx context.Context, item *models.AuditLog) error {
	s.auditLogs = append(s.auditLogs, *item)
	return nil
}

func (s *stubRepo) ListAuditLogs(ctx context.Context, params repository.ListAuditLogsParams) ([]models.AuditLog, error) {
	var items []models.AuditLog
	for _, log := range s.auditLogs {
		if log.TenantID != params.TenantID {
			continue
		}
		if params.ProductID != nil && log.ProductID != *params.ProductID {
			continue
		}
		items = append(items, log)
	}
	return items, nil
}

func (s *stubRepo) preferredSuppliers(productID uint64) []uint64 {
	var ids []uint64
	for _, a := range s.associations {
		if a.ProductID == productID && a.IsPreferred {
			ids = append(ids, a.SupplierID)
		}
	}
	return ids
}

func (s *stubRepo) notesFor(productID, supplierID uint64) string {
	for _, a := range s.associations {
		if a.ProductID == productID && a.SupplierID == supplierID {
			return a.Notes
		}
	}
	return ""
}

var _ repository.Repository = (*stubRepo)(nil)
