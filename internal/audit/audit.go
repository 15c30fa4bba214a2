package audit

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"procurehub/internal/models"
	"procurehub/internal/repository"
)

const actionPreferredChanged = "preferred_supplier_changed"

// Event describes one preferred-supplier change.
type Event struct {
	TenantID      string         `json:"tenant_id"`
	ProductID     uint64         `json:"product_id"`
	OldSupplierID *uint64        `json:"old_supplier_id,omitempty"`
	NewSupplierID uint64         `json:"new_supplier_id"`
	Reason        string         `json:"reason"`
	Details       map[string]any `json:"details,omitempty"`
}

// Sink receives apply notifications. Implementations must not fail the apply:
// the engine fires and forgets.
type Sink interface {
	PreferredChanged(ctx context.Context, event Event)
}

// RepoSink persists audit entries through the repository. Errors are logged
// and swallowed.
type RepoSink struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *RepoSink) PreferredChanged(ctx context.Context, event Event) {
	if s == nil || s.Repo == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		payload = nil
	}
	item := &models.AuditLog{
		EntryID:       uuid.NewString(),
		TenantID:      event.TenantID,
		Action:        actionPreferredChanged,
		ProductID:     event.ProductID,
		OldSupplierID: event.OldSupplierID,
		NewSupplierID: event.NewSupplierID,
		Reason:        event.Reason,
		Payload:       datatypes.JSON(payload),
	}
	if err := s.Repo.InsertAuditLog(ctx, item); err != nil && s.Logger != nil {
		s.Logger.Warn("audit insert failed",
			zap.String("tenant", event.TenantID),
			zap.Uint64("product_id", event.ProductID),
			zap.Error(err),
		)
	}
}
