package recommend

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is one supplier eligible for a product, with the commercial terms
// it is scored on. Built per request from the product-supplier association;
// never persisted by the engine.
type Candidate struct {
	SupplierID   uint64          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Currency     string          `json:"currency"`
	LeadTimeDays int             `json:"lead_time_days"`
	IsPreferred  bool            `json:"is_preferred"`
	Notes        string          `json:"notes,omitempty"`
}

// Suggestion is a scored candidate.
type Suggestion struct {
	SupplierID         uint64          `json:"supplier_id"`
	SupplierName       string          `json:"supplier_name"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	Currency           string          `json:"currency"`
	LeadTimeDays       int             `json:"lead_time_days"`
	Breakdown          Breakdown       `json:"breakdown"`
	TotalScore         float64         `json:"total_score"`
	Confidence         Confidence      `json:"confidence"`
	IsCurrentPreferred bool            `json:"is_current_preferred"`
}

// SuggestionSet is the per-product result: candidates ranked by total score
// descending. With fewer than two candidates Suggestions is empty and
// RecommendedSupplierID zero; there is nothing to compare against.
type SuggestionSet struct {
	ProductID             uint64           `json:"product_id"`
	ProductCode           string           `json:"product_code"`
	ProductName           string           `json:"product_name"`
	Suggestions           []Suggestion     `json:"suggestions"`
	RecommendedSupplierID uint64           `json:"recommended_supplier_id,omitempty"`
	PotentialSavings      *decimal.Decimal `json:"potential_savings,omitempty"`
	Explanation           string           `json:"explanation"`
	ComputedAt            time.Time        `json:"computed_at"`
}
