package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"procurehub/internal/audit"
	"procurehub/internal/config"
	"procurehub/internal/repository"
)

// SuggestionCache is the read-through cache in front of Suggestions. Both the
// in-memory and the redis store satisfy it.
type SuggestionCache interface {
	Get(ctx context.Context, tenantID string, productID uint64) (*SuggestionSet, bool, error)
	Set(ctx context.Context, tenantID string, productID uint64, set *SuggestionSet) error
	Delete(ctx context.Context, tenantID string, productID uint64) error
}

// Service computes supplier suggestions and applies the preferred-supplier
// switch. Scoring is pure; all storage access goes through the repository.
type Service struct {
	Repo   repository.Repository
	Cache  SuggestionCache
	Audit  audit.Sink
	Logger *zap.Logger

	aggregator      *Aggregator
	trend           TrendAnalyzer
	reliability     ReliabilityCalculator
	historyLookback int
}

// NewService validates the scoring configuration once. Bad weights or
// thresholds fail construction; they are never corrected silently.
func NewService(cfg config.RecommendConfig, repo repository.Repository, cache SuggestionCache, sink audit.Sink, logger *zap.Logger) (*Service, error) {
	aggregator, err := NewAggregator(
		Weights{
			Price:       cfg.Weights.Price,
			LeadTime:    cfg.Weights.LeadTime,
			Reliability: cfg.Weights.Reliability,
			Trend:       cfg.Weights.Trend,
		},
		ConfidenceThresholds{
			Low:  cfg.Confidence.LowThreshold,
			High: cfg.Confidence.HighThreshold,
		},
	)
	if err != nil {
		return nil, err
	}
	return &Service{
		Repo:   repo,
		Cache:  cache,
		Audit:  sink,
		Logger: logger,
		aggregator: aggregator,
		trend: TrendAnalyzer{
			WindowDays: cfg.Trend.WindowDays,
			MinPoints:  cfg.Trend.MinPoints,
		},
		reliability: ReliabilityCalculator{
			OnTimeWeight:   cfg.Reliability.OnTimeWeight,
			AccuracyWeight: cfg.Reliability.AccuracyWeight,
		},
		historyLookback: cfg.Reliability.LookbackDays,
	}, nil
}

// Suggestions ranks the product's active supplier candidates. Results are
// served from the cache when fresh; a concurrent miss may recompute twice,
// which is harmless.
func (s *Service) Suggestions(ctx context.Context, tenantID string, productID uint64) (*SuggestionSet, error) {
	if s.Cache != nil {
		if set, ok, err := s.Cache.Get(ctx, tenantID, productID); err == nil && ok {
			return set, nil
		} else if err != nil && s.Logger != nil {
			s.Logger.Warn("suggestion cache read failed", zap.Error(err))
		}
	}

	set, err := s.compute(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, tenantID, productID, set); err != nil && s.Logger != nil {
			s.Logger.Warn("suggestion cache write failed", zap.Error(err))
		}
	}
	return set, nil
}

func (s *Service) compute(ctx context.Context, tenantID string, productID uint64) (*SuggestionSet, error) {
	product, err := s.Repo.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	associations, err := s.Repo.ListActiveProductSuppliers(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if len(associations) == 0 {
		return nil, fmt.Errorf("product %d has no active suppliers: %w", productID, ErrNotFound)
	}

	candidates := make([]Candidate, len(associations))
	for i, assoc := range associations {
		candidates[i] = Candidate{
			SupplierID:   assoc.SupplierID,
			SupplierName: assoc.Supplier.Name,
			UnitCost:     assoc.UnitCost,
			Currency:     assoc.Currency,
			LeadTimeDays: assoc.LeadTimeDays,
			IsPreferred:  assoc.IsPreferred,
			Notes:        assoc.Notes,
		}
	}

	set := &SuggestionSet{
		ProductID:   productID,
		ProductCode: product.Code,
		ProductName: product.Name,
		ComputedAt:  time.Now().UTC(),
	}

	// A single candidate leaves nothing to compare; return an explicit
	// empty ranking instead of a one-item list with fabricated confidence.
	if len(candidates) == 1 {
		set.Suggestions = []Suggestion{}
		set.Explanation = NoComparisonExplanation(product.Name, candidates[0].SupplierName)
		return set, nil
	}

	histories, err := s.fetchHistories(ctx, tenantID, productID, candidates)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, len(candidates))
	leads := make([]float64, len(candidates))
	cheapest := candidates[0].UnitCost
	fastest := candidates[0].LeadTimeDays
	for i, cand := range candidates {
		prices[i], _ = cand.UnitCost.Float64()
		leads[i] = float64(cand.LeadTimeDays)
		if cand.UnitCost.LessThan(cheapest) {
			cheapest = cand.UnitCost
		}
		if cand.LeadTimeDays < fastest {
			fastest = cand.LeadTimeDays
		}
	}
	priceScores := NormalizeScores(prices, LowerIsBetter)
	leadScores := NormalizeScores(leads, LowerIsBetter)

	suggestions := make([]Suggestion, len(candidates))
	for i, cand := range candidates {
		breakdown := Breakdown{
			Price: CriterionScore{
				Score:       priceScores[i],
				Explanation: PriceExplanation(cand.UnitCost, cheapest, len(candidates)),
			},
			LeadTime: CriterionScore{
				Score:       leadScores[i],
				Explanation: LeadTimeExplanation(cand.LeadTimeDays, fastest, len(candidates)),
			},
			Reliability: histories[i].reliability,
			Trend:       histories[i].trend,
		}
		total := s.aggregator.Total(breakdown)
		suggestions[i] = Suggestion{
			SupplierID:         cand.SupplierID,
			SupplierName:       cand.SupplierName,
			UnitCost:           cand.UnitCost,
			Currency:           cand.Currency,
			LeadTimeDays:       cand.LeadTimeDays,
			Breakdown:          breakdown,
			TotalScore:         total,
			Confidence:         s.aggregator.Confidence(total),
			IsCurrentPreferred: cand.IsPreferred,
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].TotalScore != suggestions[j].TotalScore {
			return suggestions[i].TotalScore > suggestions[j].TotalScore
		}
		return suggestions[i].SupplierName < suggestions[j].SupplierName
	})

	set.Suggestions = suggestions
	set.RecommendedSupplierID = suggestions[0].SupplierID
	set.Explanation = BuildExplanation(product.Name, suggestions[0])

	for _, cand := range candidates {
		if !cand.IsPreferred || cand.SupplierID == suggestions[0].SupplierID {
			continue
		}
		if diff := cand.UnitCost.Sub(suggestions[0].UnitCost); diff.IsPositive() {
			set.PotentialSavings = &diff
		}
	}

	return set, nil
}

type candidateHistory struct {
	reliability CriterionScore
	trend       CriterionScore
	err         error
}

// fetchHistories computes reliability and trend per candidate. Candidates are
// independent, so the per-supplier reads fan out; all results are joined
// before aggregation.
func (s *Service) fetchHistories(ctx context.Context, tenantID string, productID uint64, candidates []Candidate) ([]candidateHistory, error) {
	var deliveriesSince *time.Time
	if s.historyLookback > 0 {
		t := time.Now().UTC().AddDate(0, 0, -s.historyLookback)
		deliveriesSince = &t
	}
	windowDays := s.trend.WindowDays
	if windowDays <= 0 {
		windowDays = 180
	}
	pricesSince := time.Now().UTC().AddDate(0, 0, -windowDays)

	histories := make([]candidateHistory, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, supplierID uint64) {
			defer wg.Done()
			records, err := s.Repo.ListDeliveryRecords(ctx, tenantID, supplierID, deliveriesSince)
			if err != nil {
				histories[i].err = err
				return
			}
			_, reliability := s.reliability.Compute(records)
			points, err := s.Repo.ListPricePoints(ctx, tenantID, supplierID, productID, pricesSince)
			if err != nil {
				histories[i].err = err
				return
			}
			histories[i] = candidateHistory{
				reliability: reliability,
				trend:       s.trend.Compute(points),
			}
		}(i, cand.SupplierID)
	}
	wg.Wait()

	for _, h := range histories {
		if h.err != nil {
			return nil, h.err
		}
	}
	return histories, nil
}

// ApplyResult reports a successful preferred-supplier switch.
type ApplyResult struct {
	ProductID          uint64  `json:"product_id"`
	SupplierID         uint64  `json:"supplier_id"`
	PreviousSupplierID *uint64 `json:"previous_supplier_id,omitempty"`
}

// ApplyPreferred switches the product's preferred supplier in one
// transaction: every other association loses the flag, the target gains it,
// and the reason lands in the target's notes with a timestamp prefix. The
// cache entry is evicted before the call returns so no reader sees a stale
// recommendation after a successful apply.
func (s *Service) ApplyPreferred(ctx context.Context, tenantID string, productID, supplierID uint64, reason string) (*ApplyResult, error) {
	assoc, err := s.Repo.GetProductSupplier(ctx, tenantID, productID, supplierID)
	if err != nil {
		return nil, err
	}
	if assoc == nil || !assoc.IsActive {
		return nil, fmt.Errorf("product %d has no active association with supplier %d: %w", productID, supplierID, ErrNotFound)
	}

	var previous *uint64
	associations, err := s.Repo.ListActiveProductSuppliers(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	for _, a := range associations {
		if a.IsPreferred && a.SupplierID != supplierID {
			id := a.SupplierID
			previous = &id
		}
	}

	note := ""
	if reason != "" {
		note = fmt.Sprintf("[%s] %s", time.Now().UTC().Format(time.RFC3339), reason)
	}

	err = s.Repo.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.Repo.ClearOtherPreferredTx(ctx, tx, tenantID, productID, supplierID); err != nil {
			return err
		}
		rows, err := s.Repo.SetPreferredTx(ctx, tx, tenantID, productID, supplierID, note)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("product %d supplier %d association vanished: %w", productID, supplierID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTxFailed, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(ctx, tenantID, productID); err != nil && s.Logger != nil {
			s.Logger.Error("suggestion cache eviction failed after apply",
				zap.String("tenant", tenantID),
				zap.Uint64("product_id", productID),
				zap.Error(err),
			)
		}
	}

	if s.Logger != nil {
		s.Logger.Info("preferred supplier applied",
			zap.String("tenant", tenantID),
			zap.Uint64("product_id", productID),
			zap.Uint64("supplier_id", supplierID),
		)
	}

	if s.Audit != nil {
		s.Audit.PreferredChanged(ctx, audit.Event{
			TenantID:      tenantID,
			ProductID:     productID,
			OldSupplierID: previous,
			NewSupplierID: supplierID,
			Reason:        reason,
		})
	}

	return &ApplyResult{
		ProductID:          productID,
		SupplierID:         supplierID,
		PreviousSupplierID: previous,
	}, nil
}
