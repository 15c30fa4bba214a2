package recommend

import (
	"fmt"

	"procurehub/internal/models"
)

// ReliabilityMetrics aggregates a supplier's historical delivery outcomes.
// Rates are in [0,1]; Score is the blended rate scaled to [0,100].
type ReliabilityMetrics struct {
	OnTimeRate   float64 `json:"on_time_rate"`
	AccuracyRate float64 `json:"accuracy_rate"`
	SampleSize   int     `json:"sample_size"`
	Score        float64 `json:"score"`
}

type ReliabilityCalculator struct {
	OnTimeWeight   float64
	AccuracyWeight float64
}

// Compute derives reliability from raw delivery records. A supplier with no
// history gets the neutral midpoint everywhere and SampleSize 0 so downstream
// consumers can lower confidence; that is not an error.
func (c ReliabilityCalculator) Compute(records []models.DeliveryRecord) (ReliabilityMetrics, CriterionScore) {
	if len(records) == 0 {
		metrics := ReliabilityMetrics{
			OnTimeRate:   0.5,
			AccuracyRate: 0.5,
			SampleSize:   0,
			Score:        neutralScore,
		}
		return metrics, CriterionScore{
			Score:        neutralScore,
			Explanation:  "No delivery history; neutral reliability assumed",
			Insufficient: true,
		}
	}

	var promised, onTime, accurate int
	for _, rec := range records {
		if rec.PromisedDate != nil {
			promised++
			// A promised delivery that never arrived counts as late.
			if rec.ActualDate != nil && !rec.ActualDate.After(*rec.PromisedDate) {
				onTime++
			}
		}
		if rec.DeliveredQty.Equal(rec.OrderedQty) {
			accurate++
		}
	}

	onTimeRate := 0.5
	if promised > 0 {
		onTimeRate = float64(onTime) / float64(promised)
	}
	accuracyRate := float64(accurate) / float64(len(records))

	wOnTime, wAccuracy := c.OnTimeWeight, c.AccuracyWeight
	if wOnTime+wAccuracy <= 0 {
		wOnTime, wAccuracy = 0.5, 0.5
	}
	score := 100 * (onTimeRate*wOnTime + accuracyRate*wAccuracy) / (wOnTime + wAccuracy)

	metrics := ReliabilityMetrics{
		OnTimeRate:   onTimeRate,
		AccuracyRate: accuracyRate,
		SampleSize:   len(records),
		Score:        score,
	}
	explanation := fmt.Sprintf("%.0f%% on-time and %.0f%% accurate across %d deliveries",
		onTimeRate*100, accuracyRate*100, len(records))
	return metrics, CriterionScore{Score: score, Explanation: explanation}
}
