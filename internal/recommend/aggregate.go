package recommend

import (
	"fmt"
	"math"
)

const weightTolerance = 0.001

// Weights define the relative importance of the four criteria. They must sum
// to 1.0 within tolerance; the engine never rescales a bad configuration.
type Weights struct {
	Price       float64 `json:"price"`
	LeadTime    float64 `json:"lead_time"`
	Reliability float64 `json:"reliability"`
	Trend       float64 `json:"trend"`
}

func (w Weights) Sum() float64 {
	return w.Price + w.LeadTime + w.Reliability + w.Trend
}

func (w Weights) Validate() error {
	for _, v := range []float64{w.Price, w.LeadTime, w.Reliability, w.Trend} {
		if v < 0 {
			return fmt.Errorf("%w: negative weight %v", ErrInvalidConfig, v)
		}
	}
	if math.Abs(w.Sum()-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, want 1.0", ErrInvalidConfig, w.Sum())
	}
	return nil
}

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type ConfidenceThresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func (t ConfidenceThresholds) Validate() error {
	if t.Low <= 0 || t.High >= 100 || t.Low >= t.High {
		return fmt.Errorf("%w: confidence thresholds low=%.1f high=%.1f, want 0 < low < high < 100", ErrInvalidConfig, t.Low, t.High)
	}
	return nil
}

// Breakdown carries all four criterion outcomes. Every field is populated
// even when a criterion fell back to its neutral midpoint.
type Breakdown struct {
	Price       CriterionScore `json:"price"`
	LeadTime    CriterionScore `json:"lead_time"`
	Reliability CriterionScore `json:"reliability"`
	Trend       CriterionScore `json:"trend"`
}

type Aggregator struct {
	weights    Weights
	thresholds ConfidenceThresholds
}

func NewAggregator(weights Weights, thresholds ConfidenceThresholds) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights, thresholds: thresholds}, nil
}

// Total is the weighted sum of the four sub-scores. With validated weights it
// stays in [0,100].
func (a *Aggregator) Total(b Breakdown) float64 {
	return b.Price.Score*a.weights.Price +
		b.LeadTime.Score*a.weights.LeadTime +
		b.Reliability.Score*a.weights.Reliability +
		b.Trend.Score*a.weights.Trend
}

func (a *Aggregator) Confidence(total float64) Confidence {
	switch {
	case total < a.thresholds.Low:
		return ConfidenceLow
	case total < a.thresholds.High:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}
