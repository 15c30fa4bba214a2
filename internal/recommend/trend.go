package recommend

import (
	"fmt"
	"math"

	"procurehub/internal/models"
)

// trendSensitivity controls how fast the tanh squash saturates: a price that
// moves 1/trendSensitivity of its mean over the window lands about 76% of the
// way toward the score cap.
const trendSensitivity = 3.0

// stableBandPct: projected moves smaller than this fraction of the mean price
// are described as stable in explanations. Scoring itself stays continuous.
const stableBandPct = 0.01

type TrendAnalyzer struct {
	WindowDays int
	MinPoints  int
}

// Compute fits an ordinary-least-squares line through the price series and
// maps the relative slope onto [0,100]. Falling prices score above the neutral
// midpoint, rising prices below it; the mapping is continuous and monotonic in
// slope so suppliers with different trend strengths stay distinguishable.
// Fewer than MinPoints observations yield the neutral midpoint.
func (a TrendAnalyzer) Compute(points []models.PricePoint) CriterionScore {
	minPoints := a.MinPoints
	if minPoints <= 0 {
		minPoints = 3
	}
	if len(points) < minPoints {
		return CriterionScore{
			Score:        neutralScore,
			Explanation:  fmt.Sprintf("Insufficient price history (%d of %d points); neutral trend assumed", len(points), minPoints),
			Insufficient: true,
		}
	}

	// x in days since the first observation, y the observed price.
	t0 := points[0].RecordedAt
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		x := p.RecordedAt.Sub(t0).Hours() / 24
		y, _ := p.Price.Float64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	meanY := sumY / n
	denom := n*sumXX - sumX*sumX
	if denom == 0 || meanY == 0 {
		// All points share one timestamp, or prices average to zero.
		return CriterionScore{
			Score:        neutralScore,
			Explanation:  "Price history carries no usable trend; neutral trend assumed",
			Insufficient: true,
		}
	}
	slope := (n*sumXY - sumX*sumY) / denom

	windowDays := a.WindowDays
	if windowDays <= 0 {
		windowDays = 180
	}
	// Projected relative change over the full window, as a fraction of the
	// mean price. Positive means the price is climbing.
	relChange := slope * float64(windowDays) / meanY
	score := neutralScore * (1 - math.Tanh(trendSensitivity*relChange))

	var explanation string
	switch {
	case relChange <= -stableBandPct:
		explanation = fmt.Sprintf("Price trending down ~%.1f%% over %d days", -relChange*100, windowDays)
	case relChange >= stableBandPct:
		explanation = fmt.Sprintf("Price trending up ~%.1f%% over %d days", relChange*100, windowDays)
	default:
		explanation = fmt.Sprintf("Price stable over %d days", windowDays)
	}
	return CriterionScore{Score: score, Explanation: explanation}
}
