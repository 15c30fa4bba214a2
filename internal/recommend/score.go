package recommend

// Direction tells the normalizer whether small raw values are desirable
// (price, lead time) or large ones are (reliability, trend).
type Direction int

const (
	LowerIsBetter Direction = iota
	HigherIsBetter
)

// CriterionScore is the tagged outcome of one criterion calculation. When the
// underlying history was too thin to compute anything, Insufficient is set and
// Score holds the neutral midpoint so aggregation still sees all four criteria.
type CriterionScore struct {
	Score        float64 `json:"score"`
	Explanation  string  `json:"explanation"`
	Insufficient bool    `json:"insufficient,omitempty"`
}

const neutralScore = 50.0

// NormalizeScores min-max scales values into [0,100] across the candidate set.
// The best-in-set value maps to exactly 100 and the worst to exactly 0. When
// every value is identical (including a single candidate) there is no basis to
// differentiate, so every candidate scores 100.
func NormalizeScores(values []float64, direction Direction) []float64 {
	if len(values) == 0 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	scores := make([]float64, len(values))
	if max == min {
		for i := range scores {
			scores[i] = 100
		}
		return scores
	}
	span := max - min
	for i, v := range values {
		if direction == LowerIsBetter {
			scores[i] = 100 * (max - v) / span
		} else {
			scores[i] = 100 * (v - min) / span
		}
	}
	return scores
}
