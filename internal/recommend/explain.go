package recommend

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PriceExplanation describes a candidate's unit cost relative to the cheapest
// option in the set.
func PriceExplanation(cost, cheapest decimal.Decimal, candidates int) string {
	if cost.Equal(cheapest) {
		return fmt.Sprintf("Lowest price among %d candidates", candidates)
	}
	if cheapest.IsZero() {
		return "More expensive than the cheapest option"
	}
	pct := cost.Sub(cheapest).Div(cheapest).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%% more expensive than the cheapest option", pct.StringFixed(1))
}

// LeadTimeExplanation describes a candidate's lead time relative to the
// fastest option in the set.
func LeadTimeExplanation(days, fastest, candidates int) string {
	if days == fastest {
		return fmt.Sprintf("Shortest lead time (%d days) among %d candidates", days, candidates)
	}
	return fmt.Sprintf("%d days lead time, %d days slower than the fastest option", days, days-fastest)
}

var criterionPhrases = map[string]string{
	"price":       "competitive pricing",
	"lead_time":   "a short lead time",
	"reliability": "a dependable delivery record",
	"trend":       "a favorable price trend",
}

// BuildExplanation turns the winner's breakdown into one sentence that names
// the supplier and the product verbatim, citing the one or two criteria that
// carried the score.
func BuildExplanation(productName string, top Suggestion) string {
	type ranked struct {
		name  string
		score float64
	}
	criteria := []ranked{
		{"price", top.Breakdown.Price.Score},
		{"lead_time", top.Breakdown.LeadTime.Score},
		{"reliability", top.Breakdown.Reliability.Score},
		{"trend", top.Breakdown.Trend.Score},
	}
	sort.SliceStable(criteria, func(i, j int) bool {
		return criteria[i].score > criteria[j].score
	})

	primary := criterionPhrases[criteria[0].name]
	// Mention a second criterion only when it is nearly as strong as the first.
	if criteria[1].score >= criteria[0].score-10 {
		return fmt.Sprintf("%s is recommended for %s based on %s and %s.",
			top.SupplierName, productName, primary, criterionPhrases[criteria[1].name])
	}
	return fmt.Sprintf("%s is recommended for %s based on %s.",
		top.SupplierName, productName, primary)
}

// NoComparisonExplanation is used when a product has a single active supplier
// and a ranking would be meaningless.
func NoComparisonExplanation(productName, supplierName string) string {
	return fmt.Sprintf("%s is the only active supplier for %s; no comparison possible.", supplierName, productName)
}
