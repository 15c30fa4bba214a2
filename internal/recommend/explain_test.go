package recommend

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceExplanation(t *testing.T) {
	cheapest := decimal.RequireFromString("8.50")
	if got := PriceExplanation(cheapest, cheapest, 3); got != "Lowest price among 3 candidates" {
		t.Fatalf("got=%q", got)
	}
	got := PriceExplanation(decimal.RequireFromString("10.00"), cheapest, 3)
	if !strings.Contains(got, "more expensive than the cheapest option") {
		t.Fatalf("got=%q", got)
	}
	if !strings.Contains(got, "17.6%") {
		t.Fatalf("got=%q want 17.6%% premium", got)
	}
}

func TestLeadTimeExplanation(t *testing.T) {
	if got := LeadTimeExplanation(3, 3, 3); !strings.Contains(got, "Shortest lead time") {
		t.Fatalf("got=%q", got)
	}
	got := LeadTimeExplanation(7, 3, 3)
	if !strings.Contains(got, "4 days slower") {
		t.Fatalf("got=%q", got)
	}
}

func TestBuildExplanation_NamesVerbatim(t *testing.T) {
	top := Suggestion{
		SupplierName: "Acme Industrial Supply",
		Breakdown: Breakdown{
			Price:       CriterionScore{Score: 100},
			LeadTime:    CriterionScore{Score: 95},
			Reliability: CriterionScore{Score: 60},
			Trend:       CriterionScore{Score: 50},
		},
	}
	got := BuildExplanation("M8 Hex Bolt", top)
	if !strings.Contains(got, "Acme Industrial Supply") {
		t.Fatalf("explanation %q missing supplier name", got)
	}
	if !strings.Contains(got, "M8 Hex Bolt") {
		t.Fatalf("explanation %q missing product name", got)
	}
	// Price and lead time are within 10 points, so both are cited.
	if !strings.Contains(got, "competitive pricing") || !strings.Contains(got, "short lead time") {
		t.Fatalf("explanation %q missing dominant criteria", got)
	}
}

func TestBuildExplanation_SingleDominantCriterion(t *testing.T) {
	top := Suggestion{
		SupplierName: "Borealis Metals",
		Breakdown: Breakdown{
			Price:       CriterionScore{Score: 40},
			LeadTime:    CriterionScore{Score: 30},
			Reliability: CriterionScore{Score: 98},
			Trend:       CriterionScore{Score: 45},
		},
	}
	got := BuildExplanation("Copper Tube", top)
	if !strings.Contains(got, "dependable delivery record") {
		t.Fatalf("explanation %q should cite reliability", got)
	}
	if strings.Contains(got, " and ") {
		t.Fatalf("explanation %q should cite a single criterion", got)
	}
}

func TestNoComparisonExplanation(t *testing.T) {
	got := NoComparisonExplanation("Copper Tube", "Borealis Metals")
	if !strings.Contains(got, "Borealis Metals") || !strings.Contains(got, "Copper Tube") {
		t.Fatalf("got=%q", got)
	}
	if !strings.Contains(got, "no comparison possible") {
		t.Fatalf("got=%q", got)
	}
}
