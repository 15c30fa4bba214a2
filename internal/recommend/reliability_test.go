package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"procurehub/internal/models"
)

func mkDelivery(promised, actual *time.Time, ordered, delivered int64) models.DeliveryRecord {
	return models.DeliveryRecord{
		PromisedDate: promised,
		ActualDate:   actual,
		OrderedQty:   decimal.NewFromInt(ordered),
		DeliveredQty: decimal.NewFromInt(delivered),
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestReliability_NoHistory(t *testing.T) {
	calc := ReliabilityCalculator{OnTimeWeight: 0.5, AccuracyWeight: 0.5}
	metrics, score := calc.Compute(nil)
	if metrics.SampleSize != 0 {
		t.Fatalf("sample=%d want=0", metrics.SampleSize)
	}
	if metrics.Score != 50 || score.Score != 50 {
		t.Fatalf("score=%v/%v want=50", metrics.Score, score.Score)
	}
	if !score.Insufficient {
		t.Fatalf("expected insufficient-data outcome")
	}
	if !strings.Contains(score.Explanation, "No delivery history") {
		t.Fatalf("explanation=%q", score.Explanation)
	}
}

func TestReliability_Rates(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.DeliveryRecord{
		// On time, accurate.
		mkDelivery(timePtr(base), timePtr(base.Add(-24*time.Hour)), 100, 100),
		// Late, accurate.
		mkDelivery(timePtr(base), timePtr(base.Add(48*time.Hour)), 100, 100),
		// On time, short-shipped.
		mkDelivery(timePtr(base), timePtr(base), 100, 90),
		// No promised date, accurate: excluded from the on-time denominator.
		mkDelivery(nil, timePtr(base), 100, 100),
	}
	calc := ReliabilityCalculator{OnTimeWeight: 0.5, AccuracyWeight: 0.5}
	metrics, score := calc.Compute(records)
	if metrics.SampleSize != 4 {
		t.Fatalf("sample=%d want=4", metrics.SampleSize)
	}
	if !almostEqual(metrics.OnTimeRate, 2.0/3.0) {
		t.Fatalf("on-time=%v want=%v", metrics.OnTimeRate, 2.0/3.0)
	}
	if !almostEqual(metrics.AccuracyRate, 0.75) {
		t.Fatalf("accuracy=%v want=0.75", metrics.AccuracyRate)
	}
	want := 100 * (2.0/3.0*0.5 + 0.75*0.5)
	if !almostEqual(metrics.Score, want) || !almostEqual(score.Score, want) {
		t.Fatalf("score=%v want=%v", metrics.Score, want)
	}
	if score.Insufficient {
		t.Fatalf("unexpected insufficient outcome with %d records", len(records))
	}
}

func TestReliability_PromisedNeverDeliveredCountsLate(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.DeliveryRecord{
		mkDelivery(timePtr(base), nil, 10, 10),
	}
	calc := ReliabilityCalculator{}
	metrics, _ := calc.Compute(records)
	if metrics.OnTimeRate != 0 {
		t.Fatalf("on-time=%v want=0", metrics.OnTimeRate)
	}
}

func TestReliability_WeightBlend(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.DeliveryRecord{
		// On time but inaccurate.
		mkDelivery(timePtr(base), timePtr(base), 10, 9),
	}
	calc := ReliabilityCalculator{OnTimeWeight: 1, AccuracyWeight: 0}
	metrics, _ := calc.Compute(records)
	if metrics.Score != 100 {
		t.Fatalf("score=%v want=100 with accuracy weight 0", metrics.Score)
	}
}
