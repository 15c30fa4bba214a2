package recommend

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeScores_LowerIsBetter(t *testing.T) {
	scores := NormalizeScores([]float64{10.00, 8.50, 12.00}, LowerIsBetter)
	want := []float64{100 * 2 / 3.5, 100, 0}
	for i := range want {
		if !almostEqual(scores[i], want[i]) {
			t.Fatalf("scores[%d]=%v want=%v", i, scores[i], want[i])
		}
	}
}

func TestNormalizeScores_LeadTimes(t *testing.T) {
	scores := NormalizeScores([]float64{5, 7, 3}, LowerIsBetter)
	want := []float64{50, 0, 100}
	for i := range want {
		if !almostEqual(scores[i], want[i]) {
			t.Fatalf("scores[%d]=%v want=%v", i, scores[i], want[i])
		}
	}
}

func TestNormalizeScores_HigherIsBetter(t *testing.T) {
	scores := NormalizeScores([]float64{20, 80, 50}, HigherIsBetter)
	if scores[0] != 0 {
		t.Fatalf("min value score=%v want=0", scores[0])
	}
	if scores[1] != 100 {
		t.Fatalf("max value score=%v want=100", scores[1])
	}
	if scores[2] != 50 {
		t.Fatalf("mid value score=%v want=50", scores[2])
	}
}

func TestNormalizeScores_AllTied(t *testing.T) {
	for _, dir := range []Direction{LowerIsBetter, HigherIsBetter} {
		scores := NormalizeScores([]float64{7, 7, 7}, dir)
		for i, s := range scores {
			if s != 100 {
				t.Fatalf("dir=%v scores[%d]=%v want=100", dir, i, s)
			}
		}
	}
}

func TestNormalizeScores_SingleValue(t *testing.T) {
	scores := NormalizeScores([]float64{42}, LowerIsBetter)
	if len(scores) != 1 || scores[0] != 100 {
		t.Fatalf("scores=%v want=[100]", scores)
	}
}

func TestNormalizeScores_Empty(t *testing.T) {
	if scores := NormalizeScores(nil, LowerIsBetter); scores != nil {
		t.Fatalf("scores=%v want=nil", scores)
	}
}

func TestNormalizeScores_BoundsWithDistinctValues(t *testing.T) {
	values := []float64{3, 9, 4, 8, 1, 6}
	for _, dir := range []Direction{LowerIsBetter, HigherIsBetter} {
		scores := NormalizeScores(values, dir)
		var sawZero, sawHundred bool
		for _, s := range scores {
			if s < 0 || s > 100 {
				t.Fatalf("score %v out of [0,100]", s)
			}
			sawZero = sawZero || s == 0
			sawHundred = sawHundred || s == 100
		}
		if !sawZero || !sawHundred {
			t.Fatalf("dir=%v expected both 0 and 100 in %v", dir, scores)
		}
	}
}
