package trends

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Direction
	}{
		{"rising", []float64{50, 55, 70, 80}, Increasing},
		{"falling", []float64{80, 75, 55, 50}, Decreasing},
		{"flat", []float64{70, 71, 69, 70}, Stable},
		{"small change stays stable", []float64{100, 100, 105, 105}, Stable},
		{"single value", []float64{42}, Stable},
		{"empty", nil, Stable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.values); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.values, got, tt.want)
			}
		})
	}
}

func TestConfidenceBounds(t *testing.T) {
	if got := Confidence([]float64{50, 60}); got != 0.3 {
		t.Errorf("short series confidence = %v, want 0.3", got)
	}

	steady := Confidence([]float64{70, 70, 70, 70})
	if steady != 0.9 {
		t.Errorf("zero-variance series must hit the 0.9 ceiling, got %v", steady)
	}

	noisy := Confidence([]float64{10, 90, 10, 90})
	if noisy < 0.1 || noisy > steady {
		t.Errorf("noisy series confidence %v must stay in [0.1, %v]", noisy, steady)
	}
}

func TestAnalyzePerformanceDefaultsWithFewSamples(t *testing.T) {
	got := AnalyzePerformance("child-1", []float64{80, 85})

	if got.Trend != Stable || got.Confidence != 0.3 {
		t.Errorf("with <3 samples, want stable/0.3, got %s/%v", got.Trend, got.Confidence)
	}
	if len(got.Factors) != 1 || got.Factors[0] != "Données insuffisantes" {
		t.Errorf("default prediction must flag missing data, got %v", got.Factors)
	}
}

func TestAnalyzePerformanceRecommendationsFollowTrend(t *testing.T) {
	up := AnalyzePerformance("child-1", []float64{50, 55, 75, 80})
	if up.Trend != Increasing {
		t.Fatalf("trend = %s, want increasing", up.Trend)
	}
	if up.Recommendations[1] != "Augmenter progressivement la difficulté" {
		t.Errorf("rising trend recommendations = %v", up.Recommendations)
	}

	down := AnalyzePerformance("child-1", []float64{80, 75, 55, 50})
	if down.Trend != Decreasing {
		t.Fatalf("trend = %s, want decreasing", down.Trend)
	}
	if down.Recommendations[0] != "Revoir les méthodes d'apprentissage" {
		t.Errorf("falling trend recommendations = %v", down.Recommendations)
	}
}

func TestAnalyzeEngagement(t *testing.T) {
	history := []float64{2.0, 2.0, 2.0, 2.0, 2.0}

	if got := AnalyzeEngagement("c", history, 2.5); got.Trend != Increasing {
		t.Errorf("current 2.5 vs avg 2.0 must be increasing, got %s", got.Trend)
	}
	if got := AnalyzeEngagement("c", history, 1.5); got.Trend != Decreasing {
		t.Errorf("current 1.5 vs avg 2.0 must be decreasing, got %s", got.Trend)
	}
	if got := AnalyzeEngagement("c", history, 2.1); got.Trend != Stable {
		t.Errorf("within ±10%% must be stable, got %s", got.Trend)
	}
	if got := AnalyzeEngagement("c", nil, 2.5); got.Trend != Stable || got.Confidence != 0.3 {
		t.Errorf("no history must yield the default prediction, got %+v", got)
	}
}

func TestAnalyzeEngagementZeroCurrentFallsBackToAverage(t *testing.T) {
	got := AnalyzeEngagement("c", []float64{2.0, 2.0, 2.0}, 0)
	if got.Trend != Stable {
		t.Errorf("missing current value must compare the average to itself, got %s", got.Trend)
	}
}

func TestAnalyzeDifficulty(t *testing.T) {
	high := AnalyzeDifficulty("c", []float64{85, 90, 88, 92, 86})
	if high.Trend != Increasing || high.Confidence != 0.8 {
		t.Errorf("avg > 80 must be increasing/0.8, got %s/%v", high.Trend, high.Confidence)
	}

	low := AnalyzeDifficulty("c", []float64{55, 50, 58, 52, 54})
	if low.Trend != Decreasing || low.Confidence != 0.7 {
		t.Errorf("avg < 60 must be decreasing/0.7, got %s/%v", low.Trend, low.Confidence)
	}

	mid := AnalyzeDifficulty("c", []float64{70, 72, 68, 71, 69})
	if mid.Trend != Stable || mid.Confidence != 0.6 {
		t.Errorf("avg in [60,80] must be stable/0.6, got %s/%v", mid.Trend, mid.Confidence)
	}

	few := AnalyzeDifficulty("c", []float64{90, 90})
	if few.Trend != Stable || few.Confidence != 0.3 {
		t.Errorf("<5 scores must yield the insufficient-data verdict, got %+v", few)
	}

	// Only the last five scores count.
	windowed := AnalyzeDifficulty("c", []float64{10, 10, 10, 85, 90, 88, 92, 86})
	if windowed.Trend != Increasing {
		t.Errorf("old scores must not drag the verdict down, got %s", windowed.Trend)
	}
}

func TestConfidenceIsSymmetricAroundMean(t *testing.T) {
	a := Confidence([]float64{60, 80, 60, 80})
	b := Confidence([]float64{80, 60, 80, 60})
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("confidence must not depend on order: %v vs %v", a, b)
	}
}
