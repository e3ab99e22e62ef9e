// Package trends classifies recent metric series as increasing, decreasing
// or stable and attaches a variance-based confidence. It is the
// deterministic core behind the parent dashboard's predictive panels.
package trends

import (
	"math"
	"time"
)

// Direction is the classified movement of a metric series.
type Direction string

const (
	Increasing Direction = "increasing"
	Decreasing Direction = "decreasing"
	Stable     Direction = "stable"
)

// AnalysisType labels which panel a prediction feeds.
type AnalysisType string

const (
	PerformanceTrend      AnalysisType = "performance_trend"
	EngagementPrediction  AnalysisType = "engagement_prediction"
	DifficultyProgression AnalysisType = "difficulty_progression"
)

// Prediction is one trend verdict with its supporting context.
type Prediction struct {
	ChildID         string
	Type            AnalysisType
	Trend           Direction
	Confidence      float64 // 0-1
	Timeframe       string  // 1_month, 2_weeks...
	Factors         []string
	Recommendations []string
	CreatedAt       time.Time
}

// minSamples is the series length below which the default prediction is
// returned instead of a computed one.
const minSamples = 3

// Classify compares the mean of the second half of the series against the
// first half. A relative change beyond ±10% moves the verdict off stable.
func Classify(values []float64) Direction {
	if len(values) < 2 {
		return Stable
	}
	mid := len(values) / 2
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])

	change := (secondAvg - firstAvg) / firstAvg
	switch {
	case change > 0.1:
		return Increasing
	case change < -0.1:
		return Decreasing
	default:
		return Stable
	}
}

// Confidence maps the series' dispersion to [0.1, 0.9]: the lower the
// standard deviation relative to the mean, the higher the confidence.
// Short series get the floor value 0.3.
func Confidence(values []float64) float64 {
	if len(values) < minSamples {
		return 0.3
	}
	m := mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	variance /= float64(len(values))
	stdDev := math.Sqrt(variance)

	return math.Max(0.1, math.Min(0.9, 1-stdDev/m))
}

// AnalyzePerformance produces the performance verdict for one child from
// its recent metric values, oldest first.
func AnalyzePerformance(childID string, values []float64) Prediction {
	if len(values) < minSamples {
		return defaultPrediction(childID, PerformanceTrend)
	}

	trend := Classify(values)
	p := Prediction{
		ChildID:    childID,
		Type:       PerformanceTrend,
		Trend:      trend,
		Confidence: Confidence(values),
		Timeframe:  "1_month",
		CreatedAt:  time.Now(),
	}

	switch trend {
	case Increasing:
		p.Recommendations = []string{
			"Maintenir les activités actuelles qui fonctionnent bien",
			"Augmenter progressivement la difficulté",
		}
	case Decreasing:
		p.Recommendations = []string{
			"Revoir les méthodes d'apprentissage",
			"Réduire temporairement la difficulté",
		}
	default:
		p.Recommendations = []string{
			"Introduire de nouvelles activités pour stimuler l'intérêt",
		}
	}
	return p
}

// AnalyzeEngagement compares the current engagement level against the mean
// of the five most recent history values. ±10% around that mean is stable.
func AnalyzeEngagement(childID string, history []float64, current float64) Prediction {
	if len(history) == 0 {
		return defaultPrediction(childID, EngagementPrediction)
	}

	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentAvg := mean(recent)
	if current == 0 {
		current = recentAvg
	}

	trend := Stable
	switch {
	case current > recentAvg*1.1:
		trend = Increasing
	case current < recentAvg*0.9:
		trend = Decreasing
	}

	p := Prediction{
		ChildID:    childID,
		Type:       EngagementPrediction,
		Trend:      trend,
		Confidence: Confidence(history),
		Timeframe:  "2_weeks",
		CreatedAt:  time.Now(),
	}
	switch trend {
	case Increasing:
		p.Recommendations = []string{
			"Maintenir les activités qui suscitent l'engagement",
			"Introduire de nouveaux défis progressifs",
		}
	case Decreasing:
		p.Recommendations = []string{
			"Revoir les méthodes d'apprentissage",
			"Augmenter les interactions avec Bubix",
		}
	}
	return p
}

// AnalyzeDifficulty looks at the five most recent scores (oldest first)
// and decides whether the child is ready for harder or easier content.
func AnalyzeDifficulty(childID string, scores []float64) Prediction {
	if len(scores) < 5 {
		return Prediction{
			ChildID:         childID,
			Type:            DifficultyProgression,
			Trend:           Stable,
			Confidence:      0.3,
			Timeframe:       "1_month",
			Factors:         []string{"Données insuffisantes"},
			Recommendations: []string{"Continuer à collecter des données"},
			CreatedAt:       time.Now(),
		}
	}

	recent := scores[len(scores)-5:]
	avg := mean(recent)

	p := Prediction{
		ChildID:    childID,
		Type:       DifficultyProgression,
		Trend:      Stable,
		Confidence: 0.6,
		Timeframe:  "1_month",
		CreatedAt:  time.Now(),
	}
	switch {
	case avg > 80:
		p.Trend = Increasing
		p.Confidence = 0.8
		p.Factors = []string{"Scores élevés récents"}
		p.Recommendations = []string{"Augmenter progressivement la difficulté"}
	case avg < 60:
		p.Trend = Decreasing
		p.Confidence = 0.7
		p.Factors = []string{"Scores en baisse"}
		p.Recommendations = []string{"Réduire temporairement la difficulté"}
	}
	return p
}

func defaultPrediction(childID string, t AnalysisType) Prediction {
	timeframe := "1_month"
	if t == EngagementPrediction {
		timeframe = "2_weeks"
	}
	return Prediction{
		ChildID:         childID,
		Type:            t,
		Trend:           Stable,
		Confidence:      0.3,
		Timeframe:       timeframe,
		Factors:         []string{"Données insuffisantes"},
		Recommendations: []string{"Continuer à collecter des données pour des prédictions plus précises"},
		CreatedAt:       time.Now(),
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
