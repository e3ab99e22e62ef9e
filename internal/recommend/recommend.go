// Package recommend turns aggregated performance, behavioral and
// preference data into prioritized, human-readable recommendations.
// Four independent generator passes run over the same context; their
// outputs are concatenated and stably sorted by priority, so equal
// priorities keep generation order.
package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cubeai/bubix/internal/store"
)

// Type categorizes what kind of action a recommendation proposes.
type Type string

const (
	TypeLearningActivity     Type = "learning_activity"
	TypeBehavioralStrategy   Type = "behavioral_strategy"
	TypeEngagementTactic     Type = "engagement_tactic"
	TypeDifficultyAdjustment Type = "difficulty_adjustment"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Recommendation is one derived suggestion. Recommendations are produced
// fresh on every run and never persisted here.
type Recommendation struct {
	ID                  string
	Type                Type
	Priority            Priority
	Title               string
	Description         string
	Rationale           string
	ExpectedOutcome     string
	ImplementationSteps []string
	EstimatedDuration   string
	Prerequisites       []string
	RelatedData         map[string]any
	CreatedAt           time.Time
}

// Session is one recent learning session's aggregates.
type Session struct {
	CompletionRate float64 // percent, 0-100
	Breaks         int
}

// TopicCount is one discussed topic with its frequency, in
// first-encountered order so tie-breaks are deterministic.
type TopicCount struct {
	Topic string
	Count int
}

// ConversationStats aggregates a child's chat interactions.
type ConversationStats struct {
	AverageEngagement float64 // 0-3
	Topics            []TopicCount
}

// Context bundles everything the generator passes read. Any field may be
// empty or nil; a pass missing its input contributes nothing.
type Context struct {
	ChildSettings    *store.ChildSettings
	Preferences      *store.Preferences
	Sessions         []Session // newest first
	BehavioralValues []float64 // newest first, 0-1
	Conversation     *ConversationStats
}

// recentWindow is how many sessions or metric values each pass averages.
const recentWindow = 5

// Generate runs all four passes and returns the prioritized result.
func Generate(ctx Context) []Recommendation {
	now := time.Now()
	var recs []Recommendation
	recs = append(recs, preferencePass(ctx, now)...)
	recs = append(recs, performancePass(ctx, now)...)
	recs = append(recs, behavioralPass(ctx, now)...)
	recs = append(recs, engagementPass(ctx, now)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank[recs[i].Priority] > priorityRank[recs[j].Priority]
	})
	return recs
}

// Summary renders the one-line count breakdown shown above the list.
func Summary(recs []Recommendation) string {
	var high, medium, low int
	for _, r := range recs {
		switch r.Priority {
		case PriorityHigh:
			high++
		case PriorityMedium:
			medium++
		case PriorityLow:
			low++
		}
	}
	return fmt.Sprintf(
		"Résumé des recommandations: %d haute priorité, %d priorité moyenne, %d priorité faible. Total: %d recommandations générées.",
		high, medium, low, len(recs))
}

// preferencePass emits one HIGH recommendation per declared focus area and
// per declared concern, plus one MEDIUM when motivation factors exist.
func preferencePass(ctx Context, now time.Time) []Recommendation {
	prefs := ctx.Preferences
	if prefs == nil {
		return nil
	}

	var recs []Recommendation
	for _, area := range prefs.FocusAreas {
		recs = append(recs, Recommendation{
			ID:              "focus_" + slug(area),
			Type:            TypeLearningActivity,
			Priority:        PriorityHigh,
			Title:           fmt.Sprintf("Activités ciblées pour %s", area),
			Description:     fmt.Sprintf("Développer des activités spécifiques pour améliorer %s", area),
			Rationale:       fmt.Sprintf("Les parents ont identifié %s comme une zone de focus prioritaire", area),
			ExpectedOutcome: fmt.Sprintf("Amélioration mesurable dans le domaine %s", area),
			ImplementationSteps: []string{
				fmt.Sprintf("Créer des exercices spécifiques pour %s", area),
				"Programmer des sessions régulières dédiées",
				"Suivre les progrès avec des métriques spécifiques",
			},
			EstimatedDuration: "2-4 semaines",
			Prerequisites:     []string{"Accès aux activités personnalisées"},
			RelatedData:       map[string]any{"focusArea": area},
			CreatedAt:         now,
		})
	}

	for _, concern := range prefs.Concerns {
		recs = append(recs, Recommendation{
			ID:              "concern_" + slug(concern),
			Type:            TypeBehavioralStrategy,
			Priority:        PriorityHigh,
			Title:           fmt.Sprintf("Stratégie pour %s", concern),
			Description:     fmt.Sprintf("Implémenter des stratégies spécifiques pour adresser %s", concern),
			Rationale:       fmt.Sprintf("Les parents ont exprimé une préoccupation concernant %s", concern),
			ExpectedOutcome: fmt.Sprintf("Réduction ou élimination de %s", concern),
			ImplementationSteps: []string{
				fmt.Sprintf("Analyser les causes de %s", concern),
				"Mettre en place des stratégies d'intervention",
				"Monitorer les améliorations",
			},
			EstimatedDuration: "3-6 semaines",
			Prerequisites:     []string{"Support parental actif"},
			RelatedData:       map[string]any{"concern": concern},
			CreatedAt:         now,
		})
	}

	if len(prefs.MotivationFactors) > 0 {
		recs = append(recs, Recommendation{
			ID:              "motivation_strategy",
			Type:            TypeEngagementTactic,
			Priority:        PriorityMedium,
			Title:           "Optimisation des facteurs de motivation",
			Description:     fmt.Sprintf("Utiliser %s pour maximiser l'engagement", strings.Join(prefs.MotivationFactors, ", ")),
			Rationale:       "Les parents ont identifié des facteurs de motivation spécifiques",
			ExpectedOutcome: "Augmentation de l'engagement et de la motivation",
			ImplementationSteps: []string{
				"Intégrer les facteurs de motivation dans les activités",
				"Créer un système de récompenses personnalisé",
				"Adapter le contenu aux préférences de motivation",
			},
			EstimatedDuration: "1-2 semaines",
			Prerequisites:     []string{"Système de récompenses configuré"},
			RelatedData:       map[string]any{"motivationFactors": prefs.MotivationFactors},
			CreatedAt:         now,
		})
	}

	return recs
}

// performancePass checks completion rate and break counts over the five
// most recent sessions. It needs at least one session.
func performancePass(ctx Context, now time.Time) []Recommendation {
	sessions := ctx.Sessions
	if len(sessions) == 0 {
		return nil
	}
	if len(sessions) > recentWindow {
		sessions = sessions[:recentWindow]
	}

	var completionSum float64
	breakSum := 0
	for _, s := range sessions {
		completionSum += s.CompletionRate
		breakSum += s.Breaks
	}
	avgCompletion := completionSum / float64(len(sessions))
	avgBreaks := float64(breakSum) / float64(len(sessions))

	var recs []Recommendation
	if avgCompletion < 70 {
		recs = append(recs, Recommendation{
			ID:              "completion_rate_improvement",
			Type:            TypeLearningActivity,
			Priority:        PriorityHigh,
			Title:           "Améliorer le taux de completion des sessions",
			Description:     "Implémenter des stratégies pour augmenter le taux de completion",
			Rationale:       fmt.Sprintf("Le taux de completion actuel (%.1f%%) est en dessous du seuil optimal", avgCompletion),
			ExpectedOutcome: "Augmentation du taux de completion à 80%+",
			ImplementationSteps: []string{
				"Réduire la durée des sessions",
				"Augmenter la fréquence des pauses",
				"Adapter la difficulté au niveau de l'enfant",
			},
			EstimatedDuration: "2-3 semaines",
			Prerequisites:     []string{"Données de session disponibles"},
			RelatedData:       map[string]any{"currentCompletionRate": avgCompletion},
			CreatedAt:         now,
		})
	}

	if avgBreaks > 3 {
		recs = append(recs, Recommendation{
			ID:              "break_optimization",
			Type:            TypeBehavioralStrategy,
			Priority:        PriorityMedium,
			Title:           "Optimiser la gestion des pauses",
			Description:     "Réduire le nombre de pauses tout en maintenant l'efficacité",
			Rationale:       fmt.Sprintf("Le nombre moyen de pauses (%.1f) est élevé", avgBreaks),
			ExpectedOutcome: "Réduction des pauses avec maintien de la concentration",
			ImplementationSteps: []string{
				"Analyser les moments de pause",
				"Implémenter des techniques de concentration",
				"Adapter la durée des sessions",
			},
			EstimatedDuration: "1-2 semaines",
			Prerequisites:     []string{"Techniques de concentration disponibles"},
			RelatedData:       map[string]any{"averageBreaks": avgBreaks},
			CreatedAt:         now,
		})
	}

	return recs
}

// behavioralPass checks conversational engagement (0-3 scale) and the mean
// of the five most recent behavioral metric values.
func behavioralPass(ctx Context, now time.Time) []Recommendation {
	var recs []Recommendation

	if conv := ctx.Conversation; conv != nil && conv.AverageEngagement < 2.0 {
		recs = append(recs, Recommendation{
			ID:              "conversation_engagement_boost",
			Type:            TypeEngagementTactic,
			Priority:        PriorityHigh,
			Title:           "Améliorer l'engagement conversationnel",
			Description:     "Augmenter l'interaction et l'engagement avec Bubix",
			Rationale:       fmt.Sprintf("L'engagement conversationnel (%.1f/3) est faible", conv.AverageEngagement),
			ExpectedOutcome: "Augmentation de l'engagement à 2.5+/3",
			ImplementationSteps: []string{
				"Encourager plus d'interactions avec Bubix",
				"Poser des questions ouvertes",
				"Utiliser des sujets d'intérêt de l'enfant",
			},
			EstimatedDuration: "1-2 semaines",
			Prerequisites:     []string{"Accès au chat Bubix"},
			RelatedData:       map[string]any{"currentEngagement": conv.AverageEngagement},
			CreatedAt:         now,
		})
	}

	if len(ctx.BehavioralValues) > 0 {
		values := ctx.BehavioralValues
		if len(values) > recentWindow {
			values = values[:recentWindow]
		}
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		if avg := sum / float64(len(values)); avg < 0.5 {
			recs = append(recs, Recommendation{
				ID:              "behavioral_improvement",
				Type:            TypeBehavioralStrategy,
				Priority:        PriorityMedium,
				Title:           "Améliorer les métriques comportementales",
				Description:     "Optimiser les comportements d'apprentissage",
				Rationale:       "Les métriques comportementales sont en dessous du seuil optimal",
				ExpectedOutcome: "Amélioration des métriques comportementales",
				ImplementationSteps: []string{
					"Identifier les comportements à améliorer",
					"Implémenter des stratégies comportementales",
					"Monitorer les progrès",
				},
				EstimatedDuration: "2-4 semaines",
				Prerequisites:     []string{"Données comportementales disponibles"},
				RelatedData:       map[string]any{"currentMetrics": avg},
				CreatedAt:         now,
			})
		}
	}

	return recs
}

// engagementPass deepens the single most-discussed topic and suggests
// diversification when fewer than three distinct topics were discussed.
func engagementPass(ctx Context, now time.Time) []Recommendation {
	conv := ctx.Conversation
	if conv == nil {
		return nil
	}

	var recs []Recommendation
	if top, ok := topTopic(conv.Topics); ok {
		recs = append(recs, Recommendation{
			ID:              "topic_expansion",
			Type:            TypeLearningActivity,
			Priority:        PriorityMedium,
			Title:           fmt.Sprintf("Explorer davantage %s", top.Topic),
			Description:     fmt.Sprintf("Développer des activités autour du sujet préféré: %s", top.Topic),
			Rationale:       fmt.Sprintf("%s est le sujet le plus discuté (%d fois)", top.Topic, top.Count),
			ExpectedOutcome: "Augmentation de l'engagement et de la motivation",
			ImplementationSteps: []string{
				fmt.Sprintf("Créer des activités spécialisées en %s", top.Topic),
				"Proposer des défis progressifs",
				"Connecter avec d'autres domaines d'apprentissage",
			},
			EstimatedDuration: "1-2 semaines",
			Prerequisites:     []string{"Contenu spécialisé disponible"},
			RelatedData:       map[string]any{"favoriteTopic": top.Topic, "frequency": top.Count},
			CreatedAt:         now,
		})
	}

	if len(conv.Topics) < 3 {
		topics := make([]string, 0, len(conv.Topics))
		for _, t := range conv.Topics {
			topics = append(topics, t.Topic)
		}
		recs = append(recs, Recommendation{
			ID:              "topic_diversification",
			Type:            TypeEngagementTactic,
			Priority:        PriorityLow,
			Title:           "Diversifier les sujets d'intérêt",
			Description:     "Introduire de nouveaux sujets pour élargir les horizons",
			Rationale:       "Peu de sujets différents sont explorés",
			ExpectedOutcome: "Élargissement des centres d'intérêt",
			ImplementationSteps: []string{
				"Introduire progressivement de nouveaux sujets",
				"Connecter avec les intérêts existants",
				"Encourager l'exploration",
			},
			EstimatedDuration: "2-3 semaines",
			Prerequisites:     []string{"Contenu diversifié disponible"},
			RelatedData:       map[string]any{"currentTopics": topics},
			CreatedAt:         now,
		})
	}

	return recs
}

// topTopic returns the most frequent topic; ties keep first-encountered.
func topTopic(topics []TopicCount) (TopicCount, bool) {
	if len(topics) == 0 {
		return TopicCount{}, false
	}
	best := topics[0]
	for _, t := range topics[1:] {
		if t.Count > best.Count {
			best = t
		}
	}
	return best, true
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
