// Package intent classifies free-text user messages into discrete prompt
// types using an ordered keyword rule table.
package intent

import "strings"

// PromptType is the discrete category describing the purpose of a message.
type PromptType string

const (
	LearningDifficulty     PromptType = "LEARNING_DIFFICULTY"
	ConnectionStatus       PromptType = "CONNECTION_STATUS"
	PerformanceQuery       PromptType = "PERFORMANCE_QUERY"
	TimeQuery              PromptType = "TIME_QUERY"
	RecommendationRequest  PromptType = "RECOMMENDATION_REQUEST"
	ProgressUpdate         PromptType = "PROGRESS_UPDATE"
	ParentWishes           PromptType = "PARENT_WISHES"
	CareerPlanning         PromptType = "CAREER_PLANNING"
	WeaknessIdentification PromptType = "WEAKNESS_IDENTIFICATION"
	ImprovementGoals       PromptType = "IMPROVEMENT_GOALS"
	SpecificNeeds          PromptType = "SPECIFIC_NEEDS"
	LearningPreferences    PromptType = "LEARNING_PREFERENCES"
	LearningObjectives     PromptType = "LEARNING_OBJECTIVES"
	ParentConcerns         PromptType = "PARENT_CONCERNS"
	StrengthIdentification PromptType = "STRENGTH_IDENTIFICATION"
	PersonalityInsights    PromptType = "PERSONALITY_INSIGHTS"
	GeneralQuery           PromptType = "GENERAL_QUERY"
)

// rule binds a keyword set to a category.
type rule struct {
	keywords []string
	category PromptType
}

// rules is evaluated top to bottom; the first rule with any keyword
// contained in the lowercased text wins. Keywords overlap across categories
// ("amélioration" appears under both ProgressUpdate and ImprovementGoals),
// so the declaration order is part of the contract and must not change.
var rules = []rule{
	{[]string{"difficulté", "problème", "aide"}, LearningDifficulty},
	{[]string{"connecté", "en ligne", "actuellement"}, ConnectionStatus},
	{[]string{"score", "performance", "meilleur"}, PerformanceQuery},
	{[]string{"temps", "durée", "depuis"}, TimeQuery},
	{[]string{"recommand", "conseil", "suggestion"}, RecommendationRequest},
	{[]string{"progrès", "amélioration", "évolution"}, ProgressUpdate},
	{[]string{"souhait", "vouloir", "aimerait", "espère"}, ParentWishes},
	{[]string{"plan", "carrière", "avenir", "orientation"}, CareerPlanning},
	{[]string{"lacune", "faiblesse", "point faible", "manque"}, WeaknessIdentification},
	{[]string{"amélioration", "développer", "renforcer", "travailler"}, ImprovementGoals},
	{[]string{"besoin", "nécessite", "requiert", "demande"}, SpecificNeeds},
	{[]string{"préférence", "style", "méthode", "approche"}, LearningPreferences},
	{[]string{"objectif", "but", "cible", "ambition"}, LearningObjectives},
	{[]string{"inquiétude", "inquiet", "préoccupation", "souci"}, ParentConcerns},
	{[]string{"force", "talent", "don", "aptitude"}, StrengthIdentification},
	{[]string{"personnalité", "caractère", "comportement", "attitude"}, PersonalityInsights},
}

// Classify maps free text to a prompt type. Pure function; unmatched text
// resolves to GeneralQuery, never an error.
func Classify(text string) PromptType {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.category
			}
		}
	}
	return GeneralQuery
}

// All returns every category the classifier can produce, in rule order,
// with GeneralQuery last.
func All() []PromptType {
	out := make([]PromptType, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, GeneralQuery)
}
