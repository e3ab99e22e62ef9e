// Package retriever computes the per-child and per-family activity
// aggregates injected into chat prompts.
//
// Data absence is never an error here: lookups that fail or return nothing
// resolve to zero-valued aggregates and explicit "no data" strings, so a
// chat turn always has a context block to work with.
package retriever

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cubeai/bubix/internal/store"
)

const (
	// childRecentLimit bounds the activity window for a single child.
	childRecentLimit = 10
	// parentChildLimit bounds the per-child window on the parent path.
	parentChildLimit = 20

	// Per-domain mean thresholds. Domains in [weakBelow, strongFrom) land
	// in neither list.
	strongFrom = 80
	weakBelow  = 70

	// Per-child average thresholds for the templated parent recommendations.
	supportBelow    = 70
	challengesAbove = 90

	noRecentActivities = "Aucune activité récente"
)

// ChildContext aggregates one child's recent activity.
type ChildContext struct {
	ChildID                 string
	ActivityCount           int
	AverageScore            int
	RecentActivitiesSummary string
	Strengths               []string
	Weaknesses              []string
}

// ChildSummary is a child profile with its aggregates, for the parent path.
type ChildSummary struct {
	Profile store.Profile
	ChildContext
}

// ParentContext aggregates across all children of an account.
type ParentContext struct {
	Children        []ChildSummary
	Insights        string
	Recommendations []string
}

// Retriever reads activity and profile data through the store interfaces.
type Retriever struct {
	profiles   store.ProfileRepo
	activities store.ActivityRepo
}

// New creates a Retriever.
func New(profiles store.ProfileRepo, activities store.ActivityRepo) *Retriever {
	return &Retriever{profiles: profiles, activities: activities}
}

// GetChildContext aggregates the most recent activities of one child.
// Lookup failures resolve to an empty context, never an error.
func (r *Retriever) GetChildContext(ctx context.Context, childID string) ChildContext {
	return r.childContext(ctx, childID, childRecentLimit)
}

// GetParentContext aggregates across every child of an account, adds a
// natural-language insights summary and one templated recommendation
// sentence per child whose average falls outside [70, 90].
func (r *Retriever) GetParentContext(ctx context.Context, accountID string) ParentContext {
	children, err := r.profiles.ChildrenOf(ctx, accountID)
	if err != nil || len(children) == 0 {
		return ParentContext{
			Children:        []ChildSummary{},
			Insights:        "Aucun enfant enregistré.",
			Recommendations: []string{},
		}
	}

	summaries := make([]ChildSummary, 0, len(children))
	for _, child := range children {
		summaries = append(summaries, ChildSummary{
			Profile:      child,
			ChildContext: r.childContext(ctx, child.ID, parentChildLimit),
		})
	}

	return ParentContext{
		Children:        summaries,
		Insights:        buildInsights(summaries),
		Recommendations: buildRecommendations(summaries),
	}
}

func (r *Retriever) childContext(ctx context.Context, childID string, limit int) ChildContext {
	activities, err := r.activities.RecentByUser(ctx, childID, limit)
	if err != nil {
		activities = nil
	}

	out := ChildContext{
		ChildID:                 childID,
		ActivityCount:           len(activities),
		Strengths:               []string{},
		Weaknesses:              []string{},
		RecentActivitiesSummary: noRecentActivities,
	}
	if len(activities) == 0 {
		return out
	}

	total := 0
	for _, a := range activities {
		total += a.Score
	}
	out.AverageScore = roundedMean(total, len(activities))
	out.RecentActivitiesSummary = summarizeRecent(activities)
	out.Strengths, out.Weaknesses = domainBreakdown(activities)
	return out
}

// summarizeRecent renders the three newest activities as "domain (score/100)".
func summarizeRecent(activities []store.Activity) string {
	n := min(len(activities), 3)
	parts := make([]string, 0, n)
	for _, a := range activities[:n] {
		parts = append(parts, fmt.Sprintf("%s (%d/100)", a.Domain, a.Score))
	}
	return strings.Join(parts, ", ")
}

// domainBreakdown groups activities by domain and splits domains into
// strengths (mean >= 80) and weaknesses (mean < 70) in first-encountered
// order. Domains in between appear in neither list.
func domainBreakdown(activities []store.Activity) (strengths, weaknesses []string) {
	strengths, weaknesses = []string{}, []string{}

	var order []string
	totals := map[string]int{}
	counts := map[string]int{}
	for _, a := range activities {
		if _, seen := counts[a.Domain]; !seen {
			order = append(order, a.Domain)
		}
		totals[a.Domain] += a.Score
		counts[a.Domain]++
	}

	for _, domain := range order {
		mean := roundedMean(totals[domain], counts[domain])
		switch {
		case mean >= strongFrom:
			strengths = append(strengths, domain)
		case mean < weakBelow:
			weaknesses = append(weaknesses, domain)
		}
	}
	return strengths, weaknesses
}

// buildInsights produces the family summary sentence: total activities,
// mean of per-child averages, and the best-performing child (ties resolve
// to the first-encountered child).
func buildInsights(children []ChildSummary) string {
	totalActivities := 0
	sumAverages := 0
	best := children[0]
	for _, c := range children {
		totalActivities += c.ActivityCount
		sumAverages += c.AverageScore
		if c.AverageScore > best.AverageScore {
			best = c
		}
	}
	globalAverage := roundedMean(sumAverages, len(children))

	plural := ""
	if len(children) > 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"Vos %d enfant%s ont réalisé %d activités au total. Score moyen global : %d/100. %s a les meilleures performances avec %d/100.",
		len(children), plural, totalActivities, globalAverage, fullName(best.Profile), best.AverageScore,
	)
}

// buildRecommendations emits one sentence per child outside the [70, 90]
// comfort band. Children inside it produce nothing.
func buildRecommendations(children []ChildSummary) []string {
	out := []string{}
	for _, c := range children {
		switch {
		case c.AverageScore < supportBelow:
			out = append(out, fmt.Sprintf("%s pourrait bénéficier d'un soutien supplémentaire.", fullName(c.Profile)))
		case c.AverageScore > challengesAbove:
			out = append(out, fmt.Sprintf("%s est prêt pour des défis plus difficiles.", fullName(c.Profile)))
		}
	}
	return out
}

func fullName(p store.Profile) string {
	return p.FirstName + " " + p.LastName
}

func roundedMean(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
