package retriever

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cubeai/bubix/internal/store"
)

type fakeProfiles struct {
	store.ProfileRepo
	children map[string][]store.Profile
	err      error
}

func (f *fakeProfiles) ChildrenOf(_ context.Context, accountID string) ([]store.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.children[accountID], nil
}

type fakeActivities struct {
	store.ActivityRepo
	byUser map[string][]store.Activity
	err    error
}

func (f *fakeActivities) RecentByUser(_ context.Context, userID string, limit int) ([]store.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := f.byUser[userID]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func child(id, first string) store.Profile {
	return store.Profile{ID: id, FirstName: first, LastName: "Martin", UserType: "CHILD"}
}

func activities(domainScores ...any) []store.Activity {
	out := make([]store.Activity, 0, len(domainScores)/2)
	for i := 0; i < len(domainScores); i += 2 {
		out = append(out, store.Activity{
			Domain: domainScores[i].(string),
			Score:  domainScores[i+1].(int),
		})
	}
	return out
}

func TestChildContextAggregates(t *testing.T) {
	r := New(&fakeProfiles{}, &fakeActivities{byUser: map[string][]store.Activity{
		"emma": activities("maths", 85, "maths", 95, "français", 60),
	}})

	got := r.GetChildContext(context.Background(), "emma")

	if got.ActivityCount != 3 {
		t.Errorf("ActivityCount = %d, want 3", got.ActivityCount)
	}
	if got.AverageScore != 80 {
		t.Errorf("AverageScore = %d, want 80", got.AverageScore)
	}
	if want := "maths (85/100), maths (95/100), français (60/100)"; got.RecentActivitiesSummary != want {
		t.Errorf("RecentActivitiesSummary = %q, want %q", got.RecentActivitiesSummary, want)
	}
	if len(got.Strengths) != 1 || got.Strengths[0] != "maths" {
		t.Errorf("Strengths = %v, want [maths]", got.Strengths)
	}
	if len(got.Weaknesses) != 1 || got.Weaknesses[0] != "français" {
		t.Errorf("Weaknesses = %v, want [français]", got.Weaknesses)
	}
}

func TestChildContextMiddleBandDomainInNeitherList(t *testing.T) {
	r := New(&fakeProfiles{}, &fakeActivities{byUser: map[string][]store.Activity{
		"emma": activities("sciences", 75, "sciences", 74),
	}})

	got := r.GetChildContext(context.Background(), "emma")
	if len(got.Strengths) != 0 || len(got.Weaknesses) != 0 {
		t.Errorf("domain mean 75 must be in neither list, got strengths=%v weaknesses=%v",
			got.Strengths, got.Weaknesses)
	}
}

func TestChildContextNoData(t *testing.T) {
	r := New(&fakeProfiles{}, &fakeActivities{byUser: map[string][]store.Activity{}})

	got := r.GetChildContext(context.Background(), "ghost")
	if got.ActivityCount != 0 || got.AverageScore != 0 {
		t.Errorf("empty child must aggregate to zero, got %+v", got)
	}
	if got.RecentActivitiesSummary != "Aucune activité récente" {
		t.Errorf("RecentActivitiesSummary = %q", got.RecentActivitiesSummary)
	}
	if got.Strengths == nil || got.Weaknesses == nil {
		t.Error("strength/weakness slices must be empty, not nil")
	}
}

func TestChildContextLookupFailureNeutralized(t *testing.T) {
	r := New(&fakeProfiles{}, &fakeActivities{err: errors.New("db locked")})

	got := r.GetChildContext(context.Background(), "emma")
	if got.ActivityCount != 0 || got.AverageScore != 0 {
		t.Errorf("lookup failure must resolve to empty context, got %+v", got)
	}
}

func TestParentContextInsightsAndRecommendations(t *testing.T) {
	profiles := &fakeProfiles{children: map[string][]store.Profile{
		"acc-1": {child("emma", "Emma"), child("lucas", "Lucas")},
	}}
	acts := &fakeActivities{byUser: map[string][]store.Activity{
		"emma":  activities("maths", 95, "maths", 95),
		"lucas": activities("maths", 60, "français", 60),
	}}
	r := New(profiles, acts)

	got := r.GetParentContext(context.Background(), "acc-1")

	if len(got.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(got.Children))
	}
	want := "Vos 2 enfants ont réalisé 4 activités au total. Score moyen global : 78/100. Emma Martin a les meilleures performances avec 95/100."
	if got.Insights != want {
		t.Errorf("Insights = %q\nwant %q", got.Insights, want)
	}

	if len(got.Recommendations) != 2 {
		t.Fatalf("Recommendations = %v, want one per child", got.Recommendations)
	}
	if !strings.Contains(got.Recommendations[0], "Emma Martin est prêt pour des défis plus difficiles") {
		t.Errorf("first recommendation = %q", got.Recommendations[0])
	}
	if !strings.Contains(got.Recommendations[1], "Lucas Martin pourrait bénéficier d'un soutien supplémentaire") {
		t.Errorf("second recommendation = %q", got.Recommendations[1])
	}
}

func TestParentContextComfortBandProducesNoRecommendation(t *testing.T) {
	profiles := &fakeProfiles{children: map[string][]store.Profile{
		"acc-1": {child("emma", "Emma")},
	}}
	acts := &fakeActivities{byUser: map[string][]store.Activity{
		"emma": activities("maths", 80),
	}}

	got := New(profiles, acts).GetParentContext(context.Background(), "acc-1")
	if len(got.Recommendations) != 0 {
		t.Errorf("average 80 must produce no recommendation, got %v", got.Recommendations)
	}
}

func TestParentContextBestChildTieKeepsFirst(t *testing.T) {
	profiles := &fakeProfiles{children: map[string][]store.Profile{
		"acc-1": {child("emma", "Emma"), child("lucas", "Lucas")},
	}}
	acts := &fakeActivities{byUser: map[string][]store.Activity{
		"emma":  activities("maths", 85),
		"lucas": activities("maths", 85),
	}}

	got := New(profiles, acts).GetParentContext(context.Background(), "acc-1")
	if !strings.Contains(got.Insights, "Emma Martin a les meilleures performances") {
		t.Errorf("tie must keep the first child, got %q", got.Insights)
	}
}

func TestParentContextNoChildren(t *testing.T) {
	got := New(&fakeProfiles{children: map[string][]store.Profile{}}, &fakeActivities{}).
		GetParentContext(context.Background(), "acc-1")

	if got.Insights != "Aucun enfant enregistré." {
		t.Errorf("Insights = %q", got.Insights)
	}
	if len(got.Children) != 0 || len(got.Recommendations) != 0 {
		t.Errorf("expected empty aggregates, got %+v", got)
	}
}

func TestParentContextProfileLookupFailureNeutralized(t *testing.T) {
	got := New(&fakeProfiles{err: errors.New("db gone")}, &fakeActivities{}).
		GetParentContext(context.Background(), "acc-1")

	if got.Insights != "Aucun enfant enregistré." {
		t.Errorf("lookup failure must resolve to the empty family context, got %q", got.Insights)
	}
}
