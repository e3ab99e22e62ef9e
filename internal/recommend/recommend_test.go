package recommend

import (
	"strings"
	"testing"

	"github.com/cubeai/bubix/internal/store"
)

func findByID(recs []Recommendation, id string) *Recommendation {
	for i := range recs {
		if recs[i].ID == id {
			return &recs[i]
		}
	}
	return nil
}

func TestEmptyContextProducesNothing(t *testing.T) {
	recs := Generate(Context{})
	if len(recs) != 0 {
		t.Errorf("empty context must produce no recommendations, got %d", len(recs))
	}
}

func TestPreferencePass(t *testing.T) {
	recs := Generate(Context{
		Preferences: &store.Preferences{
			FocusAreas:        []string{"concentration", "lecture"},
			Concerns:          []string{"temps d'écran"},
			MotivationFactors: []string{"badges"},
		},
	})

	if got := findByID(recs, "focus_concentration"); got == nil || got.Priority != PriorityHigh {
		t.Errorf("focus area must yield a high-priority recommendation, got %+v", got)
	}
	if got := findByID(recs, "focus_lecture"); got == nil {
		t.Error("each focus area must yield its own recommendation")
	}
	if got := findByID(recs, "concern_temps_d'écran"); got == nil || got.Type != TypeBehavioralStrategy {
		t.Errorf("concern must yield a behavioral strategy, got %+v", got)
	}
	if got := findByID(recs, "motivation_strategy"); got == nil || got.Priority != PriorityMedium {
		t.Errorf("motivation factors must yield a medium-priority tactic, got %+v", got)
	}
}

func TestPerformancePassThresholds(t *testing.T) {
	recs := Generate(Context{
		Sessions: []Session{
			{CompletionRate: 60, Breaks: 5},
			{CompletionRate: 65, Breaks: 4},
		},
	})

	completion := findByID(recs, "completion_rate_improvement")
	if completion == nil || completion.Priority != PriorityHigh {
		t.Errorf("completion < 70 must yield high priority, got %+v", completion)
	}
	if !strings.Contains(completion.Rationale, "62.5%") {
		t.Errorf("rationale must carry the computed rate, got %q", completion.Rationale)
	}
	if breaks := findByID(recs, "break_optimization"); breaks == nil || breaks.Priority != PriorityMedium {
		t.Errorf("breaks > 3 must yield medium priority, got %+v", breaks)
	}
}

func TestPerformancePassHealthySessionsQuiet(t *testing.T) {
	recs := Generate(Context{
		Sessions: []Session{{CompletionRate: 90, Breaks: 1}},
	})
	if len(recs) != 0 {
		t.Errorf("healthy sessions must produce nothing, got %v", recs)
	}
}

func TestPerformancePassUsesFiveMostRecent(t *testing.T) {
	// Five healthy recent sessions hide an older run of bad ones.
	sessions := []Session{
		{CompletionRate: 90}, {CompletionRate: 90}, {CompletionRate: 90},
		{CompletionRate: 90}, {CompletionRate: 90},
		{CompletionRate: 10}, {CompletionRate: 10},
	}
	recs := Generate(Context{Sessions: sessions})
	if findByID(recs, "completion_rate_improvement") != nil {
		t.Error("only the five most recent sessions must be averaged")
	}
}

func TestBehavioralPass(t *testing.T) {
	recs := Generate(Context{
		BehavioralValues: []float64{0.3, 0.4},
		Conversation:     &ConversationStats{AverageEngagement: 1.5},
	})

	if got := findByID(recs, "conversation_engagement_boost"); got == nil || got.Priority != PriorityHigh {
		t.Errorf("engagement < 2.0 must yield high priority, got %+v", got)
	}
	if got := findByID(recs, "behavioral_improvement"); got == nil || got.Priority != PriorityMedium {
		t.Errorf("behavioral mean < 0.5 must yield medium priority, got %+v", got)
	}
}

func TestEngagementPassTopTopicAndDiversification(t *testing.T) {
	recs := Generate(Context{
		Conversation: &ConversationStats{
			AverageEngagement: 2.5,
			Topics: []TopicCount{
				{Topic: "maths", Count: 4},
				{Topic: "espace", Count: 4},
			},
		},
	})

	top := findByID(recs, "topic_expansion")
	if top == nil {
		t.Fatal("top topic must yield an expansion recommendation")
	}
	if top.RelatedData["favoriteTopic"] != "maths" {
		t.Errorf("ties must keep the first-encountered topic, got %v", top.RelatedData["favoriteTopic"])
	}
	if div := findByID(recs, "topic_diversification"); div == nil || div.Priority != PriorityLow {
		t.Errorf("fewer than 3 topics must yield a low-priority diversification, got %+v", div)
	}
}

func TestEngagementPassThreeTopicsNoDiversification(t *testing.T) {
	recs := Generate(Context{
		Conversation: &ConversationStats{
			AverageEngagement: 2.5,
			Topics: []TopicCount{
				{Topic: "maths", Count: 2},
				{Topic: "espace", Count: 1},
				{Topic: "animaux", Count: 1},
			},
		},
	})
	if findByID(recs, "topic_diversification") != nil {
		t.Error("three distinct topics must not trigger diversification")
	}
}

func TestGenerateSortsByPriorityStably(t *testing.T) {
	recs := Generate(Context{
		Preferences: &store.Preferences{
			FocusAreas:        []string{"lecture"},
			MotivationFactors: []string{"badges"},
		},
		Sessions: []Session{{CompletionRate: 50, Breaks: 5}},
		Conversation: &ConversationStats{
			AverageEngagement: 2.5,
			Topics:            []TopicCount{{Topic: "maths", Count: 1}},
		},
	})

	for i := 1; i < len(recs); i++ {
		if priorityRank[recs[i-1].Priority] < priorityRank[recs[i].Priority] {
			t.Fatalf("priorities out of order at %d: %s then %s", i, recs[i-1].Priority, recs[i].Priority)
		}
	}

	// Equal priorities keep generation order: preference pass runs before
	// the performance pass.
	var mediums []string
	for _, r := range recs {
		if r.Priority == PriorityMedium {
			mediums = append(mediums, r.ID)
		}
	}
	want := []string{"motivation_strategy", "break_optimization", "topic_expansion"}
	if len(mediums) != len(want) {
		t.Fatalf("mediums = %v, want %v", mediums, want)
	}
	for i := range want {
		if mediums[i] != want[i] {
			t.Errorf("stable sort broken: mediums = %v, want %v", mediums, want)
			break
		}
	}
}

func TestSummaryCounts(t *testing.T) {
	recs := []Recommendation{
		{Priority: PriorityHigh}, {Priority: PriorityHigh},
		{Priority: PriorityMedium},
		{Priority: PriorityLow},
	}
	want := "Résumé des recommandations: 2 haute priorité, 1 priorité moyenne, 1 priorité faible. Total: 4 recommandations générées."
	if got := Summary(recs); got != want {
		t.Errorf("Summary = %q\nwant %q", got, want)
	}
}
