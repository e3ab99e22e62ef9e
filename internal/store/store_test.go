package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	if err := repo.CreateAccount(ctx, AccountInfo{ID: "acc-1", Email: "p@example.com", SubscriptionType: "FREE"}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	age := 8
	if err := repo.CreateProfile(ctx, Profile{
		ID: "child-1", AccountID: "acc-1", FirstName: "Emma", LastName: "Martin",
		UserType: "CHILD", Age: &age,
	}); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if err := repo.CreateProfile(ctx, Profile{
		ID: "parent-1", AccountID: "acc-1", FirstName: "Marie", LastName: "Martin",
		UserType: "PARENT",
	}); err != nil {
		t.Fatalf("create parent: %v", err)
	}

	got, err := repo.Get(ctx, "child-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.FirstName != "Emma" || got.Age == nil || *got.Age != 8 {
		t.Errorf("unexpected profile: %+v", got)
	}

	children, err := repo.ChildrenOf(ctx, "acc-1")
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	if len(children) != 1 || children[0].ID != "child-1" {
		t.Errorf("ChildrenOf must return only CHILD profiles, got %+v", children)
	}
}

func TestGetMissingProfileReturnsNil(t *testing.T) {
	s := openTestStore(t)
	got, err := s.ProfileRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing profile, got %+v", got)
	}
}

func TestActivityRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ActivityRepo()

	base := time.Now().Add(-24 * time.Hour)
	for i := range 12 {
		err := repo.Append(ctx, Activity{
			UserID:    "child-1",
			Domain:    "maths",
			NodeKey:   "n",
			Score:     50 + i,
			Attempts:  1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentByUser(ctx, "child-1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d rows, want 10", len(got))
	}
	if got[0].Score != 61 {
		t.Errorf("first row must be the newest, got score %d", got[0].Score)
	}
}

func TestParentPromptSequenceIncreases(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.PromptRepo()

	for i := range 3 {
		err := repo.AppendParentPrompt(ctx, ParentPromptData{
			ParentID:   "parent-1",
			AccountID:  "acc-1",
			Content:    "question",
			AIResponse: "réponse",
			PromptType: "GENERAL_QUERY",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := repo.RecentByAccount(ctx, "acc-1", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Sequence <= rows[i].Sequence {
			t.Errorf("rows not in descending sequence order: %d then %d", rows[i-1].Sequence, rows[i].Sequence)
		}
	}
	if rows[0].Status != "PROCESSED" {
		t.Errorf("default status = %q, want PROCESSED", rows[0].Status)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "chat-turn",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  `{"system":"..."}`,
		ResponseBody: `{"text":"..."}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "chat-turn" || got.ResponseBody != `{"text":"..."}` {
		t.Errorf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	rows := []LLMRequestEventData{
		{Provider: "mock", Model: "m1", Purpose: "chat-turn", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "m1", Purpose: "chat-turn", InputTokens: 300, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "m2", Purpose: "welcome", InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: true},
	}
	for i, row := range rows {
		if err := repo.AppendLLMRequest(ctx, row); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]PurposeUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	chatUsage := usage["chat-turn"]
	if chatUsage.Calls != 2 || chatUsage.InputTokens != 400 || chatUsage.OutputTokens != 100 {
		t.Errorf("chat-turn usage = %+v", chatUsage)
	}
	if chatUsage.AvgLatencyMs != 300 {
		t.Errorf("chat-turn avg latency = %d, want 300", chatUsage.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := map[string]ModelUsage{}
	for _, u := range byModel {
		models[u.Model] = u
	}
	if models["m1"].Calls != 2 || models["m2"].InputTokens != 50 {
		t.Errorf("model usage = %+v", models)
	}
}

func TestAllProfilesOldestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	if err := repo.CreateAccount(ctx, AccountInfo{ID: "acc-all", Email: "a@example.com", SubscriptionType: "FREE"}); err != nil {
		t.Fatalf("create account: %v", err)
	}
	for _, id := range []string{"p1", "p2", "p3"} {
		err := repo.CreateProfile(ctx, Profile{
			ID: id, AccountID: "acc-all", FirstName: "N", LastName: "M", UserType: "PARENT",
		})
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("got %d profiles, want at least 3", len(rows))
	}
}
