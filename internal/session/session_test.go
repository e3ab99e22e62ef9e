package session

import (
	"sync"
	"testing"
	"time"
)

func TestTrackAssignsRoleScopedID(t *testing.T) {
	s := NewMemoryStore()

	id := s.Track(User{ID: "u1", FirstName: "Emma", UserType: "CHILD"})
	if id != "CHILD_u1" {
		t.Errorf("session id = %q, want CHILD_u1", id)
	}
}

func TestTrackSameUserRefreshesInsteadOfDuplicating(t *testing.T) {
	s := NewMemoryStore()
	times := []time.Time{
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	s.now = func() time.Time { t := times[i]; i++; return t }

	s.Track(User{ID: "u1", UserType: "CHILD"})
	s.Track(User{ID: "u1", UserType: "CHILD"})

	active := s.Active()
	if len(active) != 1 {
		t.Fatalf("got %d sessions, want 1", len(active))
	}
	if !active[0].ConnectedAt.Equal(times[0]) {
		t.Errorf("ConnectedAt must keep the first connection time")
	}
	if !active[0].LastActivity.Equal(times[1]) {
		t.Errorf("LastActivity must be refreshed")
	}
}

func TestActiveKeepsConnectionOrder(t *testing.T) {
	s := NewMemoryStore()
	s.Track(User{ID: "p1", FirstName: "Marie", UserType: "PARENT"})
	s.Track(User{ID: "u1", FirstName: "Emma", UserType: "CHILD"})

	active := s.Active()
	if len(active) != 2 || active[0].User.FirstName != "Marie" || active[1].User.FirstName != "Emma" {
		t.Errorf("unexpected order: %+v", active)
	}
}

func TestEndRemovesSession(t *testing.T) {
	s := NewMemoryStore()
	id := s.Track(User{ID: "u1", UserType: "CHILD"})
	s.End(id)

	if len(s.Active()) != 0 {
		t.Error("ended session must not appear as active")
	}
}

func TestTouchUnknownSessionIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.Touch("CHILD_ghost")
	if len(s.Active()) != 0 {
		t.Error("touching a missing session must not create one")
	}
}

func TestConcurrentTracking(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Track(User{ID: string(rune('a' + n%5)), UserType: "CHILD"})
			s.Touch("CHILD_a")
		}(i)
	}
	wg.Wait()

	if got := len(s.Active()); got != 5 {
		t.Errorf("got %d sessions, want 5 distinct users", got)
	}
}
