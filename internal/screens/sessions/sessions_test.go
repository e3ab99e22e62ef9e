package sessions

import (
	"strings"
	"testing"

	"github.com/cubeai/bubix/internal/session"
)

func TestViewEmptyStore(t *testing.T) {
	scr := New(session.NewMemoryStore())
	view := scr.View(80, 20)
	if !strings.Contains(view, "Aucune session active.") {
		t.Errorf("empty store view = %q", view)
	}
}

func TestViewListsActiveSessions(t *testing.T) {
	store := session.NewMemoryStore()
	store.Track(session.User{ID: "emma", FirstName: "Emma", UserType: "child"})
	store.Track(session.User{ID: "marie", FirstName: "Marie", UserType: "parent"})

	view := New(store).View(100, 20)

	if !strings.Contains(view, "Sessions actives (2)") {
		t.Error("view must show the session count")
	}
	for _, want := range []string{"Emma", "Marie", "child_emma", "parent_marie"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
