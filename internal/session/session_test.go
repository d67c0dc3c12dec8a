package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ocean-explorer/backend/internal/gamification"
)

func TestManagerReturnsSameSession(t *testing.T) {
	m := NewManager(nil)

	first := m.Get("abc")
	second := m.Get("abc")
	if first != second {
		t.Error("same id must resolve to the same session")
	}
	if m.Get("other") == first {
		t.Error("distinct ids must not share a session")
	}
}

func TestMiddlewareAttachesSession(t *testing.T) {
	m := NewManager(nil)

	var got *Session
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromRequest(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
	req.Header.Set(HeaderName, "abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil {
		t.Fatal("no session in request context")
	}
	if got.ID != "abc" {
		t.Errorf("session id = %s, want abc", got.ID)
	}
	if rec.Header().Get(HeaderName) != "abc" {
		t.Errorf("response header = %s, want abc", rec.Header().Get(HeaderName))
	}
}

func TestMiddlewareMintsMissingID(t *testing.T) {
	m := NewManager(nil)

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	id := rec.Header().Get(HeaderName)
	if id == "" {
		t.Fatal("no session id minted")
	}
	if m.Get(id) == nil {
		t.Error("minted id does not resolve to a session")
	}
}

func TestSnapshotReflectsGamification(t *testing.T) {
	m := NewManager(nil)
	s := m.Get("abc")

	s.Gamification.Dispatch(gamification.AddExperience{Amount: 2500})
	s.Gamification.Dispatch(gamification.CompleteChallenge{ChallengeID: gamification.ChallengeFirstQuiz})

	snap := s.Snapshot()
	if snap.Experience != 3000 {
		t.Errorf("experience = %d, want 3000", snap.Experience)
	}
	if snap.Level != 4 {
		t.Errorf("level = %d, want 4", snap.Level)
	}
	if len(snap.CompletedChallenges) != 1 || snap.CompletedChallenges[0] != gamification.ChallengeFirstQuiz {
		t.Errorf("completed challenges = %v", snap.CompletedChallenges)
	}
}
