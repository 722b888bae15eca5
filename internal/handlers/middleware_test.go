package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"skillswap-web/internal/session"
)

func TestGate_AnonymousRedirectsToLogin(t *testing.T) {
	e := newEnv(t)

	rec := e.get(t, "/my-skills", nil)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") {
		t.Errorf("location: got %q", loc)
	}
	// The protected page body must not leak.
	if strings.Contains(rec.Body.String(), "My skills") {
		t.Error("protected content rendered before the gate resolved")
	}
}

func TestGate_ExpiredTokenClearsSession(t *testing.T) {
	e := newEnv(t)
	sess := session.New(makeToken(t, time.Now().Add(-time.Minute)), 1, "alice", false)
	if err := e.store.Create(context.Background(), sess); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cookie := &http.Cookie{Name: "skillswap_session", Value: sess.ID}

	rec := e.get(t, "/my-skills", cookie)

	if rec.Code != http.StatusSeeOther || !strings.HasPrefix(rec.Header().Get("Location"), "/login") {
		t.Fatalf("expected login redirect, got %d %s", rec.Code, rec.Header().Get("Location"))
	}
	// Detecting the expired token also cleared the stored session.
	if _, err := e.store.Get(context.Background(), sess.ID); err != session.ErrNotFound {
		t.Errorf("expired session should be deleted, got %v", err)
	}
}

func TestGate_MalformedTokenClearsSession(t *testing.T) {
	e := newEnv(t)
	sess := session.New("not-a-jwt", 1, "alice", false)
	if err := e.store.Create(context.Background(), sess); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cookie := &http.Cookie{Name: "skillswap_session", Value: sess.ID}

	rec := e.get(t, "/profile", cookie)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if _, err := e.store.Get(context.Background(), sess.ID); err != session.ErrNotFound {
		t.Errorf("malformed-token session should be deleted, got %v", err)
	}
}

func TestGate_DanglingCookie(t *testing.T) {
	e := newEnv(t)
	cookie := &http.Cookie{Name: "skillswap_session", Value: "no-such-session"}

	rec := e.get(t, "/my-skills", cookie)
	if rec.Code != http.StatusSeeOther || !strings.HasPrefix(rec.Header().Get("Location"), "/login") {
		t.Errorf("expected login redirect, got %d", rec.Code)
	}
}

// Restoration is idempotent: the same cookie resolves to the same
// session on every request.
func TestGate_RestoreIdempotent(t *testing.T) {
	e := newEnv(t)
	cookie := e.loginAs(t, 5, "carol", false)

	for i := 0; i < 2; i++ {
		rec := e.get(t, "/profile", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "carol") {
			t.Errorf("request %d: expected session username in page", i)
		}
	}
}

func TestAdminGate_NonAdminRedirectsHome(t *testing.T) {
	e := newEnv(t)
	cookie := e.loginAs(t, 1, "alice", false)

	rec := e.get(t, "/admin", cookie)

	// Authenticated but not admin: home, not login.
	wantRedirect(t, rec, "/")
}

func TestAdminGate_AnonymousRedirects(t *testing.T) {
	e := newEnv(t)
	rec := e.get(t, "/admin", nil)
	wantRedirect(t, rec, "/")
}

func TestAdminGate_AdminPasses(t *testing.T) {
	e := newEnv(t)
	cookie := e.loginAs(t, 9, "root", true)

	rec := e.get(t, "/admin", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pending skills") {
		t.Error("expected admin dashboard content")
	}
}

func TestCatchAll_RedirectsHome(t *testing.T) {
	e := newEnv(t)
	rec := e.get(t, "/definitely/not/a/page", nil)
	wantRedirect(t, rec, "/")
}
