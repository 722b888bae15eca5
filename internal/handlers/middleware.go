package handlers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"skillswap-web/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// currentSession returns the resolved session, or nil when anonymous.
func currentSession(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey).(*session.Session)
	return sess
}

// LoadSession resolves the session cookie before any handler runs:
// cookie -> store lookup -> token expiry check, in that order. An
// expired or dangling record is deleted and the cookie cleared, so the
// request proceeds anonymous rather than half-authenticated. Protected
// handlers only ever run after this resolution completes.
func (s *Server) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.Cookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := s.Sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if err != session.ErrNotFound {
				log.Printf("session lookup: %v", err)
			}
			s.clearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		if session.TokenExpired(sess.Token, time.Now()) {
			if err := s.Sessions.Delete(r.Context(), sess.ID); err != nil {
				log.Printf("session delete: %v", err)
			}
			s.clearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects anonymous requests to the login page, keeping
// the requested path so login can return there.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if currentSession(r) == nil {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin sends authenticated non-admins home, not to login.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(r)
		if sess == nil || !sess.IsAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware guards the credential forms against hammering.
// onLimit renders the refusal; the credential pages re-render their own
// form with a message rather than answering JSON to a browser.
func RateLimitMiddleware(limiter *rate.Limiter, onLimit http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				onLimit(w, r)
				return
			}
			next(w, r)
		}
	}
}

func (s *Server) setCookie(w http.ResponseWriter, sessionID string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Cookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
