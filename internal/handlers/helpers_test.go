package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"skillswap-web/internal/api"
	"skillswap-web/internal/models"
	"skillswap-web/internal/session"
)

// makeToken builds a parseable bearer token with the given expiry. The
// signature never matters: the client only reads the exp claim.
func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// fakeBackend is a programmable stand-in for the SkillSwap API server.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string // "METHOD /path"

	auth        models.AuthResponse
	authErr     string // non-empty -> 401 with this message
	users       []models.User
	skills      []models.Skill
	swaps       map[int64]models.SwapRequest
	feedback    []models.Feedback
	createDelay time.Duration
	created     []models.SkillInput
}

func (fb *fakeBackend) record(r *http.Request) {
	fb.mu.Lock()
	fb.calls = append(fb.calls, r.Method+" "+r.URL.Path)
	fb.mu.Unlock()
}

func (fb *fakeBackend) callCount(call string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, c := range fb.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (fb *fakeBackend) sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (fb *fakeBackend) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			fb.record(req)
			next.ServeHTTP(w, req)
		})
	})

	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		if fb.authErr != "" {
			fb.sendJSON(w, http.StatusUnauthorized, map[string]string{"message": fb.authErr})
			return
		}
		fb.sendJSON(w, http.StatusOK, fb.auth)
	}).Methods("POST")
	r.HandleFunc("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		if fb.authErr != "" {
			fb.sendJSON(w, http.StatusConflict, map[string]string{"message": fb.authErr})
			return
		}
		fb.sendJSON(w, http.StatusCreated, fb.auth)
	}).Methods("POST")

	r.HandleFunc("/users/public", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.users)
	}).Methods("GET")
	r.HandleFunc("/users/profile", func(w http.ResponseWriter, req *http.Request) {
		if len(fb.users) > 0 {
			fb.sendJSON(w, http.StatusOK, fb.users[0])
			return
		}
		fb.sendJSON(w, http.StatusOK, models.User{ID: 1, Username: "tester", Name: "Tester"})
	}).Methods("GET", "PUT")
	r.HandleFunc("/users/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
		for _, u := range fb.users {
			if u.ID == id {
				fb.sendJSON(w, http.StatusOK, u)
				return
			}
		}
		fb.sendJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
	}).Methods("GET")

	r.HandleFunc("/skills/user/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.skills)
	}).Methods("GET")
	r.HandleFunc("/skills/user/{id:[0-9]+}/{kind:offered|wanted}", func(w http.ResponseWriter, req *http.Request) {
		offered := mux.Vars(req)["kind"] == "offered"
		out := []models.Skill{}
		for _, sk := range fb.skills {
			if sk.IsOffered == offered {
				out = append(out, sk)
			}
		}
		fb.sendJSON(w, http.StatusOK, out)
	}).Methods("GET")
	r.HandleFunc("/skills/search", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.skills)
	}).Methods("GET")
	r.HandleFunc("/skills/search/{kind:offered|wanted}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.skills)
	}).Methods("GET")
	r.HandleFunc("/skills", func(w http.ResponseWriter, req *http.Request) {
		var in models.SkillInput
		json.NewDecoder(req.Body).Decode(&in)
		if fb.createDelay > 0 {
			time.Sleep(fb.createDelay)
		}
		fb.mu.Lock()
		fb.created = append(fb.created, in)
		fb.mu.Unlock()
		fb.sendJSON(w, http.StatusCreated, models.Skill{ID: int64(len(fb.created)), Name: in.Name, IsOffered: in.IsOffered})
	}).Methods("POST")
	r.HandleFunc("/skills/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		var in models.SkillInput
		json.NewDecoder(req.Body).Decode(&in)
		id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
		fb.sendJSON(w, http.StatusOK, models.Skill{ID: id, Name: in.Name, Description: in.Description, IsOffered: in.IsOffered})
	}).Methods("PUT", "DELETE")

	r.HandleFunc("/swap-requests", func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPost {
			var in models.SwapRequestInput
			json.NewDecoder(req.Body).Decode(&in)
			created := models.SwapRequest{ID: 100, ProviderID: in.ProviderID, Status: "PENDING", RequestDate: time.Now()}
			fb.sendJSON(w, http.StatusCreated, created)
			return
		}
		fb.sendJSON(w, http.StatusOK, fb.swapList())
	}).Methods("GET", "POST")
	r.HandleFunc("/swap-requests/{box:sent|received}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.swapList())
	}).Methods("GET")
	r.HandleFunc("/swap-requests/status/{status}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.swapList())
	}).Methods("GET")
	r.HandleFunc("/swap-requests/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
		if sr, ok := fb.swaps[id]; ok {
			fb.sendJSON(w, http.StatusOK, sr)
			return
		}
		fb.sendJSON(w, http.StatusNotFound, map[string]string{"message": "Swap request not found"})
	}).Methods("GET")
	r.HandleFunc("/swap-requests/{id:[0-9]+}/{action}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
		sr, ok := fb.swaps[id]
		if !ok {
			fb.sendJSON(w, http.StatusNotFound, map[string]string{"message": "Swap request not found"})
			return
		}
		now := time.Now()
		switch mux.Vars(req)["action"] {
		case "accept":
			sr.Status = "ACCEPTED"
		case "reject":
			sr.Status = "REJECTED"
		case "complete":
			sr.Status = "COMPLETED"
		case "cancel":
			sr.Status = "CANCELLED"
		}
		sr.ResponseDate = &now
		fb.swaps[id] = sr
		fb.sendJSON(w, http.StatusOK, sr)
	}).Methods("PUT")

	r.HandleFunc("/feedback/user/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.feedback)
	}).Methods("GET")
	r.HandleFunc("/feedback/rating/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, nil)
	}).Methods("GET")
	r.HandleFunc("/feedback/swap-request/{id:[0-9]+}", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.feedback)
	}).Methods("GET")
	r.HandleFunc("/feedback", func(w http.ResponseWriter, req *http.Request) {
		var in models.FeedbackInput
		json.NewDecoder(req.Body).Decode(&in)
		fb.sendJSON(w, http.StatusCreated, models.Feedback{ID: 1, Rating: in.Rating, Comment: in.Comment})
	}).Methods("POST")
	r.HandleFunc("/feedback/all", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.feedback)
	}).Methods("GET")

	r.HandleFunc("/skills/pending", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, []models.Skill{})
	}).Methods("GET")
	r.HandleFunc("/swap-requests/all", func(w http.ResponseWriter, req *http.Request) {
		fb.sendJSON(w, http.StatusOK, fb.swapList())
	}).Methods("GET")

	return r
}

func (fb *fakeBackend) swapList() []models.SwapRequest {
	out := []models.SwapRequest{}
	for _, sr := range fb.swaps {
		out = append(out, sr)
	}
	return out
}

// env wires a Server against a fake backend and an in-memory session
// store, exactly as main does minus the listener.
type env struct {
	backend *fakeBackend
	store   *session.MemoryStore
	srv     *Server
	router  *mux.Router
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fb := &fakeBackend{
		auth:  models.AuthResponse{Token: makeToken(t, time.Now().Add(time.Hour)), ID: 1, Username: "alice"},
		swaps: map[int64]models.SwapRequest{},
	}
	backendSrv := httptest.NewServer(fb.router())
	t.Cleanup(backendSrv.Close)

	store := session.NewMemoryStore()
	srv := NewServer(api.NewClient(backendSrv.URL, 5*time.Second), store, "skillswap_session", time.Hour)
	return &env{
		backend: fb,
		store:   store,
		srv:     srv,
		router:  srv.Routes(rate.NewLimiter(rate.Every(time.Millisecond), 1000)),
	}
}

// loginAs seeds a session directly in the store and returns its cookie.
func (e *env) loginAs(t *testing.T, userID int64, username string, isAdmin bool) *http.Cookie {
	t.Helper()
	sess := session.New(makeToken(t, time.Now().Add(time.Hour)), userID, username, isAdmin)
	if err := e.store.Create(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return &http.Cookie{Name: "skillswap_session", Value: sess.ID}
}

func (e *env) get(t *testing.T, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *env) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("redirect: got %q, want %q", got, location)
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "skillswap_session" && c.MaxAge >= 0 && c.Value != "" {
			return c
		}
	}
	return nil
}
