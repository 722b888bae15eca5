// Package handlers contains the page and endpoint handlers. All files
// share one package so they can use each other's helpers; they are split
// by page for readability.
package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"skillswap-web/internal/api"
	"skillswap-web/internal/responses"
	"skillswap-web/internal/session"
	"skillswap-web/web"
)

// fieldErrors adapts validator output to the template's field map.
func fieldErrors(err error) map[string]string {
	return responses.FieldErrors(err)
}

// Server holds shared dependencies for all handlers.
type Server struct {
	API       *api.Client
	Sessions  session.Store
	Cookie    string        // session cookie name
	TTL       time.Duration // session cookie lifetime
	templates map[string]*template.Template
	validate  *validator.Validate

	// inflight tracks form submissions currently proxied to the backend,
	// keyed by session+path, so a double submit cannot create two records.
	mu       sync.Mutex
	inflight map[string]bool
}

func NewServer(apiClient *api.Client, sessions session.Store, cookieName string, ttl time.Duration) *Server {
	s := &Server{
		API:      apiClient,
		Sessions: sessions,
		Cookie:   cookieName,
		TTL:      ttl,
		validate: validator.New(),
		inflight: make(map[string]bool),
	}
	s.templates = parseTemplates()
	return s
}

// pages that render inside the shared layout.
var pageFiles = []string{
	"home.html", "login.html", "register.html", "search.html",
	"myskills.html", "profile.html", "user.html",
	"swaps.html", "swap_detail.html", "admin.html",
	"error.html", "notfound.html",
}

func parseTemplates() map[string]*template.Template {
	funcs := template.FuncMap{
		"lower": strings.ToLower,
		// avg formats a nullable average rating.
		"avg": func(r *float64) string {
			if r == nil {
				return ""
			}
			return strconv.FormatFloat(*r, 'f', 1, 64)
		},
	}
	out := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		out[page] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(
				web.Templates, "templates/layout.html", "templates/"+page,
			),
		)
	}
	return out
}

// baseData is embedded in every page's template data.
type baseData struct {
	Title   string
	Session *session.Session
	// Error is the single page-level message for a failed backend call.
	Error string
	// Fields holds inline validation messages, keyed by form field.
	Fields map[string]string
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := s.templates[page]
	if !ok {
		log.Printf("render: unknown template %q", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

// renderError shows the generic error page with a page-scoped message.
// Backend failures never take the process down.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	if api.IsNotFound(err) {
		s.renderNotFound(w, r)
		return
	}
	status := http.StatusBadGateway
	msg := "The request could not be completed. Please try again."
	if apiErr, ok := err.(*api.Error); ok {
		status = http.StatusOK // page renders fine; the backend call failed
		msg = apiErr.Message
	}
	s.render(w, status, "error.html", struct {
		baseData
	}{baseData{Title: "Error", Session: currentSession(r), Error: msg}})
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "notfound.html", struct {
		baseData
	}{baseData{Title: "Not Found", Session: currentSession(r)}})
}

// tryAcquire marks a session+path submission as in flight. Returns false
// when an identical submission from the same session is still running.
func (s *Server) tryAcquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[key] {
		return false
	}
	s.inflight[key] = true
	return true
}

func (s *Server) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}
