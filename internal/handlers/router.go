package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Routes builds the full route surface. authLimiter guards the
// credential forms.
func (s *Server) Routes(authLimiter *rate.Limiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(s.LoadSession)

	// Public routes
	router.HandleFunc("/", s.Home).Methods("GET")
	router.HandleFunc("/login", s.LoginPage).Methods("GET")
	router.HandleFunc("/login", RateLimitMiddleware(authLimiter, s.LoginRateLimited)(s.Login)).Methods("POST")
	router.HandleFunc("/register", s.RegisterPage).Methods("GET")
	router.HandleFunc("/register", RateLimitMiddleware(authLimiter, s.RegisterRateLimited)(s.Register)).Methods("POST")
	router.HandleFunc("/logout", s.Logout).Methods("POST")

	// Autocomplete endpoint; no backend round-trip behind it
	router.HandleFunc("/api/suggest", s.Suggest).Methods("GET")

	// Authenticated routes
	protected := func(h http.HandlerFunc) http.Handler { return RequireAuth(h) }
	{
		router.Handle("/search", protected(s.Search)).Methods("GET")

		router.Handle("/my-skills", protected(s.MySkills)).Methods("GET")
		router.Handle("/my-skills", protected(s.CreateSkill)).Methods("POST")
		router.Handle("/my-skills/{id:[0-9]+}/update", protected(s.UpdateSkill)).Methods("POST")
		router.Handle("/my-skills/{id:[0-9]+}/delete", protected(s.DeleteSkill)).Methods("POST")

		router.Handle("/profile", protected(s.Profile)).Methods("GET")
		router.Handle("/profile", protected(s.UpdateProfile)).Methods("POST")
		router.Handle("/users/{id:[0-9]+}", protected(s.UserPage)).Methods("GET")
		// Alias kept so shared /profile/{id} links resolve too.
		router.Handle("/profile/{id:[0-9]+}", protected(s.UserPage)).Methods("GET")

		router.Handle("/swap-requests", protected(s.SwapRequests)).Methods("GET")
		router.Handle("/swap-requests", protected(s.CreateSwapRequest)).Methods("POST")
		router.Handle("/swap-requests/{id:[0-9]+}", protected(s.SwapRequestDetail)).Methods("GET")
		router.Handle("/swap-requests/{id:[0-9]+}/{action:accept|reject|complete|cancel}", protected(s.SwapRequestAction)).Methods("POST")
		router.Handle("/swap-requests/{id:[0-9]+}/feedback", protected(s.CreateFeedback)).Methods("POST")
	}

	// Admin routes
	// RequireAdmin covers anonymous viewers too: both land on the home
	// page rather than the login form.
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin)
	{
		admin.HandleFunc("", s.AdminDashboard).Methods("GET")
		admin.HandleFunc("/skills/{id:[0-9]+}/approve", s.AdminApproveSkill).Methods("POST")
		admin.HandleFunc("/skills/{id:[0-9]+}/reject", s.AdminRejectSkill).Methods("POST")
		admin.HandleFunc("/users/{id:[0-9]+}/activate", s.AdminActivateUser).Methods("POST")
		admin.HandleFunc("/users/{id:[0-9]+}/deactivate", s.AdminDeactivateUser).Methods("POST")
	}

	// Unknown paths land on the home page
	router.NotFoundHandler = s.LoadSession(http.HandlerFunc(s.CatchAll))

	return router
}
