package handlers

import (
	"log"
	"net/http"
	"net/url"

	"skillswap-web/internal/api"
	"skillswap-web/internal/models"
	"skillswap-web/internal/session"
)

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type loginData struct {
	baseData
	Username string
	Next     string
}

func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if currentSession(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "login.html", loginData{
		baseData: baseData{Title: "Login"},
		Next:     safeNext(r.URL.Query().Get("next")),
	})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	next := safeNext(r.PostFormValue("next"))

	if err := s.validate.Struct(form); err != nil {
		s.renderLogin(w, form.Username, next, "", fieldErrors(err))
		return
	}

	auth, err := s.API.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		// Credentials and transport failures alike surface as one
		// message; the form stays on screen for a manual retry.
		s.renderLogin(w, form.Username, next, loginFailureMessage(err), nil)
		return
	}

	if err := s.startSession(w, r, auth); err != nil {
		s.renderLogin(w, form.Username, next, "Could not start a session. Please try again.", nil)
		return
	}
	if next == "" {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

type registerForm struct {
	Username     string `validate:"required,max=50"`
	Password     string `validate:"required,min=6"`
	Name         string `validate:"required"`
	Location     string
	Availability string
	IsPublic     bool
}

type registerData struct {
	baseData
	Form registerForm
}

func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if currentSession(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "register.html", registerData{
		baseData: baseData{Title: "Register"},
		Form:     registerForm{IsPublic: true},
	})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Username:     r.PostFormValue("username"),
		Password:     r.PostFormValue("password"),
		Name:         r.PostFormValue("name"),
		Location:     r.PostFormValue("location"),
		Availability: r.PostFormValue("availability"),
		IsPublic:     r.PostFormValue("isPublic") == "on",
	}

	if err := s.validate.Struct(form); err != nil {
		s.render(w, http.StatusOK, "register.html", registerData{
			baseData: baseData{Title: "Register", Fields: fieldErrors(err)},
			Form:     form,
		})
		return
	}

	auth, err := s.API.Register(r.Context(), models.RegisterInput{
		Username:     form.Username,
		Password:     form.Password,
		Name:         form.Name,
		Location:     form.Location,
		Availability: form.Availability,
		IsPublic:     form.IsPublic,
	})
	if err != nil {
		s.render(w, http.StatusOK, "register.html", registerData{
			baseData: baseData{Title: "Register", Error: loginFailureMessage(err)},
			Form:     form,
		})
		return
	}

	if err := s.startSession(w, r, auth); err != nil {
		s.render(w, http.StatusOK, "register.html", registerData{
			baseData: baseData{Title: "Register", Error: "Could not start a session. Please try again."},
			Form:     form,
		})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the stored session and cookie. Always succeeds; the
// redirect lands on the public home page.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := currentSession(r); sess != nil {
		if err := s.Sessions.Delete(r.Context(), sess.ID); err != nil {
			log.Printf("logout: delete session: %v", err)
		}
	}
	s.clearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, auth *models.AuthResponse) error {
	sess := session.New(auth.Token, auth.ID, auth.Username, auth.IsAdmin)
	if err := s.Sessions.Create(r.Context(), sess); err != nil {
		log.Printf("create session: %v", err)
		return err
	}
	s.setCookie(w, sess.ID, s.TTL)
	return nil
}

const rateLimitMessage = "Too many attempts. Please wait a moment and try again."

// LoginRateLimited re-renders the login form when the limiter refuses a
// submission.
func (s *Server) LoginRateLimited(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusTooManyRequests, "login.html", loginData{
		baseData: baseData{Title: "Login", Error: rateLimitMessage},
		Username: r.PostFormValue("username"),
		Next:     safeNext(r.PostFormValue("next")),
	})
}

func (s *Server) RegisterRateLimited(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusTooManyRequests, "register.html", registerData{
		baseData: baseData{Title: "Register", Error: rateLimitMessage},
	})
}

func (s *Server) renderLogin(w http.ResponseWriter, username, next, errMsg string, fields map[string]string) {
	s.render(w, http.StatusOK, "login.html", loginData{
		baseData: baseData{Title: "Login", Error: errMsg, Fields: fields},
		Username: username,
		Next:     next,
	})
}

func loginFailureMessage(err error) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Login failed. Check your credentials and try again."
}

// safeNext only allows same-site relative redirect targets.
func safeNext(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || next[0] != '/' {
		return ""
	}
	return next
}
