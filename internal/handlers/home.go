package handlers

import (
	"net/http"

	"skillswap-web/internal/models"
)

type homeData struct {
	baseData
	Users []models.User
}

// Home lists public profiles. The backend hides deactivated and private
// users, so the list renders as-is.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	token := ""
	if sess != nil {
		token = sess.Token
	}

	users, err := s.API.GetPublicUsers(r.Context(), token)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, "home.html", homeData{
		baseData: baseData{Title: "SkillSwap", Session: sess},
		Users:    users,
	})
}

// CatchAll sends any unknown path back to the home page.
func (s *Server) CatchAll(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
