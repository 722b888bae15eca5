package handlers

import (
	"context"
	"net/http"

	"skillswap-web/internal/models"
	"skillswap-web/internal/swap"
)

type adminData struct {
	baseData
	Pending    []models.Skill
	Users      []models.User
	Swaps      []models.SwapRequest
	Feedback   []models.Feedback
	SwapStatus string
	Statuses   []string
}

// AdminDashboard renders moderation panels: pending skills, the user
// roster, all swap requests (optionally filtered by status) and all
// feedback. Each panel degrades independently on a backend failure.
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	token := sess.Token

	data := adminData{
		baseData: baseData{Title: "Admin", Session: sess},
		Statuses: swap.Statuses,
	}
	if status := r.URL.Query().Get("status"); swap.ValidStatus(status) {
		data.SwapStatus = status
	}

	var err error
	if data.Pending, err = s.API.GetPendingSkills(r.Context(), token); err != nil {
		data.Error = messageFor(err, "Failed to load pending skills.")
	}
	if data.Users, err = s.API.GetPublicUsers(r.Context(), token); err != nil && data.Error == "" {
		data.Error = messageFor(err, "Failed to load users.")
	}
	if data.SwapStatus != "" {
		data.Swaps, err = s.API.GetAllSwapRequestsByStatus(r.Context(), token, data.SwapStatus)
	} else {
		data.Swaps, err = s.API.GetAllSwapRequests(r.Context(), token)
	}
	if err != nil && data.Error == "" {
		data.Error = messageFor(err, "Failed to load swap requests.")
	}
	if data.Feedback, err = s.API.GetAllFeedback(r.Context(), token); err != nil && data.Error == "" {
		data.Error = messageFor(err, "Failed to load feedback.")
	}

	s.render(w, http.StatusOK, "admin.html", data)
}

func (s *Server) AdminApproveSkill(w http.ResponseWriter, r *http.Request) {
	s.adminSkillAction(w, r, s.API.ApproveSkill)
}

func (s *Server) AdminRejectSkill(w http.ResponseWriter, r *http.Request) {
	s.adminSkillAction(w, r, s.API.RejectSkill)
}

func (s *Server) AdminActivateUser(w http.ResponseWriter, r *http.Request) {
	s.adminUserAction(w, r, s.API.ActivateUser)
}

func (s *Server) AdminDeactivateUser(w http.ResponseWriter, r *http.Request) {
	s.adminUserAction(w, r, s.API.DeactivateUser)
}

// skillActionFunc matches the admin moderation client methods.
type skillActionFunc func(ctx context.Context, token string, id int64) error

func (s *Server) adminSkillAction(w http.ResponseWriter, r *http.Request, call skillActionFunc) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}
	if err := call(r.Context(), sess.Token, id); err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) adminUserAction(w http.ResponseWriter, r *http.Request, call skillActionFunc) {
	s.adminSkillAction(w, r, call)
}
